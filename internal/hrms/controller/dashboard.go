package controller

import (
	"context"
	"fmt"

	"github.com/gartstein/hrms/internal/hrms/models"
)

// DashboardService computes the dashboard counts at read time.
type DashboardService struct {
	repo Repository
}

func NewDashboardService(repo Repository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var (
		summary models.DashboardSummary
		err     error
	)
	if summary.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if summary.TotalAttendanceRecords, err = s.repo.CountAttendance(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	if summary.TotalPresent, err = s.repo.CountAttendance(ctx, models.Present); err != nil {
		return nil, fmt.Errorf("failed to count present: %w", err)
	}
	if summary.TotalAbsent, err = s.repo.CountAttendance(ctx, models.Absent); err != nil {
		return nil, fmt.Errorf("failed to count absent: %w", err)
	}
	return &summary, nil
}
