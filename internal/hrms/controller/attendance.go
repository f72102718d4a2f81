package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gartstein/hrms/internal/hrms/events"
	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var errEmployeeNotFound = e.WithDetail(e.ErrNotFound, "Employee not found.")

// AttendanceService records and reports attendance. Marking is
// write-once: a second mark for the same employee and date is rejected with
// ErrConflict and never overwrites the first.
type AttendanceService struct {
	repo     Repository
	producer EventProducer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAttendanceService(repo Repository, producer EventProducer, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{
		repo:     repo,
		producer: producer,
		validate: newValidator(),
		logger:   logger.Named("attendance_service"),
	}
}

func (s *AttendanceService) MarkAttendance(ctx context.Context, in models.AttendanceInput) (*models.MarkedAttendance, error) {
	in = in.Normalize()
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, e.Invalid("date", err.Error())
	}

	employee, err := s.lookup(ctx, in.Code)
	if err != nil {
		return nil, err
	}

	record := &models.AttendanceRecord{
		EmployeeKey: employee.Key,
		Date:        date,
		Status:      in.Status,
	}
	if err := s.repo.CreateAttendance(ctx, record); err != nil {
		switch {
		case errors.Is(err, e.ErrConflict):
			return nil, e.WithDetail(e.ErrConflict, "Attendance already marked for this employee on this date.")
		case errors.Is(err, e.ErrConstraint):
			// The employee was deleted between lookup and insert.
			return nil, errEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	s.logger.Info("attendance marked",
		zap.String("employee_id", employee.Code.String()),
		zap.Stringer("date", record.Date),
		zap.String("status", string(record.Status)),
	)
	s.producer.Produce(events.NewAttendanceEvent(record, employee))
	return &models.MarkedAttendance{Record: *record, Employee: *employee}, nil
}

// ListEmployeeAttendance returns the employee's history inside the
// inclusive range with per-status totals.
func (s *AttendanceService) ListEmployeeAttendance(ctx context.Context, code models.EmployeeCode, span models.DateRange) (*models.EmployeeAttendance, error) {
	employee, err := s.lookup(ctx, code.Normalize())
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListAttendanceFor(ctx, employee.Key, span)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	history := &models.EmployeeAttendance{Employee: *employee, Records: records}
	for _, r := range records {
		switch r.Status {
		case models.Present:
			history.TotalPresent++
		case models.Absent:
			history.TotalAbsent++
		}
	}
	return history, nil
}

// ListAttendance returns every record on the given date, or the most recent
// records across all employees when on is nil.
func (s *AttendanceService) ListAttendance(ctx context.Context, on *models.Date) (*models.AttendanceOverview, error) {
	var (
		entries []models.AttendanceEntry
		err     error
	)
	if on != nil {
		entries, err = s.repo.ListAttendanceOn(ctx, *on)
	} else {
		entries, err = s.repo.ListRecentAttendance(ctx, models.RecentAttendanceLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return &models.AttendanceOverview{On: on, Entries: entries}, nil
}

func (s *AttendanceService) lookup(ctx context.Context, code models.EmployeeCode) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, code)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, errEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}
