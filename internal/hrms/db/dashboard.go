package db

import (
	"context"

	dbmodels "github.com/gartstein/hrms/internal/hrms/db/models"
	"github.com/gartstein/hrms/internal/hrms/models"
)

func (r *Repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmodels.Employee{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CountAttendance counts attendance records, restricted to one status when
// status is not empty.
func (r *Repository) CountAttendance(ctx context.Context, status models.AttendanceStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&dbmodels.Attendance{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
