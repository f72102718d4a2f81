package db

import (
	"context"
	"time"

	dbmodels "github.com/gartstein/hrms/internal/hrms/db/models"
	"github.com/gartstein/hrms/internal/hrms/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const attendanceWithEmployeeColumns = "attendance.id, attendance.employee_id, attendance.date, attendance.status, " +
	"attendance.created_at, employees.employee_id AS employee_code, employees.full_name AS employee_name"

// CreateAttendance inserts a new record. A second record for the same
// employee and date fails with ErrConflict; an unknown employee key fails
// with ErrConstraint.
func (r *Repository) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	row := dbmodels.Attendance{
		EmployeeID: uint(record.EmployeeKey),
		Date:       toColumnDate(record.Date),
		Status:     string(record.Status),
	}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&row).Error
	if err != nil {
		return translateError(err)
	}
	*record = attendanceFromRow(row)
	return nil
}

// DeleteAttendanceFor removes every attendance record of the employee and
// reports how many were deleted.
func (r *Repository) DeleteAttendanceFor(ctx context.Context, key models.EmployeeKey) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Attendance{}, "employee_id = ?", uint(key))
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

// ListAttendanceFor returns the employee's records inside the inclusive
// range, newest date first.
func (r *Repository) ListAttendanceFor(ctx context.Context, key models.EmployeeKey, span models.DateRange) ([]models.AttendanceRecord, error) {
	q := r.db.WithContext(ctx).Where("attendance.employee_id = ?", uint(key))
	if span.From != nil {
		q = q.Where("attendance.date >= ?", toColumnDate(*span.From))
	}
	if span.To != nil {
		q = q.Where("attendance.date <= ?", toColumnDate(*span.To))
	}

	var rows []dbmodels.Attendance
	if err := q.Order("attendance.date DESC").Order("attendance.id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	records := make([]models.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, attendanceFromRow(row))
	}
	return records, nil
}

// ListAttendanceOn returns every record on the date, ordered by the
// employees' natural keys.
func (r *Repository) ListAttendanceOn(ctx context.Context, on models.Date) ([]models.AttendanceEntry, error) {
	q := r.joinedAttendance(ctx).
		Where("attendance.date = ?", toColumnDate(on)).
		Order("employees.employee_id ASC")
	return scanEntries(q)
}

// ListRecentAttendance returns up to limit records across all employees,
// newest date first and newest insert first within a date.
func (r *Repository) ListRecentAttendance(ctx context.Context, limit int) ([]models.AttendanceEntry, error) {
	q := r.joinedAttendance(ctx).
		Order("attendance.date DESC").
		Order("attendance.id DESC").
		Limit(limit)
	return scanEntries(q)
}

func (r *Repository) joinedAttendance(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&dbmodels.Attendance{}).
		Select(attendanceWithEmployeeColumns).
		Joins("JOIN employees ON employees.id = attendance.employee_id")
}

func scanEntries(q *gorm.DB) ([]models.AttendanceEntry, error) {
	var rows []dbmodels.AttendanceWithEmployee
	if err := q.Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	entries := make([]models.AttendanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.AttendanceEntry{
			Record: models.AttendanceRecord{
				ID:          row.ID,
				EmployeeKey: models.EmployeeKey(row.EmployeeID),
				Date:        fromColumnDate(row.Date),
				Status:      models.AttendanceStatus(row.Status),
				CreatedAt:   row.CreatedAt,
			},
			EmployeeCode: models.EmployeeCode(row.EmployeeCode),
			EmployeeName: row.EmployeeName,
		})
	}
	return entries, nil
}

func attendanceFromRow(row dbmodels.Attendance) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:          row.ID,
		EmployeeKey: models.EmployeeKey(row.EmployeeID),
		Date:        fromColumnDate(row.Date),
		Status:      models.AttendanceStatus(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}

func toColumnDate(d models.Date) datatypes.Date {
	return datatypes.Date(d.Time())
}

func fromColumnDate(d datatypes.Date) models.Date {
	return models.DateOf(time.Time(d))
}
