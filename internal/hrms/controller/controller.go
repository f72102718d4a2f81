// Package controller implements the business logic (service layer) of the
// HRMS: employees, attendance and the dashboard. It orchestrates repository
// operations and publishes lifecycle events.
package controller

import (
	"context"

	"github.com/gartstein/hrms/internal/hrms/db"
	"github.com/gartstein/hrms/internal/hrms/events"
	"github.com/gartstein/hrms/internal/hrms/models"
)

type EventProducer interface {
	Produce(event events.Event)
}

// Repository defines the storage interface used by the services.
type Repository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, code models.EmployeeCode) (*models.Employee, error)
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
	ListAttendanceFor(ctx context.Context, key models.EmployeeKey, span models.DateRange) ([]models.AttendanceRecord, error)
	ListAttendanceOn(ctx context.Context, on models.Date) ([]models.AttendanceEntry, error)
	ListRecentAttendance(ctx context.Context, limit int) ([]models.AttendanceEntry, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendance(ctx context.Context, status models.AttendanceStatus) (int64, error)
	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
}
