// Package handlers provides the HTTP and gRPC server of the HRMS, bridging
// the transport layer and the service layer: JSON codecs, the gin router,
// centralized error mapping and health endpoints.
package handlers

import (
	"context"

	"github.com/gartstein/hrms/internal/hrms/models"
	"go.uber.org/zap"
)

// EmployeeController defines the employee operations the handlers invoke.
type EmployeeController interface {
	CreateEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, code models.EmployeeCode) error
}

// AttendanceController defines the attendance operations the handlers invoke.
type AttendanceController interface {
	MarkAttendance(ctx context.Context, in models.AttendanceInput) (*models.MarkedAttendance, error)
	ListEmployeeAttendance(ctx context.Context, code models.EmployeeCode, span models.DateRange) (*models.EmployeeAttendance, error)
	ListAttendance(ctx context.Context, on *models.Date) (*models.AttendanceOverview, error)
}

type DashboardController interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the HTTP API.
type Handler struct {
	employees  EmployeeController
	attendance AttendanceController
	dashboard  DashboardController
	store      Pinger
	logger     *zap.Logger
}

// NewHandler constructs a Handler over the given services.
func NewHandler(
	employees EmployeeController,
	attendance AttendanceController,
	dashboard DashboardController,
	store Pinger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		employees:  employees,
		attendance: attendance,
		dashboard:  dashboard,
		store:      store,
		logger:     logger.Named("http_handler"),
	}
}
