package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/gartstein/hrms/internal/hrms/db"
	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gartstein/hrms/internal/hrms/events"
	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// EmployeeService manages employees.
type EmployeeService struct {
	repo     Repository
	producer EventProducer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewEmployeeService(repo Repository, producer EventProducer, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		producer: producer,
		validate: newValidator(),
		logger:   logger.Named("employee_service"),
	}
}

// CreateEmployee validates and stores a new employee. Uniqueness of the
// employee ID and email is decided by the store.
func (s *EmployeeService) CreateEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	in = in.Normalize()
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Code:       in.Code,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
	}
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return nil, e.WithDetail(e.ErrConflict, "Employee ID or email already exists.")
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created", zap.String("employee_id", employee.Code.String()))
	s.producer.Produce(events.NewEmployeeEvent(events.EmployeeCreated, employee))
	return employee, nil
}

// ListEmployees returns every employee, most recently created first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes the employee and all of its attendance records in
// one transaction.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, code models.EmployeeCode) error {
	code = code.Normalize()

	var (
		deleted  *models.Employee
		attended int64
	)
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		employee, err := tx.GetEmployee(ctx, code)
		if err != nil {
			return err
		}
		if attended, err = tx.DeleteAttendanceFor(ctx, employee.Key); err != nil {
			return err
		}
		if err := tx.DeleteEmployee(ctx, employee.Key); err != nil {
			return err
		}
		deleted = employee
		return nil
	})
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.WithDetail(e.ErrNotFound, "Employee not found.")
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.logger.Info("employee deleted",
		zap.String("employee_id", code.String()),
		zap.Int64("attendance_records", attended),
	)
	s.producer.Produce(events.NewEmployeeEvent(events.EmployeeDeleted, deleted))
	return nil
}
