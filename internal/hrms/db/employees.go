package db

import (
	"context"

	dbmodels "github.com/gartstein/hrms/internal/hrms/db/models"
	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gartstein/hrms/internal/hrms/models"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	row := dbmodels.Employee{
		EmployeeID: employee.Code.String(),
		FullName:   employee.FullName,
		Email:      employee.Email,
		Department: employee.Department,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError(err)
	}
	*employee = employeeFromRow(row)
	return nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var rows []dbmodels.Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	employees := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, employeeFromRow(row))
	}
	return employees, nil
}

// GetEmployee resolves a natural key to the stored employee, including the
// surrogate key used by every relational operation.
func (r *Repository) GetEmployee(ctx context.Context, code models.EmployeeCode) (*models.Employee, error) {
	var row dbmodels.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", code.String()).
		First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	employee := employeeFromRow(row)
	return &employee, nil
}

// DeleteEmployee removes the employee row. Attendance rows must already be
// gone; see DeleteAttendanceFor.
func (r *Repository) DeleteEmployee(ctx context.Context, key models.EmployeeKey) error {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Employee{}, "id = ?", uint(key))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func employeeFromRow(row dbmodels.Employee) models.Employee {
	return models.Employee{
		Key:        models.EmployeeKey(row.ID),
		Code:       models.EmployeeCode(row.EmployeeID),
		FullName:   row.FullName,
		Email:      row.Email,
		Department: row.Department,
		CreatedAt:  row.CreatedAt,
	}
}
