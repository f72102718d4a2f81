// Package models defines the core domain models of the HRMS: employees,
// attendance records and the aggregates derived from them.
package models

import (
	"strings"
	"time"
)

// EmployeeCode is the externally supplied natural key of an employee.
type EmployeeCode string

// Normalize trims surrounding whitespace.
func (c EmployeeCode) Normalize() EmployeeCode {
	return EmployeeCode(strings.TrimSpace(string(c)))
}

func (c EmployeeCode) String() string { return string(c) }

// EmployeeKey is the store-assigned surrogate key of an employee. It never
// leaves the service boundary as an identifier for lookups.
type EmployeeKey uint

// Employee defines the domain model for an employee.
type Employee struct {
	// Key is the surrogate key assigned by the store.
	Key EmployeeKey
	// Code is the unique natural key supplied on creation.
	Code EmployeeCode
	// FullName is the employee's display name.
	FullName string
	// Email is stored lower-cased and is unique.
	Email string
	// Department the employee belongs to.
	Department string
	// CreatedAt is set once on insert.
	CreatedAt time.Time
}

// EmployeeInput carries the fields accepted when creating an employee.
type EmployeeInput struct {
	Code       EmployeeCode `json:"employee_id" validate:"required,max=50"`
	FullName   string       `json:"full_name" validate:"required,max=255"`
	Email      string       `json:"email" validate:"required,max=255,email"`
	Department string       `json:"department" validate:"required,max=100"`
}

// Normalize trims every field and lower-cases the email.
func (in EmployeeInput) Normalize() EmployeeInput {
	return EmployeeInput{
		Code:       in.Code.Normalize(),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Department: strings.TrimSpace(in.Department),
	}
}
