// Package models contains the persistence models of the HRMS,
// configured to work using GORM as the ORM.
package models

import (
	"time"
)

// Employee is the row stored in the employees table. EmployeeID is the
// natural key; ID is the surrogate key referenced by attendance rows.
type Employee struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID string    `gorm:"size:50;not null;uniqueIndex"`
	FullName   string    `gorm:"size:255;not null"`
	Email      string    `gorm:"size:255;not null;uniqueIndex"`
	Department string    `gorm:"size:100;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
