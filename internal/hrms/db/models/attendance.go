package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance is the row stored in the attendance table. At most one row
// exists per (employee, date).
type Attendance struct {
	ID         uint           `gorm:"primaryKey"`
	EmployeeID uint           `gorm:"not null;uniqueIndex:uq_employee_date,priority:1"`
	Date       datatypes.Date `gorm:"not null;uniqueIndex:uq_employee_date,priority:2;index"`
	Status     string         `gorm:"size:20;not null;index"`
	CreatedAt  time.Time
	Employee   Employee `gorm:"constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// AttendanceWithEmployee is the projection of an attendance row joined with
// its employee's natural key and name.
type AttendanceWithEmployee struct {
	ID           uint
	EmployeeID   uint
	Date         datatypes.Date
	Status       string
	CreatedAt    time.Time
	EmployeeCode string
	EmployeeName string
}
