// Package events publishes HRMS lifecycle events to Kafka and consumes them
// for the audit log.
package events

import (
	"time"

	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/google/uuid"
)

type EventType string

const (
	EmployeeCreated  EventType = "employee_created"
	EmployeeDeleted  EventType = "employee_deleted"
	AttendanceMarked EventType = "attendance_marked"
)

type EmployeePayload struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttendancePayload struct {
	ID     uint        `json:"id"`
	Date   models.Date `json:"date"`
	Status string      `json:"status"`
}

type Event struct {
	ID         uuid.UUID          `json:"id"`
	Type       EventType          `json:"type"`
	OccurredAt time.Time          `json:"occurred_at"`
	Employee   *EmployeePayload   `json:"employee,omitempty"`
	Attendance *AttendancePayload `json:"attendance,omitempty"`
}

// Key is the partitioning key: the employee's natural key, so every event of
// one employee lands on the same partition.
func (e Event) Key() string {
	if e.Employee == nil {
		return ""
	}
	return e.Employee.EmployeeID
}

func NewEmployeeEvent(eventType EventType, employee *models.Employee) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Employee:   employeePayload(employee),
	}
}

func NewAttendanceEvent(record *models.AttendanceRecord, employee *models.Employee) Event {
	return Event{
		ID:         uuid.New(),
		Type:       AttendanceMarked,
		OccurredAt: time.Now().UTC(),
		Employee:   employeePayload(employee),
		Attendance: &AttendancePayload{
			ID:     record.ID,
			Date:   record.Date,
			Status: string(record.Status),
		},
	}
}

func employeePayload(employee *models.Employee) *EmployeePayload {
	return &EmployeePayload{
		EmployeeID: employee.Code.String(),
		FullName:   employee.FullName,
		Email:      employee.Email,
		Department: employee.Department,
		CreatedAt:  employee.CreatedAt,
	}
}
