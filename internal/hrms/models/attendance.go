package models

import (
	"strings"
	"time"
)

// AttendanceStatus is the outcome recorded for an employee on a date.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
)

// RecentAttendanceLimit caps the unfiltered attendance overview.
const RecentAttendanceLimit = 50

// AttendanceRecord is a single attendance mark.
type AttendanceRecord struct {
	ID          uint
	EmployeeKey EmployeeKey
	Date        Date
	Status      AttendanceStatus
	CreatedAt   time.Time
}

// AttendanceInput carries the fields accepted when marking attendance.
// Date stays a string here so that parse failures are reported as
// validation errors on the date field.
type AttendanceInput struct {
	Code   EmployeeCode     `json:"employee_id" validate:"required,max=50"`
	Date   string           `json:"date" validate:"required"`
	Status AttendanceStatus `json:"status" validate:"required,oneof=Present Absent"`
}

// Normalize trims the employee code and date. Status is compared verbatim.
func (in AttendanceInput) Normalize() AttendanceInput {
	return AttendanceInput{
		Code:   in.Code.Normalize(),
		Date:   strings.TrimSpace(in.Date),
		Status: in.Status,
	}
}

// MarkedAttendance is the result of a successful mark.
type MarkedAttendance struct {
	Record   AttendanceRecord
	Employee Employee
}

// DateRange bounds a history query. Nil bounds are open.
type DateRange struct {
	From *Date
	To   *Date
}

// EmployeeAttendance is the per-employee attendance history.
type EmployeeAttendance struct {
	Employee     Employee
	Records      []AttendanceRecord
	TotalPresent int
	TotalAbsent  int
}

// Total is the number of records in the history.
func (e *EmployeeAttendance) Total() int {
	return len(e.Records)
}

// AttendanceEntry is a record annotated with its employee's identity.
type AttendanceEntry struct {
	Record       AttendanceRecord
	EmployeeCode EmployeeCode
	EmployeeName string
}

// AttendanceOverview lists records across employees, either for one date or
// the most recent ones.
type AttendanceOverview struct {
	// On is set when the overview is restricted to a single date.
	On      *Date
	Entries []AttendanceEntry
}
