package handlers

import (
	"time"

	"github.com/gartstein/hrms/internal/hrms/models"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type employeeResponse struct {
	ID         uint      `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

type employeeListResponse struct {
	Employees []employeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

type markedAttendanceResponse struct {
	ID         uint        `json:"id"`
	EmployeeID string      `json:"employee_id"`
	Date       models.Date `json:"date"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

type attendanceRecordResponse struct {
	ID        uint        `json:"id"`
	Date      models.Date `json:"date"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type employeeAttendanceResponse struct {
	EmployeeID   string                     `json:"employee_id"`
	EmployeeName string                     `json:"employee_name"`
	Records      []attendanceRecordResponse `json:"records"`
	TotalPresent int                        `json:"total_present"`
	TotalAbsent  int                        `json:"total_absent"`
	Total        int                        `json:"total"`
}

type attendanceEntryResponse struct {
	ID           uint        `json:"id"`
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Date         models.Date `json:"date"`
	Status       string      `json:"status"`
}

type attendanceOverviewResponse struct {
	Date    *models.Date              `json:"date,omitempty"`
	Records []attendanceEntryResponse `json:"records"`
	Total   int                       `json:"total"`
}

type dashboardResponse struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	TotalPresent           int64 `json:"total_present"`
	TotalAbsent            int64 `json:"total_absent"`
}

func toEmployeeResponse(emp *models.Employee) employeeResponse {
	return employeeResponse{
		ID:         uint(emp.Key),
		EmployeeID: emp.Code.String(),
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt,
	}
}

func toMarkedAttendanceResponse(marked *models.MarkedAttendance) markedAttendanceResponse {
	return markedAttendanceResponse{
		ID:         marked.Record.ID,
		EmployeeID: marked.Employee.Code.String(),
		Date:       marked.Record.Date,
		Status:     string(marked.Record.Status),
		CreatedAt:  marked.Record.CreatedAt,
	}
}

func toEmployeeAttendanceResponse(history *models.EmployeeAttendance) employeeAttendanceResponse {
	records := make([]attendanceRecordResponse, 0, len(history.Records))
	for _, r := range history.Records {
		records = append(records, attendanceRecordResponse{
			ID:        r.ID,
			Date:      r.Date,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	return employeeAttendanceResponse{
		EmployeeID:   history.Employee.Code.String(),
		EmployeeName: history.Employee.FullName,
		Records:      records,
		TotalPresent: history.TotalPresent,
		TotalAbsent:  history.TotalAbsent,
		Total:        history.Total(),
	}
}

func toAttendanceOverviewResponse(overview *models.AttendanceOverview) attendanceOverviewResponse {
	records := make([]attendanceEntryResponse, 0, len(overview.Entries))
	for _, entry := range overview.Entries {
		records = append(records, attendanceEntryResponse{
			ID:           entry.Record.ID,
			EmployeeID:   entry.EmployeeCode.String(),
			EmployeeName: entry.EmployeeName,
			Date:         entry.Record.Date,
			Status:       string(entry.Record.Status),
		})
	}
	return attendanceOverviewResponse{
		Date:    overview.On,
		Records: records,
		Total:   len(records),
	}
}
