package models

// DashboardSummary holds the aggregate counts shown on the dashboard.
type DashboardSummary struct {
	TotalEmployees         int64
	TotalAttendanceRecords int64
	TotalPresent           int64
	TotalAbsent            int64
}
