package models

// GroupKind is the caller-selected dimension along which report records are
// partitioned before reduction.
type GroupKind string

const (
	GroupByDate       GroupKind = "date"
	GroupByEmployee   GroupKind = "employee"
	GroupByDepartment GroupKind = "department"
	GroupByLeaveType  GroupKind = "leaveType"
	GroupByStatus     GroupKind = "status"
)

// Valid returns true when the kind is a supported grouping dimension.
func (k GroupKind) Valid() bool {
	switch k {
	case GroupByDate, GroupByEmployee, GroupByDepartment, GroupByLeaveType, GroupByStatus:
		return true
	default:
		return false
	}
}

// ReportFormat enumerates supported export formats.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// ReportType enumerates the report entry points.
type ReportType string

const (
	ReportTypeAttendance        ReportType = "attendance"
	ReportTypeMonthlyAttendance ReportType = "attendance_monthly"
	ReportTypeEmployee          ReportType = "employee"
	ReportTypeLeave             ReportType = "leave"
	ReportTypeLeaveBalance      ReportType = "leave_balance"
	ReportTypeMonthlyLeave      ReportType = "leave_monthly"
)
