package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceStatusOnLeave AttendanceStatus = "ON_LEAVE"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusHalfDay, AttendanceStatusOnLeave:
		return true
	default:
		return false
	}
}

// AttendanceRecord is a single per-employee per-day attendance row. The report
// engine only reads these; the attendance subsystem owns their lifecycle.
type AttendanceRecord struct {
	ID         string           `db:"id" json:"id"`
	TenantID   string           `db:"tenant_id" json:"-"`
	EmployeeID string           `db:"employee_id" json:"employee_id"`
	Date       time.Time        `db:"date" json:"date"`
	Status     AttendanceStatus `db:"status" json:"status"`
	WorkHours  float64          `db:"work_hours" json:"work_hours"`
	ClockIn    *string          `db:"clock_in" json:"clock_in,omitempty"`
	ClockOut   *string          `db:"clock_out" json:"clock_out,omitempty"`
}

// AttendanceFilter scopes attendance reads. TenantID is always injected from
// the authenticated caller, never bound from request input.
type AttendanceFilter struct {
	TenantID    string
	EmployeeIDs []string
	Status      *AttendanceStatus
	DateFrom    *time.Time
	DateTo      *time.Time
}

// AttendanceRow is an attendance record joined with roster display fields.
type AttendanceRow struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeCode   string           `json:"employee_code"`
	EmployeeName   string           `json:"employee_name"`
	Email          string           `json:"email"`
	DepartmentKey  string           `json:"department_id"`
	DepartmentName string           `json:"department_name"`
	ClockIn        *string          `json:"clock_in,omitempty"`
	ClockOut       *string          `json:"clock_out,omitempty"`
	WorkHours      float64          `json:"work_hours"`
	Overtime       float64          `json:"overtime"`
	Status         AttendanceStatus `json:"status"`
}

// AttendanceSummary aggregates an attendance record set.
type AttendanceSummary struct {
	TotalRecords      int     `json:"total_records"`
	PresentCount      int     `json:"present_count"`
	AbsentCount       int     `json:"absent_count"`
	HalfDayCount      int     `json:"half_day_count"`
	OnLeaveCount      int     `json:"on_leave_count"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	AvgWorkHours      float64 `json:"avg_work_hours"`
	TotalOvertime     float64 `json:"total_overtime"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// AttendanceGroup is one partition of an attendance report.
type AttendanceGroup struct {
	Key               string  `json:"key"`
	Label             string  `json:"label"`
	TotalRecords      int     `json:"total_records"`
	PresentCount      int     `json:"present_count"`
	AbsentCount       int     `json:"absent_count"`
	HalfDayCount      int     `json:"half_day_count"`
	OnLeaveCount      int     `json:"on_leave_count"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	AvgWorkHours      float64 `json:"avg_work_hours"`
	TotalOvertime     float64 `json:"total_overtime"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// AttendanceReport is the non-export attendance report payload. Raw records
// are returned alongside the aggregates for output-contract compatibility.
type AttendanceReport struct {
	Summary     AttendanceSummary `json:"summary"`
	GroupBy     GroupKind         `json:"groupBy"`
	GroupedData []AttendanceGroup `json:"groupedData"`
	RawRecords  []AttendanceRow   `json:"rawRecords"`
}

// EmployeeAttendanceSummary rolls up one employee's attendance for a window.
type EmployeeAttendanceSummary struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeCode      string  `json:"employee_code"`
	EmployeeName      string  `json:"employee_name"`
	DepartmentName    string  `json:"department_name"`
	PresentCount      int     `json:"present_count"`
	AbsentCount       int     `json:"absent_count"`
	HalfDayCount      int     `json:"half_day_count"`
	OnLeaveCount      int     `json:"on_leave_count"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	TotalOvertime     float64 `json:"total_overtime"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// MonthlyAttendanceSummary captures the company-wide roll-up for a month.
type MonthlyAttendanceSummary struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	TotalRecords     int     `json:"total_records"`
	EmployeeCount    int     `json:"employee_count"`
	PresentCount     int     `json:"present_count"`
	AbsentCount      int     `json:"absent_count"`
	HalfDayCount     int     `json:"half_day_count"`
	OnLeaveCount     int     `json:"on_leave_count"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	TotalOvertime    float64 `json:"total_overtime"`
	AvgAttendancePct float64 `json:"avg_attendance_percent"`
}

// MonthlyAttendanceReport is the monthly attendance summary payload.
type MonthlyAttendanceReport struct {
	Summary     MonthlyAttendanceSummary    `json:"summary"`
	GroupBy     GroupKind                   `json:"groupBy"`
	GroupedData []EmployeeAttendanceSummary `json:"groupedData"`
	RawRecords  []AttendanceRow             `json:"rawRecords"`
}
