package models

import "time"

// LeaveStatus represents the lifecycle status of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// Valid returns true when the status is a supported value.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return true
	default:
		return false
	}
}

// LeaveRecord is a single leave request row, read-only to the report engine.
type LeaveRecord struct {
	ID           string      `db:"id" json:"id"`
	TenantID     string      `db:"tenant_id" json:"-"`
	EmployeeID   string      `db:"employee_id" json:"employee_id"`
	LeaveTypeID  string      `db:"leave_type_id" json:"leave_type_id"`
	FromDate     time.Time   `db:"from_date" json:"from_date"`
	ToDate       time.Time   `db:"to_date" json:"to_date"`
	NumberOfDays float64     `db:"number_of_days" json:"number_of_days"`
	Status       LeaveStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// LeaveType is tenant-scoped reference data describing a leave category.
type LeaveType struct {
	ID          string  `db:"id" json:"id"`
	TenantID    string  `db:"tenant_id" json:"-"`
	Name        string  `db:"name" json:"name"`
	Code        string  `db:"code" json:"code"`
	AnnualQuota float64 `db:"annual_quota" json:"annual_quota"`
	IsPaid      bool    `db:"is_paid" json:"is_paid"`
}

// LeaveFilter scopes leave reads.
type LeaveFilter struct {
	TenantID    string
	EmployeeIDs []string
	LeaveTypeID string
	Status      *LeaveStatus
	DateFrom    *time.Time
	DateTo      *time.Time
}

// LeaveRow is a leave record joined with roster and leave-type display fields.
type LeaveRow struct {
	ID             string      `json:"id"`
	EmployeeID     string      `json:"employee_id"`
	EmployeeCode   string      `json:"employee_code"`
	EmployeeName   string      `json:"employee_name"`
	DepartmentKey  string      `json:"department_id"`
	DepartmentName string      `json:"department_name"`
	LeaveTypeID    string      `json:"leave_type_id"`
	LeaveTypeName  string      `json:"leave_type_name"`
	IsPaid         bool        `json:"is_paid"`
	FromDate       time.Time   `json:"from_date"`
	ToDate         time.Time   `json:"to_date"`
	NumberOfDays   float64     `json:"number_of_days"`
	Status         LeaveStatus `json:"status"`
}

// LeaveSummary aggregates a leave record set.
type LeaveSummary struct {
	TotalRequests  int     `json:"total_requests"`
	ApprovedCount  int     `json:"approved_count"`
	PendingCount   int     `json:"pending_count"`
	RejectedCount  int     `json:"rejected_count"`
	CancelledCount int     `json:"cancelled_count"`
	TotalDays      float64 `json:"total_days"`
	ApprovedDays   float64 `json:"approved_days"`
}

// LeaveGroup is one partition of a leave report.
type LeaveGroup struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	TotalRequests  int     `json:"total_requests"`
	ApprovedCount  int     `json:"approved_count"`
	PendingCount   int     `json:"pending_count"`
	RejectedCount  int     `json:"rejected_count"`
	CancelledCount int     `json:"cancelled_count"`
	TotalDays      float64 `json:"total_days"`
	ApprovedDays   float64 `json:"approved_days"`
}

// LeaveReport is the non-export leave report payload.
type LeaveReport struct {
	Summary     LeaveSummary `json:"summary"`
	GroupBy     GroupKind    `json:"groupBy"`
	GroupedData []LeaveGroup `json:"groupedData"`
	RawRecords  []LeaveRow   `json:"rawRecords"`
}

// LeaveBalanceRow is the computed balance for one employee and leave type.
type LeaveBalanceRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeCode  string  `json:"employee_code"`
	EmployeeName  string  `json:"employee_name"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	IsPaid        bool    `json:"is_paid"`
	AnnualQuota   float64 `json:"annual_quota"`
	UsedDays      float64 `json:"used_days"`
	Balance       float64 `json:"balance"`
}

// EmployeeLeaveBalance groups an employee's balances across leave types.
type EmployeeLeaveBalance struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	TotalQuota   float64           `json:"total_quota"`
	TotalUsed    float64           `json:"total_used"`
	TotalBalance float64           `json:"total_balance"`
	Balances     []LeaveBalanceRow `json:"balances"`
}

// LeaveBalanceSummary rolls up a balance report.
type LeaveBalanceSummary struct {
	Year           int     `json:"year"`
	EmployeeCount  int     `json:"employee_count"`
	LeaveTypeCount int     `json:"leave_type_count"`
	TotalQuota     float64 `json:"total_quota"`
	TotalUsed      float64 `json:"total_used"`
	TotalBalance   float64 `json:"total_balance"`
}

// LeaveBalanceReport is the leave balance report payload.
type LeaveBalanceReport struct {
	Summary     LeaveBalanceSummary    `json:"summary"`
	GroupBy     GroupKind              `json:"groupBy"`
	GroupedData []EmployeeLeaveBalance `json:"groupedData"`
	RawRecords  []LeaveBalanceRow      `json:"rawRecords"`
}

// MonthlyLeaveSummary captures the roll-up for leaves starting in a month.
type MonthlyLeaveSummary struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalRequests  int     `json:"total_requests"`
	ApprovedCount  int     `json:"approved_count"`
	PendingCount   int     `json:"pending_count"`
	RejectedCount  int     `json:"rejected_count"`
	CancelledCount int     `json:"cancelled_count"`
	TotalDays      float64 `json:"total_days"`
	ApprovedDays   float64 `json:"approved_days"`
}

// MonthlyLeaveReport is the monthly leave summary payload.
type MonthlyLeaveReport struct {
	Summary     MonthlyLeaveSummary `json:"summary"`
	GroupBy     GroupKind           `json:"groupBy"`
	GroupedData []LeaveGroup        `json:"groupedData"`
	RawRecords  []LeaveRow          `json:"rawRecords"`
}
