package models

import "time"

// EmploymentStatus represents the roster lifecycle state of an employee.
type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive   EmploymentStatus = "INACTIVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

// Valid returns true when the status is a supported value.
func (s EmploymentStatus) Valid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusInactive, EmploymentStatusTerminated:
		return true
	default:
		return false
	}
}

// Employee is a denormalised roster entry carrying department and designation
// references used for joins. Read-only reference data for the report engine.
type Employee struct {
	ID              string           `db:"id" json:"id"`
	TenantID        string           `db:"tenant_id" json:"-"`
	EmployeeCode    string           `db:"employee_code" json:"employee_code"`
	FirstName       string           `db:"first_name" json:"first_name"`
	LastName        string           `db:"last_name" json:"last_name"`
	Email           string           `db:"email" json:"email"`
	DepartmentID    *string          `db:"department_id" json:"department_id,omitempty"`
	DepartmentName  *string          `db:"department_name" json:"department_name,omitempty"`
	DesignationID   *string          `db:"designation_id" json:"designation_id,omitempty"`
	DesignationName *string          `db:"designation_name" json:"designation_name,omitempty"`
	Status          EmploymentStatus `db:"status" json:"status"`
	EmploymentType  string           `db:"employment_type" json:"employment_type"`
	Gender          string           `db:"gender" json:"gender"`
	JoiningDate     *time.Time       `db:"joining_date" json:"joining_date,omitempty"`
	BasicSalary     float64          `db:"basic_salary" json:"basic_salary"`
	HRA             float64          `db:"hra" json:"hra"`
	Allowances      float64          `db:"allowances" json:"allowances"`
	Deleted         bool             `db:"deleted" json:"-"`
}

// FullName joins the first and last name for display.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// TotalSalary sums the salary components.
func (e Employee) TotalSalary() float64 {
	return e.BasicSalary + e.HRA + e.Allowances
}

// EmployeeFilter scopes roster reads.
type EmployeeFilter struct {
	TenantID     string
	DepartmentID string
	Status       *EmploymentStatus
}

// EmployeeSummary aggregates a roster record set.
type EmployeeSummary struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveCount     int     `json:"active_count"`
	InactiveCount   int     `json:"inactive_count"`
	TerminatedCount int     `json:"terminated_count"`
	TotalPayroll    float64 `json:"total_payroll"`
	AvgSalary       float64 `json:"avg_salary"`
}

// EmployeeGroup is one partition of an employee report.
type EmployeeGroup struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	TotalEmployees int     `json:"total_employees"`
	ActiveCount    int     `json:"active_count"`
	TotalPayroll   float64 `json:"total_payroll"`
	AvgSalary      float64 `json:"avg_salary"`
}

// EmployeeReport is the non-export employee report payload.
type EmployeeReport struct {
	Summary     EmployeeSummary `json:"summary"`
	GroupBy     GroupKind       `json:"groupBy"`
	GroupedData []EmployeeGroup `json:"groupedData"`
	RawRecords  []Employee      `json:"rawRecords"`
}
