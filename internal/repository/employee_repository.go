package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/workstream-hq/hrms-api/internal/models"
)

const employeeColumns = "id, tenant_id, employee_code, first_name, last_name, email, department_id, department_name, designation_id, designation_name, status, employment_type, gender, joining_date, basic_salary, hra, allowances, deleted"

// EmployeeRepository exposes tenant-scoped roster reads.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List returns non-deleted roster entries matching the filter.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("employee list: tenant id required")
	}

	var builder strings.Builder
	builder.WriteString("SELECT " + employeeColumns + " FROM employees WHERE tenant_id = $1 AND deleted = FALSE")
	args := []interface{}{filter.TenantID}

	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		builder.WriteString(fmt.Sprintf(" AND department_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		builder.WriteString(fmt.Sprintf(" AND status = $%d", len(args)))
	}
	builder.WriteString(" ORDER BY employee_code ASC")

	var employees []models.Employee
	if err := r.db.SelectContext(ctx, &employees, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	return employees, nil
}

// IDsByDepartment resolves a department to its non-deleted employee id set.
// An unknown department yields an empty set, not an error.
func (r *EmployeeRepository) IDsByDepartment(ctx context.Context, tenantID, departmentID string) ([]string, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("employee ids by department: tenant id required")
	}

	const query = `SELECT id FROM employees WHERE tenant_id = $1 AND department_id = $2 AND deleted = FALSE`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, tenantID, departmentID); err != nil {
		return nil, fmt.Errorf("query department employee ids: %w", err)
	}
	return ids, nil
}
