package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/workstream-hq/hrms-api/internal/models"
)

// AttendanceRepository exposes read-only access to attendance records. The
// report engine never writes attendance data.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns attendance records matching the filter. The tenant id is
// mandatory; every other predicate is optional.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("attendance list: tenant id required")
	}

	var builder strings.Builder
	builder.WriteString("SELECT id, tenant_id, employee_id, date, status, work_hours, clock_in, clock_out FROM attendance_records WHERE tenant_id = $1")
	args := []interface{}{filter.TenantID}

	if len(filter.EmployeeIDs) > 0 {
		args = append(args, pq.Array(filter.EmployeeIDs))
		builder.WriteString(fmt.Sprintf(" AND employee_id = ANY($%d)", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		builder.WriteString(fmt.Sprintf(" AND status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		builder.WriteString(fmt.Sprintf(" AND date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		builder.WriteString(fmt.Sprintf(" AND date <= $%d", len(args)))
	}
	builder.WriteString(" ORDER BY date ASC, employee_id ASC")

	var records []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("query attendance records: %w", err)
	}
	return records, nil
}
