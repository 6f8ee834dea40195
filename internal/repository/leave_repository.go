package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/workstream-hq/hrms-api/internal/models"
)

// LeaveRepository exposes read-only access to leave records.
type LeaveRepository struct {
	db *sqlx.DB
}

// NewLeaveRepository constructs the repository.
func NewLeaveRepository(db *sqlx.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// List returns leave records matching the filter. Date bounds apply to the
// from_date column, which also anchors year attribution downstream.
func (r *LeaveRepository) List(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRecord, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("leave list: tenant id required")
	}

	var builder strings.Builder
	builder.WriteString("SELECT id, tenant_id, employee_id, leave_type_id, from_date, to_date, number_of_days, status, created_at FROM leave_records WHERE tenant_id = $1")
	args := []interface{}{filter.TenantID}

	if len(filter.EmployeeIDs) > 0 {
		args = append(args, pq.Array(filter.EmployeeIDs))
		builder.WriteString(fmt.Sprintf(" AND employee_id = ANY($%d)", len(args)))
	}
	if filter.LeaveTypeID != "" {
		args = append(args, filter.LeaveTypeID)
		builder.WriteString(fmt.Sprintf(" AND leave_type_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		builder.WriteString(fmt.Sprintf(" AND status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		builder.WriteString(fmt.Sprintf(" AND from_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		builder.WriteString(fmt.Sprintf(" AND from_date <= $%d", len(args)))
	}
	builder.WriteString(" ORDER BY from_date ASC, employee_id ASC")

	var records []models.LeaveRecord
	if err := r.db.SelectContext(ctx, &records, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("query leave records: %w", err)
	}
	return records, nil
}
