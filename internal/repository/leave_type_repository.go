package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/workstream-hq/hrms-api/internal/models"
)

// LeaveTypeRepository exposes tenant-scoped leave-type reference data.
type LeaveTypeRepository struct {
	db *sqlx.DB
}

// NewLeaveTypeRepository constructs the repository.
func NewLeaveTypeRepository(db *sqlx.DB) *LeaveTypeRepository {
	return &LeaveTypeRepository{db: db}
}

// ListByTenant returns every leave type defined for the tenant.
func (r *LeaveTypeRepository) ListByTenant(ctx context.Context, tenantID string) ([]models.LeaveType, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("leave type list: tenant id required")
	}

	const query = `SELECT id, tenant_id, name, code, annual_quota, is_paid FROM leave_types WHERE tenant_id = $1 ORDER BY name ASC`
	var types []models.LeaveType
	if err := r.db.SelectContext(ctx, &types, query, tenantID); err != nil {
		return nil, fmt.Errorf("query leave types: %w", err)
	}
	return types, nil
}
