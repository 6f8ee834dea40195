package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hq/hrms-api/internal/models"
)

func TestLeaveRepositoryListRequiresTenant(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeaveRepository(db)
	_, err := repo.List(context.Background(), models.LeaveFilter{})
	require.Error(t, err)
}

func TestLeaveRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeaveRepository(db)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	status := models.LeaveStatusApproved

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "employee_id", "leave_type_id", "from_date", "to_date", "number_of_days", "status", "created_at"}).
		AddRow("lv-1", "t-1", "emp-1", "lt-1", from, from.AddDate(0, 0, 2), 3.0, "APPROVED", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM leave_records WHERE tenant_id = $1 AND employee_id = ANY($2) AND leave_type_id = $3 AND status = $4 AND from_date >= $5 AND from_date <= $6 ORDER BY from_date ASC, employee_id ASC")).
		WithArgs("t-1", pq.Array([]string{"emp-1"}), "lt-1", "APPROVED", from, to).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), models.LeaveFilter{
		TenantID:    "t-1",
		EmployeeIDs: []string{"emp-1"},
		LeaveTypeID: "lt-1",
		Status:      &status,
		DateFrom:    &from,
		DateTo:      &to,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 3.0, records[0].NumberOfDays)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveTypeRepositoryListByTenant(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeaveTypeRepository(db)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "code", "annual_quota", "is_paid"}).
		AddRow("lt-1", "t-1", "Annual Leave", "AL", 12.0, true).
		AddRow("lt-2", "t-1", "Sick Leave", "SL", 10.0, true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM leave_types WHERE tenant_id = $1 ORDER BY name ASC")).
		WithArgs("t-1").
		WillReturnRows(rows)

	types, err := repo.ListByTenant(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, types, 2)
	require.Equal(t, "Annual Leave", types[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveTypeRepositoryRequiresTenant(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeaveTypeRepository(db)
	_, err := repo.ListByTenant(context.Background(), "")
	require.Error(t, err)
}
