package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hq/hrms-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAttendanceRepositoryListRequiresTenant(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAttendanceRepository(db)
	_, err := repo.List(context.Background(), models.AttendanceFilter{})
	require.Error(t, err)
}

func TestAttendanceRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAttendanceRepository(db)

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	status := models.AttendanceStatusPresent

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "employee_id", "date", "status", "work_hours", "clock_in", "clock_out"}).
		AddRow("att-1", "t-1", "emp-1", from, "PRESENT", 8.5, "09:00", "17:30")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, tenant_id, employee_id, date, status, work_hours, clock_in, clock_out FROM attendance_records WHERE tenant_id = $1 AND employee_id = ANY($2) AND status = $3 AND date >= $4 AND date <= $5 ORDER BY date ASC, employee_id ASC")).
		WithArgs("t-1", pq.Array([]string{"emp-1"}), "PRESENT", from, to).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), models.AttendanceFilter{
		TenantID:    "t-1",
		EmployeeIDs: []string{"emp-1"},
		Status:      &status,
		DateFrom:    &from,
		DateTo:      &to,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "emp-1", records[0].EmployeeID)
	require.Equal(t, models.AttendanceStatusPresent, records[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryListTenantOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "employee_id", "date", "status", "work_hours", "clock_in", "clock_out"})
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_records WHERE tenant_id = $1 ORDER BY date ASC, employee_id ASC")).
		WithArgs("t-1").
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), models.AttendanceFilter{TenantID: "t-1"})
	require.NoError(t, err)
	require.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}
