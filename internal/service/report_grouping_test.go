package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workstream-hq/hrms-api/internal/models"
)

func attendanceRowsFixture() []models.AttendanceRow {
	return []models.AttendanceRow{
		{ID: "a1", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-1", EmployeeName: "Asha Rao", DepartmentKey: "dep-1", DepartmentName: "Engineering", WorkHours: 9, Overtime: 1, Status: models.AttendanceStatusPresent},
		{ID: "a2", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-2", EmployeeName: "Ben Ng", DepartmentKey: "dep-2", DepartmentName: "Sales", WorkHours: 8, Status: models.AttendanceStatusPresent},
		{ID: "a3", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-1", EmployeeName: "Asha Rao", DepartmentKey: "dep-1", DepartmentName: "Engineering", WorkHours: 4, Status: models.AttendanceStatusHalfDay},
		{ID: "a4", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), EmployeeID: "emp-2", EmployeeName: "Ben Ng", DepartmentKey: "dep-2", DepartmentName: "Sales", Status: models.AttendanceStatusAbsent},
	}
}

func TestGroupAttendancePreservesFirstSeenOrder(t *testing.T) {
	groups, err := groupAttendance(attendanceRowsFixture(), models.GroupByDepartment)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "dep-1", groups[0].Key)
	require.Equal(t, "Engineering", groups[0].Label)
	require.Equal(t, "dep-2", groups[1].Key)
}

func TestGroupAttendanceTotalsMatchUngroupedTotals(t *testing.T) {
	rows := attendanceRowsFixture()

	for _, kind := range []models.GroupKind{models.GroupByDate, models.GroupByEmployee, models.GroupByDepartment, models.GroupByStatus} {
		groups, err := groupAttendance(rows, kind)
		require.NoError(t, err)

		var records int
		var workHours, overtime float64
		for _, group := range groups {
			records += group.TotalRecords
			workHours += group.TotalWorkHours
			overtime += group.TotalOvertime
		}
		require.Equal(t, len(rows), records, "kind %s", kind)
		require.Equal(t, 21.0, workHours, "kind %s", kind)
		require.Equal(t, 1.0, overtime, "kind %s", kind)
	}
}

func TestGroupAttendanceRejectsLeaveTypeDimension(t *testing.T) {
	_, err := groupAttendance(attendanceRowsFixture(), models.GroupByLeaveType)
	require.Error(t, err)
}

func TestGroupAttendanceEmptyInput(t *testing.T) {
	groups, err := groupAttendance(nil, models.GroupByDate)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestGroupLeavesByStatus(t *testing.T) {
	rows := []models.LeaveRow{
		{ID: "l1", EmployeeID: "emp-1", LeaveTypeID: "lt-1", NumberOfDays: 3, Status: models.LeaveStatusApproved},
		{ID: "l2", EmployeeID: "emp-2", LeaveTypeID: "lt-1", NumberOfDays: 1, Status: models.LeaveStatusPending},
		{ID: "l3", EmployeeID: "emp-1", LeaveTypeID: "lt-2", NumberOfDays: 2, Status: models.LeaveStatusApproved},
	}

	groups, err := groupLeaves(rows, models.GroupByStatus)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "APPROVED", groups[0].Key)
	require.Equal(t, 2, groups[0].TotalRequests)
	require.Equal(t, 5.0, groups[0].ApprovedDays)
	require.Equal(t, "PENDING", groups[1].Key)
}

func TestGroupEmployeesUnassignedDepartment(t *testing.T) {
	employees := []models.Employee{
		{ID: "emp-1", Status: models.EmploymentStatusActive, BasicSalary: 1000},
		{ID: "emp-2", DepartmentID: strPtr("dep-1"), DepartmentName: strPtr("Engineering"), Status: models.EmploymentStatusInactive, BasicSalary: 2000},
	}

	groups, err := groupEmployees(employees, models.GroupByDepartment)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "unassigned", groups[0].Key)
	require.Equal(t, "Unassigned", groups[0].Label)
	require.Equal(t, 1, groups[0].ActiveCount)
	require.Equal(t, "dep-1", groups[1].Key)
	require.Equal(t, 0, groups[1].ActiveCount)
}

func TestGroupEmployeesRejectsDateDimension(t *testing.T) {
	_, err := groupEmployees(nil, models.GroupByDate)
	require.Error(t, err)
}

func TestGroupAttendanceByEmployeeReturnsUnroundedPercentages(t *testing.T) {
	rows := []models.AttendanceRow{
		{ID: "a1", EmployeeID: "emp-1", EmployeeName: "Asha Rao", Status: models.AttendanceStatusPresent},
		{ID: "a2", EmployeeID: "emp-1", EmployeeName: "Asha Rao", Status: models.AttendanceStatusPresent},
		{ID: "a3", EmployeeID: "emp-1", EmployeeName: "Asha Rao", Status: models.AttendanceStatusAbsent},
	}

	summaries, percentages := groupAttendanceByEmployee(rows)
	require.Len(t, summaries, 1)
	require.Len(t, percentages, 1)
	require.InDelta(t, 66.666666, percentages[0], 0.0001)
	require.Equal(t, 66.67, summaries[0].AttendancePercent)
}
