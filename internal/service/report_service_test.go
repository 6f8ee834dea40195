package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/workstream-hq/hrms-api/internal/models"
	appErrors "github.com/workstream-hq/hrms-api/pkg/errors"
)

type stubAttendanceRepo struct {
	records    []models.AttendanceRecord
	err        error
	calls      int
	lastFilter models.AttendanceFilter
}

func (s *stubAttendanceRepo) List(_ context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	s.calls++
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubLeaveRepo struct {
	records    []models.LeaveRecord
	err        error
	calls      int
	lastFilter models.LeaveFilter
}

func (s *stubLeaveRepo) List(_ context.Context, filter models.LeaveFilter) ([]models.LeaveRecord, error) {
	s.calls++
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubLeaveTypeRepo struct {
	types []models.LeaveType
	err   error
}

func (s *stubLeaveTypeRepo) ListByTenant(_ context.Context, _ string) ([]models.LeaveType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.types, nil
}

type stubEmployeeRepo struct {
	employees     []models.Employee
	departmentIDs map[string][]string
	err           error
}

func (s *stubEmployeeRepo) List(_ context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	if filter.DepartmentID == "" && filter.Status == nil {
		return s.employees, nil
	}
	var filtered []models.Employee
	for _, emp := range s.employees {
		if filter.DepartmentID != "" && (emp.DepartmentID == nil || *emp.DepartmentID != filter.DepartmentID) {
			continue
		}
		if filter.Status != nil && emp.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, emp)
	}
	return filtered, nil
}

func (s *stubEmployeeRepo) IDsByDepartment(_ context.Context, _, departmentID string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.departmentIDs[departmentID], nil
}

type stubCacheRepo struct {
	store map[string][]byte
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	return nil
}

func strPtr(v string) *string { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoster() []models.Employee {
	return []models.Employee{
		{
			ID:             "emp-1",
			EmployeeCode:   "E001",
			FirstName:      "Asha",
			LastName:       "Rao",
			Email:          "asha@acme.test",
			DepartmentID:   strPtr("dep-1"),
			DepartmentName: strPtr("Engineering"),
			Status:         models.EmploymentStatusActive,
			BasicSalary:    50000,
			HRA:            20000,
			Allowances:     5000,
		},
		{
			ID:             "emp-2",
			EmployeeCode:   "E002",
			FirstName:      "Ben",
			LastName:       "Ng",
			Email:          "ben@acme.test",
			DepartmentID:   strPtr("dep-2"),
			DepartmentName: strPtr("Sales"),
			Status:         models.EmploymentStatusActive,
			BasicSalary:    40000,
			HRA:            15000,
			Allowances:     5000,
		},
	}
}

func TestAttendanceReportHalfDayWeighting(t *testing.T) {
	attendance := &stubAttendanceRepo{records: []models.AttendanceRecord{
		{ID: "a1", EmployeeID: "emp-1", Date: day(2024, 3, 1), Status: models.AttendanceStatusPresent, WorkHours: 9.5},
		{ID: "a2", EmployeeID: "emp-1", Date: day(2024, 3, 2), Status: models.AttendanceStatusPresent, WorkHours: 8},
		{ID: "a3", EmployeeID: "emp-1", Date: day(2024, 3, 3), Status: models.AttendanceStatusPresent, WorkHours: 8},
		{ID: "a4", EmployeeID: "emp-1", Date: day(2024, 3, 4), Status: models.AttendanceStatusHalfDay, WorkHours: 4},
	}}
	employees := &stubEmployeeRepo{employees: testRoster()}
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, employees, nil, nil, nil, zap.NewNop())

	report, err := svc.AttendanceReport(context.Background(), AttendanceReportRequest{TenantID: "t-1"})
	require.NoError(t, err)

	require.Equal(t, models.GroupByDate, report.GroupBy)
	require.Equal(t, 4, report.Summary.TotalRecords)
	require.Equal(t, 3, report.Summary.PresentCount)
	require.Equal(t, 1, report.Summary.HalfDayCount)
	require.Equal(t, 87.5, report.Summary.AttendancePercent)
	require.Equal(t, 1.5, report.Summary.TotalOvertime)
	require.Len(t, report.GroupedData, 4)
	require.Equal(t, "2024-03-01", report.GroupedData[0].Key)
	require.Equal(t, "E001", report.RawRecords[0].EmployeeCode)
	require.Equal(t, "Asha Rao", report.RawRecords[0].EmployeeName)
}

func TestAttendanceReportRejectsUnknownGroupBy(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{}, nil, nil, nil, zap.NewNop())

	_, err := svc.AttendanceReport(context.Background(), AttendanceReportRequest{TenantID: "t-1", GroupBy: "shoeSize"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	require.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestAttendanceReportStoreUnavailable(t *testing.T) {
	attendance := &stubAttendanceRepo{err: errors.New("connection refused")}
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	_, err := svc.AttendanceReport(context.Background(), AttendanceReportRequest{TenantID: "t-1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrStoreUnavailable.Code, appErrors.FromError(err).Code)
	require.Equal(t, 503, appErrors.FromError(err).Status)
}

func TestAttendanceReportDepartmentWithoutEmployees(t *testing.T) {
	attendance := &stubAttendanceRepo{err: errors.New("must not be called")}
	employees := &stubEmployeeRepo{departmentIDs: map[string][]string{}}
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, employees, nil, nil, nil, zap.NewNop())

	report, err := svc.AttendanceReport(context.Background(), AttendanceReportRequest{TenantID: "t-1", DepartmentID: "dep-empty"})
	require.NoError(t, err)
	require.Zero(t, attendance.calls)
	require.Equal(t, 0, report.Summary.TotalRecords)
	require.Empty(t, report.GroupedData)
	require.Empty(t, report.RawRecords)
}

func TestAttendanceReportDanglingEmployeeRef(t *testing.T) {
	attendance := &stubAttendanceRepo{records: []models.AttendanceRecord{
		{ID: "a1", EmployeeID: "ghost", Date: day(2024, 3, 1), Status: models.AttendanceStatusPresent, WorkHours: 8},
	}}
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{}, nil, nil, nil, zap.NewNop())

	report, err := svc.AttendanceReport(context.Background(), AttendanceReportRequest{TenantID: "t-1"})
	require.NoError(t, err)
	require.Len(t, report.RawRecords, 1)
	require.Equal(t, "Unknown", report.RawRecords[0].EmployeeName)
	require.Equal(t, "N/A", report.RawRecords[0].EmployeeCode)
	require.Equal(t, "Unassigned", report.RawRecords[0].DepartmentName)
}

func TestAttendanceReportCaching(t *testing.T) {
	attendance := &stubAttendanceRepo{records: []models.AttendanceRecord{
		{ID: "a1", EmployeeID: "emp-1", Date: day(2024, 3, 1), Status: models.AttendanceStatusPresent, WorkHours: 8},
	}}
	cacheSvc := NewCacheService(&stubCacheRepo{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{employees: testRoster()}, cacheSvc, nil, nil, zap.NewNop())

	req := AttendanceReportRequest{TenantID: "t-1"}
	first, err := svc.AttendanceReport(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.AttendanceReport(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, attendance.calls)
	require.Equal(t, first.Summary, second.Summary)
	require.Equal(t, first.GroupedData, second.GroupedData)
}

func TestMonthlyAttendanceSummaryAveragesUnroundedPercentages(t *testing.T) {
	attendance := &stubAttendanceRepo{records: []models.AttendanceRecord{
		{ID: "a1", EmployeeID: "emp-1", Date: day(2024, 3, 1), Status: models.AttendanceStatusPresent, WorkHours: 8},
		{ID: "a2", EmployeeID: "emp-1", Date: day(2024, 3, 2), Status: models.AttendanceStatusPresent, WorkHours: 8},
		{ID: "a3", EmployeeID: "emp-2", Date: day(2024, 3, 1), Status: models.AttendanceStatusPresent, WorkHours: 8},
		{ID: "a4", EmployeeID: "emp-2", Date: day(2024, 3, 2), Status: models.AttendanceStatusAbsent},
	}}
	svc := NewReportService(attendance, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.MonthlyAttendanceSummary(context.Background(), MonthlyReportRequest{TenantID: "t-1", Month: 3, Year: 2024})
	require.NoError(t, err)

	require.Equal(t, 2, report.Summary.EmployeeCount)
	require.Equal(t, 75.0, report.Summary.AvgAttendancePct)
	require.Len(t, report.GroupedData, 2)
	require.Equal(t, 100.0, report.GroupedData[0].AttendancePercent)
	require.Equal(t, 50.0, report.GroupedData[1].AttendancePercent)

	require.NotNil(t, attendance.lastFilter.DateFrom)
	require.Equal(t, day(2024, 3, 1), *attendance.lastFilter.DateFrom)
	require.NotNil(t, attendance.lastFilter.DateTo)
	require.Equal(t, day(2024, 3, 31), *attendance.lastFilter.DateTo)
}

func TestMonthlyAttendanceSummaryRejectsBadMonth(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{}, nil, nil, nil, zap.NewNop())

	_, err := svc.MonthlyAttendanceSummary(context.Background(), MonthlyReportRequest{TenantID: "t-1", Month: 13, Year: 2024})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaveReportGroupsByLeaveTypeByDefault(t *testing.T) {
	leaves := &stubLeaveRepo{records: []models.LeaveRecord{
		{ID: "l1", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2024, 2, 5), ToDate: day(2024, 2, 7), NumberOfDays: 3, Status: models.LeaveStatusApproved},
		{ID: "l2", EmployeeID: "emp-2", LeaveTypeID: "lt-2", FromDate: day(2024, 2, 12), ToDate: day(2024, 2, 12), NumberOfDays: 1, Status: models.LeaveStatusPending},
		{ID: "l3", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2024, 2, 20), ToDate: day(2024, 2, 21), NumberOfDays: 2, Status: models.LeaveStatusRejected},
	}}
	leaveTypes := &stubLeaveTypeRepo{types: []models.LeaveType{
		{ID: "lt-1", Name: "Annual Leave", AnnualQuota: 12, IsPaid: true},
		{ID: "lt-2", Name: "Sick Leave", AnnualQuota: 10, IsPaid: true},
	}}
	svc := NewReportService(&stubAttendanceRepo{}, leaves, leaveTypes, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.LeaveReport(context.Background(), LeaveReportRequest{TenantID: "t-1"})
	require.NoError(t, err)

	require.Equal(t, models.GroupByLeaveType, report.GroupBy)
	require.Equal(t, 3, report.Summary.TotalRequests)
	require.Equal(t, 1, report.Summary.ApprovedCount)
	require.Equal(t, 6.0, report.Summary.TotalDays)
	require.Equal(t, 3.0, report.Summary.ApprovedDays)
	require.Len(t, report.GroupedData, 2)
	require.Equal(t, "Annual Leave", report.GroupedData[0].Label)
	require.Equal(t, 2, report.GroupedData[0].TotalRequests)
}

func TestLeaveBalanceReportYearAttribution(t *testing.T) {
	leaves := &stubLeaveRepo{records: []models.LeaveRecord{
		{ID: "l1", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2024, 2, 5), NumberOfDays: 5, Status: models.LeaveStatusApproved},
		{ID: "l2", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2023, 12, 28), NumberOfDays: 4, Status: models.LeaveStatusApproved},
		{ID: "l3", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2024, 6, 1), NumberOfDays: 2, Status: models.LeaveStatusPending},
	}}
	leaveTypes := &stubLeaveTypeRepo{types: []models.LeaveType{
		{ID: "lt-1", Name: "Annual Leave", AnnualQuota: 12, IsPaid: true},
	}}
	svc := NewReportService(&stubAttendanceRepo{}, leaves, leaveTypes, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.LeaveBalanceReport(context.Background(), LeaveBalanceRequest{TenantID: "t-1", Year: 2024})
	require.NoError(t, err)

	require.Equal(t, 2, report.Summary.EmployeeCount)
	require.Equal(t, 1, report.Summary.LeaveTypeCount)
	require.Len(t, report.RawRecords, 2)

	first := report.RawRecords[0]
	require.Equal(t, "emp-1", first.EmployeeID)
	require.Equal(t, 5.0, first.UsedDays)
	require.Equal(t, 7.0, first.Balance)

	second := report.RawRecords[1]
	require.Equal(t, "emp-2", second.EmployeeID)
	require.Equal(t, 0.0, second.UsedDays)
	require.Equal(t, 12.0, second.Balance)

	require.Equal(t, 24.0, report.Summary.TotalQuota)
	require.Equal(t, 5.0, report.Summary.TotalUsed)
	require.Equal(t, 19.0, report.Summary.TotalBalance)
}

func TestLeaveBalanceReportSingleEmployee(t *testing.T) {
	leaveTypes := &stubLeaveTypeRepo{types: []models.LeaveType{
		{ID: "lt-1", Name: "Annual Leave", AnnualQuota: 12, IsPaid: true},
	}}
	svc := NewReportService(&stubAttendanceRepo{}, &stubLeaveRepo{}, leaveTypes, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.LeaveBalanceReport(context.Background(), LeaveBalanceRequest{TenantID: "t-1", Year: 2024, EmployeeID: "emp-2"})
	require.NoError(t, err)
	require.Equal(t, 1, report.Summary.EmployeeCount)
	require.Len(t, report.GroupedData, 1)
	require.Equal(t, "Ben Ng", report.GroupedData[0].EmployeeName)
}

func TestEmployeeReportPayrollAggregates(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, &stubLeaveRepo{}, &stubLeaveTypeRepo{}, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.EmployeeReport(context.Background(), EmployeeReportRequest{TenantID: "t-1"})
	require.NoError(t, err)

	require.Equal(t, models.GroupByDepartment, report.GroupBy)
	require.Equal(t, 2, report.Summary.TotalEmployees)
	require.Equal(t, 2, report.Summary.ActiveCount)
	require.Equal(t, 135000.0, report.Summary.TotalPayroll)
	require.Equal(t, 67500.0, report.Summary.AvgSalary)
	require.Len(t, report.GroupedData, 2)
	require.Equal(t, "Engineering", report.GroupedData[0].Label)
}

func TestMonthlyLeaveSummaryGroupsByLeaveType(t *testing.T) {
	leaves := &stubLeaveRepo{records: []models.LeaveRecord{
		{ID: "l1", EmployeeID: "emp-1", LeaveTypeID: "lt-1", FromDate: day(2024, 4, 2), NumberOfDays: 2, Status: models.LeaveStatusApproved},
		{ID: "l2", EmployeeID: "emp-2", LeaveTypeID: "lt-1", FromDate: day(2024, 4, 10), NumberOfDays: 1, Status: models.LeaveStatusCancelled},
	}}
	leaveTypes := &stubLeaveTypeRepo{types: []models.LeaveType{
		{ID: "lt-1", Name: "Annual Leave", AnnualQuota: 12, IsPaid: true},
	}}
	svc := NewReportService(&stubAttendanceRepo{}, leaves, leaveTypes, &stubEmployeeRepo{employees: testRoster()}, nil, nil, nil, zap.NewNop())

	report, err := svc.MonthlyLeaveSummary(context.Background(), MonthlyReportRequest{TenantID: "t-1", Month: 4, Year: 2024})
	require.NoError(t, err)

	require.Equal(t, 4, report.Summary.Month)
	require.Equal(t, 2, report.Summary.TotalRequests)
	require.Equal(t, 1, report.Summary.ApprovedCount)
	require.Equal(t, 1, report.Summary.CancelledCount)
	require.Equal(t, 2.0, report.Summary.ApprovedDays)
	require.Len(t, report.GroupedData, 1)
	require.Equal(t, "Annual Leave", report.GroupedData[0].Label)

	require.NotNil(t, leaves.lastFilter.DateFrom)
	require.Equal(t, day(2024, 4, 1), *leaves.lastFilter.DateFrom)
	require.Equal(t, day(2024, 4, 30), *leaves.lastFilter.DateTo)
}
