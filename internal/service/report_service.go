package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/workstream-hq/hrms-api/internal/models"
	appErrors "github.com/workstream-hq/hrms-api/pkg/errors"
)

type attendanceRepository interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error)
}

type leaveRepository interface {
	List(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRecord, error)
}

type leaveTypeRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]models.LeaveType, error)
}

type employeeRepository interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	IDsByDepartment(ctx context.Context, tenantID, departmentID string) ([]string, error)
}

// ReportService generates tenant-scoped reports. It is stateless and
// request-scoped: concurrent invocations share no mutable state.
type ReportService struct {
	attendance attendanceRepository
	leaves     leaveRepository
	leaveTypes leaveTypeRepository
	employees  employeeRepository
	cache      *CacheService
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(attendance attendanceRepository, leaves leaveRepository, leaveTypes leaveTypeRepository, employees employeeRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ReportService{
		attendance: attendance,
		leaves:     leaves,
		leaveTypes: leaveTypes,
		employees:  employees,
		cache:      cache,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
	}
	svc.validator.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	svc.validator.RegisterValidation("leave_status", func(fl validator.FieldLevel) bool {
		return models.LeaveStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	svc.validator.RegisterValidation("employment_status", func(fl validator.FieldLevel) bool {
		return models.EmploymentStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// AttendanceReportRequest filters the attendance report. TenantID always
// comes from the authenticated session.
type AttendanceReportRequest struct {
	TenantID     string `validate:"required"`
	EmployeeID   string
	DepartmentID string
	Status       string `validate:"omitempty,attendance_status"`
	DateFrom     *time.Time
	DateTo       *time.Time
	GroupBy      string `validate:"omitempty,oneof=date employee department"`
}

// MonthlyReportRequest scopes a report to one calendar month.
type MonthlyReportRequest struct {
	TenantID     string `validate:"required"`
	Month        int    `validate:"required,min=1,max=12"`
	Year         int    `validate:"required,min=1970"`
	DepartmentID string
}

// EmployeeReportRequest filters the employee report.
type EmployeeReportRequest struct {
	TenantID     string `validate:"required"`
	DepartmentID string
	Status       string `validate:"omitempty,employment_status"`
	GroupBy      string `validate:"omitempty,oneof=department status"`
}

// LeaveReportRequest filters the leave report.
type LeaveReportRequest struct {
	TenantID     string `validate:"required"`
	EmployeeID   string
	DepartmentID string
	LeaveTypeID  string
	Status       string `validate:"omitempty,leave_status"`
	DateFrom     *time.Time
	DateTo       *time.Time
	GroupBy      string `validate:"omitempty,oneof=date employee department leaveType status"`
}

// LeaveBalanceRequest scopes the leave balance report to a target year.
type LeaveBalanceRequest struct {
	TenantID     string `validate:"required"`
	Year         int    `validate:"required,min=1970"`
	EmployeeID   string
	DepartmentID string
}

// AttendanceReport builds the attendance report: filter, read, join, group
// and reduce. Zero matching records yield a valid zero-valued report.
func (s *ReportService) AttendanceReport(ctx context.Context, req AttendanceReportRequest) (*models.AttendanceReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance report filter")
	}
	groupBy := models.GroupKind(req.GroupBy)
	if req.GroupBy == "" {
		groupBy = models.GroupByDate
	}

	cacheKey := makeReportCacheKey(req.TenantID, "attendance", req.EmployeeID, req.DepartmentID, req.Status, formatDate(req.DateFrom), formatDate(req.DateTo), string(groupBy))
	var cached models.AttendanceReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	ids, emptyScope, err := s.resolveEmployeeScope(ctx, req.TenantID, req.EmployeeID, req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	var records []models.AttendanceRecord
	var roster []models.Employee
	if !emptyScope {
		filter := models.AttendanceFilter{
			TenantID:    req.TenantID,
			EmployeeIDs: ids,
			DateFrom:    req.DateFrom,
			DateTo:      req.DateTo,
		}
		if req.Status != "" {
			status := models.AttendanceStatus(strings.ToUpper(req.Status))
			filter.Status = &status
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			records, err = s.readAttendance(gctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			roster, err = s.readEmployees(gctx, models.EmployeeFilter{TenantID: req.TenantID})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
		}
	}

	rows := buildAttendanceRows(records, employeesByID(roster), s.logger)
	groups, err := groupAttendance(rows, groupBy)
	if err != nil {
		return nil, err
	}

	report := &models.AttendanceReport{
		Summary:     summarizeAttendance(rows),
		GroupBy:     groupBy,
		GroupedData: groups,
		RawRecords:  rows,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// MonthlyAttendanceSummary builds per-employee attendance roll-ups for one
// month plus a company-wide summary. The company average attendance is the
// arithmetic mean of the unrounded per-employee percentages.
func (s *ReportService) MonthlyAttendanceSummary(ctx context.Context, req MonthlyReportRequest) (*models.MonthlyAttendanceReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid monthly attendance filter")
	}

	cacheKey := makeReportCacheKey(req.TenantID, "attendance_monthly", itoa(req.Month), itoa(req.Year), req.DepartmentID)
	var cached models.MonthlyAttendanceReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	ids, emptyScope, err := s.resolveEmployeeScope(ctx, req.TenantID, "", req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	from, to := monthWindow(req.Month, req.Year)
	var records []models.AttendanceRecord
	var roster []models.Employee
	if !emptyScope {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			records, err = s.readAttendance(gctx, models.AttendanceFilter{
				TenantID:    req.TenantID,
				EmployeeIDs: ids,
				DateFrom:    &from,
				DateTo:      &to,
			})
			return err
		})
		g.Go(func() error {
			var err error
			roster, err = s.readEmployees(gctx, models.EmployeeFilter{TenantID: req.TenantID})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
		}
	}

	rows := buildAttendanceRows(records, employeesByID(roster), s.logger)
	perEmployee, percentages := groupAttendanceByEmployee(rows)

	summary := models.MonthlyAttendanceSummary{
		Month:            req.Month,
		Year:             req.Year,
		TotalRecords:     len(rows),
		EmployeeCount:    len(perEmployee),
		AvgAttendancePct: round2(meanOfPercentages(percentages)),
	}
	for _, row := range rows {
		switch row.Status {
		case models.AttendanceStatusPresent:
			summary.PresentCount++
		case models.AttendanceStatusAbsent:
			summary.AbsentCount++
		case models.AttendanceStatusHalfDay:
			summary.HalfDayCount++
		case models.AttendanceStatusOnLeave:
			summary.OnLeaveCount++
		}
		summary.TotalWorkHours += row.WorkHours
		summary.TotalOvertime += row.Overtime
	}

	report := &models.MonthlyAttendanceReport{
		Summary:     summary,
		GroupBy:     models.GroupByEmployee,
		GroupedData: perEmployee,
		RawRecords:  rows,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// EmployeeReport builds the roster report with headcount and payroll
// aggregates.
func (s *ReportService) EmployeeReport(ctx context.Context, req EmployeeReportRequest) (*models.EmployeeReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid employee report filter")
	}
	groupBy := models.GroupKind(req.GroupBy)
	if req.GroupBy == "" {
		groupBy = models.GroupByDepartment
	}

	cacheKey := makeReportCacheKey(req.TenantID, "employee", req.DepartmentID, req.Status, string(groupBy))
	var cached models.EmployeeReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	filter := models.EmployeeFilter{TenantID: req.TenantID, DepartmentID: req.DepartmentID}
	if req.Status != "" {
		status := models.EmploymentStatus(strings.ToUpper(req.Status))
		filter.Status = &status
	}
	roster, err := s.readEmployees(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	groups, err := groupEmployees(roster, groupBy)
	if err != nil {
		return nil, err
	}

	summary := models.EmployeeSummary{TotalEmployees: len(roster)}
	for _, emp := range roster {
		switch emp.Status {
		case models.EmploymentStatusActive:
			summary.ActiveCount++
		case models.EmploymentStatusInactive:
			summary.InactiveCount++
		case models.EmploymentStatusTerminated:
			summary.TerminatedCount++
		}
		summary.TotalPayroll += emp.TotalSalary()
	}
	summary.AvgSalary = round2(averageOf(summary.TotalPayroll, summary.TotalEmployees))

	report := &models.EmployeeReport{
		Summary:     summary,
		GroupBy:     groupBy,
		GroupedData: groups,
		RawRecords:  roster,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// LeaveReport builds the leave report across the requested window.
func (s *ReportService) LeaveReport(ctx context.Context, req LeaveReportRequest) (*models.LeaveReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave report filter")
	}
	groupBy := models.GroupKind(req.GroupBy)
	if req.GroupBy == "" {
		groupBy = models.GroupByLeaveType
	}

	cacheKey := makeReportCacheKey(req.TenantID, "leave", req.EmployeeID, req.DepartmentID, req.LeaveTypeID, req.Status, formatDate(req.DateFrom), formatDate(req.DateTo), string(groupBy))
	var cached models.LeaveReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	ids, emptyScope, err := s.resolveEmployeeScope(ctx, req.TenantID, req.EmployeeID, req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	var records []models.LeaveRecord
	var roster []models.Employee
	var types []models.LeaveType
	if !emptyScope {
		filter := models.LeaveFilter{
			TenantID:    req.TenantID,
			EmployeeIDs: ids,
			LeaveTypeID: req.LeaveTypeID,
			DateFrom:    req.DateFrom,
			DateTo:      req.DateTo,
		}
		if req.Status != "" {
			status := models.LeaveStatus(strings.ToUpper(req.Status))
			filter.Status = &status
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			records, err = s.readLeaves(gctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			roster, err = s.readEmployees(gctx, models.EmployeeFilter{TenantID: req.TenantID})
			return err
		})
		g.Go(func() error {
			var err error
			types, err = s.readLeaveTypes(gctx, req.TenantID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
		}
	}

	rows := buildLeaveRows(records, employeesByID(roster), leaveTypesByID(types), s.logger)
	groups, err := groupLeaves(rows, groupBy)
	if err != nil {
		return nil, err
	}

	report := &models.LeaveReport{
		Summary:     summarizeLeaves(rows),
		GroupBy:     groupBy,
		GroupedData: groups,
		RawRecords:  rows,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// LeaveBalanceReport computes per employee and leave type the annual quota
// minus approved days whose from_date falls in the target year.
func (s *ReportService) LeaveBalanceReport(ctx context.Context, req LeaveBalanceRequest) (*models.LeaveBalanceReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave balance filter")
	}

	cacheKey := makeReportCacheKey(req.TenantID, "leave_balance", itoa(req.Year), req.EmployeeID, req.DepartmentID)
	var cached models.LeaveBalanceReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(req.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	approved := models.LeaveStatusApproved

	var records []models.LeaveRecord
	var roster []models.Employee
	var types []models.LeaveType

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.readLeaves(gctx, models.LeaveFilter{
			TenantID: req.TenantID,
			Status:   &approved,
			DateFrom: &from,
			DateTo:   &to,
		})
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.readEmployees(gctx, models.EmployeeFilter{TenantID: req.TenantID, DepartmentID: req.DepartmentID})
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.readLeaveTypes(gctx, req.TenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	if req.EmployeeID != "" {
		filtered := roster[:0]
		for _, emp := range roster {
			if emp.ID == req.EmployeeID {
				filtered = append(filtered, emp)
			}
		}
		roster = filtered
	}

	rows := buildLeaveRows(records, employeesByID(roster), leaveTypesByID(types), s.logger)

	balances := make([]models.LeaveBalanceRow, 0, len(roster)*len(types))
	grouped := make([]models.EmployeeLeaveBalance, 0, len(roster))
	summary := models.LeaveBalanceSummary{
		Year:           req.Year,
		EmployeeCount:  len(roster),
		LeaveTypeCount: len(types),
	}
	for _, emp := range roster {
		employeeGroup := models.EmployeeLeaveBalance{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			Balances:     make([]models.LeaveBalanceRow, 0, len(types)),
		}
		for _, lt := range types {
			used := approvedDaysInYear(rows, emp.ID, lt.ID, req.Year)
			balance := models.LeaveBalanceRow{
				EmployeeID:    emp.ID,
				EmployeeCode:  emp.EmployeeCode,
				EmployeeName:  emp.FullName(),
				LeaveTypeID:   lt.ID,
				LeaveTypeName: lt.Name,
				IsPaid:        lt.IsPaid,
				AnnualQuota:   lt.AnnualQuota,
				UsedDays:      used,
				Balance:       leaveBalance(lt.AnnualQuota, used),
			}
			balances = append(balances, balance)
			employeeGroup.Balances = append(employeeGroup.Balances, balance)
			employeeGroup.TotalQuota += balance.AnnualQuota
			employeeGroup.TotalUsed += balance.UsedDays
			employeeGroup.TotalBalance += balance.Balance
		}
		grouped = append(grouped, employeeGroup)
		summary.TotalQuota += employeeGroup.TotalQuota
		summary.TotalUsed += employeeGroup.TotalUsed
		summary.TotalBalance += employeeGroup.TotalBalance
	}

	report := &models.LeaveBalanceReport{
		Summary:     summary,
		GroupBy:     models.GroupByEmployee,
		GroupedData: grouped,
		RawRecords:  balances,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// MonthlyLeaveSummary aggregates leaves whose from_date falls in the given
// month, grouped by leave type.
func (s *ReportService) MonthlyLeaveSummary(ctx context.Context, req MonthlyReportRequest) (*models.MonthlyLeaveReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid monthly leave filter")
	}

	cacheKey := makeReportCacheKey(req.TenantID, "leave_monthly", itoa(req.Month), itoa(req.Year), req.DepartmentID)
	var cached models.MonthlyLeaveReport
	if hit, err := s.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	ids, emptyScope, err := s.resolveEmployeeScope(ctx, req.TenantID, "", req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
	}

	from, to := monthWindow(req.Month, req.Year)
	var records []models.LeaveRecord
	var roster []models.Employee
	var types []models.LeaveType
	if !emptyScope {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			records, err = s.readLeaves(gctx, models.LeaveFilter{
				TenantID:    req.TenantID,
				EmployeeIDs: ids,
				DateFrom:    &from,
				DateTo:      &to,
			})
			return err
		})
		g.Go(func() error {
			var err error
			roster, err = s.readEmployees(gctx, models.EmployeeFilter{TenantID: req.TenantID})
			return err
		})
		g.Go(func() error {
			var err error
			types, err = s.readLeaveTypes(gctx, req.TenantID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, appErrors.ErrStoreUnavailable.Message)
		}
	}

	rows := buildLeaveRows(records, employeesByID(roster), leaveTypesByID(types), s.logger)
	groups, err := groupLeaves(rows, models.GroupByLeaveType)
	if err != nil {
		return nil, err
	}

	leaveSummary := summarizeLeaves(rows)
	report := &models.MonthlyLeaveReport{
		Summary: models.MonthlyLeaveSummary{
			Month:          req.Month,
			Year:           req.Year,
			TotalRequests:  leaveSummary.TotalRequests,
			ApprovedCount:  leaveSummary.ApprovedCount,
			PendingCount:   leaveSummary.PendingCount,
			RejectedCount:  leaveSummary.RejectedCount,
			CancelledCount: leaveSummary.CancelledCount,
			TotalDays:      leaveSummary.TotalDays,
			ApprovedDays:   leaveSummary.ApprovedDays,
		},
		GroupBy:     models.GroupByLeaveType,
		GroupedData: groups,
		RawRecords:  rows,
	}
	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

// resolveEmployeeScope turns employee/department filters into an explicit
// employee id set. An explicit employee id wins over the department filter.
// A department that resolves to zero employees must match zero records, so
// the caller short-circuits instead of querying unscoped.
func (s *ReportService) resolveEmployeeScope(ctx context.Context, tenantID, employeeID, departmentID string) ([]string, bool, error) {
	if employeeID != "" {
		return []string{employeeID}, false, nil
	}
	if departmentID == "" {
		return nil, false, nil
	}
	ids, err := s.employees.IDsByDepartment(ctx, tenantID, departmentID)
	if err != nil {
		return nil, false, err
	}
	if len(ids) == 0 {
		return nil, true, nil
	}
	return ids, false, nil
}

func (s *ReportService) readAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	start := time.Now()
	records, err := s.attendance.List(ctx, filter)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_attendance", time.Since(start))
	}
	return records, err
}

func (s *ReportService) readLeaves(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveRecord, error) {
	start := time.Now()
	records, err := s.leaves.List(ctx, filter)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_leaves", time.Since(start))
	}
	return records, err
}

func (s *ReportService) readLeaveTypes(ctx context.Context, tenantID string) ([]models.LeaveType, error) {
	start := time.Now()
	types, err := s.leaveTypes.ListByTenant(ctx, tenantID)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_leave_types", time.Since(start))
	}
	return types, err
}

func (s *ReportService) readEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	start := time.Now()
	employees, err := s.employees.List(ctx, filter)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_employees", time.Since(start))
	}
	return employees, err
}

func (s *ReportService) cacheGet(ctx context.Context, key string, dest interface{}) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.Get(ctx, key, dest)
}

func (s *ReportService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		s.logger.Warn("cache report", zap.String("key", key), zap.Error(err))
	}
}

func summarizeAttendance(rows []models.AttendanceRow) models.AttendanceSummary {
	summary := models.AttendanceSummary{TotalRecords: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.AttendanceStatusPresent:
			summary.PresentCount++
		case models.AttendanceStatusAbsent:
			summary.AbsentCount++
		case models.AttendanceStatusHalfDay:
			summary.HalfDayCount++
		case models.AttendanceStatusOnLeave:
			summary.OnLeaveCount++
		}
		summary.TotalWorkHours += row.WorkHours
		summary.TotalOvertime += row.Overtime
	}
	summary.AvgWorkHours = round2(averageOf(summary.TotalWorkHours, summary.TotalRecords))
	summary.AttendancePercent = round2(attendancePercentage(summary.PresentCount, summary.AbsentCount, summary.HalfDayCount))
	return summary
}

func summarizeLeaves(rows []models.LeaveRow) models.LeaveSummary {
	summary := models.LeaveSummary{TotalRequests: len(rows)}
	for _, row := range rows {
		summary.TotalDays += row.NumberOfDays
		switch row.Status {
		case models.LeaveStatusApproved:
			summary.ApprovedCount++
			summary.ApprovedDays += row.NumberOfDays
		case models.LeaveStatusPending:
			summary.PendingCount++
		case models.LeaveStatusRejected:
			summary.RejectedCount++
		case models.LeaveStatusCancelled:
			summary.CancelledCount++
		}
	}
	return summary
}

// monthWindow returns the inclusive first and last day of a month.
func monthWindow(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func makeReportCacheKey(tenantID string, parts ...string) string {
	var builder strings.Builder
	builder.Grow(len(parts)*16 + len(tenantID) + 16)
	builder.WriteString("reports:")
	builder.WriteString(tenantID)
	for _, part := range parts {
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(groupDateLayout)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
