package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workstream-hq/hrms-api/internal/models"
	"github.com/workstream-hq/hrms-api/internal/service"
	appErrors "github.com/workstream-hq/hrms-api/pkg/errors"
	"github.com/workstream-hq/hrms-api/pkg/response"
)

const queryDateLayout = "2006-01-02"

// ReportHandler exposes the report endpoints. Every endpoint is tenant-scoped
// via the authenticated claims and supports csv/pdf export through the format
// query parameter.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs the report handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Attendance godoc
// @Summary Attendance report
// @Description Aggregated attendance with optional grouping and export
// @Tags reports
// @Produce json
// @Param employeeId query string false "Employee id"
// @Param department query string false "Department id"
// @Param status query string false "Attendance status"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param groupBy query string false "date|employee|department"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/attendance [get]
func (h *ReportHandler) Attendance(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	req := service.AttendanceReportRequest{
		TenantID:     claims.TenantID,
		EmployeeID:   c.Query("employeeId"),
		DepartmentID: c.Query("department"),
		Status:       c.Query("status"),
		GroupBy:      c.Query("groupBy"),
	}
	var err error
	if req.DateFrom, err = parseQueryDate(c, "startDate"); err != nil {
		response.Error(c, err)
		return
	}
	if req.DateTo, err = parseQueryDate(c, "endDate"); err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reports.AttendanceReport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportAttendance(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// AttendanceMonthly godoc
// @Summary Monthly attendance summary
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12, defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Param department query string false "Department id"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/attendance/monthly [get]
func (h *ReportHandler) AttendanceMonthly(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	req, err := parseMonthlyRequest(c, claims.TenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reports.MonthlyAttendanceSummary(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportMonthlyAttendance(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Employees godoc
// @Summary Employee roster report
// @Tags reports
// @Produce json
// @Param department query string false "Department id"
// @Param status query string false "Employment status"
// @Param groupBy query string false "department|status"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/employees [get]
func (h *ReportHandler) Employees(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	req := service.EmployeeReportRequest{
		TenantID:     claims.TenantID,
		DepartmentID: c.Query("department"),
		Status:       c.Query("status"),
		GroupBy:      c.Query("groupBy"),
	}

	report, err := h.reports.EmployeeReport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportEmployees(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Leaves godoc
// @Summary Leave report
// @Tags reports
// @Produce json
// @Param employeeId query string false "Employee id"
// @Param department query string false "Department id"
// @Param leaveType query string false "Leave type id"
// @Param status query string false "Leave status"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param groupBy query string false "date|employee|department|leaveType|status"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/leaves [get]
func (h *ReportHandler) Leaves(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	req := service.LeaveReportRequest{
		TenantID:     claims.TenantID,
		EmployeeID:   c.Query("employeeId"),
		DepartmentID: c.Query("department"),
		LeaveTypeID:  c.Query("leaveType"),
		Status:       c.Query("status"),
		GroupBy:      c.Query("groupBy"),
	}
	var err error
	if req.DateFrom, err = parseQueryDate(c, "startDate"); err != nil {
		response.Error(c, err)
		return
	}
	if req.DateTo, err = parseQueryDate(c, "endDate"); err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reports.LeaveReport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportLeaves(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// LeaveBalance godoc
// @Summary Leave balance report
// @Tags reports
// @Produce json
// @Param year query int false "Target year (defaults to current)"
// @Param employeeId query string false "Employee id"
// @Param department query string false "Department id"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/leaves/balance [get]
func (h *ReportHandler) LeaveBalance(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	year, err := parseQueryInt(c, "year", time.Now().UTC().Year())
	if err != nil {
		response.Error(c, err)
		return
	}
	req := service.LeaveBalanceRequest{
		TenantID:     claims.TenantID,
		Year:         year,
		EmployeeID:   c.Query("employeeId"),
		DepartmentID: c.Query("department"),
	}

	report, err := h.reports.LeaveBalanceReport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportLeaveBalances(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// LeavesMonthly godoc
// @Summary Monthly leave summary
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12, defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Param department query string false "Department id"
// @Param format query string false "csv|pdf"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /reports/leaves/monthly [get]
func (h *ReportHandler) LeavesMonthly(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	req, err := parseMonthlyRequest(c, claims.TenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reports.MonthlyLeaveSummary(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format, wantsExport := exportFormat(c); wantsExport {
		payload, err := h.exports.ExportMonthlyLeaves(report, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExport(c, payload)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

func parseMonthlyRequest(c *gin.Context, tenantID string) (service.MonthlyReportRequest, error) {
	now := time.Now().UTC()
	month, err := parseQueryInt(c, "month", int(now.Month()))
	if err != nil {
		return service.MonthlyReportRequest{}, err
	}
	year, err := parseQueryInt(c, "year", now.Year())
	if err != nil {
		return service.MonthlyReportRequest{}, err
	}
	return service.MonthlyReportRequest{
		TenantID:     tenantID,
		Month:        month,
		Year:         year,
		DepartmentID: c.Query("department"),
	}, nil
}

func parseQueryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter, expected YYYY-MM-DD")
	}
	return &parsed, nil
}

func parseQueryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter, expected an integer")
	}
	return parsed, nil
}

func exportFormat(c *gin.Context) (models.ReportFormat, bool) {
	raw := c.Query("format")
	if raw == "" {
		return "", false
	}
	return models.ReportFormat(raw), true
}

func writeExport(c *gin.Context, payload *service.ExportPayload) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	c.Data(http.StatusOK, payload.MediaType, payload.Data)
}
