package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/workstream-hq/hrms-api/internal/models"
	appErrors "github.com/workstream-hq/hrms-api/pkg/errors"
	"github.com/workstream-hq/hrms-api/pkg/export"
)

const exportDateLayout = "2006-01-02"

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportPayload is a rendered report ready to stream to the caller.
type ExportPayload struct {
	Data      []byte
	MediaType string
	Filename  string
}

// ExportService flattens report payloads into tabular datasets and renders
// them as CSV or PDF downloads.
type ExportService struct {
	csv     csvRenderer
	pdf     pdfRenderer
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, pdf pdfRenderer, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{csv: csv, pdf: pdf, metrics: metrics, logger: logger, now: time.Now}
}

// ExportAttendance renders the attendance report's raw rows.
func (s *ExportService) ExportAttendance(report *models.AttendanceReport, format models.ReportFormat) (*ExportPayload, error) {
	dataset := export.Dataset{
		Headers: []string{"Date", "Employee ID", "Employee Name", "Email", "Clock In", "Clock Out", "Work Hours", "Status"},
		Rows:    make([]map[string]string, 0, len(report.RawRecords)),
	}
	for _, row := range report.RawRecords {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":          row.Date.Format(exportDateLayout),
			"Employee ID":   row.EmployeeCode,
			"Employee Name": row.EmployeeName,
			"Email":         row.Email,
			"Clock In":      stringOrMissing(row.ClockIn),
			"Clock Out":     stringOrMissing(row.ClockOut),
			"Work Hours":    formatFloat(row.WorkHours),
			"Status":        string(row.Status),
		})
	}
	return s.render(models.ReportTypeAttendance, "Attendance Report", dataset, format)
}

// ExportMonthlyAttendance renders the per-employee monthly roll-ups.
func (s *ExportService) ExportMonthlyAttendance(report *models.MonthlyAttendanceReport, format models.ReportFormat) (*ExportPayload, error) {
	dataset := export.Dataset{
		Headers: []string{"Employee ID", "Employee Name", "Department", "Present", "Absent", "Half Day", "On Leave", "Work Hours", "Overtime", "Attendance %"},
		Rows:    make([]map[string]string, 0, len(report.GroupedData)),
	}
	for _, row := range report.GroupedData {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Employee ID":   row.EmployeeCode,
			"Employee Name": row.EmployeeName,
			"Department":    row.DepartmentName,
			"Present":       strconv.Itoa(row.PresentCount),
			"Absent":        strconv.Itoa(row.AbsentCount),
			"Half Day":      strconv.Itoa(row.HalfDayCount),
			"On Leave":      strconv.Itoa(row.OnLeaveCount),
			"Work Hours":    formatFloat(row.TotalWorkHours),
			"Overtime":      formatFloat(row.TotalOvertime),
			"Attendance %":  formatFloat(row.AttendancePercent),
		})
	}
	return s.render(models.ReportTypeMonthlyAttendance, "Monthly Attendance Summary", dataset, format)
}

// ExportEmployees renders the roster report's raw rows.
func (s *ExportService) ExportEmployees(report *models.EmployeeReport, format models.ReportFormat) (*ExportPayload, error) {
	dataset := export.Dataset{
		Headers: []string{"Employee ID", "Name", "Email", "Department", "Designation", "Status", "Employment Type", "Joining Date", "Basic Salary", "HRA", "Allowances", "Total Salary"},
		Rows:    make([]map[string]string, 0, len(report.RawRecords)),
	}
	for _, emp := range report.RawRecords {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Employee ID":     emp.EmployeeCode,
			"Name":            emp.FullName(),
			"Email":           emp.Email,
			"Department":      stringOrMissing(emp.DepartmentName),
			"Designation":     stringOrMissing(emp.DesignationName),
			"Status":          string(emp.Status),
			"Employment Type": emp.EmploymentType,
			"Joining Date":    dateOrMissing(emp.JoiningDate),
			"Basic Salary":    formatFloat(emp.BasicSalary),
			"HRA":             formatFloat(emp.HRA),
			"Allowances":      formatFloat(emp.Allowances),
			"Total Salary":    formatFloat(emp.TotalSalary()),
		})
	}
	return s.render(models.ReportTypeEmployee, "Employee Report", dataset, format)
}

// ExportLeaves renders the leave report's raw rows.
func (s *ExportService) ExportLeaves(report *models.LeaveReport, format models.ReportFormat) (*ExportPayload, error) {
	return s.render(models.ReportTypeLeave, "Leave Report", leaveDataset(report.RawRecords), format)
}

// ExportMonthlyLeaves renders the monthly leave report's raw rows.
func (s *ExportService) ExportMonthlyLeaves(report *models.MonthlyLeaveReport, format models.ReportFormat) (*ExportPayload, error) {
	return s.render(models.ReportTypeMonthlyLeave, "Monthly Leave Summary", leaveDataset(report.RawRecords), format)
}

// ExportLeaveBalances renders the computed balance rows.
func (s *ExportService) ExportLeaveBalances(report *models.LeaveBalanceReport, format models.ReportFormat) (*ExportPayload, error) {
	dataset := export.Dataset{
		Headers: []string{"Employee ID", "Employee Name", "Leave Type", "Paid", "Annual Quota", "Used Days", "Balance"},
		Rows:    make([]map[string]string, 0, len(report.RawRecords)),
	}
	for _, row := range report.RawRecords {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Employee ID":   row.EmployeeCode,
			"Employee Name": row.EmployeeName,
			"Leave Type":    row.LeaveTypeName,
			"Paid":          formatBool(row.IsPaid),
			"Annual Quota":  formatFloat(row.AnnualQuota),
			"Used Days":     formatFloat(row.UsedDays),
			"Balance":       formatFloat(row.Balance),
		})
	}
	return s.render(models.ReportTypeLeaveBalance, "Leave Balance Report", dataset, format)
}

func leaveDataset(rows []models.LeaveRow) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"Employee ID", "Employee Name", "Department", "Leave Type", "From Date", "To Date", "Days", "Status", "Paid"},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Employee ID":   row.EmployeeCode,
			"Employee Name": row.EmployeeName,
			"Department":    row.DepartmentName,
			"Leave Type":    row.LeaveTypeName,
			"From Date":     row.FromDate.Format(exportDateLayout),
			"To Date":       row.ToDate.Format(exportDateLayout),
			"Days":          formatFloat(row.NumberOfDays),
			"Status":        string(row.Status),
			"Paid":          formatBool(row.IsPaid),
		})
	}
	return dataset
}

func (s *ExportService) render(report models.ReportType, title string, dataset export.Dataset, format models.ReportFormat) (*ExportPayload, error) {
	var payload []byte
	var mediaType string
	var err error
	switch format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
		mediaType = export.MediaTypeCSV
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		mediaType = export.MediaTypePDF
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+string(format))
	}
	if err != nil {
		s.logger.Error("render export", zap.String("report", string(report)), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	if s.metrics != nil {
		s.metrics.CountReport(string(report), string(format))
	}
	return &ExportPayload{
		Data:      payload,
		MediaType: mediaType,
		Filename:  export.Filename(string(report), string(format), s.now()),
	}, nil
}

func stringOrMissing(v *string) string {
	if v == nil || *v == "" {
		return export.MissingCell
	}
	return *v
}

func dateOrMissing(t *time.Time) string {
	if t == nil {
		return export.MissingCell
	}
	return t.Format(exportDateLayout)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
