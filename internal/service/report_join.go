package service

import (
	"go.uber.org/zap"

	"github.com/workstream-hq/hrms-api/internal/models"
)

// Sentinel values substituted when a joined reference is missing. A dangling
// foreign key must never abort an entire report.
const (
	sentinelUnknownName    = "Unknown"
	sentinelMissingCode    = "N/A"
	sentinelUnassignedKey  = "unassigned"
	sentinelUnassignedName = "Unassigned"
)

func employeesByID(employees []models.Employee) map[string]models.Employee {
	index := make(map[string]models.Employee, len(employees))
	for _, emp := range employees {
		index[emp.ID] = emp
	}
	return index
}

func leaveTypesByID(types []models.LeaveType) map[string]models.LeaveType {
	index := make(map[string]models.LeaveType, len(types))
	for _, lt := range types {
		index[lt.ID] = lt
	}
	return index
}

// buildAttendanceRows joins attendance records with roster display fields.
// Missing roster references receive sentinel values.
func buildAttendanceRows(records []models.AttendanceRecord, employees map[string]models.Employee, logger *zap.Logger) []models.AttendanceRow {
	rows := make([]models.AttendanceRow, 0, len(records))
	for _, record := range records {
		row := models.AttendanceRow{
			ID:             record.ID,
			Date:           record.Date,
			EmployeeID:     record.EmployeeID,
			EmployeeCode:   sentinelMissingCode,
			EmployeeName:   sentinelUnknownName,
			Email:          sentinelMissingCode,
			DepartmentKey:  sentinelUnassignedKey,
			DepartmentName: sentinelUnassignedName,
			ClockIn:        record.ClockIn,
			ClockOut:       record.ClockOut,
			WorkHours:      record.WorkHours,
			Overtime:       overtimeHours(record.WorkHours),
			Status:         record.Status,
		}
		if emp, ok := employees[record.EmployeeID]; ok {
			row.EmployeeCode = emp.EmployeeCode
			row.EmployeeName = emp.FullName()
			row.Email = emp.Email
			if emp.DepartmentID != nil && *emp.DepartmentID != "" {
				row.DepartmentKey = *emp.DepartmentID
			}
			if emp.DepartmentName != nil && *emp.DepartmentName != "" {
				row.DepartmentName = *emp.DepartmentName
			}
		} else if logger != nil {
			logger.Debug("attendance record references unknown employee",
				zap.String("record_id", record.ID),
				zap.String("employee_id", record.EmployeeID))
		}
		rows = append(rows, row)
	}
	return rows
}

// buildLeaveRows joins leave records with roster and leave-type display
// fields, substituting sentinels for dangling references.
func buildLeaveRows(records []models.LeaveRecord, employees map[string]models.Employee, leaveTypes map[string]models.LeaveType, logger *zap.Logger) []models.LeaveRow {
	rows := make([]models.LeaveRow, 0, len(records))
	for _, record := range records {
		row := models.LeaveRow{
			ID:             record.ID,
			EmployeeID:     record.EmployeeID,
			EmployeeCode:   sentinelMissingCode,
			EmployeeName:   sentinelUnknownName,
			DepartmentKey:  sentinelUnassignedKey,
			DepartmentName: sentinelUnassignedName,
			LeaveTypeID:    record.LeaveTypeID,
			LeaveTypeName:  sentinelUnknownName,
			FromDate:       record.FromDate,
			ToDate:         record.ToDate,
			NumberOfDays:   record.NumberOfDays,
			Status:         record.Status,
		}
		if emp, ok := employees[record.EmployeeID]; ok {
			row.EmployeeCode = emp.EmployeeCode
			row.EmployeeName = emp.FullName()
			if emp.DepartmentID != nil && *emp.DepartmentID != "" {
				row.DepartmentKey = *emp.DepartmentID
			}
			if emp.DepartmentName != nil && *emp.DepartmentName != "" {
				row.DepartmentName = *emp.DepartmentName
			}
		} else if logger != nil {
			logger.Debug("leave record references unknown employee",
				zap.String("record_id", record.ID),
				zap.String("employee_id", record.EmployeeID))
		}
		if lt, ok := leaveTypes[record.LeaveTypeID]; ok {
			row.LeaveTypeName = lt.Name
			row.IsPaid = lt.IsPaid
		} else if logger != nil {
			logger.Debug("leave record references unknown leave type",
				zap.String("record_id", record.ID),
				zap.String("leave_type_id", record.LeaveTypeID))
		}
		rows = append(rows, row)
	}
	return rows
}
