package service

import (
	"github.com/workstream-hq/hrms-api/internal/models"

	appErrors "github.com/workstream-hq/hrms-api/pkg/errors"
)

const groupDateLayout = "2006-01-02"

// groupKey identifies one partition: a stable key plus a display label.
type groupKey struct {
	Key   string
	Label string
}

// attendanceKeyFor returns the key extractor for the requested dimension.
// An unrecognized dimension is rejected explicitly rather than producing a
// silently empty grouping.
func attendanceKeyFor(kind models.GroupKind) (func(models.AttendanceRow) groupKey, error) {
	switch kind {
	case models.GroupByDate:
		return func(row models.AttendanceRow) groupKey {
			day := row.Date.Format(groupDateLayout)
			return groupKey{Key: day, Label: day}
		}, nil
	case models.GroupByEmployee:
		return func(row models.AttendanceRow) groupKey {
			return groupKey{Key: row.EmployeeID, Label: row.EmployeeName}
		}, nil
	case models.GroupByDepartment:
		return func(row models.AttendanceRow) groupKey {
			return groupKey{Key: row.DepartmentKey, Label: row.DepartmentName}
		}, nil
	case models.GroupByStatus:
		return func(row models.AttendanceRow) groupKey {
			return groupKey{Key: string(row.Status), Label: string(row.Status)}
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported groupBy dimension: "+string(kind))
	}
}

// leaveKeyFor returns the key extractor for leave rows.
func leaveKeyFor(kind models.GroupKind) (func(models.LeaveRow) groupKey, error) {
	switch kind {
	case models.GroupByDate:
		return func(row models.LeaveRow) groupKey {
			day := row.FromDate.Format(groupDateLayout)
			return groupKey{Key: day, Label: day}
		}, nil
	case models.GroupByEmployee:
		return func(row models.LeaveRow) groupKey {
			return groupKey{Key: row.EmployeeID, Label: row.EmployeeName}
		}, nil
	case models.GroupByDepartment:
		return func(row models.LeaveRow) groupKey {
			return groupKey{Key: row.DepartmentKey, Label: row.DepartmentName}
		}, nil
	case models.GroupByLeaveType:
		return func(row models.LeaveRow) groupKey {
			return groupKey{Key: row.LeaveTypeID, Label: row.LeaveTypeName}
		}, nil
	case models.GroupByStatus:
		return func(row models.LeaveRow) groupKey {
			return groupKey{Key: string(row.Status), Label: string(row.Status)}
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported groupBy dimension: "+string(kind))
	}
}

// employeeKeyFor returns the key extractor for roster entries.
func employeeKeyFor(kind models.GroupKind) (func(models.Employee) groupKey, error) {
	switch kind {
	case models.GroupByDepartment:
		return func(emp models.Employee) groupKey {
			key, label := sentinelUnassignedKey, sentinelUnassignedName
			if emp.DepartmentID != nil && *emp.DepartmentID != "" {
				key = *emp.DepartmentID
			}
			if emp.DepartmentName != nil && *emp.DepartmentName != "" {
				label = *emp.DepartmentName
			}
			return groupKey{Key: key, Label: label}
		}, nil
	case models.GroupByStatus:
		return func(emp models.Employee) groupKey {
			return groupKey{Key: string(emp.Status), Label: string(emp.Status)}
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported groupBy dimension: "+string(kind))
	}
}

// groupAttendance partitions attendance rows along the requested dimension in
// a single pass, preserving first-seen key order. The accumulator update is
// associative and commutative: group totals do not depend on input order.
func groupAttendance(rows []models.AttendanceRow, kind models.GroupKind) ([]models.AttendanceGroup, error) {
	keyFn, err := attendanceKeyFor(kind)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	buckets := make(map[string]*models.AttendanceGroup)
	for _, row := range rows {
		gk := keyFn(row)
		group, ok := buckets[gk.Key]
		if !ok {
			group = &models.AttendanceGroup{Key: gk.Key, Label: gk.Label}
			buckets[gk.Key] = group
			order = append(order, gk.Key)
		}
		group.TotalRecords++
		switch row.Status {
		case models.AttendanceStatusPresent:
			group.PresentCount++
		case models.AttendanceStatusAbsent:
			group.AbsentCount++
		case models.AttendanceStatusHalfDay:
			group.HalfDayCount++
		case models.AttendanceStatusOnLeave:
			group.OnLeaveCount++
		}
		group.TotalWorkHours += row.WorkHours
		group.TotalOvertime += row.Overtime
	}

	groups := make([]models.AttendanceGroup, 0, len(order))
	for _, key := range order {
		group := buckets[key]
		group.AvgWorkHours = round2(averageOf(group.TotalWorkHours, group.TotalRecords))
		group.AttendancePercent = round2(attendancePercentage(group.PresentCount, group.AbsentCount, group.HalfDayCount))
		groups = append(groups, *group)
	}
	return groups, nil
}

// groupLeaves partitions leave rows along the requested dimension.
func groupLeaves(rows []models.LeaveRow, kind models.GroupKind) ([]models.LeaveGroup, error) {
	keyFn, err := leaveKeyFor(kind)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	buckets := make(map[string]*models.LeaveGroup)
	for _, row := range rows {
		gk := keyFn(row)
		group, ok := buckets[gk.Key]
		if !ok {
			group = &models.LeaveGroup{Key: gk.Key, Label: gk.Label}
			buckets[gk.Key] = group
			order = append(order, gk.Key)
		}
		group.TotalRequests++
		group.TotalDays += row.NumberOfDays
		switch row.Status {
		case models.LeaveStatusApproved:
			group.ApprovedCount++
			group.ApprovedDays += row.NumberOfDays
		case models.LeaveStatusPending:
			group.PendingCount++
		case models.LeaveStatusRejected:
			group.RejectedCount++
		case models.LeaveStatusCancelled:
			group.CancelledCount++
		}
	}

	groups := make([]models.LeaveGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *buckets[key])
	}
	return groups, nil
}

// groupEmployees partitions roster entries along the requested dimension.
func groupEmployees(employees []models.Employee, kind models.GroupKind) ([]models.EmployeeGroup, error) {
	keyFn, err := employeeKeyFor(kind)
	if err != nil {
		return nil, err
	}

	type employeeBucket struct {
		group        models.EmployeeGroup
		totalPayroll float64
	}

	order := make([]string, 0)
	buckets := make(map[string]*employeeBucket)
	for _, emp := range employees {
		gk := keyFn(emp)
		bucket, ok := buckets[gk.Key]
		if !ok {
			bucket = &employeeBucket{group: models.EmployeeGroup{Key: gk.Key, Label: gk.Label}}
			buckets[gk.Key] = bucket
			order = append(order, gk.Key)
		}
		bucket.group.TotalEmployees++
		if emp.Status == models.EmploymentStatusActive {
			bucket.group.ActiveCount++
		}
		bucket.totalPayroll += emp.TotalSalary()
	}

	groups := make([]models.EmployeeGroup, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]
		bucket.group.TotalPayroll = bucket.totalPayroll
		bucket.group.AvgSalary = round2(averageOf(bucket.totalPayroll, bucket.group.TotalEmployees))
		groups = append(groups, bucket.group)
	}
	return groups, nil
}

// groupAttendanceByEmployee folds attendance rows into per-employee
// summaries, returning both the rounded output rows and the unrounded
// percentages that company roll-ups must consume.
func groupAttendanceByEmployee(rows []models.AttendanceRow) ([]models.EmployeeAttendanceSummary, []float64) {
	order := make([]string, 0)
	buckets := make(map[string]*models.EmployeeAttendanceSummary)
	for _, row := range rows {
		summary, ok := buckets[row.EmployeeID]
		if !ok {
			summary = &models.EmployeeAttendanceSummary{
				EmployeeID:     row.EmployeeID,
				EmployeeCode:   row.EmployeeCode,
				EmployeeName:   row.EmployeeName,
				DepartmentName: row.DepartmentName,
			}
			buckets[row.EmployeeID] = summary
			order = append(order, row.EmployeeID)
		}
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

	summaries := make([]models.EmployeeAttendanceSummary, 0, len(order))
	percentages := make([]float64, 0, len(order))
	for _, key := range order {
		summary := buckets[key]
		pct := attendancePercentage(summary.PresentCount, summary.AbsentCount, summary.HalfDayCount)
		percentages = append(percentages, pct)
		summary.AttendancePercent = round2(pct)
		summaries = append(summaries, *summary)
	}
	return summaries, percentages
}
