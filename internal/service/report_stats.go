package service

import (
	"math"

	"github.com/workstream-hq/hrms-api/internal/models"
)

// overtimeBaselineHours is the daily threshold beyond which worked hours
// count as overtime.
const overtimeBaselineHours = 8.0

// attendancePercentage computes 100 * (present + 0.5*halfDay) / workingDays
// where workingDays = present + absent + halfDay. Leave days are excluded
// from the denominator. Returns 0 when there are no working days.
func attendancePercentage(present, absent, halfDay int) float64 {
	workingDays := present + absent + halfDay
	if workingDays == 0 {
		return 0
	}
	return 100 * (float64(present) + 0.5*float64(halfDay)) / float64(workingDays)
}

// averageOf divides sum by count, returning 0 for an empty set so NaN and
// Inf never reach report output.
func averageOf(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// overtimeHours returns the hours worked beyond the daily baseline.
func overtimeHours(workHours float64) float64 {
	if workHours <= overtimeBaselineHours {
		return 0
	}
	return workHours - overtimeBaselineHours
}

// meanOfPercentages is the arithmetic mean of per-entity percentages. Company
// and department roll-ups average the per-employee percentages directly
// rather than recomputing from raw counts.
func meanOfPercentages(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// leaveBalance subtracts used days from the annual quota.
func leaveBalance(annualQuota, usedDays float64) float64 {
	return annualQuota - usedDays
}

// approvedDaysInYear sums number_of_days over approved leave rows of the
// given employee and leave type whose FromDate falls in the target year. The
// year is derived from FromDate; records outside the year never count.
func approvedDaysInYear(rows []models.LeaveRow, employeeID, leaveTypeID string, year int) float64 {
	var total float64
	for _, row := range rows {
		if row.Status != models.LeaveStatusApproved {
			continue
		}
		if row.EmployeeID != employeeID || row.LeaveTypeID != leaveTypeID {
			continue
		}
		if row.FromDate.Year() != year {
			continue
		}
		total += row.NumberOfDays
	}
	return total
}

// round2 fixes a value to two decimal places. Applied exactly once, when
// output structs are assembled; roll-ups always consume unrounded values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
