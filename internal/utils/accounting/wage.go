package accounting

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	two = decimal.NewFromInt(2)

	// WorkingDaysPerMonth converts a monthly salary into a daily estimate.
	WorkingDaysPerMonth = decimal.NewFromInt(26)
	// StandardShiftHours converts an hourly rate into a daily estimate.
	StandardShiftHours = decimal.NewFromInt(8)
)

// AttendanceWage computes the wage stored on an attendance record.
//
// Present is charged the full rate whatever the pay type, half day is half the
// rate and absent or on-leave earn nothing. Overtime is added whenever both the
// hours and the employee's overtime rate are positive, independent of status.
// A nil employee yields zero.
func AttendanceWage(emp *domain.Employee, status domain.AttendanceStatus, otHours decimal.Decimal) decimal.Decimal {
	if emp == nil {
		return decimal.Zero
	}
	return baseWage(emp.Rate, status).Add(overtime(emp, otHours))
}

// EstimatedDashboardWage is the labour cost estimate used on the dashboard. Unlike
// AttendanceWage it normalises the rate to a day: monthly salaries are divided by
// WorkingDaysPerMonth and hourly rates multiplied by StandardShiftHours.
func EstimatedDashboardWage(emp *domain.Employee, status domain.AttendanceStatus, otHours decimal.Decimal) decimal.Decimal {
	if emp == nil {
		return decimal.Zero
	}
	daily := emp.Rate
	switch emp.PayType {
	case domain.MonthlySalary:
		daily = emp.Rate.Div(WorkingDaysPerMonth)
	case domain.Hourly:
		daily = emp.Rate.Mul(StandardShiftHours)
	}
	return baseWage(daily, status).Add(overtime(emp, otHours))
}

func baseWage(rate decimal.Decimal, status domain.AttendanceStatus) decimal.Decimal {
	switch status {
	case domain.Present:
		return rate
	case domain.HalfDay:
		return rate.Div(two)
	default:
		return decimal.Zero
	}
}

func overtime(emp *domain.Employee, otHours decimal.Decimal) decimal.Decimal {
	otRate := emp.OvertimeRate()
	if !otHours.IsPositive() || !otRate.IsPositive() {
		return decimal.Zero
	}
	return otHours.Mul(otRate)
}
