package aggregation

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// SummarizeAttendance reduces the records that fall on date. employees is the
// full roster: only active employees count towards TotalEmployees, and the
// roster is used to look up pay for the labour cost estimate.
func SummarizeAttendance(date time.Time, records []domain.AttendanceRecord, employees []domain.Employee) domain.AttendanceSummary {
	byID := make(map[string]*domain.Employee, len(employees))
	s := domain.AttendanceSummary{
		Date:               domain.DateOf(date),
		TotalOTHours:       decimal.Zero,
		TotalWages:         decimal.Zero,
		TotalManDays:       decimal.Zero,
		EstimatedLaborCost: decimal.Zero,
	}
	for i := range employees {
		byID[employees[i].EmployeeID] = &employees[i]
		if employees[i].IsActive() {
			s.TotalEmployees++
		}
	}

	for _, r := range records {
		if !SameDay(r.Date, date) {
			continue
		}
		s.RecordCount++
		switch r.Status {
		case domain.Present:
			s.PresentCount++
		case domain.Absent:
			s.AbsentCount++
		case domain.HalfDay:
			s.HalfDayCount++
		case domain.OnLeave:
			s.OnLeaveCount++
		}
		if r.OTHours.IsPositive() {
			s.OvertimeCount++
			s.TotalOTHours = s.TotalOTHours.Add(r.OTHours)
		}
		s.TotalWages = s.TotalWages.Add(r.CalculatedWage)
		s.EstimatedLaborCost = s.EstimatedLaborCost.Add(
			accounting.EstimatedDashboardWage(byID[r.EmployeeID], r.Status, r.OTHours))
	}

	s.TotalManDays = decimal.NewFromInt(int64(s.PresentCount)).
		Add(half.Mul(decimal.NewFromInt(int64(s.HalfDayCount))))
	s.UnmarkedCount = s.TotalEmployees - s.RecordCount
	return s
}
