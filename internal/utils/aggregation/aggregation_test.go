package aggregation

import (
	"testing"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(time.Date(2024, time.February, 17, 15, 4, 0, 0, time.UTC))
	assert.Equal(t, day(2024, time.February, 1), from)
	assert.Equal(t, day(2024, time.February, 29), to)
}

func TestTransactionWindow(t *testing.T) {
	ref := day(2025, time.March, 10)

	today, from, to := TransactionWindow(ref, nil, nil)
	assert.Equal(t, ref, today)
	assert.Equal(t, day(2025, time.March, 1), from)
	assert.Equal(t, day(2025, time.March, 31), to)

	f, tt := day(2025, time.January, 5), day(2025, time.January, 20)
	today, from, to = TransactionWindow(ref, &f, &tt)
	assert.Equal(t, tt, today)
	assert.Equal(t, f, from)
	assert.Equal(t, tt, to)

	today, from, _ = TransactionWindow(ref, &f, nil)
	assert.Equal(t, ref, today, "a single bound falls back to the month window")
	assert.Equal(t, day(2025, time.March, 1), from)
}

func TestSummarizeAttendance(t *testing.T) {
	date := day(2025, time.May, 2)
	otRate := dec("350")
	employees := []domain.Employee{
		{EmployeeID: "EMP250001", Status: domain.EmployeeActive, PayType: domain.DailyWage, Rate: dec("2500"), OTRate: &otRate},
		{EmployeeID: "EMP250002", Status: domain.EmployeeActive, PayType: domain.MonthlySalary, Rate: dec("52000")},
		{EmployeeID: "EMP250003", Status: domain.EmployeeActive, PayType: domain.DailyWage, Rate: dec("2000")},
		{EmployeeID: "EMP250004", Status: domain.EmployeeActive, PayType: domain.DailyWage, Rate: dec("2000")},
		{EmployeeID: "EMP250005", Status: domain.EmployeeInactive, PayType: domain.DailyWage, Rate: dec("2000")},
	}
	records := []domain.AttendanceRecord{
		{EmployeeID: "EMP250001", Date: date, Status: domain.Present, OTHours: dec("2"), CalculatedWage: dec("3200")},
		{EmployeeID: "EMP250002", Date: date, Status: domain.HalfDay, OTHours: dec("0"), CalculatedWage: dec("26000")},
		{EmployeeID: "EMP250003", Date: date, Status: domain.Absent, OTHours: dec("0"), CalculatedWage: dec("0")},
		{EmployeeID: "EMP250003", Date: date.AddDate(0, 0, -1), Status: domain.Present, CalculatedWage: dec("2000")},
	}

	s := SummarizeAttendance(date, records, employees)

	assert.Equal(t, 4, s.TotalEmployees)
	assert.Equal(t, 3, s.RecordCount)
	assert.Equal(t, 1, s.PresentCount)
	assert.Equal(t, 1, s.HalfDayCount)
	assert.Equal(t, 1, s.AbsentCount)
	assert.Equal(t, 0, s.OnLeaveCount)
	assert.Equal(t, 1, s.UnmarkedCount)
	assert.Equal(t, 1, s.OvertimeCount)
	assert.True(t, dec("2").Equal(s.TotalOTHours))
	assert.True(t, dec("29200").Equal(s.TotalWages))
	assert.True(t, dec("1.5").Equal(s.TotalManDays))
	// 3200 for the daily worker plus half of 52000/26 for the salaried one
	assert.True(t, dec("4200").Equal(s.EstimatedLaborCost), "got %s", s.EstimatedLaborCost)

	again := SummarizeAttendance(date, records, employees)
	assert.Equal(t, s, again)
}

func TestSummarizeTransactions(t *testing.T) {
	today := day(2025, time.June, 15)
	from, to := MonthWindow(today)
	txns := []domain.Transaction{
		{Date: today, Type: domain.Income, Category: domain.CategoryMadeTeaSales, Amount: dec("1000")},
		{Date: today, Type: domain.Expense, Category: domain.CategoryLaborCost, Amount: dec("300")},
		{Date: day(2025, time.June, 1), Type: domain.Expense, Category: domain.CategoryLaborCost, Amount: dec("200")},
		{Date: day(2025, time.June, 30), Type: domain.Income, Category: domain.CategoryOtherIncome, Amount: dec("50")},
		{Date: day(2025, time.May, 31), Type: domain.Income, Category: domain.CategoryMadeTeaSales, Amount: dec("9999")},
	}

	s := SummarizeTransactions(today, from, to, txns)

	assert.True(t, dec("1000").Equal(s.TodayIncome))
	assert.True(t, dec("300").Equal(s.TodayExpenses))
	assert.True(t, dec("1050").Equal(s.MonthIncome))
	assert.True(t, dec("500").Equal(s.MonthExpenses))
	assert.True(t, dec("550").Equal(s.NetProfit))
	require.Len(t, s.CategoryTotals, 3)
	assert.Equal(t, domain.CategoryMadeTeaSales, s.CategoryTotals[0].Category)
	assert.Equal(t, domain.CategoryOtherIncome, s.CategoryTotals[1].Category)
	assert.Equal(t, domain.CategoryLaborCost, s.CategoryTotals[2].Category)
	assert.Equal(t, 2, s.CategoryTotals[2].Count)
	assert.True(t, dec("500").Equal(s.CategoryTotals[2].Total))
}

func TestSummarizeInventory(t *testing.T) {
	today := day(2025, time.July, 31)
	latest := &domain.InventoryTransaction{RunningBalance: dec("450")}
	txns := []domain.InventoryTransaction{
		{Date: today, Type: domain.Outflow, Quantity: dec("50")},
		{Date: today, Type: domain.Inflow, Quantity: dec("20")},
		// exactly 30 days back is still inside the window
		{Date: day(2025, time.July, 1), Type: domain.Outflow, Quantity: dec("1000")},
		{Date: day(2025, time.July, 15), Type: domain.Outflow, Quantity: dec("450")},
		{Date: day(2025, time.June, 30), Type: domain.Outflow, Quantity: dec("7000")},
	}

	s := SummarizeInventory(domain.FirewoodStream, today, latest, txns, dec("500"))

	assert.True(t, dec("450").Equal(s.CurrentStock))
	assert.True(t, dec("50").Equal(s.TodayConsumption))
	assert.True(t, dec("20").Equal(s.TodayReceived))
	assert.True(t, dec("50").Equal(s.AverageDailyConsumption), "got %s", s.AverageDailyConsumption)
	assert.True(t, dec("9").Equal(s.DaysRemaining), "got %s", s.DaysRemaining)
	assert.True(t, s.IsLowStock)
}

func TestSummarizeInventory_EmptyStream(t *testing.T) {
	s := SummarizeInventory(domain.PackingMaterialsStream, day(2025, time.July, 31), nil, nil, dec("1000"))

	assert.True(t, s.CurrentStock.IsZero())
	assert.True(t, s.AverageDailyConsumption.IsZero())
	assert.True(t, domain.DaysRemainingSentinel.Equal(s.DaysRemaining))
	assert.True(t, s.IsLowStock)
}

func TestSummarizeGreenLeaf(t *testing.T) {
	today := day(2025, time.August, 4)
	intakes := []domain.GreenLeafIntake{
		{Date: today, NetWeight: dec("300")},
		{Date: today, NetWeight: dec("100")},
		{Date: day(2025, time.August, 1), NetWeight: dec("800")},
		{Date: day(2025, time.July, 31), NetWeight: dec("5000")},
	}
	batches := []domain.ProductionBatch{
		{Date: day(2025, time.August, 2), GreenLeafUsed: dec("1000"), MadeTeaProduced: dec("230")},
	}

	s := SummarizeGreenLeaf(today, intakes, batches, dec("22"))

	assert.True(t, dec("400").Equal(s.TodayIntake))
	assert.Equal(t, 2, s.TodayDeliveries)
	assert.True(t, dec("1200").Equal(s.MonthIntake))
	assert.True(t, dec("300").Equal(s.AverageDailyIntake), "divides by day of month")
	assert.True(t, dec("23").Equal(s.ConversionRatio))
	assert.True(t, dec("200").Equal(s.UnprocessedLeaf))

	empty := SummarizeGreenLeaf(today, nil, nil, dec("22"))
	assert.True(t, dec("22").Equal(empty.ConversionRatio))
	assert.True(t, empty.UnprocessedLeaf.IsZero())
}

func TestSummarizeMadeTea(t *testing.T) {
	today := day(2025, time.September, 10)
	stock := []domain.MadeTeaStock{
		{Grade: domain.GradeBOP, Quantity: dec("5000")},
		{Grade: domain.GradeOP, Quantity: dec("1000")},
		{Grade: domain.GradeDUST, Quantity: dec("100")},
	}
	txns := []domain.MadeTeaTransaction{
		{Date: today, Type: domain.MadeTeaProduction, Quantity: dec("120")},
		{Date: day(2025, time.September, 2), Type: domain.MadeTeaProduction, Quantity: dec("80")},
		{Date: today, Type: domain.MadeTeaDispatch, Quantity: dec("60")},
		{Date: day(2025, time.August, 30), Type: domain.MadeTeaDispatch, Quantity: dec("999")},
	}

	s := SummarizeMadeTea(today, stock, txns, dec("500"))

	assert.True(t, dec("6100").Equal(s.TotalStock))
	assert.True(t, dec("3050000").Equal(s.EstimatedStockValue))
	assert.True(t, dec("120").Equal(s.TodayProduction))
	assert.True(t, dec("200").Equal(s.MonthProduction))
	assert.True(t, dec("60").Equal(s.TodayDispatch))
	assert.True(t, dec("60").Equal(s.MonthDispatch))
	require.Len(t, s.Stock, 3)
	assert.Equal(t, domain.StockOverstocked, s.Stock[0].StockStatus)
	assert.Equal(t, domain.StockNormal, s.Stock[1].StockStatus)
	assert.Equal(t, domain.StockLow, s.Stock[2].StockStatus)
	assert.Empty(t, stock[0].StockStatus, "input is not mutated")
}

func TestBuildAlerts(t *testing.T) {
	firewood := domain.InventorySummary{IsLowStock: true, CurrentStock: dec("450"), Threshold: dec("500"), DaysRemaining: dec("9")}
	packing := domain.InventorySummary{IsLowStock: true, CurrentStock: dec("10"), Threshold: dec("1000"), DaysRemaining: dec("0.3")}
	attendance := domain.AttendanceSummary{Date: day(2025, time.May, 2), UnmarkedCount: 3}

	alerts := BuildAlerts(firewood, packing, attendance)

	require.Len(t, alerts, 3)
	assert.Equal(t, domain.AlertFirewoodLowStock, alerts[0].Type)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "9.0 days")
	assert.Equal(t, domain.AlertPackingLowStock, alerts[1].Type)
	assert.Contains(t, alerts[1].Message, "0.3 days")
	assert.Equal(t, domain.AlertUnmarkedAttendance, alerts[2].Type)
	assert.Equal(t, domain.SeverityInfo, alerts[2].Severity)
	assert.Contains(t, alerts[2].Message, "3 employee(s)")
}

func TestBuildAlerts_None(t *testing.T) {
	alerts := BuildAlerts(domain.InventorySummary{}, domain.InventorySummary{}, domain.AttendanceSummary{UnmarkedCount: -2})
	assert.Empty(t, alerts)
}
