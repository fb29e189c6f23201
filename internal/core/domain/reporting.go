package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysRemainingSentinel is reported when there has been no recent consumption.
var DaysRemainingSentinel = decimal.NewFromInt(999)

// AttendanceSummary reduces one day's attendance records.
type AttendanceSummary struct {
	Date               time.Time       `json:"date"`
	TotalEmployees     int             `json:"totalEmployees"` // active employees, not records
	RecordCount        int             `json:"recordCount"`
	PresentCount       int             `json:"presentCount"`
	AbsentCount        int             `json:"absentCount"`
	HalfDayCount       int             `json:"halfDayCount"`
	OnLeaveCount       int             `json:"onLeaveCount"`
	UnmarkedCount      int             `json:"unmarkedCount"`
	OvertimeCount      int             `json:"overtimeCount"`
	TotalOTHours       decimal.Decimal `json:"totalOTHours"`
	TotalWages         decimal.Decimal `json:"totalWages"`
	TotalManDays       decimal.Decimal `json:"totalManDays"`
	EstimatedLaborCost decimal.Decimal `json:"estimatedLaborCost"`
}

// CategoryTotal is the month-window sum for one category.
type CategoryTotal struct {
	Type     TransactionType `json:"type"`
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// TransactionSummary holds today and period sums by transaction type.
type TransactionSummary struct {
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	TodayIncome    decimal.Decimal `json:"todayIncome"`
	TodayExpenses  decimal.Decimal `json:"todayExpenses"`
	MonthIncome    decimal.Decimal `json:"monthIncome"`
	MonthExpenses  decimal.Decimal `json:"monthExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
}

// InventorySummary describes a firewood or packing materials stream.
type InventorySummary struct {
	Stream                  InventoryStream `json:"stream"`
	CurrentStock            decimal.Decimal `json:"currentStock"`
	TodayConsumption        decimal.Decimal `json:"todayConsumption"`
	TodayReceived           decimal.Decimal `json:"todayReceived"`
	AverageDailyConsumption decimal.Decimal `json:"averageDailyConsumption"`
	DaysRemaining           decimal.Decimal `json:"daysRemaining"`
	Threshold               decimal.Decimal `json:"threshold"`
	IsLowStock              bool            `json:"isLowStock"`
}

// GreenLeafSummary describes intake and processing of green leaf.
type GreenLeafSummary struct {
	TodayIntake        decimal.Decimal `json:"todayIntake"`
	TodayDeliveries    int             `json:"todayDeliveries"`
	MonthIntake        decimal.Decimal `json:"monthIntake"`
	AverageDailyIntake decimal.Decimal `json:"averageDailyIntake"`
	MonthGreenLeafUsed decimal.Decimal `json:"monthGreenLeafUsed"`
	MonthMadeTea       decimal.Decimal `json:"monthMadeTea"`
	ConversionRatio    decimal.Decimal `json:"conversionRatio"`
	UnprocessedLeaf    decimal.Decimal `json:"unprocessedLeaf"` // approximation, not a FIFO balance
}

// MadeTeaSummary describes made tea stock and movements.
type MadeTeaSummary struct {
	TotalStock          decimal.Decimal `json:"totalStock"`
	UnitValue           decimal.Decimal `json:"unitValue"`
	EstimatedStockValue decimal.Decimal `json:"estimatedStockValue"`
	TodayProduction     decimal.Decimal `json:"todayProduction"`
	MonthProduction     decimal.Decimal `json:"monthProduction"`
	TodayDispatch       decimal.Decimal `json:"todayDispatch"`
	MonthDispatch       decimal.Decimal `json:"monthDispatch"`
	Stock               []MadeTeaStock  `json:"stock"`
}

// UnmappedCategory is a category present in the period with no statement line.
type UnmappedCategory struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// ProfitLossStatement is the fixed-structure P&L for a date range.
// Margins are percentages of TotalIncome and are zero when there is no income.
type ProfitLossStatement struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`

	MadeTeaSales decimal.Decimal `json:"madeTeaSales"`
	OtherIncome  decimal.Decimal `json:"otherIncome"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`

	GreenLeafCost         decimal.Decimal `json:"greenLeafCost"`
	LaborCost             decimal.Decimal `json:"laborCost"`
	FuelPower             decimal.Decimal `json:"fuelPower"`
	PackingMaterials      decimal.Decimal `json:"packingMaterials"`
	TotalCostOfProduction decimal.Decimal `json:"totalCostOfProduction"`

	GrossProfit       decimal.Decimal `json:"grossProfit"`
	GrossProfitMargin decimal.Decimal `json:"grossProfitMargin"`

	FactoryOverheads       decimal.Decimal `json:"factoryOverheads"`
	MaintenanceRepairs     decimal.Decimal `json:"maintenanceRepairs"`
	TransportHandling      decimal.Decimal `json:"transportHandling"`
	Administrative         decimal.Decimal `json:"administrative"`
	TotalOperatingExpenses decimal.Decimal `json:"totalOperatingExpenses"`

	OperatingProfit       decimal.Decimal `json:"operatingProfit"`
	OperatingProfitMargin decimal.Decimal `json:"operatingProfitMargin"`

	FinancialExpenses decimal.Decimal `json:"financialExpenses"`

	NetProfit       decimal.Decimal `json:"netProfit"`
	NetProfitMargin decimal.Decimal `json:"netProfitMargin"`

	UnmappedCategories []UnmappedCategory `json:"unmappedCategories"`
}

// AlertType identifies the rule that raised an alert.
type AlertType string

const (
	AlertFirewoodLowStock   AlertType = "FIREWOOD_LOW_STOCK"
	AlertPackingLowStock    AlertType = "PACKING_LOW_STOCK"
	AlertUnmarkedAttendance AlertType = "UNMARKED_ATTENDANCE"
)

// AlertSeverity is fixed per rule.
type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// Alert is a dashboard notice.
type Alert struct {
	Type     AlertType     `json:"type"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// DashboardKPIs is the "as of date" snapshot shown on the dashboard.
type DashboardKPIs struct {
	Date             time.Time          `json:"date"`
	Currency         string             `json:"currency"`
	Attendance       AttendanceSummary  `json:"attendance"`
	Transactions     TransactionSummary `json:"transactions"`
	Firewood         InventorySummary   `json:"firewood"`
	PackingMaterials InventorySummary   `json:"packingMaterials"`
	GreenLeaf        GreenLeafSummary   `json:"greenLeaf"`
	MadeTea          MadeTeaSummary     `json:"madeTea"`
	RecentActivity   []ActivityLog      `json:"recentActivity"`
	Alerts           []Alert            `json:"alerts"`
}
