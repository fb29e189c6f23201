package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	employees    *MockEmployeeRepository
	attendance   *MockAttendanceRepository
	transactions *MockTransactionRepository
	inventory    *MockInventoryRepository
	greenLeaf    *MockGreenLeafRepository
	production   *MockProductionRepository
	madeTea      *MockMadeTeaRepository
	activity     *MockActivityService
	service      portssvc.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.employees = new(MockEmployeeRepository)
	suite.attendance = new(MockAttendanceRepository)
	suite.transactions = new(MockTransactionRepository)
	suite.inventory = new(MockInventoryRepository)
	suite.greenLeaf = new(MockGreenLeafRepository)
	suite.production = new(MockProductionRepository)
	suite.madeTea = new(MockMadeTeaRepository)
	suite.activity = new(MockActivityService)

	settings := StaticSettings{Values: domain.Settings{
		domain.SettingFirewoodLowStockThreshold: "500",
		domain.SettingPackingLowStockThreshold:  "1000",
		domain.SettingCurrency:                  "LKR",
	}}
	suite.service = services.NewDashboardService(services.DashboardDeps{
		Attendance:       services.NewAttendanceService(suite.attendance, suite.employees),
		Transactions:     suite.transactions,
		Firewood:         services.NewInventoryService(domain.FirewoodStream, suite.inventory, settings),
		PackingMaterials: services.NewInventoryService(domain.PackingMaterialsStream, suite.inventory, settings),
		GreenLeaf:        services.NewGreenLeafService(suite.greenLeaf, suite.production, settings),
		MadeTea:          services.NewMadeTeaService(suite.madeTea, settings),
		Activity:         suite.activity,
		Settings:         settings,
	})
}

// stubAlertInputs wires firewood below threshold, packing above it and one of
// two active employees marked.
func (suite *DashboardServiceTestSuite) stubAlertInputs() {
	date := day("2025-03-15")
	suite.inventory.On("FindLatestInventoryTransaction", mock.Anything, domain.FirewoodStream).
		Return(&domain.InventoryTransaction{RunningBalance: dec("120")}, nil)
	suite.inventory.On("FindLatestInventoryTransaction", mock.Anything, domain.PackingMaterialsStream).
		Return(&domain.InventoryTransaction{RunningBalance: dec("5000")}, nil)
	suite.inventory.On("ListInventoryTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.InventoryTransaction{}, nil)
	suite.attendance.On("ListAttendance", mock.Anything, mock.Anything).
		Return([]domain.AttendanceRecord{{EmployeeID: "EMP250001", Date: date, Status: domain.Present}}, nil)
	suite.employees.On("ListEmployees", mock.Anything, (*domain.EmployeeStatus)(nil)).Return([]domain.Employee{
		{EmployeeID: "EMP250001", Status: domain.EmployeeActive},
		{EmployeeID: "EMP250002", Status: domain.EmployeeActive},
		{EmployeeID: "EMP250003", Status: domain.EmployeeInactive},
	}, nil)
}

func (suite *DashboardServiceTestSuite) TestAlerts_FixedOrderAndSeverity() {
	suite.stubAlertInputs()

	alerts, err := suite.service.Alerts(context.Background(), day("2025-03-15"))

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Equal(domain.AlertFirewoodLowStock, alerts[0].Type)
	suite.Equal(domain.SeverityWarning, alerts[0].Severity)
	suite.Contains(alerts[0].Message, "999.0 days remaining")
	suite.Equal(domain.AlertUnmarkedAttendance, alerts[1].Type)
	suite.Equal(domain.SeverityInfo, alerts[1].Severity)
}

func (suite *DashboardServiceTestSuite) TestDashboardKPIs_ComposesAllSections() {
	suite.stubAlertInputs()
	suite.transactions.On("FindTransactionsInRange", mock.Anything, sameDate(day("2025-03-01")), sameDate(day("2025-03-31"))).
		Return([]domain.Transaction{
			{Date: day("2025-03-15"), Type: domain.Income, Category: domain.CategoryMadeTeaSales, Amount: dec("2500")},
		}, nil)
	suite.greenLeaf.On("ListGreenLeafIntakes", mock.Anything, mock.Anything, mock.Anything).Return([]domain.GreenLeafIntake{}, nil)
	suite.production.On("ListProductionBatches", mock.Anything, mock.Anything, mock.Anything).Return([]domain.ProductionBatch{}, nil)
	suite.madeTea.On("ListMadeTeaStock", mock.Anything).Return([]domain.MadeTeaStock{{Grade: domain.GradeOP, Quantity: dec("10")}}, nil)
	suite.madeTea.On("ListMadeTeaTransactions", mock.Anything, mock.Anything, mock.Anything, (*domain.Grade)(nil)).Return([]domain.MadeTeaTransaction{}, nil)
	suite.activity.On("RecentActivity", mock.Anything, 10).Return([]domain.ActivityLog{{ActivityID: "a-1"}}, nil)

	kpis, err := suite.service.DashboardKPIs(context.Background(), day("2025-03-15"))

	suite.Require().NoError(err)
	suite.Equal("LKR", kpis.Currency)
	suite.Equal(2, kpis.Attendance.TotalEmployees)
	suite.True(dec("2500").Equal(kpis.Transactions.TodayIncome))
	suite.True(kpis.Firewood.IsLowStock)
	suite.False(kpis.PackingMaterials.IsLowStock)
	suite.True(dec("10").Equal(kpis.MadeTea.TotalStock))
	suite.Len(kpis.RecentActivity, 1)
	suite.Len(kpis.Alerts, 2)
}

func (suite *DashboardServiceTestSuite) TestDashboardKPIs_FailsWhenAnySectionFails() {
	suite.stubAlertInputs()
	suite.transactions.On("FindTransactionsInRange", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	suite.greenLeaf.On("ListGreenLeafIntakes", mock.Anything, mock.Anything, mock.Anything).Return([]domain.GreenLeafIntake{}, nil).Maybe()
	suite.production.On("ListProductionBatches", mock.Anything, mock.Anything, mock.Anything).Return([]domain.ProductionBatch{}, nil).Maybe()
	suite.madeTea.On("ListMadeTeaStock", mock.Anything).Return([]domain.MadeTeaStock{}, nil).Maybe()
	suite.madeTea.On("ListMadeTeaTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]domain.MadeTeaTransaction{}, nil).Maybe()
	suite.activity.On("RecentActivity", mock.Anything, 10).Return([]domain.ActivityLog{}, nil).Maybe()

	kpis, err := suite.service.DashboardKPIs(context.Background(), day("2025-03-15"))

	suite.Nil(kpis)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "transaction summary")
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
