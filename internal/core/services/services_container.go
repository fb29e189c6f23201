package services

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity and settings first since most other services depend on them
	container.Activity = NewActivityService(repos.ActivityRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	container.Employee = NewEmployeeService(
		repos.EmployeeRepo,
		repos.SequenceRepo,
		WithEmployeeActivity(container.Activity),
	)
	container.Attendance = NewAttendanceService(
		repos.AttendanceRepo,
		repos.EmployeeRepo,
		WithAttendanceActivity(container.Activity),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.SequenceRepo,
		WithTransactionActivity(container.Activity),
	)

	container.Firewood = NewInventoryService(domain.FirewoodStream, repos.InventoryRepo, container.Settings)
	container.PackingMaterials = NewInventoryService(domain.PackingMaterialsStream, repos.InventoryRepo, container.Settings)

	container.GreenLeaf = NewGreenLeafService(repos.GreenLeafRepo, repos.ProductionRepo, container.Settings)
	container.Production = NewProductionService(
		repos.ProductionRepo,
		WithProductionActivity(container.Activity),
	)
	container.MadeTea = NewMadeTeaService(
		repos.MadeTeaRepo,
		container.Settings,
		WithMadeTeaActivity(container.Activity),
	)

	container.Reporting = NewReportingService(repos.TransactionRepo)
	container.Dashboard = NewDashboardService(DashboardDeps{
		Attendance:       container.Attendance,
		Transactions:     repos.TransactionRepo,
		Firewood:         container.Firewood,
		PackingMaterials: container.PackingMaterials,
		GreenLeaf:        container.GreenLeaf,
		MadeTea:          container.MadeTea,
		Activity:         container.Activity,
		Settings:         container.Settings,
	})

	return container
}
