package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Employee         EmployeeSvcFacade
	Attendance       AttendanceSvcFacade
	Transaction      TransactionSvcFacade
	Firewood         InventorySvcFacade
	PackingMaterials InventorySvcFacade
	GreenLeaf        GreenLeafSvcFacade
	Production       ProductionSvcFacade
	MadeTea          MadeTeaSvcFacade
	Reporting        ReportingService
	Dashboard        DashboardService
	Activity         ActivitySvcFacade
	Settings         SettingsSvcFacade
}
