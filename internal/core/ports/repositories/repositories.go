package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EmployeeRepo    EmployeeRepositoryFacade
	AttendanceRepo  AttendanceRepositoryWithTx
	TransactionRepo TransactionRepositoryFacade
	InventoryRepo   InventoryRepositoryWithTx
	GreenLeafRepo   GreenLeafRepositoryFacade
	ProductionRepo  ProductionRepositoryWithTx
	MadeTeaRepo     MadeTeaRepositoryWithTx
	ActivityRepo    ActivityRepositoryFacade
	SettingsRepo    SettingsRepositoryFacade
	SequenceRepo    SequenceRepository
}
