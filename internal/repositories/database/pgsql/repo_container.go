package pgsql

import (
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	attendanceRepo := newPgxAttendanceRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	greenLeafRepo := newPgxGreenLeafRepository(dbPool)
	productionRepo := newPgxProductionRepository(dbPool)
	madeTeaRepo := newPgxMadeTeaRepository(dbPool)
	activityRepo := newPgxActivityRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo:    employeeRepo,
		AttendanceRepo:  attendanceRepo,
		TransactionRepo: transactionRepo,
		InventoryRepo:   inventoryRepo,
		GreenLeafRepo:   greenLeafRepo,
		ProductionRepo:  productionRepo,
		MadeTeaRepo:     madeTeaRepo,
		ActivityRepo:    activityRepo,
		SettingsRepo:    settingsRepo,
		SequenceRepo:    sequenceRepo,
	}
}
