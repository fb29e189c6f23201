package pgsql_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/SscSPs/tea_factory_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/tea_factory_app/migrations"
	"github.com/SscSPs/tea_factory_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	// One container for the whole package; tests use disjoint keys.
	sharedPool   *pgxpool.Pool
	sharedPoolMu sync.Mutex
)

// newTestRepos starts (once) a PostgreSQL container, migrates it and returns
// repositories bound to it.
func newTestRepos(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	sharedPoolMu.Lock()
	defer sharedPoolMu.Unlock()

	if sharedPool == nil {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("tea_factory_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Failed to start PostgreSQL container")

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		require.NoError(t, database.RunMigrations(dsn, migrations.FS, logger))

		sharedPool, err = database.NewPgxPool(ctx, dsn, true)
		require.NoError(t, err)
	}
	return pgsql.NewRepositoryProvider(sharedPool)
}

func audit(now time.Time) domain.AuditFields {
	return domain.AuditFields{CreatedAt: now, CreatedBy: "tester", LastUpdatedAt: now, LastUpdatedBy: "tester"}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSequence_IncrementsPerName(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	name := "test:" + uuid.NewString()

	first, err := repos.SequenceRepo.NextValue(ctx, name)
	require.NoError(t, err)
	second, err := repos.SequenceRepo.NextValue(ctx, name)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestEmployee_DeleteCascadesAttendance(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	emp := domain.Employee{
		EmployeeID:  "EMPT" + uuid.NewString()[:6],
		Name:        "Sunil",
		PayType:     domain.DailyWage,
		Rate:        decimal.NewFromInt(1500),
		Status:      domain.EmployeeActive,
		AuditFields: audit(now),
	}
	require.NoError(t, repos.EmployeeRepo.SaveEmployee(ctx, emp))
	assert.ErrorIs(t, repos.EmployeeRepo.SaveEmployee(ctx, emp), apperrors.ErrDuplicate)

	record := domain.AttendanceRecord{
		AttendanceID:   uuid.NewString(),
		EmployeeID:     emp.EmployeeID,
		Date:           day(2025, 4, 2),
		Shift:          domain.DayShift,
		Status:         domain.Present,
		OTHours:        decimal.Zero,
		CalculatedWage: decimal.NewFromInt(1500),
		AuditFields:    audit(now),
	}
	stored, err := repos.AttendanceRepo.UpsertAttendance(ctx, record)
	require.NoError(t, err)

	require.NoError(t, repos.EmployeeRepo.DeleteEmployee(ctx, emp.EmployeeID))

	_, err = repos.EmployeeRepo.FindEmployeeByID(ctx, emp.EmployeeID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repos.AttendanceRepo.FindAttendanceByID(ctx, stored.AttendanceID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInventory_RunningBalanceChains(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	stream := domain.PackingMaterialsStream
	now := time.Now().UTC().Truncate(time.Microsecond)

	start := decimal.Zero
	if latest, err := repos.InventoryRepo.FindLatestInventoryTransaction(ctx, stream); err == nil {
		start = latest.RunningBalance
	}

	moves := []struct {
		dir domain.InventoryDirection
		qty int64
	}{{domain.Inflow, 500}, {domain.Outflow, 120}, {domain.Outflow, 900}}

	var last *domain.InventoryTransaction
	for _, mv := range moves {
		txn := domain.InventoryTransaction{
			TransactionID: uuid.NewString(),
			Stream:        stream,
			Date:          day(2030, 1, 1),
			Time:          "09:00",
			Type:          mv.dir,
			Quantity:      decimal.NewFromInt(mv.qty),
			AuditFields:   audit(now),
		}
		dir, qty := mv.dir, txn.Quantity
		stored, err := repos.InventoryRepo.AppendInventoryTransaction(ctx, txn, func(prev decimal.Decimal) decimal.Decimal {
			if dir == domain.Outflow {
				return prev.Sub(qty)
			}
			return prev.Add(qty)
		})
		require.NoError(t, err)
		last = stored
	}

	// 500 - 120 - 900 goes negative; no floor is applied.
	assert.True(t, start.Add(decimal.NewFromInt(-520)).Equal(last.RunningBalance), last.RunningBalance.String())

	latest, err := repos.InventoryRepo.FindLatestInventoryTransaction(ctx, stream)
	require.NoError(t, err)
	assert.Equal(t, last.TransactionID, latest.TransactionID, "same date and time resolve by insertion order")
}

func TestInventory_ConcurrentAppendsDoNotLoseUpdates(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	stream := domain.FirewoodStream
	now := time.Now().UTC().Truncate(time.Microsecond)

	start := decimal.Zero
	if latest, err := repos.InventoryRepo.FindLatestInventoryTransaction(ctx, stream); err == nil {
		start = latest.RunningBalance
	}

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn := domain.InventoryTransaction{
				TransactionID: uuid.NewString(),
				Stream:        stream,
				Date:          day(2031, 1, 1),
				Time:          "10:00",
				Type:          domain.Inflow,
				Quantity:      decimal.NewFromInt(1),
				AuditFields:   audit(now),
			}
			_, err := repos.InventoryRepo.AppendInventoryTransaction(ctx, txn, func(prev decimal.Decimal) decimal.Decimal {
				return prev.Add(decimal.NewFromInt(1))
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	latest, err := repos.InventoryRepo.FindLatestInventoryTransaction(ctx, stream)
	require.NoError(t, err)
	assert.True(t, start.Add(decimal.NewFromInt(writers)).Equal(latest.RunningBalance), latest.RunningBalance.String())
}

func TestDispatch_IsAtomic(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	grade := domain.GradeDUST1

	stockOf := func() decimal.Decimal {
		stock, err := repos.MadeTeaRepo.ListMadeTeaStock(ctx)
		require.NoError(t, err)
		for _, s := range stock {
			if s.Grade == grade {
				return s.Quantity
			}
		}
		t.Fatalf("grade %s not seeded", grade)
		return decimal.Zero
	}
	before := stockOf()

	number := "DSP-" + uuid.NewString()[:8]
	dispatch := func() (*domain.MadeTeaTransaction, error) {
		rec := domain.DispatchRecord{
			DispatchID:     uuid.NewString(),
			DispatchNumber: number,
			Date:           day(2025, 5, 1),
			Grade:          grade,
			Quantity:       decimal.NewFromInt(40),
			Destination:    "Colombo auction",
			AuditFields:    audit(now),
		}
		movement := domain.MadeTeaTransaction{
			TransactionID: uuid.NewString(),
			Date:          rec.Date,
			Grade:         grade,
			Type:          domain.MadeTeaDispatch,
			Direction:     domain.Outflow,
			Quantity:      rec.Quantity,
			Reference:     fmt.Sprintf("Dispatch %s", number),
			AuditFields:   audit(now),
		}
		return repos.MadeTeaRepo.SaveDispatch(ctx, rec, movement)
	}

	movement, err := dispatch()
	require.NoError(t, err)
	assert.True(t, before.Sub(decimal.NewFromInt(40)).Equal(movement.Balance))

	_, err = dispatch()
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.True(t, before.Sub(decimal.NewFromInt(40)).Equal(stockOf()), "failed dispatch must not touch stock")
}

func TestTransactions_KeysetPagination(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	// A year no other test writes to.
	from, to := day(2040, 1, 1), day(2040, 12, 31)
	for i := 1; i <= 5; i++ {
		require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
			TransactionID: fmt.Sprintf("TXNT%s%d", uuid.NewString()[:4], i),
			Date:          day(2040, time.Month(i), 1),
			Type:          domain.Expense,
			Category:      domain.CategoryFuelPower,
			Amount:        decimal.NewFromInt(int64(100 * i)),
			PaymentType:   domain.Cash,
			AuditFields:   audit(now),
		}))
	}

	filter := portsrepo.TransactionFilter{DateFrom: &from, DateTo: &to}
	seen := map[string]bool{}
	var token *string
	var pages []int
	for {
		page, next, err := repos.TransactionRepo.ListTransactions(ctx, filter, 2, token)
		require.NoError(t, err)
		pages = append(pages, len(page))
		for _, txn := range page {
			assert.False(t, seen[txn.TransactionID], "duplicate across pages")
			seen[txn.TransactionID] = true
		}
		if next == nil {
			break
		}
		token = next
	}

	assert.Equal(t, []int{2, 2, 1}, pages)
	assert.Len(t, seen, 5)

	all, err := repos.TransactionRepo.FindTransactionsInRange(ctx, from, to)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSettings_SeededAndUpserted(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	seeded, err := repos.SettingsRepo.FindSettingByKey(ctx, domain.SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "LKR", seeded.Value)
	require.NotEmpty(t, seeded.Description)

	require.NoError(t, repos.SettingsRepo.UpsertSetting(ctx, domain.SystemSetting{
		Key:           domain.SettingCurrency,
		Value:         "USD",
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: "tester",
	}))

	updated, err := repos.SettingsRepo.FindSettingByKey(ctx, domain.SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "USD", updated.Value)
	assert.Equal(t, seeded.Description, updated.Description, "empty description keeps the stored one")
}
