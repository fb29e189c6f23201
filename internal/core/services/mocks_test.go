package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, status *domain.EmployeeStatus) ([]domain.Employee, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, attendanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListAttendance(ctx context.Context, filter portsrepo.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) UpsertAttendanceBatch(ctx context.Context, records []domain.AttendanceRecord) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// MockInventoryRepository applies the balance rule to PreviousBalance so tests
// observe the same arithmetic the database transaction performs.
type MockInventoryRepository struct {
	mock.Mock
	PreviousBalance decimal.Decimal
}

func (m *MockInventoryRepository) FindLatestInventoryTransaction(ctx context.Context, stream domain.InventoryStream) (*domain.InventoryTransaction, error) {
	args := m.Called(ctx, stream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryTransaction), args.Error(1)
}

func (m *MockInventoryRepository) ListInventoryTransactions(ctx context.Context, stream domain.InventoryStream, from, to time.Time) ([]domain.InventoryTransaction, error) {
	args := m.Called(ctx, stream, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryTransaction), args.Error(1)
}

func (m *MockInventoryRepository) AppendInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction, rule portsrepo.BalanceRule) (*domain.InventoryTransaction, error) {
	args := m.Called(ctx, txn)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	txn.RunningBalance = rule(m.PreviousBalance)
	return &txn, nil
}

type MockGreenLeafRepository struct {
	mock.Mock
}

func (m *MockGreenLeafRepository) SaveGreenLeafIntake(ctx context.Context, intake domain.GreenLeafIntake) error {
	args := m.Called(ctx, intake)
	return args.Error(0)
}

func (m *MockGreenLeafRepository) ListGreenLeafIntakes(ctx context.Context, from, to time.Time) ([]domain.GreenLeafIntake, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GreenLeafIntake), args.Error(1)
}

type MockProductionRepository struct {
	mock.Mock
}

func (m *MockProductionRepository) SaveProductionBatch(ctx context.Context, batch domain.ProductionBatch, movements []domain.MadeTeaTransaction) ([]domain.MadeTeaTransaction, error) {
	args := m.Called(ctx, batch, movements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MadeTeaTransaction), args.Error(1)
}

func (m *MockProductionRepository) FindProductionBatchByID(ctx context.Context, batchID string) (*domain.ProductionBatch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionBatch), args.Error(1)
}

func (m *MockProductionRepository) ListProductionBatches(ctx context.Context, from, to time.Time) ([]domain.ProductionBatch, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductionBatch), args.Error(1)
}

type MockMadeTeaRepository struct {
	mock.Mock
}

func (m *MockMadeTeaRepository) ListMadeTeaStock(ctx context.Context) ([]domain.MadeTeaStock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MadeTeaStock), args.Error(1)
}

func (m *MockMadeTeaRepository) ListMadeTeaTransactions(ctx context.Context, from, to time.Time, grade *domain.Grade) ([]domain.MadeTeaTransaction, error) {
	args := m.Called(ctx, from, to, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MadeTeaTransaction), args.Error(1)
}

func (m *MockMadeTeaRepository) SaveDispatch(ctx context.Context, dispatch domain.DispatchRecord, movement domain.MadeTeaTransaction) (*domain.MadeTeaTransaction, error) {
	args := m.Called(ctx, dispatch, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MadeTeaTransaction), args.Error(1)
}

func (m *MockMadeTeaRepository) ListDispatchRecords(ctx context.Context, from, to time.Time) ([]domain.DispatchRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DispatchRecord), args.Error(1)
}

type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextValue(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemSetting), args.Error(1)
}

func (m *MockSettingsRepository) FindSettingByKey(ctx context.Context, key string) (*domain.SystemSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSetting), args.Error(1)
}

func (m *MockSettingsRepository) UpsertSetting(ctx context.Context, setting domain.SystemSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// --- Service mocks ---

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, activityType domain.ActivityType, description, entityID, userID string) {
	m.Called(ctx, activityType, description, entityID, userID)
}

func (m *MockActivityService) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

// StaticSettings serves a fixed settings map.
type StaticSettings struct {
	Values domain.Settings
	Err    error
}

func (s StaticSettings) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]domain.SystemSetting, 0, len(s.Values))
	for k, v := range s.Values {
		out = append(out, domain.SystemSetting{Key: k, Value: v})
	}
	return out, nil
}

func (s StaticSettings) ResolvedSettings(ctx context.Context) (domain.Settings, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Values == nil {
		return domain.Settings{}, nil
	}
	return s.Values, nil
}

func (s StaticSettings) UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest, userID string) (*domain.SystemSetting, error) {
	return &domain.SystemSetting{Key: key, Value: req.Value, LastUpdatedBy: userID}, s.Err
}

// --- Helpers ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(s string) time.Time {
	t, err := domain.ParseDate("date", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
