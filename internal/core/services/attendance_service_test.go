package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/core/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAttendanceRepository
	mockEmployees *MockEmployeeRepository
	mockActivity  *MockActivityService
	service       portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAttendanceRepository)
	suite.mockEmployees = new(MockEmployeeRepository)
	suite.mockActivity = new(MockActivityService)
	suite.service = services.NewAttendanceService(suite.mockRepo, suite.mockEmployees,
		services.WithAttendanceActivity(suite.mockActivity))
}

func dailyWorker() *domain.Employee {
	return &domain.Employee{
		EmployeeID: "EMP250001",
		Name:       "Nimal",
		PayType:    domain.DailyWage,
		Rate:       dec("1500"),
		OTRate:     decPtr("200"),
		Status:     domain.EmployeeActive,
	}
}

func (suite *AttendanceServiceTestSuite) TestCreateAttendanceRecord_ComputesWage() {
	ctx := context.Background()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "EMP250001").Return(dailyWorker(), nil).Once()

	var saved domain.AttendanceRecord
	stored := &domain.AttendanceRecord{AttendanceID: "att-1"}
	suite.mockRepo.On("UpsertAttendance", ctx, mock.AnythingOfType("domain.AttendanceRecord")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.AttendanceRecord) }).
		Return(stored, nil).Once()

	rec, err := suite.service.CreateAttendanceRecord(ctx, dto.CreateAttendanceRequest{
		EmployeeID: "EMP250001",
		Date:       "2025-03-15",
		Status:     "present",
		OTHours:    dec("2"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Same(stored, rec)
	suite.True(dec("1900").Equal(saved.CalculatedWage), "1500 + 2 x 200, got %s", saved.CalculatedWage)
	suite.Equal(domain.DayShift, saved.Shift)
	suite.Equal(day("2025-03-15"), saved.Date)
}

func (suite *AttendanceServiceTestSuite) TestCreateAttendanceRecord_UnknownEmployeeUsesZeroWage() {
	ctx := context.Background()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "EMP259999").Return(nil, apperrors.ErrNotFound).Once()
	fkErr := apperrors.NewInvalidInput("employeeID", "employee does not exist")
	suite.mockRepo.On("UpsertAttendance", ctx, mock.MatchedBy(func(r domain.AttendanceRecord) bool {
		return r.CalculatedWage.IsZero()
	})).Return(nil, fkErr).Once()

	_, err := suite.service.CreateAttendanceRecord(ctx, dto.CreateAttendanceRequest{
		EmployeeID: "EMP259999",
		Date:       "2025-03-15",
		Status:     "PRESENT",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCreateAttendanceRecord_RejectsNegativeOvertime() {
	_, err := suite.service.CreateAttendanceRecord(context.Background(), dto.CreateAttendanceRequest{
		EmployeeID: "EMP250001",
		Date:       "2025-03-15",
		Status:     "PRESENT",
		OTHours:    dec("-1"),
	}, "user-1")

	field, ok := apperrors.FieldOf(err)
	suite.True(ok)
	suite.Equal("otHours", field)
	suite.mockEmployees.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCreateAttendanceRecord_EmployeeLookupFailure() {
	ctx := context.Background()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "EMP250001").Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.CreateAttendanceRecord(ctx, dto.CreateAttendanceRequest{
		EmployeeID: "EMP250001",
		Date:       "2025-03-15",
		Status:     "PRESENT",
	}, "user-1")

	suite.Require().Error(err)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertAttendance", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCreateBulkAttendance_UsesRosterAndRecordsActivity() {
	ctx := context.Background()
	monthly := domain.Employee{EmployeeID: "EMP250002", PayType: domain.MonthlySalary, Rate: dec("52000")}
	suite.mockEmployees.On("ListEmployees", ctx, (*domain.EmployeeStatus)(nil)).
		Return([]domain.Employee{*dailyWorker(), monthly}, nil).Once()

	suite.mockRepo.On("UpsertAttendanceBatch", ctx, mock.MatchedBy(func(rs []domain.AttendanceRecord) bool {
		if len(rs) != 3 {
			return false
		}
		return rs[0].CalculatedWage.Equal(dec("750")) && // half day of 1500
			rs[1].CalculatedWage.Equal(dec("52000")) && // present pays the full rate
			rs[2].CalculatedWage.IsZero() && // not on roster
			rs[0].Shift == domain.NightShift
	})).Return(make([]domain.AttendanceRecord, 3), nil).Once()
	suite.mockActivity.On("Record", ctx, domain.ActivityBulkAttendance,
		"Attendance marked for 3 employee(s) on 2025-03-15 (night shift)", "", "user-1").Once()

	stored, err := suite.service.CreateBulkAttendance(ctx, dto.BulkAttendanceRequest{
		Date:  "2025-03-15",
		Shift: "NIGHT",
		Records: []dto.BulkAttendanceEntry{
			{EmployeeID: "EMP250001", Status: "HALF_DAY"},
			{EmployeeID: "EMP250002", Status: "PRESENT"},
			{EmployeeID: "EMP250404", Status: "PRESENT"},
		},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Len(stored, 3)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCreateBulkAttendance_RejectsEmptySheet() {
	_, err := suite.service.CreateBulkAttendance(context.Background(), dto.BulkAttendanceRequest{Date: "2025-03-15"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployees.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCreateBulkAttendance_RejectsBadStatusBeforeWriting() {
	ctx := context.Background()
	suite.mockEmployees.On("ListEmployees", ctx, (*domain.EmployeeStatus)(nil)).Return([]domain.Employee{}, nil).Once()

	_, err := suite.service.CreateBulkAttendance(ctx, dto.BulkAttendanceRequest{
		Date:    "2025-03-15",
		Records: []dto.BulkAttendanceEntry{{EmployeeID: "EMP250001", Status: "LATE"}},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "records[0]")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertAttendanceBatch", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendanceRecord_RecomputesWage() {
	ctx := context.Background()
	existing := &domain.AttendanceRecord{
		AttendanceID:   "att-1",
		EmployeeID:     "EMP250001",
		Status:         domain.Present,
		CalculatedWage: dec("1500"),
	}
	suite.mockRepo.On("FindAttendanceByID", ctx, "att-1").Return(existing, nil).Once()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "EMP250001").Return(dailyWorker(), nil).Once()
	suite.mockRepo.On("UpdateAttendance", ctx, mock.MatchedBy(func(r domain.AttendanceRecord) bool {
		return r.Status == domain.Absent && r.CalculatedWage.Equal(dec("600"))
	})).Return(nil).Once()

	status := "ABSENT"
	rec, err := suite.service.UpdateAttendanceRecord(ctx, "att-1", dto.UpdateAttendanceRequest{
		Status:  &status,
		OTHours: decPtr("3"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(dec("600").Equal(rec.CalculatedWage), "absent still earns overtime, got %s", rec.CalculatedWage)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestListAttendance_BuildsFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListAttendance", ctx, mock.MatchedBy(func(f portsrepo.AttendanceFilter) bool {
		return f.Date != nil && f.Date.Equal(day("2025-03-15")) &&
			f.Shift != nil && *f.Shift == domain.DayShift &&
			f.EmployeeID == nil
	})).Return([]domain.AttendanceRecord{}, nil).Once()

	_, err := suite.service.ListAttendance(ctx, dto.ListAttendanceParams{Date: "2025-03-15", Shift: "day"})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestAttendanceSummary() {
	ctx := context.Background()
	date := day("2025-03-15")
	records := []domain.AttendanceRecord{
		{EmployeeID: "EMP250001", Date: date, Status: domain.Present, OTHours: dec("2"), CalculatedWage: dec("1900")},
	}
	suite.mockRepo.On("ListAttendance", ctx, mock.Anything).Return(records, nil).Once()
	suite.mockEmployees.On("ListEmployees", ctx, (*domain.EmployeeStatus)(nil)).
		Return([]domain.Employee{*dailyWorker(), {EmployeeID: "EMP250002", Status: domain.EmployeeActive}}, nil).Once()

	summary, err := suite.service.AttendanceSummary(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalEmployees)
	suite.Equal(1, summary.PresentCount)
	suite.Equal(1, summary.UnmarkedCount)
	suite.True(dec("1900").Equal(summary.TotalWages))
}

func TestAttendanceService(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
