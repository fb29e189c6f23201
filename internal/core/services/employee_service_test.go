package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/core/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockEmployeeRepository
	mockSeq      *MockSequenceRepository
	mockActivity *MockActivityService
	service      portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.mockSeq = new(MockSequenceRepository)
	suite.mockActivity = new(MockActivityService)
	suite.service = services.NewEmployeeService(suite.mockRepo, suite.mockSeq,
		services.WithEmployeeActivity(suite.mockActivity))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	year := time.Now().Year()
	req := dto.CreateEmployeeRequest{
		Name:    "  Kamala Perera ",
		PayType: "daily_wage",
		Rate:    dec("1500"),
		OTRate:  decPtr("200"),
	}

	suite.mockSeq.On("NextValue", ctx, domain.EmployeeSequenceName(year)).Return(int64(3), nil).Once()
	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID == domain.FormatEmployeeID(year, 3) &&
			e.Name == "Kamala Perera" &&
			e.PayType == domain.DailyWage &&
			e.Status == domain.EmployeeActive &&
			e.CreatedBy == "user-1"
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, domain.ActivityEmployeeCreated, mock.Anything, domain.FormatEmployeeID(year, 3), "user-1").Once()

	emp, err := suite.service.CreateEmployee(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(fmt.Sprintf("EMP%02d0003", year%100), emp.EmployeeID)
	suite.Nil(emp.JoinedDate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSeq.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_RejectsInvalidInput() {
	ctx := context.Background()
	cases := map[string]struct {
		req   dto.CreateEmployeeRequest
		field string
	}{
		"missing name":    {dto.CreateEmployeeRequest{PayType: "HOURLY"}, "name"},
		"unknown pay":     {dto.CreateEmployeeRequest{Name: "A", PayType: "WEEKLY"}, "payType"},
		"negative rate":   {dto.CreateEmployeeRequest{Name: "A", PayType: "HOURLY", Rate: dec("-1")}, "rate"},
		"negative ot":     {dto.CreateEmployeeRequest{Name: "A", PayType: "HOURLY", OTRate: decPtr("-5")}, "otRate"},
		"bad status":      {dto.CreateEmployeeRequest{Name: "A", PayType: "HOURLY", Status: "RETIRED"}, "status"},
		"bad joined date": {dto.CreateEmployeeRequest{Name: "A", PayType: "HOURLY", JoinedDate: "yesterday"}, "joinedDate"},
	}

	for name, tc := range cases {
		suite.Run(name, func() {
			_, err := suite.service.CreateEmployee(ctx, tc.req, "user-1")
			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			field, ok := apperrors.FieldOf(err)
			suite.True(ok)
			suite.Equal(tc.field, field)
		})
	}
	suite.mockSeq.AssertNotCalled(suite.T(), "NextValue", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SequenceFailure() {
	ctx := context.Background()
	suite.mockSeq.On("NextValue", ctx, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	_, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{Name: "A", PayType: "HOURLY"}, "user-1")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "failed to allocate employee id")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindEmployeeByID", ctx, "EMP250099").Return(nil, apperrors.ErrNotFound).Once()

	emp, err := suite.service.GetEmployee(ctx, "EMP250099")

	suite.Nil(emp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_FiltersByStatus() {
	ctx := context.Background()
	active := domain.EmployeeActive
	suite.mockRepo.On("ListEmployees", ctx, &active).Return([]domain.Employee{{EmployeeID: "EMP250001"}}, nil).Once()

	got, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{Status: "active"})

	suite.Require().NoError(err)
	suite.Len(got, 1)

	_, err = suite.service.ListEmployees(ctx, dto.ListEmployeesParams{Status: "gone"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_AppliesPartialChanges() {
	ctx := context.Background()
	existing := &domain.Employee{
		EmployeeID: "EMP250001",
		Name:       "Nimal",
		PayType:    domain.DailyWage,
		Rate:       dec("1200"),
		Status:     domain.EmployeeActive,
	}
	suite.mockRepo.On("FindEmployeeByID", ctx, "EMP250001").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Rate.Equal(dec("1300")) && e.Status == domain.EmployeeInactive && e.Name == "Nimal" && e.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	status := "INACTIVE"
	updated, err := suite.service.UpdateEmployee(ctx, "EMP250001", dto.UpdateEmployeeRequest{
		Rate:   decPtr("1300"),
		Status: &status,
	}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(domain.EmployeeInactive, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_RejectsBlankName() {
	ctx := context.Background()
	suite.mockRepo.On("FindEmployeeByID", ctx, "EMP250001").Return(&domain.Employee{EmployeeID: "EMP250001", Name: "Nimal"}, nil).Once()

	blank := "   "
	_, err := suite.service.UpdateEmployee(ctx, "EMP250001", dto.UpdateEmployeeRequest{Name: &blank}, "user-2")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_RecordsActivity() {
	ctx := context.Background()
	suite.mockRepo.On("FindEmployeeByID", ctx, "EMP250001").Return(&domain.Employee{EmployeeID: "EMP250001", Name: "Nimal"}, nil).Once()
	suite.mockRepo.On("DeleteEmployee", ctx, "EMP250001").Return(nil).Once()
	suite.mockActivity.On("Record", ctx, domain.ActivityEmployeeDeleted, "Employee Nimal (EMP250001) deleted", "EMP250001", "user-1").Once()

	err := suite.service.DeleteEmployee(ctx, "EMP250001", "user-1")

	suite.Require().NoError(err)
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindEmployeeByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, "nope", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteEmployee", mock.Anything, mock.Anything)
	suite.mockActivity.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
