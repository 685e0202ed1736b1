package services

import (
	"context"
	"testing"
	"time"

	"rentora/internal/common"
	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaseServiceTestSuite struct {
	suite.Suite
	mockLeaseRepo    *MockLeaseRepository
	mockPropertyRepo *MockPropertyRepository
	mockUserRepo     *MockUserRepository
	service          *leaseService
	landlordID       uuid.UUID
	tenantID         uuid.UUID
	propertyID       uuid.UUID
	now              time.Time
	context          context.Context
}

func (suite *LeaseServiceTestSuite) SetupTest() {
	suite.mockLeaseRepo = &MockLeaseRepository{}
	suite.mockPropertyRepo = &MockPropertyRepository{}
	suite.mockUserRepo = &MockUserRepository{}
	suite.now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = &leaseService{
		leaseRepo:    suite.mockLeaseRepo,
		propertyRepo: suite.mockPropertyRepo,
		userRepo:     suite.mockUserRepo,
		now:          func() time.Time { return suite.now },
	}
	suite.landlordID = uuid.New()
	suite.tenantID = uuid.New()
	suite.propertyID = uuid.New()
	suite.context = context.Background()
}

func (suite *LeaseServiceTestSuite) TearDownTest() {
	suite.mockLeaseRepo.AssertExpectations(suite.T())
	suite.mockPropertyRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestLeaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseServiceTestSuite))
}

func (suite *LeaseServiceTestSuite) ownProperty() *models.Property {
	return &models.Property{
		ID:         suite.propertyID,
		LandlordID: suite.landlordID,
		Status:     models.PropertyActive,
	}
}

func (suite *LeaseServiceTestSuite) validInput() *CreateLeaseInput {
	return &CreateLeaseInput{
		PropertyID:   suite.propertyID,
		TenantID:     suite.tenantID,
		StartDate:    suite.now.AddDate(0, 1, 0),
		EndDate:      suite.now.AddDate(1, 1, 0),
		RentAmount:   1200,
		PaymentTerms: "monthly",
	}
}

func (suite *LeaseServiceTestSuite) TestCreateLease_UpcomingStatusDerived() {
	input := suite.validInput()

	suite.mockPropertyRepo.On("GetByID", suite.context, suite.propertyID).Return(suite.ownProperty(), nil).Once()
	suite.mockUserRepo.On("GetByID", suite.context, suite.tenantID).Return(&models.User{
		ID:   suite.tenantID,
		Role: models.RoleTenant,
	}, nil).Once()
	suite.mockLeaseRepo.On("Create", suite.context, mock.AnythingOfType("*models.Lease")).Return(nil).Once()

	lease, err := suite.service.CreateLease(suite.context, suite.landlordID, input)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeaseUpcoming, lease.Status)
}

func (suite *LeaseServiceTestSuite) TestCreateLease_TenantMustHoldTenantRole() {
	input := suite.validInput()

	suite.mockPropertyRepo.On("GetByID", suite.context, suite.propertyID).Return(suite.ownProperty(), nil).Once()
	suite.mockUserRepo.On("GetByID", suite.context, suite.tenantID).Return(&models.User{
		ID:   suite.tenantID,
		Role: models.RoleLandlord,
	}, nil).Once()

	lease, err := suite.service.CreateLease(suite.context, suite.landlordID, input)
	assert.Nil(suite.T(), lease)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *LeaseServiceTestSuite) TestCreateLease_InvertedDates() {
	input := suite.validInput()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	suite.mockPropertyRepo.On("GetByID", suite.context, suite.propertyID).Return(suite.ownProperty(), nil).Once()
	suite.mockUserRepo.On("GetByID", suite.context, suite.tenantID).Return(&models.User{
		ID:   suite.tenantID,
		Role: models.RoleTenant,
	}, nil).Once()

	lease, err := suite.service.CreateLease(suite.context, suite.landlordID, input)
	assert.Nil(suite.T(), lease)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *LeaseServiceTestSuite) TestCreateLease_PropertyNotOwned() {
	input := suite.validInput()
	other := suite.ownProperty()
	other.LandlordID = uuid.New()

	suite.mockPropertyRepo.On("GetByID", suite.context, suite.propertyID).Return(other, nil).Once()

	lease, err := suite.service.CreateLease(suite.context, suite.landlordID, input)
	assert.Nil(suite.T(), lease)
	assert.True(suite.T(), common.IsKind(err, common.KindForbidden))
}

func (suite *LeaseServiceTestSuite) TestGetLease_TenantOfAnotherLease() {
	leaseID := uuid.New()
	suite.mockLeaseRepo.On("GetByID", suite.context, leaseID).Return(&models.Lease{
		ID:         leaseID,
		PropertyID: suite.propertyID,
		TenantID:   uuid.New(),
	}, nil).Once()

	caller := common.Caller{ID: suite.tenantID, Role: models.RoleTenant, Email: "tenant@example.com"}
	lease, err := suite.service.GetLease(suite.context, caller, leaseID)
	assert.Nil(suite.T(), lease)
	assert.True(suite.T(), common.IsKind(err, common.KindForbidden))
}

func (suite *LeaseServiceTestSuite) TestGetLease_RefreshesDriftedStatus() {
	leaseID := uuid.New()
	stored := &models.Lease{
		ID:         leaseID,
		PropertyID: suite.propertyID,
		TenantID:   suite.tenantID,
		StartDate:  suite.now.AddDate(-1, 0, 0),
		EndDate:    suite.now.AddDate(0, -1, 0),
		Status:     models.LeaseActive,
	}
	suite.mockLeaseRepo.On("GetByID", suite.context, leaseID).Return(stored, nil).Once()
	suite.mockLeaseRepo.On("UpdateStatus", suite.context, leaseID, models.LeaseExpired).Return(nil).Once()

	caller := common.Caller{ID: suite.tenantID, Role: models.RoleTenant, Email: "tenant@example.com"}
	lease, err := suite.service.GetLease(suite.context, caller, leaseID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.LeaseExpired, lease.Status)
}

func (suite *LeaseServiceTestSuite) TestUpdateLease_MergedDatesRevalidated() {
	leaseID := uuid.New()
	stored := &models.Lease{
		ID:         leaseID,
		PropertyID: suite.propertyID,
		TenantID:   suite.tenantID,
		StartDate:  suite.now.AddDate(0, 1, 0),
		EndDate:    suite.now.AddDate(1, 1, 0),
		Status:     models.LeaseUpcoming,
	}
	suite.mockLeaseRepo.On("GetByID", suite.context, leaseID).Return(stored, nil).Once()
	suite.mockPropertyRepo.On("GetByID", suite.context, suite.propertyID).Return(suite.ownProperty(), nil).Once()

	// Only the end date moves, landing before the untouched start date.
	badEnd := stored.StartDate.AddDate(0, 0, -1)
	lease, err := suite.service.UpdateLease(suite.context, suite.landlordID, leaseID, &models.LeasePatch{EndDate: &badEnd})
	assert.Nil(suite.T(), lease)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *LeaseServiceTestSuite) TestDeleteLease_NotFound() {
	leaseID := uuid.New()
	suite.mockLeaseRepo.On("GetByID", suite.context, leaseID).Return(nil, pgx.ErrNoRows).Once()

	err := suite.service.DeleteLease(suite.context, suite.landlordID, leaseID)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
}
