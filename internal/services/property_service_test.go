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

type PropertyServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockPropertyRepository
	service    *propertyService
	landlordID uuid.UUID
	now        time.Time
	context    context.Context
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockPropertyRepository{}
	suite.now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = &propertyService{
		propertyRepo: suite.mockRepo,
		now:          func() time.Time { return suite.now },
	}
	suite.landlordID = uuid.New()
	suite.context = context.Background()
}

func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}

func (suite *PropertyServiceTestSuite) validInput() *CreatePropertyInput {
	return &CreatePropertyInput{
		Title:           "Garden Flat",
		Description:     "Two bed flat with garden",
		Address:         "12 Oak Lane",
		UtilityBill:     "https://cdn.example.com/bill.pdf",
		UtilityBillDate: suite.now.AddDate(0, -1, 0),
		Photos:          []string{"https://cdn.example.com/a.jpg"},
		Rent:            1200,
		LeaseDuration:   12,
		Type:            models.PropertyApartment,
	}
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_Success() {
	input := suite.validInput()

	suite.mockRepo.On("Create", suite.context, mock.AnythingOfType("*models.Property")).Return(nil).Once()

	property, err := suite.service.CreateProperty(suite.context, suite.landlordID, input)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.landlordID, property.LandlordID)
	assert.Equal(suite.T(), models.PropertyActive, property.Status)
	assert.NotEqual(suite.T(), uuid.Nil, property.ID)
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_StaleUtilityBill() {
	input := suite.validInput()
	input.UtilityBillDate = suite.now.AddDate(0, -3, 0)

	property, err := suite.service.CreateProperty(suite.context, suite.landlordID, input)
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_BadPhotoURL() {
	input := suite.validInput()
	input.Photos = []string{"not-a-url"}

	property, err := suite.service.CreateProperty(suite.context, suite.landlordID, input)
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *PropertyServiceTestSuite) TestGetProperty_DeletedReadsAsNotFound() {
	propertyID := uuid.New()
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(&models.Property{
		ID:     propertyID,
		Status: models.PropertyDeleted,
	}, nil).Once()

	property, err := suite.service.GetProperty(suite.context, propertyID)
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
}

func (suite *PropertyServiceTestSuite) TestGetProperty_MissingRow() {
	propertyID := uuid.New()
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(nil, pgx.ErrNoRows).Once()

	property, err := suite.service.GetProperty(suite.context, propertyID)
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_NotOwner() {
	propertyID := uuid.New()
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(&models.Property{
		ID:         propertyID,
		LandlordID: uuid.New(),
		Status:     models.PropertyActive,
	}, nil).Once()

	newTitle := "Renamed"
	property, err := suite.service.UpdateProperty(suite.context, suite.landlordID, propertyID, &models.PropertyPatch{Title: &newTitle})
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindForbidden))
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_CannotPatchToDeleted() {
	propertyID := uuid.New()
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(&models.Property{
		ID:         propertyID,
		LandlordID: suite.landlordID,
		Status:     models.PropertyActive,
	}, nil).Once()

	deleted := models.PropertyDeleted
	property, err := suite.service.UpdateProperty(suite.context, suite.landlordID, propertyID, &models.PropertyPatch{Status: &deleted})
	assert.Nil(suite.T(), property)
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))
}

func (suite *PropertyServiceTestSuite) TestUpdateProperty_AppliesPatch() {
	propertyID := uuid.New()
	existing := &models.Property{
		ID:         propertyID,
		LandlordID: suite.landlordID,
		Title:      "Garden Flat",
		Rent:       1200,
		Status:     models.PropertyActive,
	}
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(existing, nil).Once()
	suite.mockRepo.On("Update", suite.context, existing).Return(nil).Once()

	newRent := 1350.0
	property, err := suite.service.UpdateProperty(suite.context, suite.landlordID, propertyID, &models.PropertyPatch{Rent: &newRent})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1350.0, property.Rent)
	assert.Equal(suite.T(), "Garden Flat", property.Title)
}

func (suite *PropertyServiceTestSuite) TestDeleteProperty_SoftDeletes() {
	propertyID := uuid.New()
	suite.mockRepo.On("GetByID", suite.context, propertyID).Return(&models.Property{
		ID:         propertyID,
		LandlordID: suite.landlordID,
		Status:     models.PropertyActive,
	}, nil).Once()
	suite.mockRepo.On("SoftDelete", suite.context, propertyID, suite.landlordID).Return(nil).Once()

	err := suite.service.DeleteProperty(suite.context, suite.landlordID, propertyID)
	assert.NoError(suite.T(), err)
}

func (suite *PropertyServiceTestSuite) TestListProperties_TenantSeesActiveOnly() {
	caller := common.Caller{ID: uuid.New(), Role: models.RoleTenant, Email: "tenant@example.com"}
	suite.mockRepo.On("ListActive", suite.context, 50, 0).Return([]*models.Property{}, nil).Once()

	_, err := suite.service.ListProperties(suite.context, caller, 0, 0)
	assert.NoError(suite.T(), err)
}
