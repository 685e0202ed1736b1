package services

import (
	"context"
	"errors"
	"time"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreatePropertyInput struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Address         string              `json:"address"`
	UtilityBill     string              `json:"utility_bill"`
	UtilityBillDate time.Time           `json:"utility_bill_date"`
	Photos          []string            `json:"photos"`
	Rent            float64             `json:"rent"`
	LeaseDuration   int                 `json:"lease_duration"`
	Type            models.PropertyType `json:"type"`
}

type PropertyServiceInterface interface {
	CreateProperty(ctx context.Context, landlordID uuid.UUID, input *CreatePropertyInput) (*models.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListProperties(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Property, error)
	UpdateProperty(ctx context.Context, landlordID, id uuid.UUID, patch *models.PropertyPatch) (*models.Property, error)
	DeleteProperty(ctx context.Context, landlordID, id uuid.UUID) error
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
	now          func() time.Time
}

func NewPropertyService(propertyRepo repositories.PropertyRepository) PropertyServiceInterface {
	return &propertyService{
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

func (s *propertyService) validateCreate(input *CreatePropertyInput, now time.Time) error {
	if err := common.ValidateRequiredString(input.Title, "title"); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if err := common.ValidateRequiredString(input.Description, "description"); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if err := common.ValidateRequiredString(input.Address, "address"); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if err := common.ValidateURLField(input.UtilityBill, "utility_bill"); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if input.UtilityBillDate.IsZero() {
		return common.Validationf("utility_bill_date is required")
	}
	if !models.UtilityBillFresh(input.UtilityBillDate, now) {
		return common.Validationf("utility bill must not be older than %d months", models.UtilityBillMaxAgeMonths)
	}
	for _, photo := range input.Photos {
		if err := common.ValidateURLField(photo, "photos"); err != nil {
			return common.Validationf("%s", err.Error())
		}
	}
	if err := common.ValidatePositiveFloat(input.Rent, "rent", 100000000); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if err := common.ValidatePositiveInteger(input.LeaseDuration, "lease_duration", 120); err != nil {
		return common.Validationf("%s", err.Error())
	}
	if !input.Type.Valid() {
		return common.Validationf("type must be one of: apartment, house, commercial")
	}
	return nil
}

func (s *propertyService) CreateProperty(ctx context.Context, landlordID uuid.UUID, input *CreatePropertyInput) (*models.Property, error) {
	now := s.now()
	if err := s.validateCreate(input, now); err != nil {
		return nil, err
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}

	property := &models.Property{
		ID:              uuid.New(),
		LandlordID:      landlordID,
		Title:           input.Title,
		Description:     input.Description,
		Address:         input.Address,
		UtilityBill:     input.UtilityBill,
		UtilityBillDate: input.UtilityBillDate,
		Photos:          photos,
		Rent:            input.Rent,
		LeaseDuration:   input.LeaseDuration,
		Type:            input.Type,
		Status:          models.PropertyActive,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("property")
	}
	if err != nil {
		return nil, err
	}
	if property.Status == models.PropertyDeleted {
		return nil, common.NotFound("property")
	}
	return property, nil
}

// ListProperties dispatches on the caller's role: landlords see every
// non-deleted listing they own, everyone else sees active listings only.
func (s *propertyService) ListProperties(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Property, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if caller.Role == models.RoleLandlord {
		return s.propertyRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	}
	return s.propertyRepo.ListActive(ctx, limit, offset)
}

func (s *propertyService) UpdateProperty(ctx context.Context, landlordID, id uuid.UUID, patch *models.PropertyPatch) (*models.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.LandlordID != landlordID {
		return nil, common.Forbidden("not authorized to update this property")
	}

	now := s.now()
	if patch.Title != nil {
		if err := common.ValidateRequiredString(*patch.Title, "title"); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.Description != nil {
		if err := common.ValidateRequiredString(*patch.Description, "description"); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.Address != nil {
		if err := common.ValidateRequiredString(*patch.Address, "address"); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.UtilityBill != nil {
		if err := common.ValidateURLField(*patch.UtilityBill, "utility_bill"); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.UtilityBillDate != nil && !models.UtilityBillFresh(*patch.UtilityBillDate, now) {
		return nil, common.Validationf("utility bill must not be older than %d months", models.UtilityBillMaxAgeMonths)
	}
	if patch.Photos != nil {
		for _, photo := range *patch.Photos {
			if err := common.ValidateURLField(photo, "photos"); err != nil {
				return nil, common.Validationf("%s", err.Error())
			}
		}
	}
	if patch.Rent != nil {
		if err := common.ValidatePositiveFloat(*patch.Rent, "rent", 100000000); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.LeaseDuration != nil {
		if err := common.ValidatePositiveInteger(*patch.LeaseDuration, "lease_duration", 120); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, common.Validationf("type must be one of: apartment, house, commercial")
	}
	if patch.Status != nil && (!patch.Status.Valid() || *patch.Status == models.PropertyDeleted) {
		// Deletion goes through DeleteProperty, not a status patch.
		return nil, common.Validationf("status must be active or archived")
	}

	patch.Apply(property)
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty soft-deletes: the record is retained with status=deleted and
// disappears from all non-owner reads. Repeating the call is a no-op.
func (s *propertyService) DeleteProperty(ctx context.Context, landlordID, id uuid.UUID) error {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if property.LandlordID != landlordID {
		return common.Forbidden("not authorized to delete this property")
	}
	return s.propertyRepo.SoftDelete(ctx, id, landlordID)
}
