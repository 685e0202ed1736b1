package services

import (
	"context"
	"errors"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestServiceInterface interface {
	CreateRequest(ctx context.Context, tenantID, propertyID uuid.UUID) (*models.Request, error)
	ListRequests(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Request, error)
}

type requestService struct {
	requestRepo  repositories.RequestRepository
	propertyRepo repositories.PropertyRepository
}

func NewRequestService(requestRepo repositories.RequestRepository, propertyRepo repositories.PropertyRepository) RequestServiceInterface {
	return &requestService{
		requestRepo:  requestRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, tenantID, propertyID uuid.UUID) (*models.Request, error) {
	if propertyID == uuid.Nil {
		return nil, common.Validationf("property_id is required")
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("property")
	}
	if err != nil {
		return nil, err
	}
	if property.Status != models.PropertyActive {
		return nil, common.NotFound("property")
	}

	request := &models.Request{
		ID:         uuid.New(),
		UserID:     tenantID,
		PropertyID: propertyID,
		Status:     models.RequestPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) ListRequests(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Request, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if caller.Role == models.RoleLandlord {
		return s.requestRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	}
	return s.requestRepo.ListByUser(ctx, caller.ID, limit, offset)
}
