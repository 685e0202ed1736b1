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

type MaintenanceServiceInterface interface {
	CreateRequest(ctx context.Context, tenantID, propertyID uuid.UUID, description string) (*models.MaintenanceRequest, error)
	ListRequests(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.MaintenanceRequest, error)
}

type maintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	propertyRepo    repositories.PropertyRepository
}

func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository, propertyRepo repositories.PropertyRepository) MaintenanceServiceInterface {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
	}
}

func (s *maintenanceService) CreateRequest(ctx context.Context, tenantID, propertyID uuid.UUID, description string) (*models.MaintenanceRequest, error) {
	if err := common.ValidateRequiredString(description, "description"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("property")
	}
	if err != nil {
		return nil, err
	}
	if property.Status == models.PropertyDeleted {
		return nil, common.NotFound("property")
	}

	request := &models.MaintenanceRequest{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Description: description,
		Status:      models.MaintenancePending,
	}
	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.MaintenanceRequest, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if caller.Role == models.RoleLandlord {
		return s.maintenanceRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	}
	return s.maintenanceRepo.ListByTenant(ctx, caller.ID, limit, offset)
}
