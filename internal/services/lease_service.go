package services

import (
	"context"
	"errors"
	"log"
	"time"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateLeaseInput struct {
	PropertyID   uuid.UUID `json:"property_id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	RentAmount   float64   `json:"rent_amount"`
	PaymentTerms string    `json:"payment_terms"`
	Document     *string   `json:"document"`
}

type LeaseServiceInterface interface {
	CreateLease(ctx context.Context, landlordID uuid.UUID, input *CreateLeaseInput) (*models.Lease, error)
	GetLease(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Lease, error)
	ListLeases(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.LeaseSummary, error)
	UpdateLease(ctx context.Context, landlordID, id uuid.UUID, patch *models.LeasePatch) (*models.Lease, error)
	DeleteLease(ctx context.Context, landlordID, id uuid.UUID) error
}

type leaseService struct {
	leaseRepo    repositories.LeaseRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	now          func() time.Time
}

func NewLeaseService(leaseRepo repositories.LeaseRepository, propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository) LeaseServiceInterface {
	return &leaseService{
		leaseRepo:    leaseRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// ownedProperty loads a property and checks landlord ownership; used by every
// lease mutation.
func (s *leaseService) ownedProperty(ctx context.Context, landlordID, propertyID uuid.UUID) (*models.Property, error) {
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
	if property.LandlordID != landlordID {
		return nil, common.Forbidden("property not owned by caller")
	}
	return property, nil
}

func (s *leaseService) CreateLease(ctx context.Context, landlordID uuid.UUID, input *CreateLeaseInput) (*models.Lease, error) {
	if _, err := s.ownedProperty(ctx, landlordID, input.PropertyID); err != nil {
		return nil, err
	}

	tenant, err := s.userRepo.GetByID(ctx, input.TenantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.Validationf("tenant does not exist")
	}
	if err != nil {
		return nil, err
	}
	if tenant.Role != models.RoleTenant {
		return nil, common.Validationf("tenant_id must reference a user with role tenant")
	}

	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, common.Validationf("start_date and end_date are required")
	}
	if err := common.ValidateDateOrder(input.StartDate, input.EndDate); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if err := common.ValidatePositiveFloat(input.RentAmount, "rent_amount", 100000000); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if err := common.ValidateRequiredString(input.PaymentTerms, "payment_terms"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}

	lease := &models.Lease{
		ID:           uuid.New(),
		PropertyID:   input.PropertyID,
		TenantID:     input.TenantID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		RentAmount:   input.RentAmount,
		PaymentTerms: input.PaymentTerms,
		Document:     input.Document,
		Status:       models.LeaseStatusAt(input.StartDate, input.EndDate, s.now()),
	}

	if err := s.leaseRepo.Create(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// GetLease enforces the two read paths: the landlord owning the lease's
// property, or the lease's tenant. The stored status is corrected lazily when
// the derived status has drifted.
func (s *leaseService) GetLease(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("lease")
	}
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case models.RoleLandlord:
		property, err := s.propertyRepo.GetByID(ctx, lease.PropertyID)
		if err != nil {
			return nil, err
		}
		if property.LandlordID != caller.ID {
			return nil, common.Forbidden("not authorized to view this lease")
		}
	case models.RoleTenant:
		if lease.TenantID != caller.ID {
			return nil, common.Forbidden("not authorized to view this lease")
		}
	default:
		return nil, common.Forbidden("not authorized to view this lease")
	}

	s.refreshStatus(ctx, lease)
	return lease, nil
}

// refreshStatus persists the derived status when it differs from the stored
// one. Persistence is best-effort: the derived value is already on the model.
func (s *leaseService) refreshStatus(ctx context.Context, lease *models.Lease) {
	derived := lease.CurrentStatus(s.now())
	if derived == lease.Status {
		return
	}
	lease.Status = derived
	if err := s.leaseRepo.UpdateStatus(ctx, lease.ID, derived); err != nil {
		log.Printf("failed to persist lease %s status %s: %v", lease.ID, derived, err)
	}
}

func (s *leaseService) ListLeases(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.LeaseSummary, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	var (
		leases []*models.LeaseSummary
		err    error
	)
	if caller.Role == models.RoleLandlord {
		leases, err = s.leaseRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	} else {
		leases, err = s.leaseRepo.ListByTenant(ctx, caller.ID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	for _, lease := range leases {
		s.refreshStatus(ctx, &lease.Lease)
	}
	return leases, nil
}

func (s *leaseService) UpdateLease(ctx context.Context, landlordID, id uuid.UUID, patch *models.LeasePatch) (*models.Lease, error) {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("lease")
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedProperty(ctx, landlordID, lease.PropertyID); err != nil {
		return nil, err
	}

	if patch.RentAmount != nil {
		if err := common.ValidatePositiveFloat(*patch.RentAmount, "rent_amount", 100000000); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}
	if patch.PaymentTerms != nil {
		if err := common.ValidateRequiredString(*patch.PaymentTerms, "payment_terms"); err != nil {
			return nil, common.Validationf("%s", err.Error())
		}
	}

	patch.Apply(lease)

	// Ordering is re-checked against the merged dates, so supplying only one
	// of the pair cannot smuggle in an inverted range.
	if err := common.ValidateDateOrder(lease.StartDate, lease.EndDate); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}

	lease.Status = lease.CurrentStatus(s.now())
	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// DeleteLease is a hard delete; leases have no soft-delete tier.
func (s *leaseService) DeleteLease(ctx context.Context, landlordID, id uuid.UUID) error {
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.NotFound("lease")
	}
	if err != nil {
		return err
	}
	if _, err := s.ownedProperty(ctx, landlordID, lease.PropertyID); err != nil {
		return err
	}
	return s.leaseRepo.Delete(ctx, id)
}
