package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateInvitationInput struct {
	TenantEmail string     `json:"tenant_email"`
	PropertyID  uuid.UUID  `json:"property_id"`
	LeaseID     *uuid.UUID `json:"lease_id"`
}

type InvitationServiceInterface interface {
	CreateInvitation(ctx context.Context, landlordID uuid.UUID, input *CreateInvitationInput) (*models.Invitation, error)
	ListInvitations(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Invitation, error)
	AcceptInvitation(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Invitation, error)
	DeclineInvitation(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Invitation, error)
}

type invitationService struct {
	invitationRepo repositories.InvitationRepository
	propertyRepo   repositories.PropertyRepository
	leaseRepo      repositories.LeaseRepository
	notifier       NotificationService
	db             repositories.Querier
}

// NewInvitationService needs the raw Querier alongside the repositories: the
// accept path runs a transaction that spans the invitations and leases tables.
func NewInvitationService(invitationRepo repositories.InvitationRepository, propertyRepo repositories.PropertyRepository,
	leaseRepo repositories.LeaseRepository, notifier NotificationService, db repositories.Querier) InvitationServiceInterface {
	return &invitationService{
		invitationRepo: invitationRepo,
		propertyRepo:   propertyRepo,
		leaseRepo:      leaseRepo,
		notifier:       notifier,
		db:             db,
	}
}

func (s *invitationService) CreateInvitation(ctx context.Context, landlordID uuid.UUID, input *CreateInvitationInput) (*models.Invitation, error) {
	if err := common.ValidateRequiredString(input.TenantEmail, "tenant_email"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if input.PropertyID == uuid.Nil {
		return nil, common.Validationf("property_id is required")
	}

	property, err := s.propertyRepo.GetByID(ctx, input.PropertyID)
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

	if input.LeaseID != nil {
		lease, err := s.leaseRepo.GetByID(ctx, *input.LeaseID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.Validationf("lease does not exist")
		}
		if err != nil {
			return nil, err
		}
		if lease.PropertyID != input.PropertyID {
			return nil, common.Validationf("lease does not belong to the invited property")
		}
	}

	invitation := &models.Invitation{
		ID:          uuid.New(),
		LandlordID:  landlordID,
		TenantEmail: input.TenantEmail,
		PropertyID:  input.PropertyID,
		LeaseID:     input.LeaseID,
		Status:      models.InvitationPending,
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	// Delivery is best-effort; the invitation stands whether or not the
	// email goes out.
	subject := "Invitation to Join Property"
	body := fmt.Sprintf("You have been invited to join %s as a tenant. Sign up or log in to respond to invitation %s.", property.Title, invitation.ID)
	if err := s.notifier.SendEmail(ctx, invitation.TenantEmail, subject, body); err != nil {
		log.Printf("failed to send invitation email to %s: %v", invitation.TenantEmail, err)
	}

	return invitation, nil
}

func (s *invitationService) ListInvitations(ctx context.Context, caller common.Caller, limit, offset int) ([]*models.Invitation, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if caller.Role == models.RoleLandlord {
		return s.invitationRepo.ListByLandlord(ctx, caller.ID, limit, offset)
	}
	return s.invitationRepo.ListByEmail(ctx, caller.Email, limit, offset)
}

// loadForResponse fetches the invitation and checks the responder: only the
// tenant the invitation is addressed to may act on it.
func (s *invitationService) loadForResponse(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("invitation")
	}
	if err != nil {
		return nil, err
	}
	if invitation.TenantEmail != caller.Email {
		return nil, common.Forbidden("invitation is not addressed to caller")
	}
	if invitation.Status.Terminal() {
		return nil, common.Conflict("invitation already processed")
	}
	return invitation, nil
}

// AcceptInvitation flips pending -> accepted and, when a lease is attached,
// reassigns the lease to the accepting tenant. Both writes run in one
// transaction, and the flip is a conditional update on status=pending, so of
// two concurrent accepts exactly one commits and the loser gets Conflict.
func (s *invitationService) AcceptInvitation(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.loadForResponse(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	won, err := s.invitationRepo.ResolveIfPending(ctx, tx, invitation.ID, models.InvitationAccepted)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, common.Conflict("invitation already processed")
	}

	if invitation.LeaseID != nil {
		if _, err := tx.Exec(ctx, `UPDATE leases SET tenant_id = $1, updated_at = NOW() WHERE id = $2`,
			caller.ID, *invitation.LeaseID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	invitation.Status = models.InvitationAccepted
	return invitation, nil
}

func (s *invitationService) DeclineInvitation(ctx context.Context, caller common.Caller, id uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.loadForResponse(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	won, err := s.invitationRepo.ResolveIfPending(ctx, nil, invitation.ID, models.InvitationDeclined)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, common.Conflict("invitation already processed")
	}

	invitation.Status = models.InvitationDeclined
	return invitation, nil
}
