package repositories

import (
	"context"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Invitation, error)
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*models.Invitation, error)
	CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error)
	CountPendingByEmail(ctx context.Context, email string) (int, error)
	// ResolveIfPending flips a pending invitation to the given terminal
	// status and reports whether the conditional update won. Passing a pgx.Tx
	// as q makes the flip part of a larger atomic unit.
	ResolveIfPending(ctx context.Context, q Querier, id uuid.UUID, status models.InvitationStatus) (bool, error)
}

type invitationRepo struct {
	db Querier
}

func NewInvitationRepository(db Querier) InvitationRepository {
	return &invitationRepo{db: db}
}

const invitationColumns = `id, landlord_id, tenant_email, property_id, lease_id, status, created_at, updated_at`

func scanInvitation(row pgx.Row) (*models.Invitation, error) {
	inv := &models.Invitation{}
	err := row.Scan(&inv.ID, &inv.LandlordID, &inv.TenantEmail, &inv.PropertyID, &inv.LeaseID,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func scanInvitations(rows pgx.Rows) ([]*models.Invitation, error) {
	defer rows.Close()
	var invitations []*models.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepo) Create(ctx context.Context, invitation *models.Invitation) error {
	query := `
		INSERT INTO invitations (id, landlord_id, tenant_email, property_id, lease_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, invitation.ID, invitation.LandlordID, invitation.TenantEmail,
		invitation.PropertyID, invitation.LeaseID, invitation.Status)
	return err
}

func (r *invitationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return scanInvitation(r.db.QueryRow(ctx, query, id))
}

func (r *invitationRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE landlord_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanInvitations(rows)
}

func (r *invitationRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*models.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE tenant_email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanInvitations(rows)
}

func (r *invitationRepo) CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invitations WHERE landlord_id = $1 AND status = 'pending'`, landlordID).Scan(&count)
	return count, err
}

func (r *invitationRepo) CountPendingByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invitations WHERE tenant_email = $1 AND status = 'pending'`, email).Scan(&count)
	return count, err
}

func (r *invitationRepo) ResolveIfPending(ctx context.Context, q Querier, id uuid.UUID, status models.InvitationStatus) (bool, error) {
	if q == nil {
		q = r.db
	}
	query := `UPDATE invitations SET status = $1, updated_at = NOW() WHERE id = $2 AND status = 'pending'`
	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
