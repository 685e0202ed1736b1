package repositories

import (
	"context"
	"errors"
	"time"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository interface {
	// CreateIdempotent inserts the payment unless a row with the same
	// transaction_id already exists, and reports whether a row was written.
	// This is the de-duplication point for gateway verification.
	CreateIdempotent(ctx context.Context, q Querier, payment *models.Payment) (bool, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	RecentByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]*models.Payment, error)
	LastCompletedAt(ctx context.Context, leaseID uuid.UUID) (*time.Time, error)
	SumCompletedByLandlord(ctx context.Context, landlordID uuid.UUID) (float64, error)
}

type paymentRepo struct {
	db Querier
}

func NewPaymentRepository(db Querier) PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentColumns = `id, lease_id, tenant_id, amount, status, transaction_id, created_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(&p.ID, &p.LeaseID, &p.TenantID, &p.Amount, &p.Status, &p.TransactionID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	defer rows.Close()
	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepo) CreateIdempotent(ctx context.Context, q Querier, payment *models.Payment) (bool, error) {
	if q == nil {
		q = r.db
	}
	query := `
		INSERT INTO payments (id, lease_id, tenant_id, amount, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (transaction_id) DO NOTHING
	`
	tag, err := q.Exec(ctx, query, payment.ID, payment.LeaseID, payment.TenantID, payment.Amount,
		payment.Status, payment.TransactionID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *paymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	payment, err := scanPayment(r.db.QueryRow(ctx, query, transactionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	return payment, err
}

func (r *paymentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

// ListByLandlord joins payments through leases to the landlord's properties.
func (r *paymentRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	query := `
		SELECT pay.id, pay.lease_id, pay.tenant_id, pay.amount, pay.status, pay.transaction_id, pay.created_at
		FROM payments pay
		JOIN leases l ON l.id = pay.lease_id
		JOIN properties p ON p.id = l.property_id
		WHERE p.landlord_id = $1
		ORDER BY pay.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

func (r *paymentRepo) RecentByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

func (r *paymentRepo) LastCompletedAt(ctx context.Context, leaseID uuid.UUID) (*time.Time, error) {
	query := `SELECT MAX(created_at) FROM payments WHERE lease_id = $1 AND status = 'completed'`
	var last *time.Time
	err := r.db.QueryRow(ctx, query, leaseID).Scan(&last)
	return last, err
}

func (r *paymentRepo) SumCompletedByLandlord(ctx context.Context, landlordID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(pay.amount), 0)
		FROM payments pay
		JOIN leases l ON l.id = pay.lease_id
		JOIN properties p ON p.id = l.property_id
		WHERE p.landlord_id = $1 AND pay.status = 'completed'
	`
	var sum float64
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&sum)
	return sum, err
}
