package repositories

import (
	"context"
	"time"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeaseRepository interface {
	Create(ctx context.Context, lease *models.Lease) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	Update(ctx context.Context, lease *models.Lease) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LeaseStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
	CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error)
	ActiveByLandlord(ctx context.Context, landlordID uuid.UUID, now time.Time) ([]*models.LeaseSummary, error)
	ActiveByTenant(ctx context.Context, tenantID uuid.UUID, now time.Time) (*models.LeaseSummary, error)
	EndingBetween(ctx context.Context, from, to time.Time) ([]*models.LeaseSummary, error)
}

type leaseRepo struct {
	db Querier
}

func NewLeaseRepository(db Querier) LeaseRepository {
	return &leaseRepo{db: db}
}

const leaseColumns = `l.id, l.property_id, l.tenant_id, l.start_date, l.end_date, l.rent_amount, l.payment_terms, l.document, l.status, l.created_at, l.updated_at`

const leaseSummaryQuery = `
	SELECT ` + leaseColumns + `, p.title, p.address, u.name, u.email
	FROM leases l
	JOIN properties p ON p.id = l.property_id
	JOIN users u ON u.id = l.tenant_id
`

func scanLease(row pgx.Row) (*models.Lease, error) {
	l := &models.Lease{}
	err := row.Scan(&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate, &l.RentAmount,
		&l.PaymentTerms, &l.Document, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func scanLeaseSummaries(rows pgx.Rows) ([]*models.LeaseSummary, error) {
	defer rows.Close()
	var leases []*models.LeaseSummary
	for rows.Next() {
		s := &models.LeaseSummary{}
		err := rows.Scan(&s.ID, &s.PropertyID, &s.TenantID, &s.StartDate, &s.EndDate, &s.RentAmount,
			&s.PaymentTerms, &s.Document, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.PropertyTitle, &s.PropertyAddress, &s.TenantName, &s.TenantEmail)
		if err != nil {
			return nil, err
		}
		leases = append(leases, s)
	}
	return leases, rows.Err()
}

func (r *leaseRepo) Create(ctx context.Context, lease *models.Lease) error {
	query := `
		INSERT INTO leases (id, property_id, tenant_id, start_date, end_date, rent_amount, payment_terms, document, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, lease.ID, lease.PropertyID, lease.TenantID, lease.StartDate,
		lease.EndDate, lease.RentAmount, lease.PaymentTerms, lease.Document, lease.Status)
	return err
}

func (r *leaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases l WHERE l.id = $1`
	return scanLease(r.db.QueryRow(ctx, query, id))
}

func (r *leaseRepo) Update(ctx context.Context, lease *models.Lease) error {
	query := `
		UPDATE leases
		SET start_date = $1, end_date = $2, rent_amount = $3, payment_terms = $4, document = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, lease.StartDate, lease.EndDate, lease.RentAmount,
		lease.PaymentTerms, lease.Document, lease.Status, lease.ID)
	return err
}

func (r *leaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LeaseStatus) error {
	query := `UPDATE leases SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *leaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM leases WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *leaseRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error) {
	query := leaseSummaryQuery + `
		WHERE l.tenant_id = $1
		ORDER BY l.start_date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanLeaseSummaries(rows)
}

func (r *leaseRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.LeaseSummary, error) {
	query := leaseSummaryQuery + `
		WHERE p.landlord_id = $1
		ORDER BY l.start_date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanLeaseSummaries(rows)
}

func (r *leaseRepo) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leases WHERE tenant_id = $1`, tenantID).Scan(&count)
	return count, err
}

func (r *leaseRepo) CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		WHERE p.landlord_id = $1
	`
	var count int
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&count)
	return count, err
}

// ActiveByLandlord returns leases whose date range covers now, regardless of
// the stored status column; the status field is derived lazily.
func (r *leaseRepo) ActiveByLandlord(ctx context.Context, landlordID uuid.UUID, now time.Time) ([]*models.LeaseSummary, error) {
	query := leaseSummaryQuery + `
		WHERE p.landlord_id = $1 AND l.start_date <= $2 AND l.end_date >= $2
		ORDER BY l.end_date ASC
	`
	rows, err := r.db.Query(ctx, query, landlordID, now)
	if err != nil {
		return nil, err
	}
	return scanLeaseSummaries(rows)
}

func (r *leaseRepo) ActiveByTenant(ctx context.Context, tenantID uuid.UUID, now time.Time) (*models.LeaseSummary, error) {
	query := leaseSummaryQuery + `
		WHERE l.tenant_id = $1 AND l.start_date <= $2 AND l.end_date >= $2
		ORDER BY l.end_date ASC
		LIMIT 1
	`
	rows, err := r.db.Query(ctx, query, tenantID, now)
	if err != nil {
		return nil, err
	}
	leases, err := scanLeaseSummaries(rows)
	if err != nil {
		return nil, err
	}
	if len(leases) == 0 {
		return nil, ErrNoRows
	}
	return leases[0], nil
}

func (r *leaseRepo) EndingBetween(ctx context.Context, from, to time.Time) ([]*models.LeaseSummary, error) {
	query := leaseSummaryQuery + `
		WHERE l.end_date >= $1 AND l.end_date <= $2
		ORDER BY l.end_date ASC
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	return scanLeaseSummaries(rows)
}
