package repositories

import (
	"context"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	SoftDelete(ctx context.Context, id, landlordID uuid.UUID) error
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error)
	ListActive(ctx context.Context, limit, offset int) ([]*models.Property, error)
	CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error)
	RecentByLandlord(ctx context.Context, landlordID uuid.UUID, limit int) ([]*models.Property, error)
}

type propertyRepo struct {
	db Querier
}

func NewPropertyRepository(db Querier) PropertyRepository {
	return &propertyRepo{db: db}
}

const propertyColumns = `id, landlord_id, title, description, address, utility_bill, utility_bill_date, photos, rent, lease_duration, type, status, created_at, updated_at`

func scanProperty(row pgx.Row) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(&p.ID, &p.LandlordID, &p.Title, &p.Description, &p.Address, &p.UtilityBill,
		&p.UtilityBillDate, &p.Photos, &p.Rent, &p.LeaseDuration, &p.Type, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanProperties(rows pgx.Rows) ([]*models.Property, error) {
	defer rows.Close()
	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *propertyRepo) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (id, landlord_id, title, description, address, utility_bill, utility_bill_date, photos, rent, lease_duration, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, property.ID, property.LandlordID, property.Title, property.Description,
		property.Address, property.UtilityBill, property.UtilityBillDate, property.Photos,
		property.Rent, property.LeaseDuration, property.Type, property.Status)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return scanProperty(r.db.QueryRow(ctx, query, id))
}

func (r *propertyRepo) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties
		SET title = $1, description = $2, address = $3, utility_bill = $4, utility_bill_date = $5, photos = $6, rent = $7, lease_duration = $8, type = $9, status = $10, updated_at = NOW()
		WHERE id = $11 AND landlord_id = $12
	`
	_, err := r.db.Exec(ctx, query, property.Title, property.Description, property.Address,
		property.UtilityBill, property.UtilityBillDate, property.Photos, property.Rent,
		property.LeaseDuration, property.Type, property.Status, property.ID, property.LandlordID)
	return err
}

func (r *propertyRepo) SoftDelete(ctx context.Context, id, landlordID uuid.UUID) error {
	query := `UPDATE properties SET status = 'deleted', updated_at = NOW() WHERE id = $1 AND landlord_id = $2`
	_, err := r.db.Exec(ctx, query, id, landlordID)
	return err
}

func (r *propertyRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE landlord_id = $1 AND status != 'deleted'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanProperties(rows)
}

func (r *propertyRepo) ListActive(ctx context.Context, limit, offset int) ([]*models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanProperties(rows)
}

func (r *propertyRepo) CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM properties WHERE landlord_id = $1 AND status != 'deleted'`
	var count int
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&count)
	return count, err
}

func (r *propertyRepo) RecentByLandlord(ctx context.Context, landlordID uuid.UUID, limit int) ([]*models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE landlord_id = $1 AND status != 'deleted'
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit)
	if err != nil {
		return nil, err
	}
	return scanProperties(rows)
}
