package repositories

import (
	"context"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
	RecentByLandlord(ctx context.Context, landlordID uuid.UUID, limit int) ([]*models.MaintenanceRequest, error)
}

type maintenanceRepo struct {
	db Querier
}

func NewMaintenanceRepository(db Querier) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func scanMaintenanceRequests(rows pgx.Rows) ([]*models.MaintenanceRequest, error) {
	defer rows.Close()
	var requests []*models.MaintenanceRequest
	for rows.Next() {
		req := &models.MaintenanceRequest{}
		if err := rows.Scan(&req.ID, &req.PropertyID, &req.TenantID, &req.Description, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *maintenanceRepo) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, property_id, tenant_id, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, request.ID, request.PropertyID, request.TenantID, request.Description, request.Status)
	return err
}

func (r *maintenanceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT id, property_id, tenant_id, description, status, created_at
		FROM maintenance_requests
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanMaintenanceRequests(rows)
}

func (r *maintenanceRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT m.id, m.property_id, m.tenant_id, m.description, m.status, m.created_at
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE p.landlord_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanMaintenanceRequests(rows)
}

func (r *maintenanceRepo) RecentByLandlord(ctx context.Context, landlordID uuid.UUID, limit int) ([]*models.MaintenanceRequest, error) {
	return r.ListByLandlord(ctx, landlordID, limit, 0)
}
