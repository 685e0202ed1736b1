package repositories

import (
	"context"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Request, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Request, error)
}

type requestRepo struct {
	db Querier
}

func NewRequestRepository(db Querier) RequestRepository {
	return &requestRepo{db: db}
}

func scanRequests(rows pgx.Rows) ([]*models.Request, error) {
	defer rows.Close()
	var requests []*models.Request
	for rows.Next() {
		req := &models.Request{}
		if err := rows.Scan(&req.ID, &req.UserID, &req.PropertyID, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *requestRepo) Create(ctx context.Context, request *models.Request) error {
	query := `
		INSERT INTO requests (id, user_id, property_id, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, request.ID, request.UserID, request.PropertyID, request.Status)
	return err
}

func (r *requestRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Request, error) {
	query := `
		SELECT id, user_id, property_id, status, created_at
		FROM requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *requestRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Request, error) {
	query := `
		SELECT r.id, r.user_id, r.property_id, r.status, r.created_at
		FROM requests r
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}
