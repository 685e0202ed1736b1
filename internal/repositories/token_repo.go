package repositories

import (
	"context"
	"errors"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	GetByUserAndType(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) (*models.Token, error)
	DeleteByUserAndType(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) error
}

type tokenRepo struct {
	db Querier
}

func NewTokenRepository(db Querier) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, token *models.Token) error {
	query := `
		INSERT INTO tokens (id, user_id, type, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.Type, token.Token, token.ExpiresAt)
	return err
}

func (r *tokenRepo) GetByUserAndType(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) (*models.Token, error) {
	query := `
		SELECT id, user_id, type, token, expires_at, created_at
		FROM tokens
		WHERE user_id = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	token := &models.Token{}
	err := r.db.QueryRow(ctx, query, userID, tokenType).Scan(&token.ID, &token.UserID, &token.Type,
		&token.Token, &token.ExpiresAt, &token.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (r *tokenRepo) DeleteByUserAndType(ctx context.Context, userID uuid.UUID, tokenType models.TokenType) error {
	query := `DELETE FROM tokens WHERE user_id = $1 AND type = $2`
	_, err := r.db.Exec(ctx, query, userID, tokenType)
	return err
}
