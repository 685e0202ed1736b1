package repositories

import (
	"context"
	"errors"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned by repositories when a lookup matches nothing.
var ErrNoRows = pgx.ErrNoRows

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	SetSubaccountCode(ctx context.Context, id uuid.UUID, code string) error
}

type userRepo struct {
	db Querier
}

func NewUserRepository(db Querier) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, phone, profile_picture, occupation, next_of_kin, emergency_contact, email_verified, identity_verified, auth_provider, subaccount_code, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Phone,
		&user.ProfilePicture, &user.Occupation, &user.NextOfKin, &user.EmergencyContact,
		&user.EmailVerified, &user.IdentityVerified, &user.AuthProvider, &user.SubaccountCode,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, phone, email_verified, identity_verified, auth_provider, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.Phone, user.EmailVerified, user.IdentityVerified, user.AuthProvider)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	return user, err
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, profile_picture = $3, occupation = $4, next_of_kin = $5, emergency_contact = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, user.Name, user.Phone, user.ProfilePicture, user.Occupation,
		user.NextOfKin, user.EmergencyContact, user.ID)
	return err
}

func (r *userRepo) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *userRepo) SetSubaccountCode(ctx context.Context, id uuid.UUID, code string) error {
	query := `UPDATE users SET subaccount_code = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, code, id)
	return err
}
