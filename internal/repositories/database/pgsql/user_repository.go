package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `
	user_id, email, full_name, phone, role, password_hash, auth_provider, provider_user_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time, reset_token_hash, reset_token_expiry_time`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findOne(ctx context.Context, where string, args ...interface{}) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM profiles WHERE deleted_at IS NULL AND ` + where + `;`

	var m models.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&m.UserID, &m.Email, &m.FullName, &m.Phone, &m.Role, &m.PasswordHash, &m.AuthProvider, &m.ProviderUserID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
		&m.RefreshTokenHash, &m.RefreshTokenExpiryTime, &m.ResetTokenHash, &m.ResetTokenExpiryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `lower(email) = lower($1)`, email)
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, `auth_provider = $1 AND provider_user_id = $2`, provider, providerUserID)
}

func (r *PgxUserRepository) FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	return r.findOne(ctx, `reset_token_hash = $1`, tokenHash)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		m.UserID, m.Email, m.FullName, m.Phone, m.Role, m.PasswordHash, m.AuthProvider, m.ProviderUserID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.DeletedAt,
		m.RefreshTokenHash, m.RefreshTokenExpiryTime, m.ResetTokenHash, m.ResetTokenExpiryTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	var hash *string
	if tokenHash != "" {
		hash = &tokenHash
	}
	return r.exec(ctx, `
		UPDATE profiles
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3 AND deleted_at IS NULL;`,
		hash, expiry, userID,
	)
}

func (r *PgxUserRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	return r.exec(ctx, `
		UPDATE profiles
		SET reset_token_hash = $1, reset_token_expiry_time = $2
		WHERE user_id = $3 AND deleted_at IS NULL;`,
		tokenHash, expiry, userID,
	)
}

// UpdatePassword also revokes the refresh token so other sessions must sign in again.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	return r.exec(ctx, `
		UPDATE profiles
		SET password_hash = $1,
		    reset_token_hash = NULL, reset_token_expiry_time = NULL,
		    refresh_token_hash = NULL, refresh_token_expiry_time = NULL,
		    last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $3 AND deleted_at IS NULL;`,
		passwordHash, now, userID,
	)
}
