package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider retrieves a user linked to an external identity.
	FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error)

	// FindUserByResetTokenHash retrieves the user holding an outstanding reset token.
	FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the email is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores or clears (empty hash, nil expiry) the refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error

	// SetResetToken stores a hashed one-time password reset token.
	SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// UpdatePassword replaces the password hash and clears any reset token.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
