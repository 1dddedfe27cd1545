package services

import (
	"context"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken validates a refresh token string against a user's stored token details.
	// It returns the user if the token is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthSvcFacade talks to Google for sign-in.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForIDToken redeems an authorization code obtained by the web client and
	// returns the ID token Google issued with it.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// AuthSvcFacade is the authentication collaborator used by every wallet call.
type AuthSvcFacade interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.AuthSession, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*domain.AuthSession, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthSession, error)
	SignInWithGoogleCode(ctx context.Context, code string) (*domain.AuthSession, error)
	RefreshSession(ctx context.Context, userID, refreshToken string) (*domain.AuthSession, error)
	SignOut(ctx context.Context, userID string) error
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)

	// RequestPasswordReset issues a one-time reset token. An unknown email yields an
	// empty token and no error so callers cannot probe for accounts.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
