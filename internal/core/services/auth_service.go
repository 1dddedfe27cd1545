package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/platform/config"
	"github.com/SscSPs/cross_currency_wallet/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
	google   portssvc.GoogleOAuthSvcFacade
	wallets  portssvc.WalletSvcFacade
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	tokens portssvc.TokenSvcFacade,
	google portssvc.GoogleOAuthSvcFacade,
	wallets portssvc.WalletSvcFacade,
	options ...ServiceOption,
) portssvc.AuthSvcFacade {
	o := applyOptions(options)
	return &authService{
		BaseService: BaseService{clock: o.clock},
		cfg:         cfg,
		userRepo:    userRepo,
		tokens:      tokens,
		google:      google,
		wallets:     wallets,
	}
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.AuthSession, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        normaliseEmail(req.Email),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	return s.register(ctx, user)
}

// register stores a new profile, opens its wallets and starts a session.
func (s *authService) register(ctx context.Context, user domain.User) (*domain.AuthSession, error) {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}
	if err := s.wallets.ProvisionWallets(ctx, user.UserID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("provider", user.AuthProvider))
	return s.issueSession(ctx, &user)
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*domain.AuthSession, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normaliseEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Failed sign-in attempt", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueSession(ctx, user)
}

// SignInWithGoogleCode redeems a web authorization code and continues as SignInWithGoogle.
func (s *authService) SignInWithGoogleCode(ctx context.Context, code string) (*domain.AuthSession, error) {
	idToken, err := s.google.ExchangeCodeForIDToken(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Google code exchange failed", slog.String("error", err.Error()))
		return nil, err
	}
	return s.SignInWithGoogle(ctx, idToken)
}

func (s *authService) SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthSession, error) {
	payload, err := s.google.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		s.LogWarn(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, err
	}
	info := domain.GoogleUserInfo{ID: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)
	info.Name, _ = payload.Claims["name"].(string)
	if info.Email == "" || !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByProvider(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return s.issueSession(ctx, user)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, normaliseEmail(info.Email)); err == nil {
		return nil, apperrors.NewConflictError("this email is registered with a password; sign in with email instead")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := s.Now()
	userID := uuid.NewString()
	return s.register(ctx, domain.User{
		UserID:         userID,
		Email:          normaliseEmail(info.Email),
		FullName:       info.Name,
		Role:           domain.RoleUser,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		AuditFields:    domain.NewAuditFields(userID, now),
	})
}

// RefreshSession rotates the refresh token; the presented one stops working.
func (s *authService) RefreshSession(ctx context.Context, userID, refreshToken string) (*domain.AuthSession, error) {
	user, err := s.tokens.ValidateAndParseRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

func (s *authService) issueSession(ctx context.Context, user *domain.User) (*domain.AuthSession, error) {
	accessToken, accessExpiry, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	refreshToken, refreshExpiry, err := s.tokens.GenerateRefreshToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashOpaqueToken(refreshToken), &refreshExpiry); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &domain.AuthSession{
		User:                  *user,
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

func (s *authService) SignOut(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token")
		return err
	}
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if user.AuthProvider != domain.ProviderLocal {
		return "", nil
	}

	token, err := utils.GenerateOpaqueToken(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.userRepo.SetResetToken(ctx, user.UserID, utils.HashOpaqueToken(token), s.Now().Add(s.cfg.PasswordResetExpiryDuration)); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.String("user_id", user.UserID))
		return "", err
	}
	s.LogInfo(ctx, "Password reset requested", slog.String("user_id", user.UserID))
	return token, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindUserByResetTokenHash(ctx, utils.HashOpaqueToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return err
	}
	if user.ResetTokenExpiryTime == nil || !s.Now().Before(*user.ResetTokenExpiryTime) {
		return apperrors.ErrResetTokenInvalid
	}
	return s.setPassword(ctx, user.UserID, newPassword)
}

func (s *authService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.GetCurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	return s.setPassword(ctx, userID, newPassword)
}

func (s *authService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Password updated", slog.String("user_id", userID))
	return nil
}
