package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/platform/config"
	"github.com/SscSPs/cross_currency_wallet/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService issues access tokens and validates refresh tokens.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func NewTokenService(cfg *config.Config, userRepo portsrepo.UserReader, options ...ServiceOption) portssvc.TokenSvcFacade {
	o := applyOptions(options)
	return &tokenService{
		BaseService: BaseService{clock: o.clock},
		cfg:         cfg,
		userRepo:    userRepo,
	}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.Now()
	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, now, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, now.Add(s.cfg.JWTExpiryDuration), nil
}

// GenerateRefreshToken returns a raw 32 byte token; only its hash is ever stored.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateOpaqueToken(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return raw, s.Now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !s.Now().Before(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.MatchesOpaqueToken(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// googleOAuthService validates Google Sign-In ID tokens against our client ID and
// redeems authorization codes from the web client's popup flow.
type googleOAuthService struct {
	clientID    string
	oauthConfig *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		clientID: cfg.GoogleClientID,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	if g.oauthConfig.ClientSecret == "" {
		return "", apperrors.NewAppError(http.StatusServiceUnavailable, "google code exchange is not configured", nil)
	}
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: failed to exchange google authorization code: %s", apperrors.ErrUnauthorized, err.Error())
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("%w: google response did not include an ID token", apperrors.ErrUnauthorized)
	}
	return idToken, nil
}

func (g *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if g.clientID == "" {
		return nil, errors.New("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %s", apperrors.ErrUnauthorized, err.Error())
	}
	return payload, nil
}
