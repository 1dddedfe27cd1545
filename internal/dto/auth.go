package dto

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// SignUpRequest registers an email/password account.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"fullName" binding:"required,max=120"`
	Phone    string `json:"phone" binding:"omitempty,e164"`
}

// SignInRequest authenticates with email and password.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries the ID token obtained by the client from Google Sign-In.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleCodeRequest carries an authorization code from the web client's Google popup.
type GoogleCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new session.
// RefreshToken may be omitted when the refresh cookie is present.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken"`
}

// PasswordResetRequest asks for a reset token to be issued.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes a reset with the issued token.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// UpdatePasswordRequest changes the password of the signed-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// UserResponse is the public view of a profile.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse represents the response for a successful sign-in, sign-up or refresh.
type AuthResponse struct {
	AccessToken           string       `json:"accessToken"`
	AccessTokenExpiresAt  time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
	User                  UserResponse `json:"user"`
}

func ToAuthResponse(s *domain.AuthSession) AuthResponse {
	return AuthResponse{
		AccessToken:           s.AccessToken,
		AccessTokenExpiresAt:  s.AccessTokenExpiresAt,
		RefreshToken:          s.RefreshToken,
		RefreshTokenExpiresAt: s.RefreshTokenExpiresAt,
		User:                  ToUserResponse(&s.User),
	}
}

// PasswordResetResponse acknowledges a reset request. ResetToken is only populated outside production.
type PasswordResetResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}
