package domain

import "time"

// UserRole gates access to rate administration.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the profile behind an authenticated identity.
type User struct {
	UserID                 string     `json:"userID"`
	Email                  string     `json:"email"`
	FullName               string     `json:"fullName"`
	Phone                  string     `json:"phone,omitempty"`
	Role                   UserRole   `json:"role"`
	PasswordHash           string     `json:"-"`
	AuthProvider           string     `json:"authProvider"`
	ProviderUserID         string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	ResetTokenHash         string     `json:"-"`
	ResetTokenExpiryTime   *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsAdmin reports whether the user may manage exchange rates.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// AuthSession is the credential set handed to a client after authentication.
type AuthSession struct {
	User                  User
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// GoogleUserInfo holds the verified identity claims from a Google ID token.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
