package models

import (
	"database/sql"
	"time"
)

// User is a row of the profiles table, including credential fields.
type User struct {
	UserID         string         `db:"user_id"`
	Email          string         `db:"email"`
	FullName       string         `db:"full_name"`
	Phone          sql.NullString `db:"phone"`
	Role           string         `db:"role"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	// Password reset fields
	ResetTokenHash       sql.NullString `db:"reset_token_hash"`
	ResetTokenExpiryTime sql.NullTime   `db:"reset_token_expiry_time"`
}
