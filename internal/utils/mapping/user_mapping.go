package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Email:                  d.Email,
		FullName:               d.FullName,
		Phone:                  nonEmptyString(d.Phone),
		Role:                   string(d.Role),
		PasswordHash:           nonEmptyString(d.PasswordHash),
		AuthProvider:           d.AuthProvider,
		ProviderUserID:         nonEmptyString(d.ProviderUserID),
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
		RefreshTokenHash:       nonEmptyString(d.RefreshTokenHash),
		RefreshTokenExpiryTime: nullTime(d.RefreshTokenExpiryTime),
		ResetTokenHash:         nonEmptyString(d.ResetTokenHash),
		ResetTokenExpiryTime:   nullTime(d.ResetTokenExpiryTime),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Email:                  m.Email,
		FullName:               m.FullName,
		Phone:                  m.Phone.String,
		Role:                   domain.UserRole(m.Role),
		PasswordHash:           m.PasswordHash.String,
		AuthProvider:           m.AuthProvider,
		ProviderUserID:         m.ProviderUserID.String,
		RefreshTokenHash:       m.RefreshTokenHash.String,
		RefreshTokenExpiryTime: timePtr(m.RefreshTokenExpiryTime),
		ResetTokenHash:         m.ResetTokenHash.String,
		ResetTokenExpiryTime:   timePtr(m.ResetTokenExpiryTime),
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		DeletedAt:              m.DeletedAt,
	}
}
