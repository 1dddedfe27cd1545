package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

func ToModelKYCDocument(d domain.KYCDocument) models.KYCDocument {
	return models.KYCDocument{
		DocumentID:   d.DocumentID,
		UserID:       d.UserID,
		DocumentType: string(d.DocumentType),
		StorageKey:   d.StorageKey,
		FileURL:      d.FileURL,
		ContentType:  d.ContentType,
		Status:       string(d.Status),
		UploadedAt:   d.UploadedAt,
	}
}

func ToDomainKYCDocument(m models.KYCDocument) domain.KYCDocument {
	return domain.KYCDocument{
		DocumentID:   m.DocumentID,
		UserID:       m.UserID,
		DocumentType: domain.KYCDocumentType(m.DocumentType),
		StorageKey:   m.StorageKey,
		FileURL:      m.FileURL,
		ContentType:  m.ContentType,
		Status:       domain.KYCStatus(m.Status),
		UploadedAt:   m.UploadedAt,
	}
}
