package dto

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// KYCDocumentResponse defines the data returned for an uploaded document.
type KYCDocumentResponse struct {
	DocumentID   string    `json:"documentID"`
	DocumentType string    `json:"documentType"`
	FileURL      string    `json:"fileURL"`
	Status       string    `json:"status"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func ToKYCDocumentResponse(d *domain.KYCDocument) KYCDocumentResponse {
	return KYCDocumentResponse{
		DocumentID:   d.DocumentID,
		DocumentType: string(d.DocumentType),
		FileURL:      d.FileURL,
		Status:       string(d.Status),
		UploadedAt:   d.UploadedAt,
	}
}

func ToListKYCDocumentResponse(docs []domain.KYCDocument) []KYCDocumentResponse {
	responses := make([]KYCDocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToKYCDocumentResponse(&docs[i])
	}
	return responses
}
