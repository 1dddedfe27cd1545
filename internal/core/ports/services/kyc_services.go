package services

import (
	"context"
	"io"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// KYCUpload is a document received from the client.
type KYCUpload struct {
	DocumentType domain.KYCDocumentType
	FileName     string
	ContentType  string
	Body         io.Reader
}

// KYCSvcFacade stores identity documents.
type KYCSvcFacade interface {
	UploadDocument(ctx context.Context, userID string, upload KYCUpload) (*domain.KYCDocument, error)
	ListDocuments(ctx context.Context, userID string) ([]domain.KYCDocument, error)
}
