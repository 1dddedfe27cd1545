package repositories

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// KYCRepositoryFacade persists KYC document metadata.
type KYCRepositoryFacade interface {
	SaveKYCDocument(ctx context.Context, doc domain.KYCDocument) error
	ListKYCDocumentsByUser(ctx context.Context, userID string) ([]domain.KYCDocument, error)
}
