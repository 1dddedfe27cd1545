package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// QuoteReader defines read operations for quotes
type QuoteReader interface {
	// FindQuoteByID returns apperrors.ErrNotFound when absent.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	SaveQuote(ctx context.Context, quote domain.Quote) error

	// TransitionQuoteStatus moves a quote from one status to another only if it is
	// still in the expected status. Returns apperrors.ErrConflict otherwise.
	TransitionQuoteStatus(ctx context.Context, quoteID string, from, to domain.QuoteStatus) error

	// ExpireQuotes marks every active quote whose deadline has passed as expired.
	ExpireQuotes(ctx context.Context, now time.Time) (int64, error)
}

// QuoteRepositoryFacade combines all quote repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
