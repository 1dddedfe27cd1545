package services

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteSvcFacade issues and manages time-boxed exchange quotes.
type QuoteSvcFacade interface {
	// CreateQuote prices fromAmount against the active rate and persists an active quote.
	CreateQuote(ctx context.Context, userID string, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.Quote, error)

	// PreviewExchange prices fromAmount like CreateQuote without persisting anything.
	PreviewExchange(ctx context.Context, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.ExchangeRate, domain.Conversion, error)

	GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error)
	CancelQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error)

	// ExpireStaleQuotes flips active quotes past their deadline to expired.
	ExpireStaleQuotes(ctx context.Context) (int64, error)
}
