package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// ExchangeRateFilter narrows ListExchangeRates. Nil fields are not filtered on.
type ExchangeRateFilter struct {
	FromCurrency *domain.CurrencyCode
	ToCurrency   *domain.CurrencyCode
	Status       *domain.RateStatus
}

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindUnexpiredExchangeRates returns every active rate for the pair whose window has not
	// closed by now, including rates whose window opens later. Callers filter by time and
	// treat more than one row in effect as ambiguous.
	FindUnexpiredExchangeRates(ctx context.Context, from, to domain.CurrencyCode, now time.Time) ([]domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves a rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves rates newest first.
	ListExchangeRates(ctx context.Context, filter ExchangeRateFilter, limit, offset int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateExchangeRateStatus changes the status of a rate.
	UpdateExchangeRateStatus(ctx context.Context, rateID string, status domain.RateStatus, updatedBy string, now time.Time) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
