package services

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetActiveExchangeRate returns the single rate authoritative for the pair right now,
	// or nil with no error when there is none.
	GetActiveExchangeRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.ExchangeRate, error)

	ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
	DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
