package dto

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for publishing a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrency    string          `json:"fromCurrency" binding:"required,currency"`
	ToCurrency      string          `json:"toCurrency" binding:"required,currency,nefield=FromCurrency"`
	Rate            decimal.Decimal `json:"rate" binding:"required"`
	FeeFlat         decimal.Decimal `json:"feeFlat"`
	FeePercentage   decimal.Decimal `json:"feePercentage"`
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxAmount       decimal.Decimal `json:"maxAmount" binding:"required"`
	QuoteTTLSeconds int             `json:"quoteTTLSeconds" binding:"required,gt=0"`
	ValidFrom       *time.Time      `json:"validFrom"` // defaults to now
	ValidUntil      *time.Time      `json:"validUntil"`
}

// ListExchangeRatesParams defines the query parameters for listing rates.
type ListExchangeRatesParams struct {
	FromCurrency string `form:"from" binding:"omitempty,currency"`
	ToCurrency   string `form:"to" binding:"omitempty,currency"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive scheduled"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID  string          `json:"exchangeRateID"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	FeeFlat         decimal.Decimal `json:"feeFlat"`
	FeePercentage   decimal.Decimal `json:"feePercentage"`
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxAmount       decimal.Decimal `json:"maxAmount"`
	Status          string          `json:"status"`
	ValidFrom       time.Time       `json:"validFrom"`
	ValidUntil      *time.Time      `json:"validUntil,omitempty"`
	QuoteTTLSeconds int             `json:"quoteTTLSeconds"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:  rate.ExchangeRateID,
		FromCurrency:    string(rate.FromCurrency),
		ToCurrency:      string(rate.ToCurrency),
		Rate:            rate.Rate,
		FeeFlat:         rate.FeeFlat,
		FeePercentage:   rate.FeePercentage,
		MinAmount:       rate.MinAmount,
		MaxAmount:       rate.MaxAmount,
		Status:          string(rate.Status),
		ValidFrom:       rate.ValidFrom,
		ValidUntil:      rate.ValidUntil,
		QuoteTTLSeconds: rate.QuoteTTLSeconds,
		CreatedAt:       rate.CreatedAt,
		CreatedBy:       rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
