package dto

import (
	"math"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest asks for a priced, time-boxed exchange offer.
type CreateQuoteRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currency,nefield=FromCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount" binding:"required"`
}

// PreviewExchangeRequest has the same shape as a quote request but nothing is stored.
type PreviewExchangeRequest CreateQuoteRequest

// QuoteResponse is a quote plus the advisory countdown the client displays.
type QuoteResponse struct {
	QuoteID          string          `json:"quoteID"`
	RateID           string          `json:"rateID"`
	FromCurrency     string          `json:"fromCurrency"`
	ToCurrency       string          `json:"toCurrency"`
	FromAmount       decimal.Decimal `json:"fromAmount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	FeeFlat          decimal.Decimal `json:"feeFlat"`
	FeePercentage    decimal.Decimal `json:"feePercentage"`
	TotalFee         decimal.Decimal `json:"totalFee"`
	ToAmount         decimal.Decimal `json:"toAmount"`
	Status           string          `json:"status"`
	ExpiresAt        time.Time       `json:"expiresAt"`
	SecondsRemaining int64           `json:"secondsRemaining"`
	ExecutedAt       *time.Time      `json:"executedAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToQuoteResponse converts a quote, computing the countdown relative to now.
func ToQuoteResponse(q *domain.Quote, now time.Time) QuoteResponse {
	return QuoteResponse{
		QuoteID:          q.QuoteID,
		RateID:           q.RateID,
		FromCurrency:     string(q.FromCurrency),
		ToCurrency:       string(q.ToCurrency),
		FromAmount:       q.FromAmount,
		ExchangeRate:     q.ExchangeRate,
		FeeFlat:          q.FeeFlat,
		FeePercentage:    q.FeePercentage,
		TotalFee:         q.TotalFee,
		ToAmount:         q.ToAmount,
		Status:           string(q.Status),
		ExpiresAt:        q.ExpiresAt,
		SecondsRemaining: int64(math.Ceil(q.TimeRemaining(now).Seconds())),
		ExecutedAt:       q.ExecutedAt,
		CreatedAt:        q.CreatedAt,
	}
}

// ExchangePreviewResponse is the estimate shown before a quote is requested.
type ExchangePreviewResponse struct {
	RateID          string          `json:"rateID"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	FromAmount      decimal.Decimal `json:"fromAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	TotalFee        decimal.Decimal `json:"totalFee"`
	ToAmount        decimal.Decimal `json:"toAmount"`
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxAmount       decimal.Decimal `json:"maxAmount"`
	QuoteTTLSeconds int             `json:"quoteTTLSeconds"`
}

func ToExchangePreviewResponse(rate *domain.ExchangeRate, conv domain.Conversion) ExchangePreviewResponse {
	return ExchangePreviewResponse{
		RateID:          rate.ExchangeRateID,
		FromCurrency:    string(rate.FromCurrency),
		ToCurrency:      string(rate.ToCurrency),
		FromAmount:      conv.FromAmount,
		ExchangeRate:    rate.Rate,
		GrossAmount:     conv.GrossAmount,
		TotalFee:        conv.TotalFee,
		ToAmount:        conv.ToAmount,
		MinAmount:       rate.MinAmount,
		MaxAmount:       rate.MaxAmount,
		QuoteTTLSeconds: rate.QuoteTTLSeconds,
	}
}
