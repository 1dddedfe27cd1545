package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a Quote.
type QuoteStatus string

const (
	QuoteActive    QuoteStatus = "active"
	QuoteExecuted  QuoteStatus = "executed"
	QuoteExpired   QuoteStatus = "expired"
	QuoteCancelled QuoteStatus = "cancelled"
)

// Quote is a time-boxed conversion offer with the rate and fees frozen at issue time.
type Quote struct {
	QuoteID       string          `json:"quoteID"`
	UserID        string          `json:"userID"`
	RateID        string          `json:"rateID"`
	FromCurrency  CurrencyCode    `json:"fromCurrency"`
	ToCurrency    CurrencyCode    `json:"toCurrency"`
	FromAmount    decimal.Decimal `json:"fromAmount"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	FeeFlat       decimal.Decimal `json:"feeFlat"`
	FeePercentage decimal.Decimal `json:"feePercentage"`
	TotalFee      decimal.Decimal `json:"totalFee"`
	ToAmount      decimal.Decimal `json:"toAmount"`
	Status        QuoteStatus     `json:"status"`
	ExpiresAt     time.Time       `json:"expiresAt"`
	ExecutedAt    *time.Time      `json:"executedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsExpired reports whether the execution deadline has passed at now.
// The stored status is not consulted: an active quote can be past its deadline.
func (q Quote) IsExpired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

// TimeRemaining is the time left before the quote expires, never negative.
func (q Quote) TimeRemaining(now time.Time) time.Duration {
	if q.IsExpired(now) {
		return 0
	}
	return q.ExpiresAt.Sub(now)
}

// IsExecutable reports whether the quote can still be settled at now.
func (q Quote) IsExecutable(now time.Time) bool {
	return q.Status == QuoteActive && !q.IsExpired(now)
}

// Conversion is the fee-adjusted result of applying a rate to an amount.
type Conversion struct {
	FromAmount  decimal.Decimal
	GrossAmount decimal.Decimal
	TotalFee    decimal.Decimal
	ToAmount    decimal.Decimal
}

// Convert applies the rate and its fee schedule to fromAmount:
// totalFee = feeFlat + fromAmount*feePercentage, toAmount = fromAmount*rate - totalFee.
func (r ExchangeRate) Convert(fromAmount decimal.Decimal) Conversion {
	totalFee := r.FeeFlat.Add(fromAmount.Mul(r.FeePercentage))
	gross := fromAmount.Mul(r.Rate)
	return Conversion{
		FromAmount:  fromAmount,
		GrossAmount: gross,
		TotalFee:    totalFee,
		ToAmount:    gross.Sub(totalFee),
	}
}
