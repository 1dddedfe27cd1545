package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RateStatus is the lifecycle state of an ExchangeRate row.
type RateStatus string

const (
	RateActive    RateStatus = "active"
	RateInactive  RateStatus = "inactive"
	RateScheduled RateStatus = "scheduled"
)

// ExchangeRate is the conversion rate and fee schedule for one ordered currency pair.
type ExchangeRate struct {
	ExchangeRateID  string          `json:"exchangeRateID"`
	FromCurrency    CurrencyCode    `json:"fromCurrency"`
	ToCurrency      CurrencyCode    `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	FeeFlat         decimal.Decimal `json:"feeFlat"`
	FeePercentage   decimal.Decimal `json:"feePercentage"` // fraction, 0.01 means 1%
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxAmount       decimal.Decimal `json:"maxAmount"`
	Status          RateStatus      `json:"status"`
	ValidFrom       time.Time       `json:"validFrom"`
	ValidUntil      *time.Time      `json:"validUntil,omitempty"`
	QuoteTTLSeconds int             `json:"quoteTTLSeconds"`
	AuditFields
}

// IsActiveAt reports whether the rate is authoritative at now.
func (r ExchangeRate) IsActiveAt(now time.Time) bool {
	if r.Status != RateActive || r.ValidFrom.After(now) {
		return false
	}
	return r.ValidUntil == nil || r.ValidUntil.After(now)
}

// QuoteTTL is how long a quote issued against this rate stays executable.
func (r ExchangeRate) QuoteTTL() time.Duration {
	return time.Duration(r.QuoteTTLSeconds) * time.Second
}

// Validate checks the invariants every stored rate must hold.
func (r ExchangeRate) Validate() error {
	switch {
	case !r.FromCurrency.IsSupported() || !r.ToCurrency.IsSupported():
		return errors.New("unsupported currency")
	case r.FromCurrency == r.ToCurrency:
		return errors.New("from and to currencies cannot be the same")
	case !r.Rate.IsPositive():
		return errors.New("rate must be positive")
	case r.FeeFlat.IsNegative() || r.FeePercentage.IsNegative():
		return errors.New("fees cannot be negative")
	case r.MinAmount.IsNegative() || r.MinAmount.GreaterThan(r.MaxAmount):
		return errors.New("min amount must be non-negative and not exceed max amount")
	case r.QuoteTTLSeconds <= 0:
		return errors.New("quote ttl must be positive")
	case r.ValidUntil != nil && !r.ValidUntil.After(r.ValidFrom):
		return errors.New("valid until must be after valid from")
	}
	return nil
}

// Overlaps reports whether the validity windows of r and o intersect.
func (r ExchangeRate) Overlaps(o ExchangeRate) bool {
	startsBeforeOtherEnds := o.ValidUntil == nil || r.ValidFrom.Before(*o.ValidUntil)
	otherStartsBeforeEnd := r.ValidUntil == nil || o.ValidFrom.Before(*r.ValidUntil)
	return startsBeforeOtherEnds && otherStartsBeforeEnd
}
