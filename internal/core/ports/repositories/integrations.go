package repositories

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentStorage stores uploaded files and returns a retrievable public URL.
type DocumentStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// LimitPeriod is the window a spending limit applies to.
type LimitPeriod string

const (
	LimitDaily   LimitPeriod = "daily"
	LimitMonthly LimitPeriod = "monthly"
)

// PeriodStart returns the start of the period containing now, in UTC.
func (p LimitPeriod) PeriodStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	if p == LimitMonthly {
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the first instant after the period containing now.
func (p LimitPeriod) PeriodEnd(now time.Time) time.Time {
	start := p.PeriodStart(now)
	if p == LimitMonthly {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 1)
}

// SpendTracker keeps running outgoing totals per wallet and period.
type SpendTracker interface {
	Spent(ctx context.Context, walletID string, period LimitPeriod, now time.Time) (decimal.Decimal, error)
	RecordSpend(ctx context.Context, walletID string, amount decimal.Decimal, now time.Time) error
}

// ExchangeRateCache is a read-through cache in front of the active-rate lookup.
type ExchangeRateCache interface {
	GetActive(from, to domain.CurrencyCode) ([]domain.ExchangeRate, bool)
	SetActive(from, to domain.CurrencyCode, rates []domain.ExchangeRate)
	Invalidate(from, to domain.CurrencyCode)
}
