package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a row of the quotes table.
type Quote struct {
	QuoteID       string          `db:"quote_id"`
	UserID        string          `db:"user_id"`
	RateID        string          `db:"rate_id"`
	FromCurrency  string          `db:"from_currency"`
	ToCurrency    string          `db:"to_currency"`
	FromAmount    decimal.Decimal `db:"from_amount"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	FeeFlat       decimal.Decimal `db:"fee_flat"`
	FeePercentage decimal.Decimal `db:"fee_percentage"`
	TotalFee      decimal.Decimal `db:"total_fee"`
	ToAmount      decimal.Decimal `db:"to_amount"`
	Status        string          `db:"status"`
	ExpiresAt     time.Time       `db:"expires_at"`
	ExecutedAt    sql.NullTime    `db:"executed_at"`
	CreatedAt     time.Time       `db:"created_at"`
}
