package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID  string          `db:"exchange_rate_id"`
	FromCurrency    string          `db:"from_currency"`
	ToCurrency      string          `db:"to_currency"`
	Rate            decimal.Decimal `db:"rate"`
	FeeFlat         decimal.Decimal `db:"fee_flat"`
	FeePercentage   decimal.Decimal `db:"fee_percentage"`
	MinAmount       decimal.Decimal `db:"min_amount"`
	MaxAmount       decimal.Decimal `db:"max_amount"`
	Status          string          `db:"status"`
	ValidFrom       time.Time       `db:"valid_from"`
	ValidUntil      sql.NullTime    `db:"valid_until"`
	QuoteTTLSeconds int             `db:"quote_ttl_seconds"`
	AuditFields
}
