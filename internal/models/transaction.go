package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions ledger table.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	UserID        string              `db:"user_id"`
	Type          string              `db:"type"`
	Status        string              `db:"status"`
	FromCurrency  sql.NullString      `db:"from_currency"`
	ToCurrency    sql.NullString      `db:"to_currency"`
	FromWalletID  sql.NullString      `db:"from_wallet_id"`
	ToWalletID    sql.NullString      `db:"to_wallet_id"`
	FromAmount    decimal.NullDecimal `db:"from_amount"`
	ToAmount      decimal.NullDecimal `db:"to_amount"`
	FeeAmount     decimal.Decimal     `db:"fee_amount"`
	ExchangeRate  decimal.NullDecimal `db:"exchange_rate"`
	QuoteID       sql.NullString      `db:"quote_id"`
	Reference     string              `db:"reference"`
	Description   string              `db:"description"`
	Metadata      map[string]any      `db:"metadata"`
	ErrorMessage  sql.NullString      `db:"error_message"`
	ProcessedAt   sql.NullTime        `db:"processed_at"`
	CompletedAt   sql.NullTime        `db:"completed_at"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}
