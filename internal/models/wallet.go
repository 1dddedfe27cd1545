package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a row of the wallets table.
type Wallet struct {
	WalletID         string              `db:"wallet_id"`
	UserID           string              `db:"user_id"`
	Currency         string              `db:"currency"`
	Balance          decimal.Decimal     `db:"balance"`
	AvailableBalance decimal.Decimal     `db:"available_balance"`
	ReservedBalance  decimal.Decimal     `db:"reserved_balance"`
	Status           string              `db:"status"`
	DailyLimit       decimal.NullDecimal `db:"daily_limit"`
	MonthlyLimit     decimal.NullDecimal `db:"monthly_limit"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}
