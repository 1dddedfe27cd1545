package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletStatus is the lifecycle state of a Wallet.
type WalletStatus string

const (
	WalletActive WalletStatus = "active"
	WalletFrozen WalletStatus = "frozen"
	WalletClosed WalletStatus = "closed"
)

// Wallet holds a user's balance in one currency. There is one per (user, currency).
type Wallet struct {
	WalletID         string           `json:"walletID"`
	UserID           string           `json:"userID"`
	Currency         CurrencyCode     `json:"currency"`
	Balance          decimal.Decimal  `json:"balance"`
	AvailableBalance decimal.Decimal  `json:"availableBalance"`
	ReservedBalance  decimal.Decimal  `json:"reservedBalance"`
	Status           WalletStatus     `json:"status"`
	DailyLimit       *decimal.Decimal `json:"dailyLimit,omitempty"`
	MonthlyLimit     *decimal.Decimal `json:"monthlyLimit,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CanDebit reports whether amount can be taken from the available balance.
func (w Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.AvailableBalance.GreaterThanOrEqual(amount)
}

// HasLimits reports whether any spending limit is configured.
func (w Wallet) HasLimits() bool {
	return w.DailyLimit != nil || w.MonthlyLimit != nil
}
