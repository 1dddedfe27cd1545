package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeSettlement describes the balance movements that consume one quote.
type ExchangeSettlement struct {
	TransactionID string
	QuoteID       string
	FromWalletID  string
	ToWalletID    string
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
	SettledAt     time.Time
}

// SettlementRepository applies an exchange atomically.
type SettlementRepository interface {
	// SettleExchange flips the quote from active to executed, debits the source wallet,
	// credits the destination wallet and completes the ledger entry in one database
	// transaction. Nothing is applied if any step fails.
	SettleExchange(ctx context.Context, s ExchangeSettlement) error
}

type SettlementRepositoryWithTx interface {
	SettlementRepository
	Transactor
}
