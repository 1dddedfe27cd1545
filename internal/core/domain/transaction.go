package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionExchange   TransactionType = "exchange"
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionFee        TransactionType = "fee"
	TransactionReversal   TransactionType = "reversal"
)

// TransactionStatus is the lifecycle state of a ledger entry.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
	TransactionReversed   TransactionStatus = "reversed"
)

// IsTerminal reports whether no further transition is expected.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionCompleted, TransactionFailed, TransactionCancelled, TransactionReversed:
		return true
	}
	return false
}

// Transaction is one ledger entry. Exchanges fill both legs.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	FromCurrency  *CurrencyCode     `json:"fromCurrency,omitempty"`
	ToCurrency    *CurrencyCode     `json:"toCurrency,omitempty"`
	FromWalletID  *string           `json:"fromWalletID,omitempty"`
	ToWalletID    *string           `json:"toWalletID,omitempty"`
	FromAmount    *decimal.Decimal  `json:"fromAmount,omitempty"`
	ToAmount      *decimal.Decimal  `json:"toAmount,omitempty"`
	FeeAmount     decimal.Decimal   `json:"feeAmount"`
	ExchangeRate  *decimal.Decimal  `json:"exchangeRate,omitempty"`
	QuoteID       *string           `json:"quoteID,omitempty"`
	Reference     string            `json:"reference"`
	Description   string            `json:"description"`
	Metadata      map[string]any    `json:"metadata,omitempty"`
	ErrorMessage  *string           `json:"errorMessage,omitempty"`
	ProcessedAt   *time.Time        `json:"processedAt,omitempty"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ExchangeReference builds the human-reconcilable ledger reference for an exchange:
// EX-<yyyymmddHHMMSS>-<first 8 characters of the transaction id, upper-cased>.
func ExchangeReference(now time.Time, transactionID string) string {
	prefix := strings.ReplaceAll(transactionID, "-", "")
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return "EX-" + now.UTC().Format("20060102150405") + "-" + strings.ToUpper(prefix)
}

// IsMultiCurrency reports whether both legs are present and in different currencies.
func (t Transaction) IsMultiCurrency() bool {
	return t.FromCurrency != nil && t.ToCurrency != nil && *t.FromCurrency != *t.ToCurrency
}

// ExchangeResult is what a settled exchange returns: the completed entry and both wallets after settlement.
type ExchangeResult struct {
	Transaction Transaction `json:"transaction"`
	FromWallet  Wallet      `json:"fromWallet"`
	ToWallet    Wallet      `json:"toWallet"`
}
