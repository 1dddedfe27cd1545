package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser returns entries newest first plus a token for the next page, if any.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumOutgoingSince totals completed and in-flight debits from a wallet created at or after since.
	SumOutgoingSince(ctx context.Context, walletID string, since time.Time) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// SaveTransaction inserts a new ledger entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionFailed moves a processing entry to failed with the captured message.
	MarkTransactionFailed(ctx context.Context, transactionID string, errorMessage string, now time.Time) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
