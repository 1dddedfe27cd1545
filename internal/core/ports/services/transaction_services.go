package services

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
)

// TransactionSvcFacade exposes the ledger history of a user.
type TransactionSvcFacade interface {
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
