package services

import (
	"context"
	"errors"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/pagination"
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func NewTransactionService(txnRepo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

// GetTransaction hides entries of other users behind ErrNotFound.
func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to get transaction")
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := pagination.ClampLimit(params.Limit, 20, 100)

	txns, nextToken, err := s.txnRepo.ListTransactionsByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
