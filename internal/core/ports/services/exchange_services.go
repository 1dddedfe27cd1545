package services

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// ExchangeSvcFacade settles quotes.
type ExchangeSvcFacade interface {
	// ExecuteExchange consumes an active, unexpired quote owned by userID, moving funds
	// between the user's two wallets and recording one ledger entry.
	ExecuteExchange(ctx context.Context, userID, quoteID string) (*domain.ExchangeResult, error)
}
