package repositories

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// WalletReader defines read operations for wallets
type WalletReader interface {
	// FindWalletByUserAndCurrency returns apperrors.ErrNotFound when the user has no wallet in that currency.
	FindWalletByUserAndCurrency(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error)

	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallets
type WalletWriter interface {
	// CreateWalletIfMissing inserts the wallet unless one already exists for its (user, currency).
	CreateWalletIfMissing(ctx context.Context, wallet domain.Wallet) error
}

// WalletRepositoryFacade combines all wallet repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
