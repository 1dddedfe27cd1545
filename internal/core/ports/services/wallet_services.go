package services

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
)

// WalletSvcFacade exposes a user's wallets.
type WalletSvcFacade interface {
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)
	GetWallet(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error)

	// ProvisionWallets makes sure the user has one wallet per supported currency.
	ProvisionWallets(ctx context.Context, userID string) error
}
