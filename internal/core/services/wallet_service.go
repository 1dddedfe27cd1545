package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, options ...ServiceOption) portssvc.WalletSvcFacade {
	o := applyOptions(options)
	return &walletService{
		BaseService: BaseService{clock: o.clock},
		walletRepo:  walletRepo,
	}
}

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets")
		return nil, err
	}
	return wallets, nil
}

func (s *walletService) GetWallet(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error) {
	if !currency.IsSupported() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, currency)
	}
	wallet, err := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, currency)
		}
		s.LogError(ctx, err, "Failed to get wallet", slog.String("currency", string(currency)))
		return nil, err
	}
	return wallet, nil
}

// ProvisionWallets is idempotent; existing wallets are left untouched.
func (s *walletService) ProvisionWallets(ctx context.Context, userID string) error {
	now := s.Now()
	for _, cur := range domain.SupportedCurrencies {
		wallet := domain.Wallet{
			WalletID:         uuid.NewString(),
			UserID:           userID,
			Currency:         cur.Code,
			Balance:          decimal.Zero,
			AvailableBalance: decimal.Zero,
			ReservedBalance:  decimal.Zero,
			Status:           domain.WalletActive,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.walletRepo.CreateWalletIfMissing(ctx, wallet); err != nil {
			s.LogError(ctx, err, "Failed to provision wallet", slog.String("currency", string(cur.Code)))
			return err
		}
	}
	s.LogDebug(ctx, "Wallets provisioned", slog.Int("count", len(domain.SupportedCurrencies)))
	return nil
}
