package services

import (
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/platform/config"
)

// Integrations carries the optional adapters built in main. Nil fields disable the feature.
type Integrations struct {
	RateCache    portsrepo.ExchangeRateCache
	SpendTracker portsrepo.SpendTracker
	Storage      portsrepo.DocumentStorage
}

// NewServiceContainer creates and returns a new ServiceContainer with all services initialized
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, integrations Integrations, options ...ServiceOption) *portssvc.ServiceContainer {
	opts := options
	if integrations.RateCache != nil {
		opts = append(opts, WithRateCache(integrations.RateCache))
	}
	if integrations.SpendTracker != nil {
		opts = append(opts, WithSpendTracker(integrations.SpendTracker))
	}

	rateSvc := NewExchangeRateService(repos.ExchangeRateRepo, opts...)
	walletSvc := NewWalletService(repos.WalletRepo, opts...)
	tokenSvc := NewTokenService(cfg, repos.UserRepo, opts...)

	return &portssvc.ServiceContainer{
		ExchangeRate: rateSvc,
		Quote:        NewQuoteService(rateSvc, repos.QuoteRepo, opts...),
		Exchange:     NewExchangeService(repos.QuoteRepo, repos.WalletRepo, repos.TransactionRepo, repos.SettlementRepo, opts...),
		Wallet:       walletSvc,
		Transaction:  NewTransactionService(repos.TransactionRepo),
		Auth:         NewAuthService(cfg, repos.UserRepo, tokenSvc, NewGoogleOAuthService(cfg), walletSvc, opts...),
		KYC:          NewKYCService(repos.KYCRepo, integrations.Storage, opts...),
	}
}
