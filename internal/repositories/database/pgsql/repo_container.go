package pgsql

import (
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		QuoteRepo:        newPgxQuoteRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		SettlementRepo:   newPgxSettlementRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		KYCRepo:          newPgxKYCRepository(dbPool),
	}
}
