package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type exchangeService struct {
	BaseService
	quoteRepo      portsrepo.QuoteRepositoryFacade
	walletRepo     portsrepo.WalletReader
	txnRepo        portsrepo.TransactionRepositoryFacade
	settlementRepo portsrepo.SettlementRepository
	spendTracker   portsrepo.SpendTracker
	analytics      *utils.Analytics
	quoteLocks     *keyedLock
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// NewExchangeService creates the quote settlement service.
func NewExchangeService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	walletRepo portsrepo.WalletReader,
	txnRepo portsrepo.TransactionRepositoryFacade,
	settlementRepo portsrepo.SettlementRepository,
	options ...ServiceOption,
) portssvc.ExchangeSvcFacade {
	o := applyOptions(options)
	return &exchangeService{
		BaseService:    BaseService{clock: o.clock},
		quoteRepo:      quoteRepo,
		walletRepo:     walletRepo,
		txnRepo:        txnRepo,
		settlementRepo: settlementRepo,
		spendTracker:   o.spendTracker,
		analytics:      o.analytics,
		quoteLocks:     newKeyedLock(),
	}
}

// ExecuteExchange validates the quote and wallets, opens a processing ledger entry and settles
// the quote in one database transaction. A failed settlement leaves no balance change and the
// ledger entry is marked failed.
func (s *exchangeService) ExecuteExchange(ctx context.Context, userID, quoteID string) (*domain.ExchangeResult, error) {
	unlock := s.quoteLocks.Lock(quoteID)
	defer unlock()

	logger := s.GetLogger(ctx).With(slog.String("quote_id", quoteID))

	quote, err := loadOwnedQuote(ctx, s.quoteRepo, userID, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuoteUnauthorized) {
			logger.Warn("Quote execution attempted by non-owner")
		}
		return nil, err
	}
	if quote.Status != domain.QuoteActive {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrQuoteNotActive, quote.Status)
	}

	now := s.Now()
	if quote.IsExpired(now) {
		// Best effort; the sweeper catches anything missed here.
		if err := s.quoteRepo.TransitionQuoteStatus(ctx, quoteID, domain.QuoteActive, domain.QuoteExpired); err != nil {
			logger.Debug("Could not mark expired quote", slog.String("error", err.Error()))
		}
		return nil, apperrors.ErrQuoteExpired
	}

	fromWallet, toWallet, err := s.loadWallets(ctx, userID, quote.FromCurrency, quote.ToCurrency)
	if err != nil {
		return nil, err
	}
	if fromWallet.Status != domain.WalletActive || toWallet.Status != domain.WalletActive {
		return nil, apperrors.ErrWalletNotActive
	}
	if !fromWallet.CanDebit(quote.FromAmount) {
		return nil, fmt.Errorf("%w: available %s, required %s", apperrors.ErrInsufficientBalance, fromWallet.AvailableBalance, quote.FromAmount)
	}
	if err := s.checkLimits(ctx, fromWallet, quote.FromAmount, now); err != nil {
		return nil, err
	}

	txn := newExchangeTransaction(quote, fromWallet, toWallet, now)
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to open ledger entry", slog.String("error", err.Error()))
		return nil, err
	}
	logger = logger.With(slog.String("transaction_id", txn.TransactionID), slog.String("reference", txn.Reference))

	settledAt := s.Now()
	err = s.settlementRepo.SettleExchange(ctx, portsrepo.ExchangeSettlement{
		TransactionID: txn.TransactionID,
		QuoteID:       quote.QuoteID,
		FromWalletID:  fromWallet.WalletID,
		ToWalletID:    toWallet.WalletID,
		DebitAmount:   quote.FromAmount,
		CreditAmount:  quote.ToAmount,
		SettledAt:     settledAt,
	})
	if err != nil {
		s.failTransaction(ctx, logger, txn.TransactionID, err)
		return nil, err
	}

	if s.spendTracker != nil {
		if err := s.spendTracker.RecordSpend(ctx, fromWallet.WalletID, quote.FromAmount, settledAt); err != nil {
			logger.Warn("Failed to record spend", slog.String("error", err.Error()))
		}
	}

	txn.Status = domain.TransactionCompleted
	txn.ProcessedAt = &settledAt
	txn.CompletedAt = &settledAt
	txn.UpdatedAt = settledAt

	result := &domain.ExchangeResult{Transaction: txn}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.walletRepo.FindWalletByID(gctx, fromWallet.WalletID)
		if err != nil {
			return err
		}
		result.FromWallet = *w
		return nil
	})
	g.Go(func() error {
		w, err := s.walletRepo.FindWalletByID(gctx, toWallet.WalletID)
		if err != nil {
			return err
		}
		result.ToWallet = *w
		return nil
	})
	if err := g.Wait(); err != nil {
		// Settlement is committed; report it with the balances we can derive.
		logger.Warn("Failed to re-fetch wallets after exchange", slog.String("error", err.Error()))
		result.FromWallet = adjusted(*fromWallet, quote.FromAmount.Neg(), settledAt)
		result.ToWallet = adjusted(*toWallet, quote.ToAmount, settledAt)
	}

	logger.Info("Exchange completed",
		slog.String("from_amount", quote.FromAmount.String()),
		slog.String("to_amount", quote.ToAmount.String()),
		slog.String("fee", quote.TotalFee.String()))
	s.analytics.Capture(userID, "exchange_completed", map[string]any{
		"quote_id":      quote.QuoteID,
		"from_currency": string(quote.FromCurrency),
		"to_currency":   string(quote.ToCurrency),
		"from_amount":   quote.FromAmount.String(),
		"to_amount":     quote.ToAmount.String(),
	})
	return result, nil
}

func (s *exchangeService) loadWallets(ctx context.Context, userID string, from, to domain.CurrencyCode) (*domain.Wallet, *domain.Wallet, error) {
	fromWallet, err := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, from)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, from)
		}
		return nil, nil, err
	}
	toWallet, err := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, to)
		}
		return nil, nil, err
	}
	return fromWallet, toWallet, nil
}

// checkLimits rejects amounts that would take the wallet over its daily or monthly limit.
func (s *exchangeService) checkLimits(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, now time.Time) error {
	limits := []struct {
		period portsrepo.LimitPeriod
		limit  *decimal.Decimal
	}{
		{portsrepo.LimitDaily, wallet.DailyLimit},
		{portsrepo.LimitMonthly, wallet.MonthlyLimit},
	}
	for _, l := range limits {
		if l.limit == nil {
			continue
		}
		spent, err := s.spent(ctx, wallet.WalletID, l.period, now)
		if err != nil {
			return err
		}
		if spent.Add(amount).GreaterThan(*l.limit) {
			return fmt.Errorf("%w: %s limit %s, already spent %s", apperrors.ErrLimitExceeded, l.period, l.limit, spent)
		}
	}
	return nil
}

func (s *exchangeService) spent(ctx context.Context, walletID string, period portsrepo.LimitPeriod, now time.Time) (decimal.Decimal, error) {
	if s.spendTracker != nil {
		v, err := s.spendTracker.Spent(ctx, walletID, period, now)
		if err == nil {
			return v, nil
		}
		s.LogWarn(ctx, "Spend tracker unavailable, summing ledger", slog.String("error", err.Error()))
	}
	return s.txnRepo.SumOutgoingSince(ctx, walletID, period.PeriodStart(now))
}

// failTransaction records the settlement error on the ledger entry. If even that fails the
// entry stays processing and needs manual reconciliation.
func (s *exchangeService) failTransaction(ctx context.Context, logger *slog.Logger, transactionID string, cause error) {
	if err := s.txnRepo.MarkTransactionFailed(ctx, transactionID, cause.Error(), s.Now()); err != nil {
		logger.Error("Reconciliation required: ledger entry could not be marked failed",
			slog.String("settlement_error", cause.Error()),
			slog.String("error", err.Error()))
		return
	}
	logger.Warn("Exchange settlement failed", slog.String("error", cause.Error()))
}

func newExchangeTransaction(quote *domain.Quote, fromWallet, toWallet *domain.Wallet, now time.Time) domain.Transaction {
	id := uuid.NewString()
	fromCurrency, toCurrency := quote.FromCurrency, quote.ToCurrency
	fromAmount, toAmount, rate := quote.FromAmount, quote.ToAmount, quote.ExchangeRate
	quoteID := quote.QuoteID
	return domain.Transaction{
		TransactionID: id,
		UserID:        quote.UserID,
		Type:          domain.TransactionExchange,
		Status:        domain.TransactionProcessing,
		FromCurrency:  &fromCurrency,
		ToCurrency:    &toCurrency,
		FromWalletID:  &fromWallet.WalletID,
		ToWalletID:    &toWallet.WalletID,
		FromAmount:    &fromAmount,
		ToAmount:      &toAmount,
		FeeAmount:     quote.TotalFee,
		ExchangeRate:  &rate,
		QuoteID:       &quoteID,
		Reference:     domain.ExchangeReference(now, id),
		Description:   fmt.Sprintf("Exchange %s %s to %s %s", fromAmount, fromCurrency, toAmount, toCurrency),
		Metadata: map[string]any{
			"quote_id":       quote.QuoteID,
			"rate_id":        quote.RateID,
			"fee_flat":       quote.FeeFlat.String(),
			"fee_percentage": quote.FeePercentage.String(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// adjusted applies delta to both balances: negative for a debit, positive for a credit.
func adjusted(w domain.Wallet, delta decimal.Decimal, at time.Time) domain.Wallet {
	w.Balance = w.Balance.Add(delta)
	w.AvailableBalance = w.AvailableBalance.Add(delta)
	w.UpdatedAt = at
	return w
}
