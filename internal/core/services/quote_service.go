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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type quoteService struct {
	BaseService
	rates     portssvc.ExchangeRateReaderSvc
	quoteRepo portsrepo.QuoteRepositoryFacade
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

// NewQuoteService creates the quote issuance service.
func NewQuoteService(rates portssvc.ExchangeRateReaderSvc, quoteRepo portsrepo.QuoteRepositoryFacade, options ...ServiceOption) portssvc.QuoteSvcFacade {
	o := applyOptions(options)
	return &quoteService{
		BaseService: BaseService{clock: o.clock},
		rates:       rates,
		quoteRepo:   quoteRepo,
	}
}

// price resolves the active rate and applies it to fromAmount, enforcing the rate's bounds.
func (s *quoteService) price(ctx context.Context, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.ExchangeRate, domain.Conversion, error) {
	if !fromAmount.IsPositive() {
		return nil, domain.Conversion{}, apperrors.ErrInvalidAmount
	}

	rate, err := s.rates.GetActiveExchangeRate(ctx, from, to)
	if err != nil {
		return nil, domain.Conversion{}, err
	}
	if rate == nil {
		return nil, domain.Conversion{}, fmt.Errorf("%w for %s to %s", apperrors.ErrNoActiveRate, from, to)
	}

	if fromAmount.LessThan(rate.MinAmount) {
		return nil, domain.Conversion{}, fmt.Errorf("%w: minimum is %s %s", apperrors.ErrAmountBelowMinimum, rate.MinAmount, from)
	}
	if fromAmount.GreaterThan(rate.MaxAmount) {
		return nil, domain.Conversion{}, fmt.Errorf("%w: maximum is %s %s", apperrors.ErrAmountAboveMaximum, rate.MaxAmount, from)
	}

	conv := rate.Convert(fromAmount)
	if !conv.ToAmount.IsPositive() {
		return nil, domain.Conversion{}, apperrors.ErrAmountTooSmallAfterFees
	}
	return rate, conv, nil
}

func (s *quoteService) PreviewExchange(ctx context.Context, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.ExchangeRate, domain.Conversion, error) {
	return s.price(ctx, from, to, fromAmount)
}

func (s *quoteService) CreateQuote(ctx context.Context, userID string, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.Quote, error) {
	rate, conv, err := s.price(ctx, from, to, fromAmount)
	if err != nil {
		return nil, err
	}

	// Quote timestamps are kept to whole seconds.
	now := s.Now().Truncate(time.Second)
	quote := domain.Quote{
		QuoteID:       uuid.NewString(),
		UserID:        userID,
		RateID:        rate.ExchangeRateID,
		FromCurrency:  from,
		ToCurrency:    to,
		FromAmount:    conv.FromAmount,
		ExchangeRate:  rate.Rate,
		FeeFlat:       rate.FeeFlat,
		FeePercentage: rate.FeePercentage,
		TotalFee:      conv.TotalFee,
		ToAmount:      conv.ToAmount,
		Status:        domain.QuoteActive,
		ExpiresAt:     now.Add(rate.QuoteTTL()),
		CreatedAt:     now,
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("quote_id", quote.QuoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote issued",
		slog.String("quote_id", quote.QuoteID),
		slog.String("rate_id", quote.RateID),
		slog.String("from_amount", quote.FromAmount.String()),
		slog.String("to_amount", quote.ToAmount.String()),
		slog.Time("expires_at", quote.ExpiresAt))
	return &quote, nil
}

// loadOwnedQuote fetches a quote and checks it belongs to userID.
func loadOwnedQuote(ctx context.Context, repo portsrepo.QuoteReader, userID, quoteID string) (*domain.Quote, error) {
	quote, err := repo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrQuoteNotFound
		}
		return nil, err
	}
	if quote.UserID != userID {
		return nil, apperrors.ErrQuoteUnauthorized
	}
	return quote, nil
}

func (s *quoteService) GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	return loadOwnedQuote(ctx, s.quoteRepo, userID, quoteID)
}

func (s *quoteService) CancelQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	quote, err := loadOwnedQuote(ctx, s.quoteRepo, userID, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.QuoteActive {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrQuoteNotActive, quote.Status)
	}

	if err := s.quoteRepo.TransitionQuoteStatus(ctx, quoteID, domain.QuoteActive, domain.QuoteCancelled); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", apperrors.ErrQuoteNotActive)
		}
		s.LogError(ctx, err, "Failed to cancel quote", slog.String("quote_id", quoteID))
		return nil, err
	}

	quote.Status = domain.QuoteCancelled
	s.LogInfo(ctx, "Quote cancelled", slog.String("quote_id", quoteID))
	return quote, nil
}

func (s *quoteService) ExpireStaleQuotes(ctx context.Context) (int64, error) {
	n, err := s.quoteRepo.ExpireQuotes(ctx, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to expire stale quotes")
		return 0, err
	}
	if n > 0 {
		s.LogInfo(ctx, "Expired stale quotes", slog.Int64("count", n))
	}
	return n, nil
}
