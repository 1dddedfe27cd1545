package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/pagination"
	"github.com/google/uuid"
)

type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	cache    portsrepo.ExchangeRateCache
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// NewExchangeRateService creates the rate lookup and administration service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, options ...ServiceOption) portssvc.ExchangeRateSvcFacade {
	o := applyOptions(options)
	return &exchangeRateService{
		BaseService: BaseService{clock: o.clock},
		rateRepo:    rateRepo,
		cache:       o.rateCache,
	}
}

func validatePair(from, to domain.CurrencyCode) error {
	if !from.IsSupported() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, from)
	}
	if !to.IsSupported() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, to)
	}
	if from == to {
		return fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}
	return nil
}

// GetActiveExchangeRate returns the one rate authoritative for the pair now.
// Several matching rows are treated as a configuration error rather than picking one.
// Cached candidates include upcoming rates so a scheduled hand-off is picked up without a refetch.
func (s *exchangeRateService) GetActiveExchangeRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.ExchangeRate, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}
	now := s.Now()

	var candidates []domain.ExchangeRate
	cached := false
	if s.cache != nil {
		candidates, cached = s.cache.GetActive(from, to)
	}
	if !cached {
		rates, err := s.rateRepo.FindUnexpiredExchangeRates(ctx, from, to, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up active exchange rate", slog.String("from", string(from)), slog.String("to", string(to)))
			return nil, err
		}
		candidates = rates
		if s.cache != nil {
			s.cache.SetActive(from, to, rates)
		}
	}

	active := make([]domain.ExchangeRate, 0, len(candidates))
	for _, r := range candidates {
		if r.IsActiveAt(now) {
			active = append(active, r)
		}
	}

	switch len(active) {
	case 0:
		return nil, nil
	case 1:
		return &active[0], nil
	default:
		ids := make([]string, len(active))
		for i, r := range active {
			ids[i] = r.ExchangeRateID
		}
		s.LogWarn(ctx, "Multiple active exchange rates for pair",
			slog.String("from", string(from)), slog.String("to", string(to)), slog.String("rate_ids", strings.Join(ids, ",")))
		return nil, apperrors.ErrAmbiguousRate
	}
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	filter := portsrepo.ExchangeRateFilter{}
	if params.FromCurrency != "" {
		c := domain.CurrencyCode(strings.ToUpper(params.FromCurrency))
		filter.FromCurrency = &c
	}
	if params.ToCurrency != "" {
		c := domain.CurrencyCode(strings.ToUpper(params.ToCurrency))
		filter.ToCurrency = &c
	}
	if params.Status != "" {
		st := domain.RateStatus(params.Status)
		filter.Status = &st
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, filter, pagination.ClampLimit(params.Limit, 20, 100), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, err
	}
	return rates, nil
}

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	now := s.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:  uuid.NewString(),
		FromCurrency:    domain.CurrencyCode(strings.ToUpper(req.FromCurrency)),
		ToCurrency:      domain.CurrencyCode(strings.ToUpper(req.ToCurrency)),
		Rate:            req.Rate,
		FeeFlat:         req.FeeFlat,
		FeePercentage:   req.FeePercentage,
		MinAmount:       req.MinAmount,
		MaxAmount:       req.MaxAmount,
		Status:          domain.RateActive,
		ValidFrom:       now,
		ValidUntil:      req.ValidUntil,
		QuoteTTLSeconds: req.QuoteTTLSeconds,
		AuditFields:     domain.NewAuditFields(creatorUserID, now),
	}
	if req.ValidFrom != nil {
		rate.ValidFrom = req.ValidFrom.UTC()
	}
	if err := rate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if !errors.Is(err, apperrors.ErrOverlappingRate) {
			s.LogError(ctx, err, "Failed to save exchange rate", slog.String("rate_id", rate.ExchangeRateID))
		}
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(rate.FromCurrency, rate.ToCurrency)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("rate_id", rate.ExchangeRateID),
		slog.String("pair", string(rate.FromCurrency)+"/"+string(rate.ToCurrency)),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

func (s *exchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("exchange rate " + rateID + " not found")
		}
		return err
	}
	if rate.Status == domain.RateInactive {
		return nil
	}

	if err := s.rateRepo.UpdateExchangeRateStatus(ctx, rateID, domain.RateInactive, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate exchange rate", slog.String("rate_id", rateID))
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(rate.FromCurrency, rate.ToCurrency)
	}
	s.LogInfo(ctx, "Exchange rate deactivated", slog.String("rate_id", rateID))
	return nil
}
