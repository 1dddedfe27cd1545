package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/cross_currency_wallet/internal/middleware"
	"github.com/SscSPs/cross_currency_wallet/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

// Now returns the current time in UTC, or the injected clock's time in tests.
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// serviceOptions collects optional collaborators. Each service reads only the ones it uses.
type serviceOptions struct {
	clock        func() time.Time
	rateCache    portsrepo.ExchangeRateCache
	spendTracker portsrepo.SpendTracker
	analytics    *utils.Analytics
}

// ServiceOption is a functional option for configuring services
type ServiceOption func(*serviceOptions)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(o *serviceOptions) { o.clock = clock }
}

// WithRateCache puts a cache in front of active rate lookups.
func WithRateCache(cache portsrepo.ExchangeRateCache) ServiceOption {
	return func(o *serviceOptions) { o.rateCache = cache }
}

// WithSpendTracker uses a running-total store for spending limits instead of ledger sums.
func WithSpendTracker(tracker portsrepo.SpendTracker) ServiceOption {
	return func(o *serviceOptions) { o.spendTracker = tracker }
}

// WithAnalytics reports business events.
func WithAnalytics(analytics *utils.Analytics) ServiceOption {
	return func(o *serviceOptions) { o.analytics = analytics }
}

func applyOptions(options []ServiceOption) serviceOptions {
	var o serviceOptions
	for _, opt := range options {
		opt(&o)
	}
	return o
}
