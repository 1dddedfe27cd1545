package jobs

import (
	"context"
	"log/slog"
	"time"
)

// QuoteExpirer flips active quotes that are past their deadline to expired.
type QuoteExpirer interface {
	ExpireStaleQuotes(ctx context.Context) (int64, error)
}

// QuoteSweeper runs ExpireStaleQuotes on a fixed interval. It only updates stored
// statuses; execution checks the deadline itself.
type QuoteSweeper struct {
	quotes   QuoteExpirer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewQuoteSweeper(quotes QuoteExpirer, interval time.Duration, logger *slog.Logger) *QuoteSweeper {
	timeout := interval
	if timeout > 30*time.Second {
		timeout = 30 * time.Second
	}
	return &QuoteSweeper{
		quotes:   quotes,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With(slog.String("job", "quote_sweeper")),
	}
}

// Start blocks until ctx is cancelled.
func (s *QuoteSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Quote sweeper started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Quote sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *QuoteSweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.quotes.ExpireStaleQuotes(ctx)
	if err != nil {
		s.logger.Error("Failed to expire stale quotes", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		s.logger.Info("Expired stale quotes", slog.Int64("count", n))
	}
}
