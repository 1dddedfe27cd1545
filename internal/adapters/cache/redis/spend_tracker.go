// Package redis tracks per-wallet spending totals in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// totals are stored as integer units of 10^-8, matching NUMERIC(20,8) in Postgres,
// so HINCRBY stays exact and atomic.
const unitExponent = 8

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewClient connects and pings Redis.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// SpendTracker keeps one hash per wallet and period that expires when the period ends.
type SpendTracker struct {
	client redis.Cmdable
}

var _ portsrepo.SpendTracker = (*SpendTracker)(nil)

func NewSpendTracker(client redis.Cmdable) *SpendTracker {
	return &SpendTracker{client: client}
}

// SpendKey names the hash holding the total of walletID for the period containing now.
func SpendKey(walletID string, period portsrepo.LimitPeriod, now time.Time) string {
	return fmt.Sprintf("%s_transactions:%s:%s", period, walletID, period.PeriodStart(now).Format("20060102"))
}

func toUnits(amount decimal.Decimal) int64 {
	return amount.Shift(unitExponent).Round(0).IntPart()
}

func fromUnits(units int64) decimal.Decimal {
	return decimal.New(units, -unitExponent)
}

func (t *SpendTracker) Spent(ctx context.Context, walletID string, period portsrepo.LimitPeriod, now time.Time) (decimal.Decimal, error) {
	raw, err := t.client.HGet(ctx, SpendKey(walletID, period, now), "total_units").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get %s spend: %w", period, err)
	}
	units, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s spend: %w", period, err)
	}
	return fromUnits(units), nil
}

// RecordSpend adds amount to both the daily and monthly totals.
func (t *SpendTracker) RecordSpend(ctx context.Context, walletID string, amount decimal.Decimal, now time.Time) error {
	units := toUnits(amount)
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, period := range []portsrepo.LimitPeriod{portsrepo.LimitDaily, portsrepo.LimitMonthly} {
			key := SpendKey(walletID, period, now)
			pipe.HIncrBy(ctx, key, "total_units", units)
			pipe.HSet(ctx, key, "updated_at", now.UTC().Format(time.RFC3339))
			pipe.ExpireAt(ctx, key, period.PeriodEnd(now))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record spend: %w", err)
	}
	return nil
}
