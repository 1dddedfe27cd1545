package redis

import (
	"testing"
	"time"

	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSpendKey(t *testing.T) {
	now := time.Date(2026, 3, 17, 22, 5, 0, 0, time.UTC)

	assert.Equal(t, "daily_transactions:w1:20260317", SpendKey("w1", portsrepo.LimitDaily, now))
	assert.Equal(t, "monthly_transactions:w1:20260301", SpendKey("w1", portsrepo.LimitMonthly, now))

	// Keys follow the UTC calendar regardless of the caller's zone.
	lagos := time.FixedZone("WAT", 3600)
	assert.Equal(t, "daily_transactions:w1:20260317", SpendKey("w1", portsrepo.LimitDaily, now.In(lagos)))
}

func TestUnitsRoundTrip(t *testing.T) {
	tests := []string{"0", "10000", "8350.5", "0.00000001", "123456.12345678"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			assert.True(t, d.Equal(fromUnits(toUnits(d))), "got %s", fromUnits(toUnits(d)))
		})
	}
	assert.Equal(t, int64(100000000), toUnits(decimal.NewFromInt(1)))
}
