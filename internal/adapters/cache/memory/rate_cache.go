// Package memory keeps recently read exchange rates in process memory.
package memory

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/patrickmn/go-cache"
)

// ExchangeRateCache stores the active-rate candidates of each pair for a short TTL.
// An empty slice is cached too, so a pair without rates does not hit the database on every call.
type ExchangeRateCache struct {
	c *cache.Cache
}

var _ portsrepo.ExchangeRateCache = (*ExchangeRateCache)(nil)

func NewExchangeRateCache(ttl time.Duration) *ExchangeRateCache {
	return &ExchangeRateCache{c: cache.New(ttl, 2*ttl)}
}

func pairKey(from, to domain.CurrencyCode) string {
	return "rate:" + string(from) + ":" + string(to)
}

func (rc *ExchangeRateCache) GetActive(from, to domain.CurrencyCode) ([]domain.ExchangeRate, bool) {
	v, found := rc.c.Get(pairKey(from, to))
	if !found {
		return nil, false
	}
	rates, ok := v.([]domain.ExchangeRate)
	if !ok {
		return nil, false
	}
	out := make([]domain.ExchangeRate, len(rates))
	copy(out, rates)
	return out, true
}

func (rc *ExchangeRateCache) SetActive(from, to domain.CurrencyCode, rates []domain.ExchangeRate) {
	stored := make([]domain.ExchangeRate, len(rates))
	copy(stored, rates)
	rc.c.Set(pairKey(from, to), stored, cache.DefaultExpiration)
}

func (rc *ExchangeRateCache) Invalidate(from, to domain.CurrencyCode) {
	rc.c.Delete(pairKey(from, to))
}
