package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:  d.ExchangeRateID,
		FromCurrency:    string(d.FromCurrency),
		ToCurrency:      string(d.ToCurrency),
		Rate:            d.Rate,
		FeeFlat:         d.FeeFlat,
		FeePercentage:   d.FeePercentage,
		MinAmount:       d.MinAmount,
		MaxAmount:       d.MaxAmount,
		Status:          string(d.Status),
		ValidFrom:       d.ValidFrom,
		ValidUntil:      nullTime(d.ValidUntil),
		QuoteTTLSeconds: d.QuoteTTLSeconds,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:  m.ExchangeRateID,
		FromCurrency:    domain.CurrencyCode(m.FromCurrency),
		ToCurrency:      domain.CurrencyCode(m.ToCurrency),
		Rate:            m.Rate,
		FeeFlat:         m.FeeFlat,
		FeePercentage:   m.FeePercentage,
		MinAmount:       m.MinAmount,
		MaxAmount:       m.MaxAmount,
		Status:          domain.RateStatus(m.Status),
		ValidFrom:       m.ValidFrom,
		ValidUntil:      timePtr(m.ValidUntil),
		QuoteTTLSeconds: m.QuoteTTLSeconds,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
