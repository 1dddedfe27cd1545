package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:       d.QuoteID,
		UserID:        d.UserID,
		RateID:        d.RateID,
		FromCurrency:  string(d.FromCurrency),
		ToCurrency:    string(d.ToCurrency),
		FromAmount:    d.FromAmount,
		ExchangeRate:  d.ExchangeRate,
		FeeFlat:       d.FeeFlat,
		FeePercentage: d.FeePercentage,
		TotalFee:      d.TotalFee,
		ToAmount:      d.ToAmount,
		Status:        string(d.Status),
		ExpiresAt:     d.ExpiresAt,
		ExecutedAt:    nullTime(d.ExecutedAt),
		CreatedAt:     d.CreatedAt,
	}
}

func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:       m.QuoteID,
		UserID:        m.UserID,
		RateID:        m.RateID,
		FromCurrency:  domain.CurrencyCode(m.FromCurrency),
		ToCurrency:    domain.CurrencyCode(m.ToCurrency),
		FromAmount:    m.FromAmount,
		ExchangeRate:  m.ExchangeRate,
		FeeFlat:       m.FeeFlat,
		FeePercentage: m.FeePercentage,
		TotalFee:      m.TotalFee,
		ToAmount:      m.ToAmount,
		Status:        domain.QuoteStatus(m.Status),
		ExpiresAt:     m.ExpiresAt,
		ExecutedAt:    timePtr(m.ExecutedAt),
		CreatedAt:     m.CreatedAt,
	}
}
