package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

func currencyToNull(c *domain.CurrencyCode) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func currencyFromNull(s *string) *domain.CurrencyCode {
	if s == nil {
		return nil
	}
	c := domain.CurrencyCode(*s)
	return &c
}

// ToModelTransaction converts a domain ledger entry to its row form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Status:        string(d.Status),
		FromCurrency:  nullString(currencyToNull(d.FromCurrency)),
		ToCurrency:    nullString(currencyToNull(d.ToCurrency)),
		FromWalletID:  nullString(d.FromWalletID),
		ToWalletID:    nullString(d.ToWalletID),
		FromAmount:    nullDecimal(d.FromAmount),
		ToAmount:      nullDecimal(d.ToAmount),
		FeeAmount:     d.FeeAmount,
		ExchangeRate:  nullDecimal(d.ExchangeRate),
		QuoteID:       nullString(d.QuoteID),
		Reference:     d.Reference,
		Description:   d.Description,
		Metadata:      d.Metadata,
		ErrorMessage:  nullString(d.ErrorMessage),
		ProcessedAt:   nullTime(d.ProcessedAt),
		CompletedAt:   nullTime(d.CompletedAt),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainTransaction converts a ledger row to the domain entry.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		FromCurrency:  currencyFromNull(stringPtr(m.FromCurrency)),
		ToCurrency:    currencyFromNull(stringPtr(m.ToCurrency)),
		FromWalletID:  stringPtr(m.FromWalletID),
		ToWalletID:    stringPtr(m.ToWalletID),
		FromAmount:    decimalPtr(m.FromAmount),
		ToAmount:      decimalPtr(m.ToAmount),
		FeeAmount:     m.FeeAmount,
		ExchangeRate:  decimalPtr(m.ExchangeRate),
		QuoteID:       stringPtr(m.QuoteID),
		Reference:     m.Reference,
		Description:   m.Description,
		Metadata:      m.Metadata,
		ErrorMessage:  stringPtr(m.ErrorMessage),
		ProcessedAt:   timePtr(m.ProcessedAt),
		CompletedAt:   timePtr(m.CompletedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
