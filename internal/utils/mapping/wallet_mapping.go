package mapping

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
)

func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:         d.WalletID,
		UserID:           d.UserID,
		Currency:         string(d.Currency),
		Balance:          d.Balance,
		AvailableBalance: d.AvailableBalance,
		ReservedBalance:  d.ReservedBalance,
		Status:           string(d.Status),
		DailyLimit:       nullDecimal(d.DailyLimit),
		MonthlyLimit:     nullDecimal(d.MonthlyLimit),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:         m.WalletID,
		UserID:           m.UserID,
		Currency:         domain.CurrencyCode(m.Currency),
		Balance:          m.Balance,
		AvailableBalance: m.AvailableBalance,
		ReservedBalance:  m.ReservedBalance,
		Status:           domain.WalletStatus(m.Status),
		DailyLimit:       decimalPtr(m.DailyLimit),
		MonthlyLimit:     decimalPtr(m.MonthlyLimit),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
