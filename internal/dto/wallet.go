package dto

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/utils"
	"github.com/shopspring/decimal"
)

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID           string           `json:"walletID"`
	Currency           string           `json:"currency"`
	Balance            decimal.Decimal  `json:"balance"`
	AvailableBalance   decimal.Decimal  `json:"availableBalance"`
	ReservedBalance    decimal.Decimal  `json:"reservedBalance"`
	FormattedAvailable string           `json:"formattedAvailable"`
	Status             string           `json:"status"`
	DailyLimit         *decimal.Decimal `json:"dailyLimit,omitempty"`
	MonthlyLimit       *decimal.Decimal `json:"monthlyLimit,omitempty"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:           w.WalletID,
		Currency:           string(w.Currency),
		Balance:            w.Balance,
		AvailableBalance:   w.AvailableBalance,
		ReservedBalance:    w.ReservedBalance,
		FormattedAvailable: utils.FormatAmount(w.AvailableBalance, w.Currency),
		Status:             string(w.Status),
		DailyLimit:         w.DailyLimit,
		MonthlyLimit:       w.MonthlyLimit,
		UpdatedAt:          w.UpdatedAt,
	}
}

func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}
