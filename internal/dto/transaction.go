package dto

import (
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	FromCurrency  *string          `json:"fromCurrency,omitempty"`
	ToCurrency    *string          `json:"toCurrency,omitempty"`
	FromWalletID  *string          `json:"fromWalletID,omitempty"`
	ToWalletID    *string          `json:"toWalletID,omitempty"`
	FromAmount    *decimal.Decimal `json:"fromAmount,omitempty"`
	ToAmount      *decimal.Decimal `json:"toAmount,omitempty"`
	FeeAmount     decimal.Decimal  `json:"feeAmount"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate,omitempty"`
	QuoteID       *string          `json:"quoteID,omitempty"`
	Reference     string           `json:"reference"`
	Description   string           `json:"description"`
	Metadata      map[string]any   `json:"metadata,omitempty"`
	ErrorMessage  *string          `json:"errorMessage,omitempty"`
	ProcessedAt   *time.Time       `json:"processedAt,omitempty"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func currencyPtr(c *domain.CurrencyCode) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		FromCurrency:  currencyPtr(txn.FromCurrency),
		ToCurrency:    currencyPtr(txn.ToCurrency),
		FromWalletID:  txn.FromWalletID,
		ToWalletID:    txn.ToWalletID,
		FromAmount:    txn.FromAmount,
		ToAmount:      txn.ToAmount,
		FeeAmount:     txn.FeeAmount,
		ExchangeRate:  txn.ExchangeRate,
		QuoteID:       txn.QuoteID,
		Reference:     txn.Reference,
		Description:   txn.Description,
		Metadata:      txn.Metadata,
		ErrorMessage:  txn.ErrorMessage,
		ProcessedAt:   txn.ProcessedAt,
		CompletedAt:   txn.CompletedAt,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse defines the paginated ledger history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ExchangeResultResponse is returned after a quote is settled.
type ExchangeResultResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	FromWallet  WalletResponse      `json:"fromWallet"`
	ToWallet    WalletResponse      `json:"toWallet"`
}

func ToExchangeResultResponse(r *domain.ExchangeResult) ExchangeResultResponse {
	return ExchangeResultResponse{
		Transaction: ToTransactionResponse(&r.Transaction),
		FromWallet:  ToWalletResponse(&r.FromWallet),
		ToWallet:    ToWalletResponse(&r.ToWallet),
	}
}
