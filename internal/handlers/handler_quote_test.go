package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func amountEquals(want int64) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(want)) })
}

func activeQuote(userID string) *domain.Quote {
	now := time.Now().UTC()
	return &domain.Quote{
		QuoteID:       "quote-1",
		UserID:        userID,
		RateID:        "rate-1",
		FromCurrency:  domain.CurrencyCFA,
		ToCurrency:    domain.CurrencyNGN,
		FromAmount:    decimal.NewFromInt(10000),
		ExchangeRate:  decimal.RequireFromString("0.85"),
		FeeFlat:       decimal.NewFromInt(100),
		FeePercentage: decimal.RequireFromString("0.005"),
		TotalFee:      decimal.NewFromInt(150),
		ToAmount:      decimal.NewFromInt(8350),
		Status:        domain.QuoteActive,
		ExpiresAt:     now.Add(30 * time.Second),
		CreatedAt:     now,
	}
}

func (suite *HandlerTestSuite) TestPreviewExchange() {
	rate := cfaToNGN()
	conv := rate.Convert(decimal.NewFromInt(10000))
	suite.quoteService.On("PreviewExchange", mock.Anything, domain.CurrencyCFA, domain.CurrencyNGN, amountEquals(10000)).Return(rate, conv, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange/preview", `{"fromCurrency":"CFA","toCurrency":"NGN","fromAmount":"10000"}`, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangePreviewResponse
	suite.decode(w, &resp)
	suite.True(resp.ToAmount.Equal(decimal.NewFromInt(8350)), resp.ToAmount.String())
	suite.True(resp.TotalFee.Equal(decimal.NewFromInt(150)), resp.TotalFee.String())
}

func (suite *HandlerTestSuite) TestCreateQuote() {
	suite.quoteService.On("CreateQuote", mock.Anything, "user-1", domain.CurrencyCFA, domain.CurrencyNGN, amountEquals(10000)).
		Return(activeQuote("user-1"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/quotes", `{"fromCurrency":"cfa","toCurrency":"ngn","fromAmount":10000}`, suite.token("user-1"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.QuoteResponse
	suite.decode(w, &resp)
	suite.Equal("quote-1", resp.QuoteID)
	suite.Equal("active", resp.Status)
	suite.InDelta(30, resp.SecondsRemaining, 2)
}

func (suite *HandlerTestSuite) TestCreateQuote_Rejections() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"below minimum", apperrors.ErrAmountBelowMinimum, http.StatusBadRequest},
		{"no active rate", fmt.Errorf("%w for USDT to CFA", apperrors.ErrNoActiveRate), http.StatusBadRequest},
		{"ambiguous", apperrors.ErrAmbiguousRate, http.StatusConflict},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.quoteService.On("CreateQuote", mock.Anything, "user-1", domain.CurrencyCFA, domain.CurrencyNGN, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/quotes", `{"fromCurrency":"CFA","toCurrency":"NGN","fromAmount":"5"}`, suite.token("user-1"))

			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to create quote", suite.errorMessage(w))
			}
		})
	}
}

func (suite *HandlerTestSuite) TestCreateQuote_UnsupportedCurrency() {
	w := suite.do(http.MethodPost, "/api/v1/quotes", `{"fromCurrency":"EUR","toCurrency":"NGN","fromAmount":"5"}`, suite.token("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetQuote_Foreign() {
	suite.quoteService.On("GetQuote", mock.Anything, "user-2", "quote-1").Return(nil, apperrors.ErrQuoteUnauthorized).Once()

	w := suite.do(http.MethodGet, "/api/v1/quotes/quote-1", nil, suite.token("user-2"))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCancelQuote() {
	cancelled := activeQuote("user-1")
	cancelled.Status = domain.QuoteCancelled
	suite.quoteService.On("CancelQuote", mock.Anything, "user-1", "quote-1").Return(cancelled, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/quotes/quote-1/cancel", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.decode(w, &resp)
	suite.Equal("cancelled", resp.Status)
}

func (suite *HandlerTestSuite) TestExecuteExchange() {
	txnID := "8f14e45f-ceea-467a-9c1b-0c2d4b7e5a10"
	result := &domain.ExchangeResult{
		Transaction: domain.Transaction{
			TransactionID: txnID,
			UserID:        "user-1",
			Type:          domain.TransactionExchange,
			Status:        domain.TransactionCompleted,
			Reference:     "EX-20260504100000-8F14E45F",
			FeeAmount:     decimal.NewFromInt(150),
		},
		FromWallet: domain.Wallet{WalletID: "w-cfa", Currency: domain.CurrencyCFA, AvailableBalance: decimal.NewFromInt(40000)},
		ToWallet:   domain.Wallet{WalletID: "w-ngn", Currency: domain.CurrencyNGN, AvailableBalance: decimal.NewFromInt(8350)},
	}
	suite.exchangeService.On("ExecuteExchange", mock.Anything, "user-1", "quote-1").Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/quotes/quote-1/execute", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeResultResponse
	suite.decode(w, &resp)
	suite.Equal("EX-20260504100000-8F14E45F", resp.Transaction.Reference)
	suite.Equal("completed", resp.Transaction.Status)
	suite.True(resp.ToWallet.AvailableBalance.Equal(decimal.NewFromInt(8350)))
}

func (suite *HandlerTestSuite) TestExecuteExchange_Failures() {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unknown quote", apperrors.ErrQuoteNotFound, http.StatusNotFound, "quote not found"},
		{"foreign quote", apperrors.ErrQuoteUnauthorized, http.StatusForbidden, "unauthorized: quote belongs to another user"},
		{"expired", apperrors.ErrQuoteExpired, http.StatusConflict, "quote has expired"},
		{"insufficient", fmt.Errorf("%w: available 5000, required 10000", apperrors.ErrInsufficientBalance), http.StatusUnprocessableEntity, "insufficient balance: available 5000, required 10000"},
		{"settlement", errors.New("deadlock detected"), http.StatusInternalServerError, "Exchange failed"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.exchangeService.On("ExecuteExchange", mock.Anything, "user-1", "quote-9").Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/quotes/quote-9/execute", nil, suite.token("user-1"))

			suite.Equal(tt.status, w.Code)
			suite.Equal(tt.msg, suite.errorMessage(w))
		})
	}
}
