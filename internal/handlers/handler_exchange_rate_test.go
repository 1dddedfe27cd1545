package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func cfaToNGN() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID:  "rate-1",
		FromCurrency:    domain.CurrencyCFA,
		ToCurrency:      domain.CurrencyNGN,
		Rate:            decimal.RequireFromString("0.85"),
		FeeFlat:         decimal.NewFromInt(100),
		FeePercentage:   decimal.RequireFromString("0.005"),
		MinAmount:       decimal.NewFromInt(1000),
		MaxAmount:       decimal.NewFromInt(5000000),
		Status:          domain.RateActive,
		ValidFrom:       time.Now().Add(-24 * time.Hour).UTC(),
		QuoteTTLSeconds: 30,
	}
}

func (suite *HandlerTestSuite) TestGetActiveExchangeRate() {
	suite.exchangeRateSvc.On("GetActiveExchangeRate", mock.Anything, domain.CurrencyCFA, domain.CurrencyNGN).Return(cfaToNGN(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/active/cfa/NGN", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	suite.decode(w, &resp)
	suite.Equal("rate-1", resp.ExchangeRateID)
	suite.True(resp.Rate.Equal(decimal.RequireFromString("0.85")))
	suite.Equal(30, resp.QuoteTTLSeconds)
}

func (suite *HandlerTestSuite) TestGetActiveExchangeRate_NoneActive() {
	suite.exchangeRateSvc.On("GetActiveExchangeRate", mock.Anything, domain.CurrencyUSDT, domain.CurrencyCFA).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/active/USDT/CFA", nil, suite.token("user-1"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No active exchange rate for USDT to CFA", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestGetActiveExchangeRate_UnsupportedCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/active/EUR/NGN", nil, suite.token("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.exchangeRateSvc.AssertNotCalled(suite.T(), "GetActiveExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetActiveExchangeRate_Ambiguous() {
	suite.exchangeRateSvc.On("GetActiveExchangeRate", mock.Anything, domain.CurrencyCFA, domain.CurrencyNGN).Return(nil, apperrors.ErrAmbiguousRate).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/active/CFA/NGN", nil, suite.token("user-1"))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListExchangeRates_BindsQuery() {
	suite.exchangeRateSvc.On("ListExchangeRates", mock.Anything, dto.ListExchangeRatesParams{FromCurrency: "CFA", Status: "active", Limit: 5}).
		Return([]domain.ExchangeRate{*cfaToNGN()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates?from=CFA&status=active&limit=5", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.decode(w, &resp)
	suite.Len(resp, 1)
}

func (suite *HandlerTestSuite) TestListExchangeRates_InvalidStatus() {
	w := suite.do(http.MethodGet, "/api/v1/exchange-rates?status=bogus", nil, suite.token("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) createRateBody() string {
	return `{"fromCurrency":"CFA","toCurrency":"NGN","rate":"0.85","feeFlat":"100","feePercentage":"0.005",` +
		`"minAmount":"1000","maxAmount":"5000000","quoteTTLSeconds":30}`
}

func (suite *HandlerTestSuite) TestCreateExchangeRate_RequiresAdmin() {
	suite.authService.On("GetCurrentUser", mock.Anything, "user-1").Return(&domain.User{UserID: "user-1", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", suite.createRateBody(), suite.token("user-1"))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.exchangeRateSvc.AssertNotCalled(suite.T(), "CreateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateExchangeRate_Admin() {
	suite.authService.On("GetCurrentUser", mock.Anything, "admin-1").Return(&domain.User{UserID: "admin-1", Role: domain.RoleAdmin}, nil).Once()
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything,
		mock.MatchedBy(func(req dto.CreateExchangeRateRequest) bool {
			return req.FromCurrency == "CFA" && req.ToCurrency == "NGN" && req.Rate.Equal(decimal.RequireFromString("0.85"))
		}), "admin-1").
		Return(cfaToNGN(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", suite.createRateBody(), suite.token("admin-1"))

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateExchangeRate_SameCurrencyRejected() {
	suite.authService.On("GetCurrentUser", mock.Anything, "admin-1").Return(&domain.User{UserID: "admin-1", Role: domain.RoleAdmin}, nil).Once()

	body := `{"fromCurrency":"NGN","toCurrency":"NGN","rate":"1","maxAmount":"10","quoteTTLSeconds":30}`
	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", body, suite.token("admin-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateExchangeRate_Overlapping() {
	suite.authService.On("GetCurrentUser", mock.Anything, "admin-1").Return(&domain.User{UserID: "admin-1", Role: domain.RoleAdmin}, nil).Once()
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything, mock.Anything, "admin-1").Return(nil, apperrors.ErrOverlappingRate).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", suite.createRateBody(), suite.token("admin-1"))

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("an active exchange rate already covers this window", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestDeactivateExchangeRate() {
	suite.authService.On("GetCurrentUser", mock.Anything, "admin-1").Return(&domain.User{UserID: "admin-1", Role: domain.RoleAdmin}, nil).Once()
	suite.exchangeRateSvc.On("DeactivateExchangeRate", mock.Anything, "rate-1", "admin-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates/rate-1/deactivate", nil, suite.token("admin-1"))

	suite.Equal(http.StatusNoContent, w.Code)
}
