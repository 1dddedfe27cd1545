package handlers_test

import (
	"net/http"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListWallets() {
	wallets := []domain.Wallet{
		{WalletID: "w-cfa", UserID: "user-1", Currency: domain.CurrencyCFA, AvailableBalance: decimal.NewFromInt(1250000), Status: domain.WalletActive},
		{WalletID: "w-ngn", UserID: "user-1", Currency: domain.CurrencyNGN, AvailableBalance: decimal.RequireFromString("1234.5"), Status: domain.WalletActive},
	}
	suite.walletService.On("ListWallets", mock.Anything, "user-1").Return(wallets, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallets", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WalletResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal("CFA", resp[0].Currency)
	suite.NotEmpty(resp[1].FormattedAvailable)
}

func (suite *HandlerTestSuite) TestGetWallet() {
	suite.walletService.On("GetWallet", mock.Anything, "user-1", domain.CurrencyUSDT).
		Return(&domain.Wallet{WalletID: "w-usdt", Currency: domain.CurrencyUSDT, Status: domain.WalletActive}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallets/usdt", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetWallet_Missing() {
	suite.walletService.On("GetWallet", mock.Anything, "user-1", domain.CurrencyNGN).Return(nil, apperrors.ErrWalletNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/wallets/NGN", nil, suite.token("user-1"))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetWallet_UnsupportedCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/wallets/GBP", nil, suite.token("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.walletService.AssertNotCalled(suite.T(), "GetWallet", mock.Anything, mock.Anything, mock.Anything)
}
