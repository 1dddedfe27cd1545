package handlers_test

import (
	"net/http"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListTransactions() {
	next := "next-page"
	suite.transactionService.On("ListTransactions", mock.Anything, "user-1",
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 10 && p.NextToken != nil && *p.NextToken == "page-2"
		})).
		Return(&dto.ListTransactionsResponse{
			Transactions: []dto.TransactionResponse{{TransactionID: "txn-1", Type: "exchange", Status: "completed"}},
			NextToken:    &next,
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=10&nextToken=page-2", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=500", nil, suite.token("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetTransaction() {
	suite.transactionService.On("GetTransaction", mock.Anything, "user-1", "txn-1").
		Return(&domain.Transaction{TransactionID: "txn-1", Type: domain.TransactionExchange, Status: domain.TransactionCompleted}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/txn-1", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal("txn-1", resp.TransactionID)
}

func (suite *HandlerTestSuite) TestGetTransaction_NotFound() {
	suite.transactionService.On("GetTransaction", mock.Anything, "user-1", "txn-x").
		Return(nil, apperrors.NewNotFoundError("transaction not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/txn-x", nil, suite.token("user-1"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("transaction not found", suite.errorMessage(w))
}
