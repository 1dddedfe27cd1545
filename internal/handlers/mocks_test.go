package handlers_test

import (
	"context"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) session(args mock.Arguments) (*domain.AuthSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

func (m *MockAuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.AuthSession, error) {
	return m.session(m.Called(ctx, req))
}
func (m *MockAuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*domain.AuthSession, error) {
	return m.session(m.Called(ctx, req))
}
func (m *MockAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*domain.AuthSession, error) {
	return m.session(m.Called(ctx, idToken))
}
func (m *MockAuthService) SignInWithGoogleCode(ctx context.Context, code string) (*domain.AuthSession, error) {
	return m.session(m.Called(ctx, code))
}
func (m *MockAuthService) RefreshSession(ctx context.Context, userID, refreshToken string) (*domain.AuthSession, error) {
	return m.session(m.Called(ctx, userID, refreshToken))
}
func (m *MockAuthService) SignOut(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAuthService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}
func (m *MockAuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return m.Called(ctx, userID, currentPassword, newPassword).Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

func (m *MockExchangeRateService) GetActiveExchangeRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	return m.Called(ctx, rateID, userID).Error(0)
}

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

func (m *MockQuoteService) quote(args mock.Arguments) (*domain.Quote, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, userID string, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, userID, from, to, fromAmount))
}
func (m *MockQuoteService) PreviewExchange(ctx context.Context, from, to domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.ExchangeRate, domain.Conversion, error) {
	args := m.Called(ctx, from, to, fromAmount)
	if args.Get(0) == nil {
		return nil, domain.Conversion{}, args.Error(2)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Get(1).(domain.Conversion), args.Error(2)
}
func (m *MockQuoteService) GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, userID, quoteID))
}
func (m *MockQuoteService) CancelQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, userID, quoteID))
}
func (m *MockQuoteService) ExpireStaleQuotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

var _ portssvc.ExchangeSvcFacade = (*MockExchangeService)(nil)

func (m *MockExchangeService) ExecuteExchange(ctx context.Context, userID, quoteID string) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

func (m *MockWalletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}
func (m *MockWalletService) GetWallet(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) ProvisionWallets(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// --- Mock KYCService ---
type MockKYCService struct {
	mock.Mock
}

var _ portssvc.KYCSvcFacade = (*MockKYCService)(nil)

func (m *MockKYCService) UploadDocument(ctx context.Context, userID string, upload portssvc.KYCUpload) (*domain.KYCDocument, error) {
	args := m.Called(ctx, userID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KYCDocument), args.Error(1)
}
func (m *MockKYCService) ListDocuments(ctx context.Context, userID string) ([]domain.KYCDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KYCDocument), args.Error(1)
}
