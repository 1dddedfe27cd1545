package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) FindUnexpiredExchangeRates(ctx context.Context, from, to domain.CurrencyCode, now time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, filter portsrepo.ExchangeRateFilter, limit, offset int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) UpdateExchangeRateStatus(ctx context.Context, rateID string, status domain.RateStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, rateID, status, updatedBy, now)
	return args.Error(0)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

var _ portsrepo.QuoteRepositoryFacade = (*MockQuoteRepository)(nil)

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) TransitionQuoteStatus(ctx context.Context, quoteID string, from, to domain.QuoteStatus) error {
	args := m.Called(ctx, quoteID, from, to)
	return args.Error(0)
}

func (m *MockQuoteRepository) ExpireQuotes(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) FindWalletByUserAndCurrency(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) CreateWalletIfMissing(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) SumOutgoingSince(ctx context.Context, walletID string, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionFailed(ctx context.Context, transactionID string, errorMessage string, now time.Time) error {
	args := m.Called(ctx, transactionID, errorMessage, now)
	return args.Error(0)
}

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

var _ portsrepo.SettlementRepository = (*MockSettlementRepository)(nil)

func (m *MockSettlementRepository) SettleExchange(ctx context.Context, s portsrepo.ExchangeSettlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// --- Mock SpendTracker ---
type MockSpendTracker struct {
	mock.Mock
}

var _ portsrepo.SpendTracker = (*MockSpendTracker)(nil)

func (m *MockSpendTracker) Spent(ctx context.Context, walletID string, period portsrepo.LimitPeriod, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID, period, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSpendTracker) RecordSpend(ctx context.Context, walletID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, walletID, amount, now)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

// --- Mock KYCRepository ---
type MockKYCRepository struct {
	mock.Mock
}

var _ portsrepo.KYCRepositoryFacade = (*MockKYCRepository)(nil)

func (m *MockKYCRepository) SaveKYCDocument(ctx context.Context, doc domain.KYCDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockKYCRepository) ListKYCDocumentsByUser(ctx context.Context, userID string) ([]domain.KYCDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KYCDocument), args.Error(1)
}

// --- Mock DocumentStorage ---
type MockDocumentStorage struct {
	mock.Mock
}

var _ portsrepo.DocumentStorage = (*MockDocumentStorage)(nil)

func (m *MockDocumentStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

// --- Mock ExchangeRateService (as used by QuoteService) ---
type MockExchangeRateReader struct {
	mock.Mock
}

var _ portssvc.ExchangeRateReaderSvc = (*MockExchangeRateReader)(nil)

func (m *MockExchangeRateReader) GetActiveExchangeRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateReader) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock GoogleOAuthService ---
type MockGoogleValidator struct {
	mock.Mock
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleValidator)(nil)

func (m *MockGoogleValidator) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleValidator) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// --- Mock WalletService (as used by AuthService) ---
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
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// cfaToNGNRate is 1 CFA = 0.85 NGN with 100 flat + 0.5% fees.
func cfaToNGNRate(now time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:  "rate-cfa-ngn",
		FromCurrency:    domain.CurrencyCFA,
		ToCurrency:      domain.CurrencyNGN,
		Rate:            decimal.RequireFromString("0.85"),
		FeeFlat:         decimal.NewFromInt(100),
		FeePercentage:   decimal.RequireFromString("0.005"),
		MinAmount:       decimal.NewFromInt(1000),
		MaxAmount:       decimal.NewFromInt(5000000),
		Status:          domain.RateActive,
		ValidFrom:       now.Add(-24 * time.Hour),
		QuoteTTLSeconds: 30,
	}
}
