package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type KYCServiceTestSuite struct {
	suite.Suite
	mockKYCRepo *MockKYCRepository
	mockStorage *MockDocumentStorage
	now         time.Time
	service     portssvc.KYCSvcFacade
}

func (suite *KYCServiceTestSuite) SetupTest() {
	suite.mockKYCRepo = new(MockKYCRepository)
	suite.mockStorage = new(MockDocumentStorage)
	suite.now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewKYCService(suite.mockKYCRepo, suite.mockStorage, services.WithClock(fixedClock(suite.now)))
}

func (suite *KYCServiceTestSuite) TestUploadDocument() {
	ctx := context.Background()
	body := strings.NewReader("%PDF-1.7")
	wantKey := "user-1/passport-1767225600.pdf"
	suite.mockStorage.On("Upload", ctx, wantKey, body, "application/pdf").Return("https://kyc.example/"+wantKey, nil).Once()
	suite.mockKYCRepo.On("SaveKYCDocument", ctx, mock.AnythingOfType("domain.KYCDocument")).Return(nil).Once()

	doc, err := suite.service.UploadDocument(ctx, "user-1", portssvc.KYCUpload{
		DocumentType: domain.DocumentPassport,
		FileName:     "scan.PDF",
		ContentType:  "application/pdf",
		Body:         body,
	})

	suite.Require().NoError(err)
	suite.Equal(wantKey, doc.StorageKey)
	suite.Equal("https://kyc.example/"+wantKey, doc.FileURL)
	suite.Equal(domain.KYCPending, doc.Status)
	suite.Equal(suite.now, doc.UploadedAt)
	suite.mockStorage.AssertExpectations(suite.T())
	suite.mockKYCRepo.AssertExpectations(suite.T())
}

func (suite *KYCServiceTestSuite) TestUploadDocument_ExtensionFollowsContentType() {
	ctx := context.Background()
	suite.mockStorage.On("Upload", ctx, "user-1/selfie-1767225600.jpeg", mock.Anything, "image/jpeg").Return("u1", nil).Once()
	suite.mockStorage.On("Upload", ctx, "user-1/selfie-1767225600.png", mock.Anything, "image/png").Return("u2", nil).Once()
	suite.mockKYCRepo.On("SaveKYCDocument", ctx, mock.AnythingOfType("domain.KYCDocument")).Return(nil).Twice()

	_, err := suite.service.UploadDocument(ctx, "user-1", portssvc.KYCUpload{DocumentType: domain.DocumentSelfie, FileName: "me.jpeg", ContentType: "image/jpeg", Body: strings.NewReader("x")})
	suite.NoError(err)
	_, err = suite.service.UploadDocument(ctx, "user-1", portssvc.KYCUpload{DocumentType: domain.DocumentSelfie, FileName: "me.exe", ContentType: "image/png", Body: strings.NewReader("x")})
	suite.NoError(err)
	suite.mockStorage.AssertExpectations(suite.T())
}

func (suite *KYCServiceTestSuite) TestUploadDocument_Rejections() {
	ctx := context.Background()
	tests := []struct {
		name   string
		upload portssvc.KYCUpload
	}{
		{"unknown type", portssvc.KYCUpload{DocumentType: "utility_bill", FileName: "a.pdf", ContentType: "application/pdf", Body: strings.NewReader("x")}},
		{"unsupported content", portssvc.KYCUpload{DocumentType: domain.DocumentPassport, FileName: "a.gif", ContentType: "image/gif", Body: strings.NewReader("x")}},
		{"no body", portssvc.KYCUpload{DocumentType: domain.DocumentPassport, FileName: "a.pdf", ContentType: "application/pdf"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.UploadDocument(ctx, "user-1", tt.upload)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockStorage.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *KYCServiceTestSuite) TestUploadDocument_StorageDisabled() {
	svc := services.NewKYCService(suite.mockKYCRepo, nil)

	_, err := svc.UploadDocument(context.Background(), "user-1", portssvc.KYCUpload{
		DocumentType: domain.DocumentNationalID, FileName: "id.png", ContentType: "image/png", Body: strings.NewReader("x"),
	})

	suite.Equal(http.StatusServiceUnavailable, apperrors.HTTPStatus(err))
}

func (suite *KYCServiceTestSuite) TestUploadDocument_StorageFailureSavesNothing() {
	ctx := context.Background()
	suite.mockStorage.On("Upload", ctx, mock.Anything, mock.Anything, "image/png").Return("", errors.New("access denied")).Once()

	_, err := suite.service.UploadDocument(ctx, "user-1", portssvc.KYCUpload{
		DocumentType: domain.DocumentNationalID, FileName: "id.png", ContentType: "image/png", Body: strings.NewReader("x"),
	})

	suite.Error(err)
	suite.mockKYCRepo.AssertNotCalled(suite.T(), "SaveKYCDocument", mock.Anything, mock.Anything)
}

func (suite *KYCServiceTestSuite) TestListDocuments() {
	ctx := context.Background()
	suite.mockKYCRepo.On("ListKYCDocumentsByUser", ctx, "user-1").Return([]domain.KYCDocument{{DocumentID: "d-1"}}, nil).Once()

	docs, err := suite.service.ListDocuments(ctx, "user-1")

	suite.NoError(err)
	suite.Len(docs, 1)
}

func TestKYCServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KYCServiceTestSuite))
}
