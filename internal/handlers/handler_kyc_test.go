package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) kycRequest(documentType, fileName, contentType string, content []byte) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	suite.Require().NoError(mw.WriteField("documentType", documentType))

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/kyc/documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token("user-1"))
	return req
}

func (suite *HandlerTestSuite) TestUploadKYCDocument() {
	content := []byte("%PDF-1.7 passport scan")
	var uploaded []byte
	suite.kycService.On("UploadDocument", mock.Anything, "user-1",
		mock.MatchedBy(func(u portssvc.KYCUpload) bool {
			return u.DocumentType == domain.DocumentPassport && u.FileName == "passport.pdf" && u.ContentType == "application/pdf"
		})).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(2).(portssvc.KYCUpload).Body)
		}).
		Return(&domain.KYCDocument{
			DocumentID:   "doc-1",
			UserID:       "user-1",
			DocumentType: domain.DocumentPassport,
			FileURL:      "https://kyc.s3.eu-west-1.amazonaws.com/user-1/passport-1767225600.pdf",
			Status:       domain.KYCPending,
			UploadedAt:   time.Now().UTC(),
		}, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.kycRequest("passport", "passport.pdf", "application/pdf", content))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal(content, uploaded)
	var resp dto.KYCDocumentResponse
	suite.decode(w, &resp)
	suite.Equal("pending", resp.Status)
}

func (suite *HandlerTestSuite) TestUploadKYCDocument_StorageDisabled() {
	suite.kycService.On("UploadDocument", mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusServiceUnavailable, "document storage is not configured", nil)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.kycRequest("selfie", "me.png", "image/png", []byte{0x89, 'P', 'N', 'G'}))

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("document storage is not configured", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUploadKYCDocument_TooLarge() {
	suite.cfg.KYCMaxUploadBytes = 16
	suite.buildRouter()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.kycRequest("passport", "passport.pdf", "application/pdf", bytes.Repeat([]byte("x"), 4096)))

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.kycService.AssertNotCalled(suite.T(), "UploadDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUploadKYCDocument_MissingFile() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/kyc/documents", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListKYCDocuments() {
	suite.kycService.On("ListDocuments", mock.Anything, "user-1").
		Return([]domain.KYCDocument{{DocumentID: "doc-1", DocumentType: domain.DocumentSelfie, Status: domain.KYCApproved}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/kyc/documents", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.KYCDocumentResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("approved", resp[0].Status)
}
