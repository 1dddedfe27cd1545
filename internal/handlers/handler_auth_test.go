package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/stretchr/testify/mock"
)

func testSession(userID string) *domain.AuthSession {
	now := time.Now().UTC()
	return &domain.AuthSession{
		User:                  domain.User{UserID: userID, Email: "ada@example.com", FullName: "Ada", Role: domain.RoleUser},
		AccessToken:           "access-token",
		AccessTokenExpiresAt:  now.Add(time.Hour),
		RefreshToken:          "refresh-token",
		RefreshTokenExpiresAt: now.Add(24 * time.Hour),
	}
}

func refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "rtid" {
			return c
		}
	}
	return nil
}

func (suite *HandlerTestSuite) TestSignUp() {
	req := dto.SignUpRequest{Email: "ada@example.com", Password: "correct-horse", FullName: "Ada"}
	suite.authService.On("SignUp", mock.Anything, req).Return(testSession("user-1"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/signup", req, "")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.Equal("access-token", resp.AccessToken)
	suite.Equal("user-1", resp.User.UserID)

	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Equal("refresh-token", cookie.Value)
	suite.True(cookie.HttpOnly)
	suite.Equal("/api/v1/auth", cookie.Path)
}

func (suite *HandlerTestSuite) TestSignUp_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/v1/auth/signup", dto.SignUpRequest{Email: "not-an-email", Password: "short"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.authService.AssertNotCalled(suite.T(), "SignUp", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSignUp_DuplicateEmail() {
	req := dto.SignUpRequest{Email: "ada@example.com", Password: "correct-horse", FullName: "Ada"}
	suite.authService.On("SignUp", mock.Anything, req).
		Return(nil, apperrors.NewConflictError("email is already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/signup", req, "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("email is already registered", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestSignIn_InvalidCredentials() {
	req := dto.SignInRequest{Email: "ada@example.com", Password: "wrong"}
	suite.authService.On("SignIn", mock.Anything, req).Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/signin", req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("invalid email or password", suite.errorMessage(w))
	suite.Nil(refreshCookie(w))
}

func (suite *HandlerTestSuite) TestRefresh_PrefersCookie() {
	suite.authService.On("RefreshSession", mock.Anything, "user-1", "cookie-token").Return(testSession("user-1"), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"userID":"user-1","refreshToken":"body-token"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "cookie-token"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("refresh-token", refreshCookie(w).Value)
}

func (suite *HandlerTestSuite) TestRefresh_MissingToken() {
	w := suite.do(http.MethodPost, "/api/v1/auth/refresh", `{"userID":"user-1"}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.authService.AssertNotCalled(suite.T(), "RefreshSession", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRefresh_ExpiredClearsCookie() {
	suite.authService.On("RefreshSession", mock.Anything, "user-1", "stale").Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/refresh", `{"userID":"user-1","refreshToken":"stale"}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Empty(cookie.Value)
	suite.Negative(cookie.MaxAge)
}

func (suite *HandlerTestSuite) TestSignInWithGoogle() {
	suite.authService.On("SignInWithGoogle", mock.Anything, "google-id-token").Return(testSession("user-g"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google", dto.GoogleSignInRequest{IDToken: "google-id-token"}, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSignInWithGoogleCode_NotConfigured() {
	suite.authService.On("SignInWithGoogleCode", mock.Anything, "auth-code").
		Return(nil, apperrors.NewAppError(http.StatusServiceUnavailable, "google code exchange is not configured", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/code", dto.GoogleCodeRequest{Code: "auth-code"}, "")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("google code exchange is not configured", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestRequestPasswordReset_EchoesTokenOutsideProduction() {
	suite.authService.On("RequestPasswordReset", mock.Anything, "ada@example.com").Return("reset-token", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/password/reset", dto.PasswordResetRequest{Email: "ada@example.com"}, "")

	suite.Equal(http.StatusAccepted, w.Code)
	var resp dto.PasswordResetResponse
	suite.decode(w, &resp)
	suite.Equal("reset-token", resp.ResetToken)
}

func (suite *HandlerTestSuite) TestRequestPasswordReset_HidesTokenInProduction() {
	suite.cfg.IsProduction = true
	suite.authService.On("RequestPasswordReset", mock.Anything, "ada@example.com").Return("reset-token", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/password/reset", dto.PasswordResetRequest{Email: "ada@example.com"}, "")

	suite.Equal(http.StatusAccepted, w.Code)
	var resp dto.PasswordResetResponse
	suite.decode(w, &resp)
	suite.Empty(resp.ResetToken)
}

func (suite *HandlerTestSuite) TestConfirmPasswordReset_InvalidToken() {
	suite.authService.On("ResetPassword", mock.Anything, "bad", "new-password").Return(apperrors.ErrResetTokenInvalid).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/password/confirm", dto.ResetPasswordRequest{Token: "bad", NewPassword: "new-password"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestUpdatePassword() {
	suite.authService.On("UpdatePassword", mock.Anything, "user-1", "old-password", "new-password").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/password/update",
		dto.UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}, suite.token("user-1"))

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestSignOut() {
	suite.authService.On("SignOut", mock.Anything, "user-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/signout", nil, suite.token("user-1"))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Require().NotNil(refreshCookie(w))
	suite.Negative(refreshCookie(w).MaxAge)
}

func (suite *HandlerTestSuite) TestMe() {
	suite.authService.On("GetCurrentUser", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", Email: "ada@example.com", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil, suite.token("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal("ada@example.com", resp.Email)
	suite.Equal("user", resp.Role)
}

func (suite *HandlerTestSuite) TestMe_ExpiredToken() {
	expired := suite.tokenAt("user-1", time.Now().Add(-2*time.Hour))

	w := suite.do(http.MethodGet, "/api/v1/auth/me", nil, expired)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Token has expired", suite.errorMessage(w))
}
