package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/middleware"
	"github.com/SscSPs/cross_currency_wallet/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles sign-up, sign-in and session management.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: authService, cfg: cfg}
}

// registerAuthRoutes registers the public auth endpoints behind an IP rate limit and the
// session endpoints behind AuthMiddleware.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade, ipLimiter *limiter.Limiter) {
	h := newAuthHandler(authService, cfg)
	limited := middleware.IPRateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", limited, h.signUp)
		auth.POST("/signin", limited, h.signIn)
		auth.POST("/refresh", limited, h.refresh)
		auth.POST("/google", limited, h.signInWithGoogle)
		auth.POST("/google/code", limited, h.signInWithGoogleCode)
		auth.POST("/password/reset", limited, h.requestPasswordReset)
		auth.POST("/password/confirm", limited, h.confirmPasswordReset)
	}

	session := auth.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		session.POST("/signout", h.signOut)
		session.POST("/password/update", h.updatePassword)
		session.GET("/me", h.me)
	}
}

func (h *authHandler) setRefreshCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, token, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) respondSession(c *gin.Context, status int, session *domain.AuthSession) {
	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTokenExpiresAt)
	c.JSON(status, dto.ToAuthResponse(session))
}

// signUp godoc
// @Summary Register a new account
// @Description Creates an email/password account, provisions one wallet per supported currency and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) signUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	h.respondSession(c, http.StatusCreated, session)
}

// signIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *authHandler) signIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	h.respondSession(c, http.StatusOK, session)
}

// refresh godoc
// @Summary Rotate the session
// @Description Exchanges a refresh token, from the cookie or the body, for a new access and refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "User and optional refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token := req.RefreshToken
	if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil && cookie != "" {
		token = cookie
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token required"})
		return
	}

	session, err := h.authService.RefreshSession(c.Request.Context(), req.UserID, token)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err, "Failed to refresh session")
		return
	}
	h.respondSession(c, http.StatusOK, session)
}

// signInWithGoogle godoc
// @Summary Sign in with a Google ID token
// @Description Validates the ID token, links or creates the account and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email registered with a password"
// @Router /auth/google [post]
func (h *authHandler) signInWithGoogle(c *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SignInWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}
	h.respondSession(c, http.StatusOK, session)
}

// signInWithGoogleCode godoc
// @Summary Sign in with a Google authorization code
// @Description Redeems the code with Google, then continues as the ID token sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Code exchange not configured"
// @Router /auth/google/code [post]
func (h *authHandler) signInWithGoogleCode(c *gin.Context) {
	var req dto.GoogleCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SignInWithGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}
	h.respondSession(c, http.StatusOK, session)
}

// requestPasswordReset godoc
// @Summary Request a password reset
// @Description Always answers 202. Outside production the reset token is echoed back for testing.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Account email"
// @Success 202 {object} dto.PasswordResetResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/password/reset [post]
func (h *authHandler) requestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to request password reset")
		return
	}

	resp := dto.PasswordResetResponse{Message: "If the account exists, a reset link has been sent."}
	if !h.cfg.IsProduction {
		resp.ResetToken = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// confirmPasswordReset godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token invalid or expired"
// @Router /auth/password/confirm [post]
func (h *authHandler) confirmPasswordReset(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err, "Failed to reset password")
		return
	}
	c.Status(http.StatusNoContent)
}

// updatePassword godoc
// @Summary Change the password of the signed-in user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/password/update [post]
func (h *authHandler) updatePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to update password")
		return
	}
	c.Status(http.StatusNoContent)
}

// signOut godoc
// @Summary Sign out
// @Description Revokes the stored refresh token and clears the cookie.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/signout [post]
func (h *authHandler) signOut(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User signed out", slog.String("user_id", userID))
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
