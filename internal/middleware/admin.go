package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireAdmin lets the request through only when the stored profile has the admin role.
// The token's role claim is only logged. Must run after AuthMiddleware.
func RequireAdmin(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := authSvc.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Failed to load user for admin check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if !user.IsAdmin() {
			logger.Warn("Non-admin user attempted admin action", slog.String("token_role", GetRoleFromContext(c)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
