package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cross_currency_wallet/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware sends one event per successful authenticated request.
func AnalyticsMiddleware(analytics *utils.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/quotes/:quoteID/execute" -> "api_v1_quotes_:quoteID_execute"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		analytics.Capture(userID, eventName, props)
	}
}
