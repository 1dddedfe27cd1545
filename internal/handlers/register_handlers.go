package handlers

import (
	"fmt"

	"github.com/SscSPs/cross_currency_wallet/cmd/docs"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/middleware"
	"github.com/SscSPs/cross_currency_wallet/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// db backs the health check and may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
) error {
	if err := registerValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	authLimiter, err := middleware.NewLimiter(cfg.AuthRateLimit)
	if err != nil {
		return err
	}
	apiLimiter, err := middleware.NewLimiter(cfg.APIRateLimit)
	if err != nil {
		return err
	}

	registerHealthRoutes(r, db)

	api := r.Group("/api/v1")
	registerAuthRoutes(api, cfg, services.Auth, authLimiter)

	setupAPIV1Routes(api, cfg, services, middleware.RateLimit(apiLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated part of /api/v1 and delegates to the
// specific route registrations.
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	// Rate limiting runs after auth so it is keyed per user.
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret), rateLimit)

	registerExchangeRateRoutes(v1, services.ExchangeRate, services.Auth)
	registerQuoteRoutes(v1, services.Quote, services.Exchange)
	registerWalletRoutes(v1, services.Wallet)
	registerTransactionRoutes(v1, services.Transaction)
	registerKYCRoutes(v1, services.KYC, cfg.KYCMaxUploadBytes)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
