package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers the rate lookups for every user and the rate
// administration endpoints for admins.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/active/:from/:to", h.getActiveExchangeRate)
	}

	admin := exchangeRates.Group("", middleware.RequireAdmin(authService))
	{
		admin.POST("", h.createExchangeRate)
		admin.POST("/:rateID/deactivate", h.deactivateExchangeRate)
	}
}

// getActiveExchangeRate godoc
// @Summary Get the active exchange rate for a currency pair
// @Description Returns the single rate currently authoritative for converting from one currency to another.
// @Tags exchange rates
// @Produce json
// @Param from path string true "Source currency (CFA, NGN, USDT)"
// @Param to path string true "Target currency (CFA, NGN, USDT)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency or invalid pair"
// @Failure 404 {object} ErrorResponse "No active rate"
// @Failure 409 {object} ErrorResponse "More than one active rate"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/active/{from}/{to} [get]
func (h *exchangeRateHandler) getActiveExchangeRate(c *gin.Context) {
	from, err := parseCurrencyParam(c.Param("from"))
	if err != nil {
		respondError(c, err, "Invalid source currency")
		return
	}
	to, err := parseCurrencyParam(c.Param("to"))
	if err != nil {
		respondError(c, err, "Invalid target currency")
		return
	}

	rate, err := h.exchangeRateService.GetActiveExchangeRate(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to retrieve exchange rate")
		return
	}
	if rate == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No active exchange rate for " + string(from) + " to " + string(to)})
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags exchange rates
// @Produce json
// @Param from query string false "Source currency"
// @Param to query string false "Target currency"
// @Param status query string false "active, inactive or scheduled"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// createExchangeRate godoc
// @Summary Publish a new exchange rate
// @Description Admin only. Rejected when an active rate for the pair already covers the window.
// @Tags exchange rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Overlapping active rate"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("rate", req.Rate.String()),
	)

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create exchange rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// deactivateExchangeRate godoc
// @Summary Deactivate an exchange rate
// @Description Admin only. Quotes already issued against the rate stay valid until they expire.
// @Tags exchange rates
// @Param rateID path string true "Exchange rate ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already inactive"
// @Security BearerAuth
// @Router /exchange-rates/{rateID}/deactivate [post]
func (h *exchangeRateHandler) deactivateExchangeRate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeactivateExchangeRate(c.Request.Context(), c.Param("rateID"), userID); err != nil {
		respondError(c, err, "Failed to deactivate exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}
