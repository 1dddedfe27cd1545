package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/SscSPs/cross_currency_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quoteHandler prices exchanges and manages the caller's quotes.
type quoteHandler struct {
	quoteService    portssvc.QuoteSvcFacade
	exchangeService portssvc.ExchangeSvcFacade
	now             func() time.Time
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade, es portssvc.ExchangeSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService:    qs,
		exchangeService: es,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade, exchangeService portssvc.ExchangeSvcFacade) {
	h := newQuoteHandler(quoteService, exchangeService)

	rg.POST("/exchange/preview", h.previewExchange)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.POST("/:quoteID/cancel", h.cancelQuote)
		quotes.POST("/:quoteID/execute", h.executeExchange)
	}
}

// parsePair validates the currencies of a quote or preview request.
func parsePair(fromRaw, toRaw string) (domain.CurrencyCode, domain.CurrencyCode, error) {
	from, err := parseCurrencyParam(fromRaw)
	if err != nil {
		return "", "", err
	}
	to, err := parseCurrencyParam(toRaw)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}

// previewExchange godoc
// @Summary Preview an exchange
// @Description Prices an amount against the active rate without creating a quote.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body dto.PreviewExchangeRequest true "Pair and amount"
// @Success 200 {object} dto.ExchangePreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, pair or no active rate"
// @Failure 409 {object} ErrorResponse "Ambiguous rate"
// @Security BearerAuth
// @Router /exchange/preview [post]
func (h *quoteHandler) previewExchange(c *gin.Context) {
	var req dto.PreviewExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	from, to, err := parsePair(req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondError(c, err, "Invalid currency pair")
		return
	}

	rate, conv, err := h.quoteService.PreviewExchange(c.Request.Context(), from, to, req.FromAmount)
	if err != nil {
		respondError(c, err, "Failed to preview exchange")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangePreviewResponse(rate, conv))
}

// createQuote godoc
// @Summary Request a quote
// @Description Freezes the active rate and fees for the rate's quote TTL.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Pair and amount"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, pair or no active rate"
// @Failure 409 {object} ErrorResponse "Ambiguous rate"
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	from, to, err := parsePair(req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondError(c, err, "Invalid currency pair")
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), userID, from, to, req.FromAmount)
	if err != nil {
		respondError(c, err, "Failed to create quote")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote, h.now()))
}

// getQuote godoc
// @Summary Get a quote
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), userID, c.Param("quoteID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, h.now()))
}

// cancelQuote godoc
// @Summary Cancel a quote
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quote no longer active"
// @Security BearerAuth
// @Router /quotes/{quoteID}/cancel [post]
func (h *quoteHandler) cancelQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.CancelQuote(c.Request.Context(), userID, c.Param("quoteID"))
	if err != nil {
		respondError(c, err, "Failed to cancel quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, h.now()))
}

// executeExchange godoc
// @Summary Execute a quote
// @Description Debits the source wallet and credits the target wallet at the quoted rate, atomically.
// @Tags exchange
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.ExchangeResultResponse
// @Failure 403 {object} ErrorResponse "Quote belongs to another user"
// @Failure 404 {object} ErrorResponse "Quote or wallet not found"
// @Failure 409 {object} ErrorResponse "Quote expired, already used or wallet frozen"
// @Failure 422 {object} ErrorResponse "Insufficient balance or limit exceeded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID}/execute [post]
func (h *quoteHandler) executeExchange(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	quoteID := c.Param("quoteID")

	result, err := h.exchangeService.ExecuteExchange(c.Request.Context(), userID, quoteID)
	if err != nil {
		respondError(c, err, "Exchange failed")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Exchange executed",
		slog.String("quote_id", quoteID),
		slog.String("reference", result.Transaction.Reference),
	)
	c.JSON(http.StatusOK, dto.ToExchangeResultResponse(result))
}
