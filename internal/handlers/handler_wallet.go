package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/gin-gonic/gin"
)

type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := &walletHandler{walletService: walletService}

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.GET("/:currency", h.getWallet)
	}
}

// listWallets godoc
// @Summary List the caller's wallets
// @Tags wallets
// @Produce json
// @Success 200 {array} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list wallets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}

// getWallet godoc
// @Summary Get the caller's wallet for a currency
// @Tags wallets
// @Produce json
// @Param currency path string true "Currency (CFA, NGN, USDT)"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{currency} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	currency, err := parseCurrencyParam(c.Param("currency"))
	if err != nil {
		respondError(c, err, "Invalid currency")
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID, currency)
	if err != nil {
		respondError(c, err, "Failed to retrieve wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}
