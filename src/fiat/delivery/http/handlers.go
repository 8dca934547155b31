package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/fiat/domain"
	"github.com/lumapay/luma/src/logger"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.FiatUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.FiatUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/deposit/quote", h.DepositQuote)
	r.POST("/deposit", h.CreateDeposit)
	r.POST("/withdraw/quote", h.WithdrawQuote)
	r.POST("/withdraw", h.CreateWithdraw)
}

func respondError(c *gin.Context, logg *logger.Logger, op string, err error) {
	var apiErr *notus.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		logg.Errorf("%s upstream err: %v", op, err)
		c.JSON(status, gin.H{"error": apiErr.Message, "id": apiErr.ID})
		return
	}
	logg.Errorf("%s err: %v", op, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// DepositQuote godoc
//
//	@Summary		Quote a PIX deposit
//	@Tags			fiat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DepositQuoteRequestBody	true	"Request body"
//	@Success		200	{object}	FiatQuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/fiat/deposit/quote [post]
func (h *Handler) DepositQuote(c *gin.Context) {
	var req DepositQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("DepositQuote err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.DepositQuote(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "DepositQuote", err)
		return
	}
	c.JSON(http.StatusOK, fromFiatQuote(q))
}

// CreateDeposit godoc
//
//	@Summary		Create a PIX deposit order
//	@Tags			fiat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateDepositRequestBody	true	"Request body"
//	@Success		200	{object}	DepositOrderResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/fiat/deposit [post]
func (h *Handler) CreateDeposit(c *gin.Context) {
	var req CreateDepositRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CreateDeposit err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	order, err := h.service.CreateDeposit(c.Request.Context(), notus.CreateDepositOrderRequest{
		QuoteID:       req.QuoteID,
		WalletAddress: auth.WalletAddress(c),
		ChainID:       req.ChainID,
	})
	if err != nil {
		respondError(c, h.logger, "CreateDeposit", err)
		return
	}
	c.JSON(http.StatusOK, fromDepositOrder(order))
}

// WithdrawQuote godoc
//
//	@Summary		Quote a PIX withdrawal
//	@Tags			fiat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		WithdrawQuoteRequestBody	true	"Request body"
//	@Success		200	{object}	FiatQuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/fiat/withdraw/quote [post]
func (h *Handler) WithdrawQuote(c *gin.Context) {
	var req WithdrawQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("WithdrawQuote err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.WithdrawQuote(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "WithdrawQuote", err)
		return
	}
	c.JSON(http.StatusOK, fromFiatQuote(q))
}

// CreateWithdraw godoc
//
//	@Summary		Create a PIX withdrawal order
//	@Tags			fiat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateWithdrawRequestBody	true	"Request body"
//	@Success		200	{object}	WithdrawOrderResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/fiat/withdraw [post]
func (h *Handler) CreateWithdraw(c *gin.Context) {
	var req CreateWithdrawRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CreateWithdraw err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	order, err := h.service.CreateWithdraw(c.Request.Context(), notus.CreateWithdrawOrderRequest{
		QuoteID:       req.QuoteID,
		WalletAddress: auth.WalletAddress(c),
		ChainID:       req.ChainID,
	})
	if err != nil {
		respondError(c, h.logger, "CreateWithdraw", err)
		return
	}
	c.JSON(http.StatusOK, fromWithdrawOrder(order))
}
