package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/wallet/domain"
	"github.com/lumapay/luma/src/wallet/usecase"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.WalletUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.WalletUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.GET("", h.GetWallet)
	r.GET("/portfolio", h.GetPortfolio)
	r.GET("/history", h.GetHistory)
	r.PATCH("/metadata", h.UpdateMetadata)
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

// Register godoc
//
//	@Summary		Register smart wallet
//	@Description	Register the custodial smart wallet for the authenticated user
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	WalletResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/wallet/register [post]
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	w, err := h.service.Register(ctx, auth.EOA(c))
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, h.logger, "Register", err)
		return
	}
	c.JSON(http.StatusOK, fromWallet(w))
}

// GetWallet godoc
//
//	@Summary		Get smart wallet
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	WalletResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	ctx := c.Request.Context()
	w, err := h.service.Get(ctx, auth.EOA(c))
	if err != nil {
		respondError(c, h.logger, "GetWallet", err)
		return
	}
	c.JSON(http.StatusOK, fromWallet(w))
}

// GetPortfolio godoc
//
//	@Summary		Get portfolio with USD total
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	PortfolioResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/wallet/portfolio [get]
func (h *Handler) GetPortfolio(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.service.Portfolio(ctx, auth.WalletAddress(c))
	if err != nil {
		respondError(c, h.logger, "GetPortfolio", err)
		return
	}
	c.JSON(http.StatusOK, fromPortfolio(p))
}

// GetHistory godoc
//
//	@Summary		Get transaction history page
//	@Tags			wallet
//	@Produce		json
//	@Param			take	query		int		false	"page size, 1-100"
//	@Param			lastId	query		string	false	"cursor from previous page"
//	@Success		200	{object}	HistoryResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/wallet/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	take, err := strconv.Atoi(c.DefaultQuery("take", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "take must be an integer"})
		return
	}
	hist, err := h.service.History(ctx, notus.WalletHistoryRequest{
		WalletAddress: auth.WalletAddress(c),
		Take:          take,
		LastID:        c.Query("lastId"),
	})
	if err != nil {
		respondError(c, h.logger, "GetHistory", err)
		return
	}
	c.JSON(http.StatusOK, fromHistory(hist))
}

// UpdateMetadata godoc
//
//	@Summary		Update wallet metadata
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateMetadataRequestBody	true	"Request body"
//	@Success		200	{object}	WalletResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/wallet/metadata [patch]
func (h *Handler) UpdateMetadata(c *gin.Context) {
	ctx := c.Request.Context()
	var req UpdateMetadataRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("UpdateMetadata err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	w, err := h.service.UpdateMetadata(ctx, auth.WalletAddress(c), req.Metadata)
	if err != nil {
		respondError(c, h.logger, "UpdateMetadata", err)
		return
	}
	c.JSON(http.StatusOK, fromWallet(w))
}
