package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/swap/domain"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.SwapUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.SwapUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/chains", h.ListChains)
	r.GET("/tokens", h.ListTokens)
	r.POST("/transfer/quote", h.TransferQuote)
	r.POST("/swap/quote", h.SwapQuote)
	r.POST("/execute", h.Execute)
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

// ListChains godoc
//
//	@Summary		List supported chains
//	@Tags			crypto
//	@Produce		json
//	@Success		200	{object}	ChainsResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/crypto/chains [get]
func (h *Handler) ListChains(c *gin.Context) {
	chains, err := h.service.Chains(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "ListChains", err)
		return
	}
	c.JSON(http.StatusOK, ChainsResponse{Chains: chains})
}

// ListTokens godoc
//
//	@Summary		List tokens, optionally filtered by chain
//	@Tags			crypto
//	@Produce		json
//	@Param			chainId	query		int	false	"chain id filter"
//	@Success		200	{object}	TokensResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/crypto/tokens [get]
func (h *Handler) ListTokens(c *gin.Context) {
	var chainID int64
	if raw := c.Query("chainId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chainId must be an integer"})
			return
		}
		chainID = parsed
	}
	tokens, err := h.service.Tokens(c.Request.Context(), chainID)
	if err != nil {
		respondError(c, h.logger, "ListTokens", err)
		return
	}
	c.JSON(http.StatusOK, TokensResponse{Tokens: tokens})
}

// TransferQuote godoc
//
//	@Summary		Quote a token transfer
//	@Tags			crypto
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransferQuoteRequestBody	true	"Request body"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/crypto/transfer/quote [post]
func (h *Handler) TransferQuote(c *gin.Context) {
	var req TransferQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("TransferQuote err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.TransferQuote(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "TransferQuote", err)
		return
	}
	c.JSON(http.StatusOK, fromQuote(q))
}

// SwapQuote godoc
//
//	@Summary		Quote a token swap
//	@Tags			crypto
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwapQuoteRequestBody	true	"Request body"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/crypto/swap/quote [post]
func (h *Handler) SwapQuote(c *gin.Context) {
	var req SwapQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("SwapQuote err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.SwapQuote(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "SwapQuote", err)
		return
	}
	c.JSON(http.StatusOK, fromQuote(q))
}

// Execute godoc
//
//	@Summary		Execute a signed user operation
//	@Tags			crypto
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExecuteRequestBody	true	"Request body"
//	@Success		200	{object}	UserOperationResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/crypto/execute [post]
func (h *Handler) Execute(c *gin.Context) {
	var req ExecuteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Execute err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	op, err := h.service.Execute(c.Request.Context(), req.ToRequest())
	if err != nil {
		respondError(c, h.logger, "Execute", err)
		return
	}
	c.JSON(http.StatusOK, fromUserOperation(op))
}
