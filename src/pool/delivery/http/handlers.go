package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/pool/domain"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.PoolUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.PoolUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.ListPools)
	r.GET("/:id", h.GetPool)
	r.GET("/:id/historical-data", h.GetHistoricalData)
	r.POST("/liquidity/create", h.CreateLiquidity)
	r.POST("/liquidity/change", h.ChangeLiquidity)
	r.POST("/liquidity/collect", h.CollectFees)
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

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}

// ListPools godoc
//
//	@Summary		List liquidity pools
//	@Tags			pools
//	@Produce		json
//	@Param			take	query		int	false	"page size, 1-100"
//	@Param			offset	query		int	false	"page offset"
//	@Param			chainId	query		int	false	"chain id filter"
//	@Success		200	{object}	PoolsResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools [get]
func (h *Handler) ListPools(c *gin.Context) {
	take, ok := intQuery(c, "take", 20)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}
	chainID, ok := intQuery(c, "chainId", 0)
	if !ok {
		return
	}
	pools, err := h.service.List(c.Request.Context(), notus.ListPoolsRequest{
		Take:    take,
		Offset:  offset,
		ChainID: int64(chainID),
	})
	if err != nil {
		respondError(c, h.logger, "ListPools", err)
		return
	}
	c.JSON(http.StatusOK, PoolsResponse{Pools: pools})
}

// GetPool godoc
//
//	@Summary		Get pool detail
//	@Tags			pools
//	@Produce		json
//	@Param			id	path		string	true	"pool id"
//	@Success		200	{object}	notus.Pool
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools/:id [get]
func (h *Handler) GetPool(c *gin.Context) {
	pool, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "GetPool", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

// GetHistoricalData godoc
//
//	@Summary		Get pool historical chart data
//	@Tags			pools
//	@Produce		json
//	@Param			id			path		string	true	"pool id"
//	@Param			rangeDays	query		int		false	"range in days, 1-365"
//	@Success		200	{object}	HistoricalDataResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools/:id/historical-data [get]
func (h *Handler) GetHistoricalData(c *gin.Context) {
	rangeDays, ok := intQuery(c, "rangeDays", 30)
	if !ok {
		return
	}
	points, err := h.service.HistoricalData(c.Request.Context(), c.Param("id"), rangeDays)
	if err != nil {
		respondError(c, h.logger, "GetHistoricalData", err)
		return
	}
	c.JSON(http.StatusOK, HistoricalDataResponse{Points: points})
}

// CreateLiquidity godoc
//
//	@Summary		Quote a new liquidity position
//	@Tags			pools
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateLiquidityRequestBody	true	"Request body"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools/liquidity/create [post]
func (h *Handler) CreateLiquidity(c *gin.Context) {
	var req CreateLiquidityRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CreateLiquidity err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.CreateLiquidity(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "CreateLiquidity", err)
		return
	}
	c.JSON(http.StatusOK, fromQuote(q))
}

// ChangeLiquidity godoc
//
//	@Summary		Quote a liquidity position change
//	@Tags			pools
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChangeLiquidityRequestBody	true	"Request body"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools/liquidity/change [post]
func (h *Handler) ChangeLiquidity(c *gin.Context) {
	var req ChangeLiquidityRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("ChangeLiquidity err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.ChangeLiquidity(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "ChangeLiquidity", err)
		return
	}
	c.JSON(http.StatusOK, fromQuote(q))
}

// CollectFees godoc
//
//	@Summary		Quote a fee collection
//	@Tags			pools
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CollectFeesRequestBody	true	"Request body"
//	@Success		200	{object}	QuoteResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/pools/liquidity/collect [post]
func (h *Handler) CollectFees(c *gin.Context) {
	var req CollectFeesRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CollectFees err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	q, err := h.service.CollectFees(c.Request.Context(), req.ToRequest(auth.WalletAddress(c)))
	if err != nil {
		respondError(c, h.logger, "CollectFees", err)
		return
	}
	c.JSON(http.StatusOK, fromQuote(q))
}
