package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/dashboard/domain"
	"github.com/lumapay/luma/src/logger"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.DashboardUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.DashboardUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/overview", h.GetOverview)
}

// GetOverview godoc
//
//	@Summary		Get home screen overview
//	@Description	Portfolio, recent transactions and chain catalog in one response
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	domain.Overview
//	@Failure		400	{object}	object{error=string}
//	@Router			/dashboard/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	out, err := h.service.Overview(c.Request.Context(), auth.WalletAddress(c))
	if err != nil {
		var apiErr *notus.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
			c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message, "id": apiErr.ID})
			return
		}
		h.logger.Errorf("GetOverview err: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		return
	}
	c.JSON(http.StatusOK, out)
}
