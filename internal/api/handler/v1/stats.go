package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventpass-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventpass-api/internal/domain"
)

type StatsService interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Dashboard statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
// @Security BearerAuth
func (h *StatsHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
