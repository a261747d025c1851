package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connaissance/fest-api/internal/api/handler/v1/response"
	"github.com/connaissance/fest-api/internal/domain"
)

type StatsService interface {
	GetStats(ctx context.Context) (domain.Stats, error)
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
// @Summary      Aggregate counts
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
func (h *StatsHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.GetStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
