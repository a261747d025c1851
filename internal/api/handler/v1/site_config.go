package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connaissance/fest-api/internal/api/handler/v1/request"
	"github.com/connaissance/fest-api/internal/api/handler/v1/response"
)

type SiteConfigService interface {
	GetConfig(ctx context.Context) (map[string]string, error)
	UpdateConfig(ctx context.Context, values map[string]string) error
}

type SiteConfigHandler struct {
	svc SiteConfigService
}

func NewSiteConfigHandler(svc SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{
		svc: svc,
	}
}

// HandleGetConfig godoc
// @Summary      Site display settings
// @Description  Always returns all nine settings, with defaults for those never set.
// @Tags         config
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  response.Err
// @Router       /config [get]
func (h *SiteConfigHandler) HandleGetConfig(ctx *gin.Context) {
	conf, err := h.svc.GetConfig(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetConfig -> h.svc.GetConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, conf)
}

// HandleUpdateConfig godoc
// @Summary      Change site display settings
// @Description  Unknown keys are ignored.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Settings to change"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /config [put]
func (h *SiteConfigHandler) HandleUpdateConfig(ctx *gin.Context) {
	var req request.UpdateSiteConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("Settings must be a JSON object")))
		return
	}

	if err := h.svc.UpdateConfig(ctx.Request.Context(), req.Values()); err != nil {
		err = fmt.Errorf("HandleUpdateConfig -> h.svc.UpdateConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Settings updated"})
}
