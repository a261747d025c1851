package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connaissance/fest-api/internal/api/handler/v1/request"
	"github.com/connaissance/fest-api/internal/api/handler/v1/response"
	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/service"
)

type ParticipantService interface {
	ListParticipants(ctx context.Context, eventID *uint) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	UpdateParticipant(ctx context.Context, id uint, patch domain.ParticipantPatch) (domain.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type ExportService interface {
	ExportParticipants(ctx context.Context, eventID *uint) ([]byte, error)
}

type ParticipantHandler struct {
	svc    ParticipantService
	export ExportService
}

func NewParticipantHandler(svc ParticipantService, export ExportService) *ParticipantHandler {
	return &ParticipantHandler{
		svc:    svc,
		export: export,
	}
}

// HandleGetParticipants godoc
// @Summary      List participants
// @Description  Newest registrations first, optionally for one event.
// @Tags         participants
// @Produce      json
// @Param        event_id  query     int  false  "Event ID filter"
// @Success      200       {array}   domain.Participant
// @Failure      500       {object}  response.Err
// @Router       /participants [get]
func (h *ParticipantHandler) HandleGetParticipants(ctx *gin.Context) {
	participants, err := h.svc.ListParticipants(ctx.Request.Context(), eventFilter(ctx))
	if err != nil {
		err = fmt.Errorf("HandleGetParticipants -> h.svc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleDownloadParticipants godoc
// @Summary      Export participants as CSV
// @Description  Registration times are shown in IST (UTC+05:30).
// @Tags         participants
// @Produce      text/csv
// @Param        event_id  query     int  false  "Event ID filter"
// @Success      200       {file}    file
// @Failure      500       {object}  response.Err
// @Router       /participants/download [get]
func (h *ParticipantHandler) HandleDownloadParticipants(ctx *gin.Context) {
	doc, err := h.export.ExportParticipants(ctx.Request.Context(), eventFilter(ctx))
	if err != nil {
		err = fmt.Errorf("HandleDownloadParticipants -> h.export.ExportParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+service.ExportFilename)
	ctx.Data(http.StatusOK, "text/csv", doc)
}

// HandleUpdateParticipant godoc
// @Summary      Update a participant
// @Description  Replaces only the fields present in the body. An event_id naming no event is ignored.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id       path      int                               true  "Participant ID"
// @Param        request  body      request.UpdateParticipantRequest  true  "Fields to change"
// @Success      200      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants/{id} [put]
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Participant"))
		return
	}

	if _, err := h.svc.GetParticipant(ctx.Request.Context(), id); err != nil {
		renderParticipantErr(ctx, fmt.Errorf("HandleUpdateParticipant -> h.svc.GetParticipant -> %w", err))
		return
	}

	var req request.UpdateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidBody))
		return
	}

	updated, err := h.svc.UpdateParticipant(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		renderParticipantErr(ctx, fmt.Errorf("HandleUpdateParticipant -> h.svc.UpdateParticipant -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         participants
// @Produce      json
// @Param        id   path      int  true  "Participant ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{id} [delete]
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Participant"))
		return
	}

	if err := h.svc.DeleteParticipant(ctx.Request.Context(), id); err != nil {
		renderParticipantErr(ctx, fmt.Errorf("HandleDeleteParticipant -> h.svc.DeleteParticipant -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Participant deleted successfully"})
}

func renderParticipantErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrParticipantNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("Participant"))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
