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

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	CreateEvent(ctx context.Context, draft domain.EventDraft) (domain.Event, error)
	UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvents godoc
// @Summary      List events
// @Description  Events ordered by their date string, ascending.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Event"))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		renderEventErr(ctx, fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Only name is required. Omitted fields default to date "TBD", eligibility "Open to all" and empty text elsewhere.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "Event details"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("Event name is required")))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDraft())
	if err != nil {
		renderEventErr(ctx, fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Replaces only the fields present in the body.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Event ID"
// @Param        request  body      request.UpdateEventRequest  true  "Fields to change"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{id} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Event"))
		return
	}

	if _, err := h.svc.GetEvent(ctx.Request.Context(), id); err != nil {
		renderEventErr(ctx, fmt.Errorf("HandleUpdateEvent -> h.svc.GetEvent -> %w", err))
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidBody))
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		renderEventErr(ctx, fmt.Errorf("HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Deletes the event's participants, then the event.
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Event"))
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		renderEventErr(ctx, fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Event deleted successfully"})
}

func renderEventErr(ctx *gin.Context, err error) {
	var fieldErr *domain.FieldError

	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("Event"))
	case errors.As(err, &fieldErr):
		response.RenderErr(ctx, response.ErrBadRequest(fieldErr))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
