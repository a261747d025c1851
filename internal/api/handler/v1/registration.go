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

type RegistrationService interface {
	Register(ctx context.Context, reg domain.Registration) (domain.Participant, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register for an event
// @Description  One registration per email and event.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "Participant details"
// @Success      201      {object}  response.Registration
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /register [post]
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidBody))
		return
	}

	participant, err := h.svc.Register(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		var fieldErr *domain.FieldError

		switch {
		case errors.As(err, &fieldErr):
			response.RenderErr(ctx, response.ErrBadRequest(fieldErr))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("Event"))
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrConflict(err, "You have already registered for this event"))
		default:
			err = fmt.Errorf("HandleRegister -> h.svc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.Registration{
		Message:     "Registration successful!",
		Participant: participant,
	})
}
