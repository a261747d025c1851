package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connaissance/fest-api/internal/api/handler/v1/request"
	"github.com/connaissance/fest-api/internal/api/handler/v1/response"
)

type AdminService interface {
	Verify(passkey string) bool
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleVerify godoc
// @Summary      Check the admin passkey
// @Description  Success is only a signal for the admin UI; no other route is gated.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.VerifyRequest  true  "Passkey"
// @Success      200      {object}  response.Verify
// @Failure      401      {object}  response.Verify
// @Router       /admin/verify [post]
func (h *AdminHandler) HandleVerify(ctx *gin.Context) {
	var req request.VerifyRequest
	// A missing or malformed body is just a wrong passkey.
	_ = ctx.ShouldBindJSON(&req)

	if !h.svc.Verify(req.Passkey) {
		ctx.JSON(http.StatusUnauthorized, response.Verify{Success: false, Error: "Invalid passkey"})
		return
	}

	ctx.JSON(http.StatusOK, response.Verify{Success: true, Message: "Access granted"})
}
