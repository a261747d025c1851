package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connaissance/fest-api/internal/api/handler/v1/response"
)

func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Message{Message: "OK"})
}
