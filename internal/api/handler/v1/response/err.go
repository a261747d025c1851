package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	ErrorText string `json:"error"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

// RenderErr writes e and aborts the handler chain. Server errors are
// logged with the request id; their cause never reaches the client.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      err.Error(),
	}
}

func ErrNotFound(resource string) *Err {
	return &Err{
		Err:            fmt.Errorf("%v not found", resource),
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      fmt.Sprintf("%v not found", resource),
	}
}

func ErrConflict(err error, text string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		ErrorText:      text,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      http.StatusText(http.StatusInternalServerError),
	}
}
