package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("Invalid request body")

// pathID parses a numeric path parameter. Non-numeric ids never name a
// stored row, so callers answer them with 404.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// eventFilter reads the optional event_id query parameter. Missing,
// malformed and zero values all mean no filter.
func eventFilter(ctx *gin.Context) *uint {
	id, err := strconv.ParseUint(ctx.Query("event_id"), 10, 64)
	if err != nil || id == 0 {
		return nil
	}

	eventID := uint(id)

	return &eventID
}
