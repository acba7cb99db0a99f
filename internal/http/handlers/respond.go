package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper carried by every /api endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func RespondOK(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusBadRequest, message)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusUnauthorized, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, message)
}

// PathID reads a numeric path parameter, answering the 400 itself when the
// value is not an integer.
func PathID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)

	if err != nil || id < 1 {
		RespondBadRequest(ctx, "Invalid "+name+" path parameter")
		return 0, false
	}

	return id, true
}
