package apierr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusByCode is the fixed code-to-status translation table used by the
// transport layer.
var statusByCode = map[Code]int{
	CodeBadRequest:          http.StatusBadRequest,
	CodeNotFound:            http.StatusNotFound,
	CodeUnprocessableEntity: http.StatusUnprocessableEntity,
}

// Respond writes the `{message}` body with the status mapped from the code.
func Respond(c *gin.Context, apiErr Error) {
	status, ok := statusByCode[apiErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"message": apiErr.Message})
}

// RespondError inspects err for a typed Error; anything unrecognized responds
// 500 with a generic message so storage and programming faults never leak
// internals to clients.
func RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var apiErr Error
	if errors.As(err, &apiErr) {
		Respond(c, apiErr)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
