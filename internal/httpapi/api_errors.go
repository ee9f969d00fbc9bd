package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondBadRequest writes a 400 with the `{message}` body shape shared with
// the workflow error responses.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}
