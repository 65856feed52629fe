package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response. Generation results vary per call, so
// non-GET responses are marked uncacheable.
func OK(c *gin.Context, payload interface{}) {
	if c.Request.Method != http.MethodGet {
		c.Header("Cache-Control", "no-store")
	}
	JSON(c, http.StatusOK, payload)
}
