package middleware

import (
	"net/http"

	"cinelist/internal/pkg/request"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps every request body at the global payload ceiling. Reads
// past the cap fail with *http.MaxBytesError, which the request decoder
// translates into the payload-too-large response.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, request.MaxBodyBytes)
		c.Next()
	}
}
