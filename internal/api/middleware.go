package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header the client sends its key in.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware creates a Gin middleware that checks the static API key.
// An empty configured key disables the check, which is only sensible for
// local development.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		provided := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			abortWithError(c, http.StatusUnauthorized, "Invalid or missing API key")
			return
		}
		c.Next()
	}
}

// Helper to abort with a JSON error response
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
