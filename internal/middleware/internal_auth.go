package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"retail-analytics/pkg/response"
)

// InternalKeyHeader carries the shared key for internal/administrative routes.
const InternalKeyHeader = "X-Internal-Key"

// InternalAuth guards administrative routes with a shared internal key.
// An empty configured key disables the routes entirely.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: internal key not configured, rejecting request")
			response.Forbidden(c)
			c.Abort()
			return
		}

		provided := c.GetHeader(InternalKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.internalKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
