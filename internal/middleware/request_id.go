package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/enesozmus/betterrest/pkg/log"
)

// HeaderRequestID is the header used to propagate request ids.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request an id (honoring an incoming header) and
// threads it through the request context so log entries carry it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
