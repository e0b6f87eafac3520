package middleware

import (
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/audit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a well-formed incoming X-Request-ID or generates one, and
// records the request metadata used by the audit logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := audit.WithRequestMeta(c.Request.Context(), audit.RequestMeta{
			RequestID: requestID,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Path:      c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
