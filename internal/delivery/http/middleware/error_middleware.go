package middleware

import (
	"errors"
	"log/slog"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler pushed with c.Error.
// Unexpected errors are logged and answered with a generic 500.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := &apperror.AppError{}
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Kind == apperror.KindInternal {
			log.ErrorContext(c.Request.Context(), "request failed",
				"error", err,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
			)
		}
		response.AbortWithError(c, appErr)
	}
}
