package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout sets a deadline on the request context.
// Handlers and repositories observe it through ctx; nothing is written here.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Create a context with timeout
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		// Replace request context with the timeout context
		c.Request = c.Request.WithContext(ctx)

		// Store timeout information for handlers to use if needed
		deadline, _ := ctx.Deadline()
		c.Set("request_deadline", deadline)
		c.Set("request_timeout", timeout)

		c.Next()

		// After handler completes, check if timeout occurred
		if ctx.Err() == context.DeadlineExceeded {
			// Log the timeout occurrence
			requestID, _ := c.Get(RequestIDKey)

			slog.Warn("Délai de la requête dépassé",
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
