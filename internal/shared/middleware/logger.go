package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taalentio/talent-api/internal/shared/logger"
)

// quietPaths are polled by probes and scrapers; they log at debug only.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware binds a request-scoped slog logger to the request context
// and logs one line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		// Query strings are not logged: codes and e-mails may appear in them
		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		// The handler chain may have bound more attributes (talent code)
		log := logger.FromContext(c.Request.Context())
		msg := "Requête traitée"

		switch {
		case status >= 500:
			log.Error(msg, fields...)
		case status >= 400:
			log.Warn(msg, fields...)
		default:
			if _, quiet := quietPaths[path]; quiet {
				log.Debug(msg, fields...)
				return
			}
			log.Info(msg, fields...)
		}
	}
}
