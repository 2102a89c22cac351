package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"fieldops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader     = "X-Request-Id"
	requestIDContextKey = "fieldops.request_id"
)

func logger() *slog.Logger {
	return slog.Default().With("module", "http", "layer", "adapter")
}

// RequestID propagates X-Request-Id, generating one when the caller did not
// send it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}

// RequestLogger writes one structured record per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		outcome := "success"
		if status >= 400 {
			outcome = "failure"
		}
		fields := []any{
			"operation", "http_request",
			"outcome", outcome,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status_code", status,
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFrom(c),
		}
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger().ErrorContext(ctx, "http request completed", fields...)
		case status >= 400:
			logger().WarnContext(ctx, "http request completed", fields...)
		default:
			logger().InfoContext(ctx, "http request completed", fields...)
		}
	}
}

// Recovery answers panics with a 500 error body and logs them.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger().ErrorContext(c.Request.Context(), "panic recovered",
			"operation", "http_panic_recovery",
			"outcome", "failure",
			"request_id", RequestIDFrom(c),
			"panic", recovered,
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
