package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/shared/logger"
)

// Logger writes one line per request. Server errors log at error level,
// client errors at warn and everything else at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			fields = append(fields, "request_id", requestID)
		}
		if authCtx, ok := GetAuthContext(c); ok {
			fields = append(fields, "credential_id", authCtx.CredentialID)
			if authCtx.TenantID != nil {
				fields = append(fields, "tenant_id", *authCtx.TenantID)
			}
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}
