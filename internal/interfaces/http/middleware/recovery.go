package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const msgInternalError = "An unexpected error occurred"

// maskedHeaders never reach the log, even on a panic.
var maskedHeaders = []string{"Authorization", "Cookie"}

// Recovery turns a panicking request into a plain 500. The process keeps
// serving other requests.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if isBrokenConnection(recovered) {
			log.Warnw("client connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", safeHeaders(c.Request.Header),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, msgInternalError)
		c.Abort()
	})
}

func safeHeaders(h http.Header) map[string]string {
	return lo.MapEntries(h, func(name string, values []string) (string, string) {
		if lo.Contains(maskedHeaders, http.CanonicalHeaderKey(name)) {
			return name, "*"
		}
		return name, strings.Join(values, ", ")
	})
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}

	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
