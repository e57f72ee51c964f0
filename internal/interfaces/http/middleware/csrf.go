package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const MsgCSRFFailed = "CSRF validation failed: attempted to execute unsafe method from untrusted origin"

// CSRF rejects state changing requests whose Referer is not the target
// host. Requests carrying an Authorization header are not cookie driven
// and pass, as do paths under one of safePrefixes. The prefix list is
// fixed when the middleware is built.
func CSRF(safePrefixes []string, log logger.Interface) gin.HandlerFunc {
	prefixes := append([]string(nil), safePrefixes...)

	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if !isSameOrigin(c.Request.Host, c.GetHeader("Referer")) {
			log.Warnw("CSRF validation failed",
				"method", c.Request.Method,
				"host", c.Request.Host,
				"referer", c.GetHeader("Referer"),
				"path", path)
			utils.ErrorResponse(c, http.StatusForbidden, MsgCSRFFailed)
			c.Abort()
			return
		}

		c.Next()
	}
}

// isSafeMethod returns true for HTTP methods that do not mutate state.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// A relative referer is same-origin by construction. An absolute one must
// name the Host header's host:port before its first slash.
func isSameOrigin(host, referer string) bool {
	if referer == "" {
		return false
	}
	if strings.HasPrefix(referer, "/") {
		return true
	}
	_, rest, found := strings.Cut(referer, "://")
	if !found || rest == "" {
		return false
	}
	refererHost, _, _ := strings.Cut(rest, "/")
	return refererHost == host
}
