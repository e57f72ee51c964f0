package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/application/auth/dto"
	"github.com/lrsproject/lrs/internal/application/auth/usecases"
	"github.com/lrsproject/lrs/internal/infrastructure/ratelimit"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/errors"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const (
	MsgMissingCredentials   = "Missing credentials"
	MsgMalformedCredentials = "Malformed credentials"
	MsgTooManyAttempts      = "Too many failed authentication attempts"
)

type CredentialAuthenticator interface {
	Execute(ctx context.Context, cmd usecases.AuthenticateCredentialCommand) (*dto.AuthContext, error)
}

type AuthMiddleware struct {
	authenticator CredentialAuthenticator
	// limiter counts failed attempts per client IP. nil disables it.
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewAuthMiddleware(authenticator CredentialAuthenticator, limiter ratelimit.Limiter, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		limiter:       limiter,
		logger:        logger,
	}
}

// RequireCredential authenticates the HTTP Basic key/secret pair and
// attaches the caller's AuthContext. It proves identity only.
func (m *AuthMiddleware) RequireCredential() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgMissingCredentials)
			c.Abort()
			return
		}

		key, secret, ok := c.Request.BasicAuth()
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgMalformedCredentials)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		clientIP := c.ClientIP()

		if m.limited(ctx, clientIP) {
			m.logger.Warnw("authentication rate limit exceeded", "client_ip", clientIP)
			utils.ErrorResponse(c, http.StatusTooManyRequests, MsgTooManyAttempts)
			c.Abort()
			return
		}

		authCtx, err := m.authenticator.Execute(ctx, usecases.AuthenticateCredentialCommand{
			Key:    key,
			Secret: secret,
		})
		if err != nil {
			if errors.IsUnauthorizedError(err) {
				m.recordFailure(ctx, clientIP)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		m.clearFailures(ctx, clientIP)
		c.Set(constants.ContextKeyAuth, authCtx)
		c.Next()
	}
}

// The limiter fails open: a Redis outage must not lock every caller out.
func (m *AuthMiddleware) limited(ctx context.Context, clientIP string) bool {
	if m.limiter == nil {
		return false
	}
	exceeded, err := m.limiter.Exceeded(ctx, clientIP)
	if err != nil {
		m.logger.Warnw("rate limiter unavailable", "error", err)
		return false
	}
	return exceeded
}

func (m *AuthMiddleware) recordFailure(ctx context.Context, clientIP string) {
	if m.limiter == nil {
		return
	}
	if err := m.limiter.Hit(ctx, clientIP); err != nil {
		m.logger.Warnw("failed to record authentication failure", "error", err)
	}
}

func (m *AuthMiddleware) clearFailures(ctx context.Context, clientIP string) {
	if m.limiter == nil {
		return
	}
	if err := m.limiter.Reset(ctx, clientIP); err != nil {
		m.logger.Warnw("failed to reset authentication failures", "error", err)
	}
}

// GetAuthContext returns the caller attached by RequireCredential.
func GetAuthContext(c *gin.Context) (*dto.AuthContext, bool) {
	v, exists := c.Get(constants.ContextKeyAuth)
	if !exists {
		return nil, false
	}
	authCtx, ok := v.(*dto.AuthContext)
	return authCtx, ok && authCtx != nil
}
