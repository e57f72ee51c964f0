package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/infrastructure/auth"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const (
	MsgMissingSession = "Missing user session"
	MsgInvalidSession = "Invalid user session"
)

// SessionMiddleware resolves the "me" path segment to the external id
// carried by the signed session cookie.
type SessionMiddleware struct {
	sessions   *auth.SessionService
	cookieName string
	logger     logger.Interface
}

func NewSessionMiddleware(sessions *auth.SessionService, cookieName string, logger logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// ResolveUser runs after RequireCredential. Requests naming an explicit
// external id pass through untouched. For "me" the session must verify
// and, for a tenant-bound caller, belong to the caller's tenant.
func (m *SessionMiddleware) ResolveUser(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != constants.CurrentUserSegment {
			c.Next()
			return
		}

		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgMissingSession)
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgInvalidSession)
			c.Abort()
			return
		}

		authCtx, ok := GetAuthContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgMissingCredentials)
			c.Abort()
			return
		}
		if authCtx.TenantID != nil && *authCtx.TenantID != claims.TenantID {
			m.logger.Warnw("session tenant does not match credential",
				"credential_id", authCtx.CredentialID,
				"session_tenant", claims.TenantID)
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgInvalidSession)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyExternalID, claims.ExternalID())
		c.Set(constants.ContextKeySessionTenant, claims.TenantID)
		c.Next()
	}
}
