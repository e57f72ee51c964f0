package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/infrastructure/permission"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

const (
	MsgIncorrectReadCredentials  = "Incorrect read credentials"
	MsgIncorrectWriteCredentials = "Incorrect write credentials"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequireRead(resource string) gin.HandlerFunc {
	return m.require(resource, permission.ActionRead, MsgIncorrectReadCredentials)
}

func (m *PermissionMiddleware) RequireWrite(resource string) gin.HandlerFunc {
	return m.require(resource, permission.ActionWrite, MsgIncorrectWriteCredentials)
}

func (m *PermissionMiddleware) require(resource, action, deniedMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, MsgMissingCredentials)
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Allowed(authCtx.Permissions, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err,
				"credential_id", authCtx.CredentialID,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"credential_id", authCtx.CredentialID,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusForbidden, deniedMsg)
			c.Abort()
			return
		}

		c.Next()
	}
}
