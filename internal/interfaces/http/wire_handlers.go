package http

import (
	"fmt"

	"github.com/lrsproject/lrs/internal/interfaces/http/handlers"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	statementHandler *handlers.StatementHandler
	userHandler      *handlers.UserHandler
	healthHandler    *handlers.HealthHandler
}

// ============================================================
// Section 3: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() error {
	log := c.log
	ucs := c.ucs

	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	c.hdlrs = &allHandlers{
		statementHandler: handlers.NewStatementHandler(ucs.saveStatement, ucs.getStatement, log),
		userHandler: handlers.NewUserHandler(
			ucs.getUserProfile,
			ucs.listRecentActivities,
			ucs.getTotalActivities,
			ucs.getTopActivities,
			ucs.getDataSources,
			ucs.getDataUses,
			ucs.updateDataShare,
			log,
		),
		healthHandler: handlers.NewHealthHandler(sqlDB, log),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(ucs.authenticateCredential, c.svcs.limiter, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, log)
	c.sessionMiddleware = middleware.NewSessionMiddleware(c.svcs.sessions, c.cfg.Auth.Session.CookieName, log)

	return nil
}
