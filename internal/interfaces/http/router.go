package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
	"github.com/lrsproject/lrs/internal/interfaces/http/routes"
)

// Router serves the HTTP API on top of a wired Container.
type Router struct {
	*Container
	server *http.Server
}

// NewRouter returns a router whose routes are not yet registered. Call
// SetupRoutes before serving.
func NewRouter(c *Container) *Router {
	return &Router{
		Container: c,
		server: &http.Server{
			Addr:         c.cfg.Server.GetAddr(),
			Handler:      c.engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	basePath := "/" + strings.Trim(r.cfg.Server.BasePath, "/")
	if basePath == "/" {
		basePath = ""
	}

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.P3P())
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}
	// Statement clients post cross-site without a referer.
	r.engine.Use(middleware.CSRF([]string{basePath + "/statements"}, r.log))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	api := r.engine.Group(basePath)

	routes.SetupStatementRoutes(api, &routes.StatementRouteConfig{
		StatementHandler:     r.hdlrs.statementHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		SessionMiddleware:    r.sessionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run serves until Shutdown is called. It returns nil after a graceful
// shutdown.
func (r *Router) Run() error {
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases the Redis client.
func (r *Router) Shutdown(ctx context.Context) error {
	err := r.server.Shutdown(ctx)

	if r.redis != nil {
		if closeErr := r.redis.Close(); closeErr != nil {
			r.log.Errorw("failed to close Redis client", "error", closeErr)
		}
	}

	return err
}
