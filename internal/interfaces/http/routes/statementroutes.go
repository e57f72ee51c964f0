package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/infrastructure/permission"
	"github.com/lrsproject/lrs/internal/interfaces/http/handlers"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
)

// StatementRouteConfig holds dependencies for statement routes.
type StatementRouteConfig struct {
	StatementHandler     *handlers.StatementHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupStatementRoutes configures statement ingestion and retrieval routes.
func SetupStatementRoutes(api *gin.RouterGroup, cfg *StatementRouteConfig) {
	statements := api.Group("/statements")
	statements.Use(cfg.AuthMiddleware.RequireCredential())
	{
		write := cfg.PermissionMiddleware.RequireWrite(permission.ResourceStatements)
		statements.POST("", write, cfg.StatementHandler.SaveStatement)
		statements.PUT("", write, cfg.StatementHandler.SaveStatement)

		statements.GET("/:id",
			cfg.PermissionMiddleware.RequireRead(permission.ResourceStatements),
			cfg.StatementHandler.GetStatement,
		)
	}
}
