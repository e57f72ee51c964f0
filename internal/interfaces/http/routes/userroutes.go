package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/infrastructure/permission"
	"github.com/lrsproject/lrs/internal/interfaces/http/handlers"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	SessionMiddleware    *middleware.SessionMiddleware
}

// SetupUserRoutes configures user profile, activity and data sharing routes.
// Every route also serves the current user through the "me" segment.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/user/:" + handlers.UserParam)
	users.Use(cfg.AuthMiddleware.RequireCredential())
	{
		reads := users.Group("")
		reads.Use(cfg.PermissionMiddleware.RequireRead(permission.ResourceUsers))
		reads.Use(cfg.SessionMiddleware.ResolveUser(handlers.UserParam))
		{
			reads.GET("", cfg.UserHandler.GetProfile)
			reads.GET("/recentactivities", cfg.UserHandler.ListRecentActivities)
			reads.GET("/totalactivities", cfg.UserHandler.GetTotalActivities)
			reads.GET("/topactivities", cfg.UserHandler.GetTopActivities)
			reads.GET("/datasources", cfg.UserHandler.GetDataSources)
			reads.GET("/datauses", cfg.UserHandler.GetDataUses)
		}

		users.POST("/datashare",
			cfg.PermissionMiddleware.RequireWrite(permission.ResourceUsers),
			cfg.SessionMiddleware.ResolveUser(handlers.UserParam),
			cfg.UserHandler.UpdateDataShare,
		)
	}
}
