package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

// Container holds every dependency of the HTTP server. Fields are filled by
// the init* sections in wire_*.go, in order.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// redis is nil unless redis and rate limiting are both enabled.
	redis *redis.Client

	repos *repositories
	svcs  *infraServices
	ucs   *useCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	sessionMiddleware    *middleware.SessionMiddleware
}

// NewContainer wires repositories, services, use cases and handlers on top of
// an open database.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Services
	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to initialize infrastructure: %w", err)
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return c, nil
}
