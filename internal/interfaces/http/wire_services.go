package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lrsproject/lrs/internal/infrastructure/auth"
	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/infrastructure/permission"
	"github.com/lrsproject/lrs/internal/infrastructure/ratelimit"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/services/sanitize"
)

const authFailurePrefix = "lrs:authfail"

// infraServices holds the infrastructure services shared by use cases and
// middlewares.
type infraServices struct {
	hasher    *auth.BcryptSecretHasher
	sessions  *auth.SessionService
	enforcer  *permission.Enforcer
	sanitizer sanitize.Sanitizer
	// limiter is nil when rate limiting is disabled.
	limiter ratelimit.Limiter
}

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Services
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db)

	enforcer, err := permission.NewEnforcer(log.Named("permission"))
	if err != nil {
		return err
	}

	c.svcs = &infraServices{
		hasher:    auth.NewBcryptSecretHasher(cfg.Auth.Password.BcryptCost),
		sessions:  auth.NewSessionService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpHours),
		enforcer:  enforcer,
		sanitizer: sanitize.NewSanitizer(),
	}

	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		c.redis = initRedis(cfg, log)
		c.svcs.limiter = ratelimit.NewRedisLimiter(
			c.redis,
			authFailurePrefix,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		log.Infow("authentication rate limiting enabled",
			"limit", cfg.RateLimit.Limit,
			"window_seconds", cfg.RateLimit.WindowSeconds,
		)
	} else if cfg.RateLimit.Enabled {
		log.Warnw("rate limiting requires redis, authentication attempts will not be throttled")
	}

	return nil
}

// initRedis creates the Redis client. An unreachable server is logged but
// not fatal since the limiter fails open.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}
