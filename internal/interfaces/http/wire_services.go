package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"officetools/internal/domain/catalog"
	"officetools/internal/infrastructure/auth"
	"officetools/internal/infrastructure/config"
	"officetools/internal/infrastructure/email"
	"officetools/internal/infrastructure/payment"
	"officetools/internal/infrastructure/permission"
	"officetools/internal/infrastructure/ratelimit"
	"officetools/internal/infrastructure/scheduler"
	"officetools/internal/interfaces/http/middleware"
	shareddb "officetools/internal/shared/db"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, repositories, catalogs, mail, gateway
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.limiter = newRateLimiter(c.redis, log)

	c.repos = newRepositories(c.db)
	c.txMgr = shareddb.NewTransactionManager(c.db)

	toolCatalog, err := catalog.LoadToolCatalog()
	if err != nil {
		return fmt.Errorf("failed to load tool catalog: %w", err)
	}
	c.toolCatalog = toolCatalog

	planCatalog, err := catalog.NewPlanCatalog(cfg.Plans, cfg.Payment.Currency)
	if err != nil {
		return fmt.Errorf("failed to load plan catalog: %w", err)
	}
	c.planCatalog = planCatalog

	c.markdownSvc = markdown.NewMarkdownService()

	if cfg.Email.Enabled {
		c.mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:         cfg.Email.SMTPHost,
			Port:         cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUser,
			Password:     cfg.Email.SMTPPassword,
			FromAddress:  cfg.Email.FromAddress,
			FromName:     cfg.Email.FromName,
			AdminAddress: cfg.Email.AdminAddress,
			BaseURL:      cfg.Server.BaseURL,
		}, c.markdownSvc)
	} else {
		log.Infow("email disabled, messages are logged only")
		c.mailer = email.NewNoopEmailService(log)
	}

	c.gateway = payment.NewGatewayClient(cfg.Payment, cfg.Server.BaseURL, log)

	return nil
}

// initRedis returns nil when Redis is disabled or unreachable; rate limiting
// then runs in memory.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, using in-memory rate limiting", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client
}

func newRateLimiter(client *redis.Client, log logger.Interface) ratelimit.RateLimiter {
	memory := ratelimit.NewMemoryRateLimiter()
	if client == nil {
		return memory
	}
	return ratelimit.NewFallbackRateLimiter(ratelimit.NewRedisRateLimiter(client), memory, log)
}

// ============================================================
// Section 2: Auth - admin keys, JWT, casbin policies
// ============================================================

func (c *Container) initAuth() error {
	cfg := c.cfg

	c.keyVerifier = auth.NewAdminKeyVerifier(cfg.Admin, c.log)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

// initMiddlewares builds the auth, permission, plan gate and rate limit
// middlewares. A disabled rate limit gets a zero policy, which passes all.
func (c *Container) initMiddlewares() {
	cfg := c.cfg
	log := c.log

	c.adminAuthMiddleware = middleware.NewAdminAuthMiddleware(c.jwtSvc, c.keyVerifier, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.planGateMiddleware = middleware.NewPlanGateMiddleware(c.ucs.checkToolAccessUC, cfg.Tools.EnforcePlanGate, log)

	policy := func(limit int, window time.Duration) ratelimit.Policy {
		if !cfg.RateLimit.Enabled {
			return ratelimit.Policy{}
		}
		return ratelimit.Policy{Limit: limit, Window: window}
	}
	c.reviewRateLimiter = middleware.NewRateLimiter(c.limiter, "reviews", policy(cfg.RateLimit.ReviewsPerHour, time.Hour), log)
	c.adminRateLimiter = middleware.NewRateLimiter(c.limiter, "admin", policy(cfg.RateLimit.AdminPerMinute, time.Minute), log)
	c.toolsRateLimiter = middleware.NewRateLimiter(c.limiter, "tools", policy(cfg.RateLimit.ToolsPerMinute, time.Minute), log)
}

// ============================================================
// Section 5: Background jobs
// ============================================================

func (c *Container) initScheduler() {
	if !c.cfg.Scheduler.Enabled {
		c.log.Infow("subscription scheduler disabled")
		return
	}
	interval := time.Duration(c.cfg.Scheduler.IntervalMinutes) * time.Minute
	c.subscriptionScheduler = scheduler.NewSubscriptionScheduler(c.ucs.expireSubscriptionsUC, interval, c.log)
}
