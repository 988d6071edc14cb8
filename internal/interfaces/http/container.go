package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"officetools/internal/application/order/paymentgateway"
	orderUsecases "officetools/internal/application/order/usecases"
	"officetools/internal/domain/catalog"
	"officetools/internal/infrastructure/auth"
	"officetools/internal/infrastructure/config"
	"officetools/internal/infrastructure/permission"
	"officetools/internal/infrastructure/ratelimit"
	"officetools/internal/infrastructure/scheduler"
	"officetools/internal/interfaces/http/middleware"
	shareddb "officetools/internal/shared/db"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/services/markdown"
)

// Container holds infrastructure components, repositories, use cases,
// handlers and the background scheduler, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	adminAuthMiddleware  *middleware.AdminAuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	planGateMiddleware   *middleware.PlanGateMiddleware
	reviewRateLimiter    *middleware.RateLimiter
	adminRateLimiter     *middleware.RateLimiter
	toolsRateLimiter     *middleware.RateLimiter

	// Shared services
	txMgr       *shareddb.TransactionManager
	toolCatalog *catalog.ToolCatalog
	planCatalog *catalog.PlanCatalog
	markdownSvc markdown.MarkdownService
	mailer      orderUsecases.OrderMailer
	gateway     paymentgateway.PaymentGateway
	limiter     ratelimit.RateLimiter
	jwtSvc      *auth.JWTService
	keyVerifier *auth.AdminKeyVerifier
	enforcer    *permission.Enforcer

	// Background services
	subscriptionScheduler *scheduler.SubscriptionScheduler
}

// NewContainer builds every component from cfg. The order of the sections
// follows their dependencies.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, catalogs, mail, gateway
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Auth - admin keys, JWT, casbin policies
	if err := c.initAuth(); err != nil {
		return nil, err
	}

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	if err := c.initHandlers(); err != nil {
		return nil, err
	}
	c.initMiddlewares()

	// Section 5: Background jobs
	c.initScheduler()

	return c, nil
}

// StartBackground launches the expiry sweep. It stops when ctx is done.
func (c *Container) StartBackground(ctx context.Context) {
	if c.subscriptionScheduler == nil {
		return
	}
	c.subscriptionScheduler.Start(ctx)
}

// Shutdown stops background work and closes the Redis client.
func (c *Container) Shutdown() {
	if c.subscriptionScheduler != nil {
		c.subscriptionScheduler.Stop()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}
