package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"officetools/internal/infrastructure/config"
	"officetools/internal/interfaces/http/middleware"
	"officetools/internal/interfaces/http/routes"
	"officetools/internal/shared/logger"

	_ "officetools/docs"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter wires every dependency and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{engine: c.engine, container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	cfg := c.cfg

	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", c.hdlrs.healthHandler.Health)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		CatalogHandler:      c.hdlrs.catalogHandler,
		OrderHandler:        c.hdlrs.orderHandler,
		SubscriptionHandler: c.hdlrs.subscriptionHandler,
		ReviewHandler:       c.hdlrs.reviewHandler,
		ReviewRateLimiter:   c.reviewRateLimiter,
	})

	routes.SetupToolRoutes(r.engine, &routes.ToolRouteConfig{
		ToolHandler:      c.hdlrs.toolHandler,
		PlanGate:         c.planGateMiddleware,
		ToolsRateLimiter: c.toolsRateLimiter,
		MaxImageBytes:    c.hdlrs.toolHandler.MaxImageBytes(),
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AuthHandler:          c.hdlrs.adminAuthHandler,
		OrderHandler:         c.hdlrs.adminOrderHandler,
		ReviewHandler:        c.hdlrs.adminReviewHandler,
		AdminAuthMiddleware:  c.adminAuthMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		AdminRateLimiter:     c.adminRateLimiter,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// StartBackground starts the scheduled jobs.
func (r *Router) StartBackground(ctx context.Context) {
	r.container.StartBackground(ctx)
}

// Shutdown stops background jobs and releases connections.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
