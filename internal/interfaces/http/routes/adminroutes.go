package routes

import (
	"github.com/gin-gonic/gin"

	"officetools/internal/infrastructure/permission"
	adminHandlers "officetools/internal/interfaces/http/handlers/admin"
	"officetools/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the back office routes.
type AdminRouteConfig struct {
	AuthHandler          *adminHandlers.AuthHandler
	OrderHandler         *adminHandlers.OrderHandler
	ReviewHandler        *adminHandlers.ReviewHandler
	AdminAuthMiddleware  *middleware.AdminAuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	AdminRateLimiter     *middleware.RateLimiter
}

// SetupAdminRoutes configures /api/admin routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AdminRateLimiter.Limit())

	admin.POST("/login", cfg.AuthHandler.Login)

	authed := admin.Group("")
	authed.Use(cfg.AdminAuthMiddleware.RequireAdmin())
	perm := cfg.PermissionMiddleware
	{
		authed.POST("/approve-payment",
			perm.RequirePermission(permission.ResourceOrders, permission.ActionApprove),
			cfg.OrderHandler.ApprovePayment)
		authed.POST("/reject-payment",
			perm.RequirePermission(permission.ResourceOrders, permission.ActionReject),
			cfg.OrderHandler.RejectPayment)
		authed.GET("/orders",
			perm.RequirePermission(permission.ResourceOrders, permission.ActionRead),
			cfg.OrderHandler.ListOrders)
		authed.POST("/orders/:invoice_id/reconcile",
			perm.RequirePermission(permission.ResourceOrders, permission.ActionReconcile),
			cfg.OrderHandler.ReconcileOrder)

		authed.GET("/reviews",
			perm.RequirePermission(permission.ResourceReviews, permission.ActionRead),
			cfg.ReviewHandler.ListReviews)
		authed.DELETE("/reviews/:id",
			perm.RequirePermission(permission.ResourceReviews, permission.ActionDelete),
			cfg.ReviewHandler.DeleteReview)
		authed.PATCH("/reviews/:id/pin",
			perm.RequirePermission(permission.ResourceReviews, permission.ActionPin),
			cfg.ReviewHandler.PinReview)
	}
}
