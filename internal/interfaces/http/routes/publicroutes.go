package routes

import (
	"github.com/gin-gonic/gin"

	"officetools/internal/interfaces/http/handlers"
	"officetools/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the unauthenticated API.
type PublicRouteConfig struct {
	CatalogHandler      *handlers.CatalogHandler
	OrderHandler        *handlers.OrderHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	ReviewHandler       *handlers.ReviewHandler
	ReviewRateLimiter   *middleware.RateLimiter
}

// SetupPublicRoutes configures catalog, checkout, subscription and review routes.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/tools", cfg.CatalogHandler.ListTools)
		api.GET("/tools/:slug/access", cfg.SubscriptionHandler.CheckToolAccess)
		api.GET("/plans", cfg.CatalogHandler.ListPlans)

		api.POST("/checkout", cfg.OrderHandler.Checkout)
		api.POST("/custom-payment", cfg.OrderHandler.CustomPayment)
		api.POST("/payment/callback", cfg.OrderHandler.PaymentCallback)

		api.GET("/verify-subscription", cfg.SubscriptionHandler.VerifySubscription)

		api.GET("/reviews", cfg.ReviewHandler.ListReviews)
		api.POST("/reviews", cfg.ReviewRateLimiter.Limit(), cfg.ReviewHandler.CreateReview)
	}
}
