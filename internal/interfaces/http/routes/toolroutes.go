package routes

import (
	"github.com/gin-gonic/gin"

	"officetools/internal/interfaces/http/handlers"
	"officetools/internal/interfaces/http/middleware"
)

// ToolRouteConfig holds dependencies for the server-side tools.
type ToolRouteConfig struct {
	ToolHandler      *handlers.ToolHandler
	PlanGate         *middleware.PlanGateMiddleware
	ToolsRateLimiter *middleware.RateLimiter
	MaxImageBytes    int64
}

// SetupToolRoutes configures /api/tools endpoints. Every tool passes the
// plan gate, which lets free tools through.
func SetupToolRoutes(engine *gin.Engine, cfg *ToolRouteConfig) {
	tools := engine.Group("/api/tools")
	tools.Use(cfg.ToolsRateLimiter.Limit())
	{
		tools.POST("/grammar-check", cfg.PlanGate.RequireTool("grammar-checker"), cfg.ToolHandler.GrammarCheck)
		tools.POST("/zakat", cfg.PlanGate.RequireTool("zakat-calculator"), cfg.ToolHandler.Zakat)
		tools.POST("/markdown", cfg.PlanGate.RequireTool("markdown-editor"), cfg.ToolHandler.Markdown)

		// Multipart overhead on top of the file itself.
		tools.POST("/image",
			middleware.BodyLimit(cfg.MaxImageBytes+1<<20),
			cfg.PlanGate.RequireToolFunc(handlers.ImageToolSlug),
			cfg.ToolHandler.ProcessImage,
		)
	}
}
