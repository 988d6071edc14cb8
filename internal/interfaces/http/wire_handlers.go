package http

import (
	"fmt"

	"officetools/internal/application/tools/grammar"
	"officetools/internal/application/tools/imaging"
	"officetools/internal/interfaces/http/handlers"
	adminHandlers "officetools/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	catalogHandler      *handlers.CatalogHandler
	orderHandler        *handlers.OrderHandler
	subscriptionHandler *handlers.SubscriptionHandler
	reviewHandler       *handlers.ReviewHandler
	toolHandler         *handlers.ToolHandler

	// Admin
	adminAuthHandler   *adminHandlers.AuthHandler
	adminOrderHandler  *adminHandlers.OrderHandler
	adminReviewHandler *adminHandlers.ReviewHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() error {
	log := c.log
	ucs := c.ucs

	checker, err := grammar.NewChecker()
	if err != nil {
		return fmt.Errorf("failed to load grammar rules: %w", err)
	}

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		healthHandler:       handlers.NewHealthHandler(pinger),
		catalogHandler:      handlers.NewCatalogHandler(c.toolCatalog, c.planCatalog),
		orderHandler:        handlers.NewOrderHandler(ucs.checkoutUC, ucs.customPaymentUC, ucs.paymentCallbackUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(ucs.verifySubscriptionUC, ucs.checkToolAccessUC, log),
		reviewHandler:       handlers.NewReviewHandler(ucs.createReviewUC, ucs.listReviewsUC, log),
		toolHandler: handlers.NewToolHandler(
			checker,
			imaging.NewProcessor(c.cfg.Tools.MaxImagePixels),
			c.markdownSvc,
			c.cfg.Tools.MaxImageBytes,
			log,
		),

		adminAuthHandler: adminHandlers.NewAuthHandler(ucs.loginUC, log),
		adminOrderHandler: adminHandlers.NewOrderHandler(
			ucs.approvePaymentUC, ucs.rejectPaymentUC, ucs.reconcileOrderUC, ucs.listOrdersUC, log,
		),
		adminReviewHandler: adminHandlers.NewReviewHandler(
			ucs.listAllReviewsUC, ucs.deleteReviewUC, ucs.setReviewPinnedUC, log,
		),
	}
	return nil
}
