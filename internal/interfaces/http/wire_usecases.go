package http

import (
	adminUsecases "officetools/internal/application/admin/usecases"
	orderUsecases "officetools/internal/application/order/usecases"
	reviewUsecases "officetools/internal/application/review/usecases"
	subscriptionUsecases "officetools/internal/application/subscription/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Orders
	checkoutUC        *orderUsecases.CheckoutUseCase
	customPaymentUC   *orderUsecases.CustomPaymentUseCase
	approvePaymentUC  *orderUsecases.ApprovePaymentUseCase
	rejectPaymentUC   *orderUsecases.RejectPaymentUseCase
	paymentCallbackUC *orderUsecases.HandlePaymentCallbackUseCase
	reconcileOrderUC  *orderUsecases.ReconcileOrderUseCase
	listOrdersUC      *orderUsecases.ListOrdersUseCase

	// Subscriptions
	verifySubscriptionUC  *subscriptionUsecases.VerifySubscriptionUseCase
	checkToolAccessUC     *subscriptionUsecases.CheckToolAccessUseCase
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase

	// Reviews
	createReviewUC    *reviewUsecases.CreateReviewUseCase
	listReviewsUC     *reviewUsecases.ListReviewsUseCase
	listAllReviewsUC  *reviewUsecases.ListAllReviewsUseCase
	deleteReviewUC    *reviewUsecases.DeleteReviewUseCase
	setReviewPinnedUC *reviewUsecases.SetReviewPinnedUseCase

	// Admin
	loginUC *adminUsecases.LoginUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos

	c.ucs = &allUseCases{
		checkoutUC:      orderUsecases.NewCheckoutUseCase(repos.orderRepo, c.planCatalog, c.gateway, log),
		customPaymentUC: orderUsecases.NewCustomPaymentUseCase(repos.orderRepo, c.planCatalog, c.mailer, log),
		approvePaymentUC: orderUsecases.NewApprovePaymentUseCase(
			repos.orderRepo, repos.subscriptionRepo, c.planCatalog, c.txMgr, c.mailer, log,
		),
		rejectPaymentUC: orderUsecases.NewRejectPaymentUseCase(repos.orderRepo, c.mailer, log),
		paymentCallbackUC: orderUsecases.NewHandlePaymentCallbackUseCase(
			repos.orderRepo, repos.subscriptionRepo, c.planCatalog, c.txMgr, c.gateway, c.mailer, log,
		),
		reconcileOrderUC: orderUsecases.NewReconcileOrderUseCase(
			repos.orderRepo, repos.subscriptionRepo, c.planCatalog, c.txMgr, c.gateway, c.mailer, log,
		),
		listOrdersUC: orderUsecases.NewListOrdersUseCase(repos.orderRepo, log),

		verifySubscriptionUC: subscriptionUsecases.NewVerifySubscriptionUseCase(repos.subscriptionRepo, log),
		checkToolAccessUC: subscriptionUsecases.NewCheckToolAccessUseCase(
			repos.subscriptionRepo, c.toolCatalog, c.planCatalog, log,
		),
		expireSubscriptionsUC: subscriptionUsecases.NewExpireSubscriptionsUseCase(
			repos.subscriptionRepo, repos.orderRepo, c.cfg.Payment.PendingTTLDuration(), log,
		),

		createReviewUC:    reviewUsecases.NewCreateReviewUseCase(repos.reviewRepo, c.toolCatalog, c.markdownSvc, log),
		listReviewsUC:     reviewUsecases.NewListReviewsUseCase(repos.reviewRepo, c.toolCatalog, log),
		listAllReviewsUC:  reviewUsecases.NewListAllReviewsUseCase(repos.reviewRepo, log),
		deleteReviewUC:    reviewUsecases.NewDeleteReviewUseCase(repos.reviewRepo, log),
		setReviewPinnedUC: reviewUsecases.NewSetReviewPinnedUseCase(repos.reviewRepo, log),

		loginUC: adminUsecases.NewLoginUseCase(c.keyVerifier, c.jwtSvc, log),
	}
}
