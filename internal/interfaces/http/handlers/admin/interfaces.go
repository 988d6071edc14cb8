package admin

import (
	"context"

	adminusecases "officetools/internal/application/admin/usecases"
	orderusecases "officetools/internal/application/order/usecases"
	reviewdto "officetools/internal/application/review/dto"
	reviewusecases "officetools/internal/application/review/usecases"
)

// Use case interfaces for the admin handlers

type loginUseCase interface {
	Execute(ctx context.Context, cmd adminusecases.LoginCommand) (*adminusecases.LoginResult, error)
}

type approvePaymentUseCase interface {
	Execute(ctx context.Context, cmd orderusecases.ApprovePaymentCommand) (*orderusecases.ApprovePaymentResult, error)
}

type rejectPaymentUseCase interface {
	Execute(ctx context.Context, cmd orderusecases.RejectPaymentCommand) (*orderusecases.RejectPaymentResult, error)
}

type reconcileOrderUseCase interface {
	Execute(ctx context.Context, cmd orderusecases.ReconcileOrderCommand) (*orderusecases.ReconcileOrderResult, error)
}

type listOrdersUseCase interface {
	Execute(ctx context.Context, query orderusecases.ListOrdersQuery) (*orderusecases.ListOrdersResult, error)
}

type listAllReviewsUseCase interface {
	Execute(ctx context.Context, query reviewusecases.ListAllReviewsQuery) (*reviewusecases.ListAllReviewsResult, error)
}

type deleteReviewUseCase interface {
	Execute(ctx context.Context, id uint, deletedBy string) error
}

type setReviewPinnedUseCase interface {
	Execute(ctx context.Context, cmd reviewusecases.SetReviewPinnedCommand) (*reviewdto.ReviewDTO, error)
}
