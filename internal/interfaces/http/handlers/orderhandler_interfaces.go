package handlers

import (
	"context"
	"net/url"

	"officetools/internal/application/order/usecases"
)

// Use case interfaces for OrderHandler

type checkoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.CheckoutCommand) (*usecases.CheckoutResult, error)
}

type customPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CustomPaymentCommand) (*usecases.CustomPaymentResult, error)
}

type paymentCallbackUseCase interface {
	Execute(ctx context.Context, params url.Values) (*usecases.CallbackResult, error)
}
