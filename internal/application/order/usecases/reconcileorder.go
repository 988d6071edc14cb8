package usecases

import (
	"context"
	"fmt"

	"officetools/internal/application/order/paymentgateway"
	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type ReconcileOrderCommand struct {
	InvoiceID string
}

type ReconcileOrderResult struct {
	InvoiceID     string `json:"invoice_id"`
	GatewayStatus string `json:"gateway_status"`
	Status        string `json:"status"`
	Changed       bool   `json:"changed"`
}

// ReconcileOrderUseCase asks the gateway for the state of a card order
// whose callback may have been lost.
type ReconcileOrderUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	activator *subscriptionActivator
	logger    logger.Interface
}

func NewReconcileOrderUseCase(
	orderRepo order.Repository,
	subRepo subscription.Repository,
	plans PlanLookup,
	txMgr TransactionRunner,
	gateway paymentgateway.PaymentGateway,
	mailer OrderMailer,
	logger logger.Interface,
) *ReconcileOrderUseCase {
	return &ReconcileOrderUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		activator: &subscriptionActivator{
			orderRepo: orderRepo,
			subRepo:   subRepo,
			plans:     plans,
			txMgr:     txMgr,
			mailer:    mailer,
			logger:    logger,
		},
		logger: logger,
	}
}

func (uc *ReconcileOrderUseCase) Execute(ctx context.Context, cmd ReconcileOrderCommand) (*ReconcileOrderResult, error) {
	o, err := uc.orderRepo.GetByInvoiceID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}
	if o.PaymentMethod().IsManual() {
		return nil, errors.NewValidationError("manual orders are not known to the gateway")
	}

	result := &ReconcileOrderResult{InvoiceID: o.InvoiceID(), Status: o.Status().String()}
	if o.Status().IsFinal() {
		return result, nil
	}

	gs, err := uc.gateway.QueryStatus(ctx, o.InvoiceID())
	if err != nil {
		uc.logger.Errorw("gateway status query failed", "invoice_id", o.InvoiceID(), "error", err)
		return nil, errors.NewInternalError("payment gateway unavailable")
	}
	result.GatewayStatus = gs.Status

	switch gs.Status {
	case paymentgateway.StatusPaid:
		if reason := mismatch(o, gs.Amount, gs.Currency); reason != "" {
			uc.logger.Errorw("gateway reports a different amount", "invoice_id", o.InvoiceID(), "reason", reason)
			return nil, errors.NewConflictError("gateway amount does not match order", reason)
		}
		if _, err := uc.activator.activate(ctx, o, "gateway", gs.TransactionID); err != nil {
			return nil, err
		}
		result.Changed = true
	case paymentgateway.StatusFailed, paymentgateway.StatusCancelled:
		if err := o.MarkFailed("gateway reported " + gs.Status); err != nil {
			return nil, err
		}
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
		result.Changed = true
	}

	result.Status = o.Status().String()
	uc.logger.Infow("order reconciled",
		"invoice_id", o.InvoiceID(),
		"gateway_status", gs.Status,
		"status", result.Status,
	)
	return result, nil
}
