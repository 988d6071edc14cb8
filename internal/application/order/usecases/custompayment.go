package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/goroutine"
	"officetools/internal/shared/logger"
)

type CustomPaymentCommand struct {
	Plan          string
	Price         decimal.Decimal
	Email         string
	Name          string
	PaymentMethod string
	Reference     string
}

type CustomPaymentResult struct {
	SessionID string `json:"session_id"`
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"`
}

type CustomPaymentUseCase struct {
	orderRepo order.Repository
	plans     PlanLookup
	mailer    OrderMailer
	logger    logger.Interface
}

func NewCustomPaymentUseCase(
	orderRepo order.Repository,
	plans PlanLookup,
	mailer OrderMailer,
	logger logger.Interface,
) *CustomPaymentUseCase {
	return &CustomPaymentUseCase{
		orderRepo: orderRepo,
		plans:     plans,
		mailer:    mailer,
		logger:    logger,
	}
}

// Execute records a pending_manual order awaiting admin verification.
func (uc *CustomPaymentUseCase) Execute(ctx context.Context, cmd CustomPaymentCommand) (*CustomPaymentResult, error) {
	method := vo.PaymentMethod(cmd.PaymentMethod)
	if !method.IsManual() {
		return nil, errors.NewValidationError("payment method must be a manual method", cmd.PaymentMethod)
	}

	o, err := newOrderForPlan(uc.plans, cmd.Plan, cmd.Price, cmd.Email, cmd.Name, method, cmd.Reference)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Create(ctx, o); err != nil {
		uc.logger.Errorw("failed to create manual order", "error", err, "plan", o.PlanName())
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.logger.Infow("manual payment order created",
		"invoice_id", o.InvoiceID(),
		"method", o.PaymentMethod(),
		"plan", o.PlanName(),
	)

	goroutine.SafeGo(uc.logger, "manual-order-emails", func() {
		if err := uc.mailer.SendOrderReceipt(o); err != nil {
			uc.logger.Warnw("failed to send order receipt", "invoice_id", o.InvoiceID(), "error", err)
		}
		if err := uc.mailer.SendAdminManualOrderNotice(o); err != nil {
			uc.logger.Warnw("failed to send admin notice", "invoice_id", o.InvoiceID(), "error", err)
		}
	})

	return &CustomPaymentResult{
		SessionID: o.SessionID(),
		InvoiceID: o.InvoiceID(),
		Status:    o.Status().String(),
	}, nil
}
