package usecases

import (
	"context"
	"fmt"

	"officetools/internal/domain/order"
	"officetools/internal/shared/goroutine"
	"officetools/internal/shared/logger"
)

type RejectPaymentCommand struct {
	InvoiceID  string
	Reason     string
	RejectedBy string
}

type RejectPaymentResult struct {
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"`
}

type RejectPaymentUseCase struct {
	orderRepo order.Repository
	mailer    OrderMailer
	logger    logger.Interface
}

func NewRejectPaymentUseCase(orderRepo order.Repository, mailer OrderMailer, logger logger.Interface) *RejectPaymentUseCase {
	return &RejectPaymentUseCase{
		orderRepo: orderRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *RejectPaymentUseCase) Execute(ctx context.Context, cmd RejectPaymentCommand) (*RejectPaymentResult, error) {
	o, err := uc.orderRepo.GetByInvoiceID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := o.MarkFailed(cmd.Reason); err != nil {
		return nil, err
	}
	o.SetMetadata(order.MetaRejectedBy, cmd.RejectedBy)

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update rejected order", "invoice_id", o.InvoiceID(), "error", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	uc.logger.Infow("payment rejected", "invoice_id", o.InvoiceID(), "rejected_by", cmd.RejectedBy)

	goroutine.SafeGo(uc.logger, "rejection-email", func() {
		if err := uc.mailer.SendPaymentRejected(o, cmd.Reason); err != nil {
			uc.logger.Warnw("failed to send rejection email", "invoice_id", o.InvoiceID(), "error", err)
		}
	})

	return &RejectPaymentResult{
		InvoiceID: o.InvoiceID(),
		Status:    o.Status().String(),
	}, nil
}
