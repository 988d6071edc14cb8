package usecases

import (
	"context"
	"time"

	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/logger"
)

type ApprovePaymentCommand struct {
	InvoiceID  string
	ApprovedBy string
}

type ApprovePaymentResult struct {
	InvoiceID        string     `json:"invoice_id"`
	Status           string     `json:"status"`
	AlreadyCompleted bool       `json:"already_completed"`
	Email            string     `json:"email"`
	Plan             string     `json:"plan"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

type ApprovePaymentUseCase struct {
	orderRepo order.Repository
	activator *subscriptionActivator
	logger    logger.Interface
}

func NewApprovePaymentUseCase(
	orderRepo order.Repository,
	subRepo subscription.Repository,
	plans PlanLookup,
	txMgr TransactionRunner,
	mailer OrderMailer,
	logger logger.Interface,
) *ApprovePaymentUseCase {
	return &ApprovePaymentUseCase{
		orderRepo: orderRepo,
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

// Execute completes a pending or pending_manual order and activates the
// plan for its email. Approving a completed order changes nothing.
func (uc *ApprovePaymentUseCase) Execute(ctx context.Context, cmd ApprovePaymentCommand) (*ApprovePaymentResult, error) {
	o, err := uc.orderRepo.GetByInvoiceID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}

	o.SetMetadata(order.MetaApprovedBy, cmd.ApprovedBy)
	sub, err := uc.activator.activate(ctx, o, "admin", "")
	if err != nil {
		uc.logger.Warnw("payment approval failed", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, err
	}

	result := &ApprovePaymentResult{
		InvoiceID:        o.InvoiceID(),
		Status:           o.Status().String(),
		AlreadyCompleted: sub == nil,
		Email:            o.Email(),
		Plan:             o.PlanName(),
	}
	if sub != nil {
		expiresAt := sub.ExpiresAt()
		result.ExpiresAt = &expiresAt
		uc.logger.Infow("payment approved", "invoice_id", o.InvoiceID(), "approved_by", cmd.ApprovedBy)
	} else {
		uc.logger.Infow("payment already approved", "invoice_id", o.InvoiceID())
	}
	return result, nil
}
