package usecases

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"officetools/internal/application/order/paymentgateway"
	"officetools/internal/domain/order"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

// Callback outcomes, reported for logging only. The webhook is always
// acknowledged regardless of outcome.
const (
	CallbackOutcomeActivated    = "activated"
	CallbackOutcomeFailed       = "failed"
	CallbackOutcomeIgnored      = "ignored"
	CallbackOutcomeBadSignature = "bad_signature"
	CallbackOutcomeUnknown      = "unknown_order"
)

type CallbackResult struct {
	InvoiceID string
	Outcome   string
}

type HandlePaymentCallbackUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	activator *subscriptionActivator
	logger    logger.Interface
}

func NewHandlePaymentCallbackUseCase(
	orderRepo order.Repository,
	subRepo subscription.Repository,
	plans PlanLookup,
	txMgr TransactionRunner,
	gateway paymentgateway.PaymentGateway,
	mailer OrderMailer,
	logger logger.Interface,
) *HandlePaymentCallbackUseCase {
	return &HandlePaymentCallbackUseCase{
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

// Execute applies a signed gateway notification. params holds the posted
// form fields: invoice_id, status, transaction_id, optional amount and
// currency, and signature.
func (uc *HandlePaymentCallbackUseCase) Execute(ctx context.Context, params url.Values) (*CallbackResult, error) {
	invoiceID := params.Get("invoice_id")
	result := &CallbackResult{InvoiceID: invoiceID}

	if !uc.gateway.VerifySignature(params) {
		uc.logger.Warnw("payment callback with invalid signature ignored", "invoice_id", invoiceID)
		result.Outcome = CallbackOutcomeBadSignature
		return result, nil
	}

	o, err := uc.orderRepo.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("payment callback for unknown invoice", "invoice_id", invoiceID)
			result.Outcome = CallbackOutcomeUnknown
			return result, nil
		}
		return result, fmt.Errorf("failed to load order: %w", err)
	}

	if o.Status().IsFinal() {
		uc.logger.Infow("payment callback for final order ignored",
			"invoice_id", invoiceID, "status", o.Status())
		result.Outcome = CallbackOutcomeIgnored
		return result, nil
	}

	status := strings.ToLower(params.Get("status"))
	transactionID := params.Get("transaction_id")

	switch status {
	case paymentgateway.StatusPaid:
		if reason := mismatch(o, params.Get("amount"), params.Get("currency")); reason != "" {
			uc.logger.Errorw("payment callback amount mismatch", "invoice_id", invoiceID, "reason", reason)
			return uc.fail(ctx, o, reason, result)
		}
		if _, err := uc.activator.activate(ctx, o, "gateway", transactionID); err != nil {
			return result, err
		}
		result.Outcome = CallbackOutcomeActivated
		return result, nil

	case paymentgateway.StatusFailed, paymentgateway.StatusCancelled:
		return uc.fail(ctx, o, "gateway reported "+status, result)

	default:
		uc.logger.Infow("payment callback with non-terminal status", "invoice_id", invoiceID, "status", status)
		result.Outcome = CallbackOutcomeIgnored
		return result, nil
	}
}

func (uc *HandlePaymentCallbackUseCase) fail(ctx context.Context, o *order.Order, reason string, result *CallbackResult) (*CallbackResult, error) {
	if err := o.MarkFailed(reason); err != nil {
		return result, err
	}
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return result, fmt.Errorf("failed to update order: %w", err)
	}
	uc.logger.Infow("order marked failed by gateway", "invoice_id", o.InvoiceID(), "reason", reason)
	result.Outcome = CallbackOutcomeFailed
	return result, nil
}

// mismatch compares the reported amount and currency with the order when
// the gateway includes them.
func mismatch(o *order.Order, amount, currency string) string {
	if amount != "" {
		paid, err := decimal.NewFromString(amount)
		if err != nil || !paid.Round(2).Equal(o.Price()) {
			return fmt.Sprintf("amount mismatch: expected %s, got %s", o.Price().StringFixed(2), amount)
		}
	}
	if currency != "" && !strings.EqualFold(currency, o.Currency()) {
		return fmt.Sprintf("currency mismatch: expected %s, got %s", o.Currency(), currency)
	}
	return ""
}
