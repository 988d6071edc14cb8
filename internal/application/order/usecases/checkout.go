package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"officetools/internal/application/order/paymentgateway"
	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type CheckoutCommand struct {
	Plan          string
	Price         decimal.Decimal
	Email         string
	Name          string
	PaymentMethod string
}

type CheckoutResult struct {
	SessionID   string `json:"session_id"`
	InvoiceID   string `json:"invoice_id"`
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

type CheckoutUseCase struct {
	orderRepo order.Repository
	plans     PlanLookup
	gateway   paymentgateway.PaymentGateway
	logger    logger.Interface
}

func NewCheckoutUseCase(
	orderRepo order.Repository,
	plans PlanLookup,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo: orderRepo,
		plans:     plans,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute records a pending card order and returns the hosted payment URL.
func (uc *CheckoutUseCase) Execute(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	method := vo.PaymentMethod(cmd.PaymentMethod)
	if cmd.PaymentMethod == "" {
		method = vo.PaymentMethodCard
	}
	if method.IsManual() {
		return nil, errors.NewValidationError("manual payment methods use the custom payment endpoint")
	}

	o, err := newOrderForPlan(uc.plans, cmd.Plan, cmd.Price, cmd.Email, cmd.Name, method, "")
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Create(ctx, o); err != nil {
		uc.logger.Errorw("failed to create order", "error", err, "plan", o.PlanName())
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	redirectURL, err := uc.gateway.BuildRedirectURL(paymentgateway.RedirectRequest{
		InvoiceID: o.InvoiceID(),
		Amount:    o.Price(),
		Currency:  o.Currency(),
		Email:     o.Email(),
	})
	if err != nil {
		uc.logger.Errorw("failed to build payment redirect", "error", err, "invoice_id", o.InvoiceID())
		return nil, errors.NewInternalError("payment gateway unavailable")
	}

	uc.logger.Infow("checkout order created",
		"invoice_id", o.InvoiceID(),
		"plan", o.PlanName(),
		"amount", o.Price().StringFixed(2),
	)

	return &CheckoutResult{
		SessionID:   o.SessionID(),
		InvoiceID:   o.InvoiceID(),
		RedirectURL: redirectURL,
		Status:      o.Status().String(),
		Amount:      o.Price().StringFixed(2),
		Currency:    o.Currency(),
	}, nil
}

// newOrderForPlan resolves the plan and insists the client price matches it.
func newOrderForPlan(plans PlanLookup, planName string, price decimal.Decimal, email, name string, method vo.PaymentMethod, reference string) (*order.Order, error) {
	plan, ok := plans.Get(planName)
	if !ok {
		return nil, errors.NewValidationError("unknown plan", planName)
	}
	if !price.Round(2).Equal(plan.Price) {
		return nil, errors.NewValidationError("price does not match the selected plan",
			fmt.Sprintf("expected %s", plan.Price.StringFixed(2)))
	}

	return order.NewOrder(order.NewOrderParams{
		PlanName:      plan.Name,
		Price:         plan.Price,
		Currency:      plan.Currency,
		Email:         email,
		CustomerName:  name,
		PaymentMethod: method,
		Reference:     reference,
	})
}
