package usecases

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"officetools/internal/application/order/paymentgateway"
	"officetools/internal/domain/catalog"
	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/config"
	"officetools/internal/shared/errors"
)

type mockOrderRepository struct {
	CreateFunc           func(ctx context.Context, o *order.Order) error
	UpdateFunc           func(ctx context.Context, o *order.Order) error
	GetByInvoiceIDFunc   func(ctx context.Context, invoiceID string) (*order.Order, error)
	GetBySessionIDFunc   func(ctx context.Context, sessionID string) (*order.Order, error)
	ListFunc             func(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error)
	ListStalePendingFunc func(ctx context.Context, createdBefore time.Time) ([]*order.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*order.Order, error) {
	if m.GetByInvoiceIDFunc != nil {
		return m.GetByInvoiceIDFunc(ctx, invoiceID)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	if m.GetBySessionIDFunc != nil {
		return m.GetBySessionIDFunc(ctx, sessionID)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockOrderRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]*order.Order, error) {
	if m.ListStalePendingFunc != nil {
		return m.ListStalePendingFunc(ctx, createdBefore)
	}
	return nil, nil
}

type mockSubscriptionRepository struct {
	GetByEmailFunc  func(ctx context.Context, email string) (*subscription.Subscription, error)
	UpsertFunc      func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc      func(ctx context.Context, sub *subscription.Subscription) error
	ListExpiredFunc func(ctx context.Context, now time.Time) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) GetByEmail(ctx context.Context, email string) (*subscription.Subscription, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListExpired(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	if m.ListExpiredFunc != nil {
		return m.ListExpiredFunc(ctx, now)
	}
	return nil, nil
}

// mockTxRunner runs fn inline and counts transactions.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockMailer struct {
	mu        sync.Mutex
	sent      []string
	returnErr error
}

func (m *mockMailer) record(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, kind)
	return m.returnErr
}

func (m *mockMailer) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *mockMailer) SendOrderReceipt(o *order.Order) error { return m.record("receipt") }
func (m *mockMailer) SendAdminManualOrderNotice(o *order.Order) error {
	return m.record("admin_notice")
}
func (m *mockMailer) SendSubscriptionActivated(sub *subscription.Subscription) error {
	return m.record("activated")
}
func (m *mockMailer) SendPaymentRejected(o *order.Order, reason string) error {
	return m.record("rejected")
}

type mockGateway struct {
	BuildRedirectURLFunc func(req paymentgateway.RedirectRequest) (string, error)
	VerifySignatureFunc  func(params url.Values) bool
	QueryStatusFunc      func(ctx context.Context, invoiceID string) (*paymentgateway.StatusResult, error)
}

func (m *mockGateway) BuildRedirectURL(req paymentgateway.RedirectRequest) (string, error) {
	if m.BuildRedirectURLFunc != nil {
		return m.BuildRedirectURLFunc(req)
	}
	return "https://pay.example.com/checkout?invoice_id=" + req.InvoiceID, nil
}

func (m *mockGateway) VerifySignature(params url.Values) bool {
	if m.VerifySignatureFunc != nil {
		return m.VerifySignatureFunc(params)
	}
	return true
}

func (m *mockGateway) QueryStatus(ctx context.Context, invoiceID string) (*paymentgateway.StatusResult, error) {
	if m.QueryStatusFunc != nil {
		return m.QueryStatusFunc(ctx, invoiceID)
	}
	return &paymentgateway.StatusResult{InvoiceID: invoiceID, Status: paymentgateway.StatusPending}, nil
}

func testPlans(t *testing.T) *catalog.PlanCatalog {
	t.Helper()
	plans, err := catalog.NewPlanCatalog([]config.PlanConfig{
		{Name: "basic", Price: "4.99", DurationDays: 30, Rank: 1},
		{Name: "pro", Price: "9.99", DurationDays: 30, Rank: 2},
		{Name: "business", Price: "99.00", DurationDays: 365, Rank: 3},
	}, "USD")
	require.NoError(t, err)
	return plans
}

func newTestOrder(t *testing.T, method vo.PaymentMethod) *order.Order {
	t.Helper()
	ref := ""
	if method.IsManual() {
		ref = "TX-1"
	}
	o, err := order.NewOrder(order.NewOrderParams{
		PlanName:      "pro",
		Price:         decimal.RequireFromString("9.99"),
		Currency:      "USD",
		Email:         "buyer@example.com",
		CustomerName:  "Buyer",
		PaymentMethod: method,
		Reference:     ref,
	})
	require.NoError(t, err)
	o.SetID(7)
	return o
}
