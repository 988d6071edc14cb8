package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/id"
)

func validParams() NewOrderParams {
	return NewOrderParams{
		PlanName:      "Pro",
		Price:         decimal.RequireFromString("9.99"),
		Currency:      "usd",
		Email:         " Buyer@Example.com ",
		CustomerName:  "Buyer",
		PaymentMethod: vo.PaymentMethodCard,
	}
}

func TestNewOrder_Card(t *testing.T) {
	o, err := NewOrder(validParams())
	require.NoError(t, err)

	assert.Equal(t, "pro", o.PlanName())
	assert.True(t, o.Price().Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, "USD", o.Currency())
	assert.Equal(t, "buyer@example.com", o.Email())
	assert.Equal(t, vo.OrderStatusPending, o.Status())
	assert.True(t, id.HasPrefix(o.InvoiceID(), id.PrefixInvoice))
	assert.Len(t, o.SessionID(), 36)
	assert.Nil(t, o.CompletedAt())
}

func TestNewOrder_ManualStartsPendingManual(t *testing.T) {
	p := validParams()
	p.PaymentMethod = vo.PaymentMethodBankTransfer
	p.Reference = "TRX-12345"

	o, err := NewOrder(p)
	require.NoError(t, err)
	assert.Equal(t, vo.OrderStatusPendingManual, o.Status())
	assert.Equal(t, "TRX-12345", o.Reference())
}

func TestNewOrder_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *NewOrderParams)
	}{
		{"missing plan", func(p *NewOrderParams) { p.PlanName = " " }},
		{"zero price", func(p *NewOrderParams) { p.Price = decimal.Zero }},
		{"negative price", func(p *NewOrderParams) { p.Price = decimal.NewFromInt(-1) }},
		{"unknown method", func(p *NewOrderParams) { p.PaymentMethod = "cash" }},
		{"bad email", func(p *NewOrderParams) { p.Email = "buyer" }},
		{"missing name", func(p *NewOrderParams) { p.CustomerName = "" }},
		{"manual without reference", func(p *NewOrderParams) { p.PaymentMethod = vo.PaymentMethodMobileWallet }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := NewOrder(p)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestMarkCompleted(t *testing.T) {
	o, err := NewOrder(validParams())
	require.NoError(t, err)

	require.NoError(t, o.MarkCompleted("gateway", "txn_1"))
	assert.Equal(t, vo.OrderStatusCompleted, o.Status())
	assert.Equal(t, "txn_1", o.Reference())
	assert.NotNil(t, o.CompletedAt())
	assert.Equal(t, "gateway", o.Metadata()[MetaSource])

	// completing twice is a no-op
	assert.NoError(t, o.MarkCompleted("admin", ""))
	assert.Equal(t, "gateway", o.Metadata()[MetaSource])
}

func TestMarkFailed(t *testing.T) {
	o, err := NewOrder(validParams())
	require.NoError(t, err)

	require.NoError(t, o.MarkFailed("card declined"))
	assert.Equal(t, vo.OrderStatusFailed, o.Status())
	assert.Equal(t, "card declined", o.Metadata()[MetaFailureReason])

	assert.Error(t, o.MarkCompleted("admin", ""), "failed is final")
	assert.Error(t, o.MarkFailed("again"))
}

func TestIsStale(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	card := ReconstructOrder(ReconstructParams{Status: vo.OrderStatusPending, CreatedAt: created})
	manual := ReconstructOrder(ReconstructParams{Status: vo.OrderStatusPendingManual, CreatedAt: created})

	later := created.Add(25 * time.Hour)
	assert.True(t, card.IsStale(later, 24*time.Hour))
	assert.False(t, card.IsStale(created.Add(time.Hour), 24*time.Hour))
	assert.False(t, manual.IsStale(later, 24*time.Hour))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, vo.OrderStatusPendingManual.IsOpen())
	assert.True(t, vo.OrderStatusCompleted.IsFinal())
	assert.False(t, vo.OrderStatus("refunded").IsValid())
	assert.True(t, vo.PaymentMethodMobileWallet.IsManual())
	assert.False(t, vo.PaymentMethodCard.IsManual())
}
