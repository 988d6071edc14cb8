package order

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/id"
)

const (
	MetaFailureReason = "failure_reason"
	MetaApprovedBy    = "approved_by"
	MetaRejectedBy    = "rejected_by"
	MetaSource        = "completion_source"
)

// Order is a purchase attempt for a plan. Orders are never deleted.
type Order struct {
	id            uint
	planName      string
	price         decimal.Decimal
	currency      string
	email         string
	customerName  string
	paymentMethod vo.PaymentMethod
	status        vo.OrderStatus
	sessionID     string
	reference     string
	invoiceID     string
	metadata      map[string]interface{}
	createdAt     time.Time
	updatedAt     time.Time
	completedAt   *time.Time
}

// NewOrderParams carries checkout input.
type NewOrderParams struct {
	PlanName      string
	Price         decimal.Decimal
	Currency      string
	Email         string
	CustomerName  string
	PaymentMethod vo.PaymentMethod
	Reference     string
}

// NewOrder creates a pending order. Card orders start as pending, manual
// methods start as pending_manual.
func NewOrder(p NewOrderParams) (*Order, error) {
	if strings.TrimSpace(p.PlanName) == "" {
		return nil, errors.NewValidationError("plan is required")
	}
	if !p.Price.IsPositive() {
		return nil, errors.NewValidationError("price must be positive")
	}
	if !p.PaymentMethod.IsValid() {
		return nil, errors.NewValidationError("unsupported payment method", p.PaymentMethod.String())
	}

	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(p.CustomerName)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	reference := strings.TrimSpace(p.Reference)
	status := vo.OrderStatusPending
	if p.PaymentMethod.IsManual() {
		if reference == "" {
			return nil, errors.NewValidationError("transaction reference is required for manual payments")
		}
		status = vo.OrderStatusPendingManual
	}

	invoiceID, err := id.NewInvoiceID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice id: %w", err)
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "USD"
	}

	now := biztime.NowUTC()
	return &Order{
		planName:      strings.ToLower(strings.TrimSpace(p.PlanName)),
		price:         p.Price.Round(2),
		currency:      currency,
		email:         email,
		customerName:  name,
		paymentMethod: p.PaymentMethod,
		status:        status,
		sessionID:     uuid.NewString(),
		reference:     reference,
		invoiceID:     invoiceID,
		metadata:      make(map[string]interface{}),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errors.NewValidationError("invalid email address")
	}
	return email, nil
}

// MarkCompleted moves an open order to completed. source records who
// confirmed it (admin key subject or "gateway").
func (o *Order) MarkCompleted(source, reference string) error {
	if o.status == vo.OrderStatusCompleted {
		return nil
	}
	if !o.status.IsOpen() {
		return errors.NewValidationError(fmt.Sprintf("cannot complete order with status %s", o.status))
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusCompleted
	o.completedAt = &now
	o.updatedAt = now
	if reference != "" {
		o.reference = reference
	}
	o.SetMetadata(MetaSource, source)
	return nil
}

// MarkFailed moves an open order to failed and records why.
func (o *Order) MarkFailed(reason string) error {
	if !o.status.IsOpen() {
		return errors.NewValidationError(fmt.Sprintf("cannot fail order with status %s", o.status))
	}

	o.status = vo.OrderStatusFailed
	o.updatedAt = biztime.NowUTC()
	if reason != "" {
		o.SetMetadata(MetaFailureReason, reason)
	}
	return nil
}

// IsStale reports whether a gateway order has waited longer than ttl.
// Manual orders never go stale.
func (o *Order) IsStale(now time.Time, ttl time.Duration) bool {
	return o.status == vo.OrderStatusPending && now.Sub(o.createdAt) > ttl
}

func (o *Order) SetMetadata(key string, value interface{}) {
	if o.metadata == nil {
		o.metadata = make(map[string]interface{})
	}
	o.metadata[key] = value
	o.updatedAt = biztime.NowUTC()
}

func (o *Order) SetID(id uint) {
	o.id = id
}

func (o *Order) ID() uint                         { return o.id }
func (o *Order) PlanName() string                 { return o.planName }
func (o *Order) Price() decimal.Decimal           { return o.price }
func (o *Order) Currency() string                 { return o.currency }
func (o *Order) Email() string                    { return o.email }
func (o *Order) CustomerName() string             { return o.customerName }
func (o *Order) PaymentMethod() vo.PaymentMethod  { return o.paymentMethod }
func (o *Order) Status() vo.OrderStatus           { return o.status }
func (o *Order) SessionID() string                { return o.sessionID }
func (o *Order) Reference() string                { return o.reference }
func (o *Order) InvoiceID() string                { return o.invoiceID }
func (o *Order) Metadata() map[string]interface{} { return o.metadata }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
func (o *Order) CompletedAt() *time.Time          { return o.completedAt }

// ReconstructParams carries every persisted field.
type ReconstructParams struct {
	ID            uint
	PlanName      string
	Price         decimal.Decimal
	Currency      string
	Email         string
	CustomerName  string
	PaymentMethod vo.PaymentMethod
	Status        vo.OrderStatus
	SessionID     string
	Reference     string
	InvoiceID     string
	Metadata      map[string]interface{}
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// ReconstructOrder rebuilds an order from storage without validation.
func ReconstructOrder(p ReconstructParams) *Order {
	meta := p.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	return &Order{
		id:            p.ID,
		planName:      p.PlanName,
		price:         p.Price,
		currency:      p.Currency,
		email:         p.Email,
		customerName:  p.CustomerName,
		paymentMethod: p.PaymentMethod,
		status:        p.Status,
		sessionID:     p.SessionID,
		reference:     p.Reference,
		invoiceID:     p.InvoiceID,
		metadata:      meta,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		completedAt:   p.CompletedAt,
	}
}
