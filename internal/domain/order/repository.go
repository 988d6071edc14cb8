package order

import (
	"context"
	"time"

	vo "officetools/internal/domain/order/valueobjects"
)

type ListFilter struct {
	Status   vo.OrderStatus
	Email    string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	// ListStalePending returns gateway orders still pending that were created before the cutoff.
	ListStalePending(ctx context.Context, createdBefore time.Time) ([]*Order, error)
}
