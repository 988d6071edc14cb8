package valueobjects

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusPendingManual OrderStatus = "pending_manual"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusFailed        OrderStatus = "failed"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPendingManual, OrderStatusCompleted, OrderStatusFailed:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the order still awaits payment confirmation.
func (s OrderStatus) IsOpen() bool {
	return s == OrderStatusPending || s == OrderStatusPendingManual
}

func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed
}

func (s OrderStatus) String() string {
	return string(s)
}
