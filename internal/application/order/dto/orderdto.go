package dto

import (
	"time"

	"officetools/internal/domain/order"
)

type OrderDTO struct {
	InvoiceID     string                 `json:"invoice_id"`
	SessionID     string                 `json:"session_id"`
	PlanName      string                 `json:"plan"`
	Price         string                 `json:"price"`
	Currency      string                 `json:"currency"`
	Email         string                 `json:"email"`
	CustomerName  string                 `json:"name"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
	Reference     string                 `json:"reference,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		InvoiceID:     o.InvoiceID(),
		SessionID:     o.SessionID(),
		PlanName:      o.PlanName(),
		Price:         o.Price().StringFixed(2),
		Currency:      o.Currency(),
		Email:         o.Email(),
		CustomerName:  o.CustomerName(),
		PaymentMethod: o.PaymentMethod().String(),
		Status:        o.Status().String(),
		Reference:     o.Reference(),
		Metadata:      o.Metadata(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		CompletedAt:   o.CompletedAt(),
	}
}

func ToOrderDTOList(orders []*order.Order) []*OrderDTO {
	out := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDTO(o))
	}
	return out
}
