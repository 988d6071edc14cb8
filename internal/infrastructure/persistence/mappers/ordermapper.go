package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:            o.ID(),
		PlanName:      o.PlanName(),
		Price:         o.Price(),
		Currency:      o.Currency(),
		Email:         o.Email(),
		CustomerName:  o.CustomerName(),
		PaymentMethod: o.PaymentMethod().String(),
		Status:        o.Status().String(),
		SessionID:     o.SessionID(),
		Reference:     o.Reference(),
		InvoiceID:     o.InvoiceID(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		CompletedAt:   o.CompletedAt(),
	}
	if len(o.Metadata()) > 0 {
		model.Metadata = datatypes.JSONMap(o.Metadata())
	}
	return model
}

func OrderToDomain(m *models.OrderModel) (*order.Order, error) {
	status := vo.OrderStatus(m.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", m.Status)
	}
	method := vo.PaymentMethod(m.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", m.PaymentMethod)
	}

	var completedAt *time.Time
	if m.CompletedAt != nil {
		t := m.CompletedAt.UTC()
		completedAt = &t
	}

	return order.ReconstructOrder(order.ReconstructParams{
		ID:            m.ID,
		PlanName:      m.PlanName,
		Price:         m.Price,
		Currency:      m.Currency,
		Email:         m.Email,
		CustomerName:  m.CustomerName,
		PaymentMethod: method,
		Status:        status,
		SessionID:     m.SessionID,
		Reference:     m.Reference,
		InvoiceID:     m.InvoiceID,
		Metadata:      map[string]interface{}(m.Metadata),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
		CompletedAt:   completedAt,
	}), nil
}

func OrdersToDomain(ms []models.OrderModel) ([]*order.Order, error) {
	out := make([]*order.Order, len(ms))
	for i := range ms {
		o, err := OrderToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}
