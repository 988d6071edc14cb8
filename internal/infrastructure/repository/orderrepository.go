package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/infrastructure/persistence/mappers"
	"officetools/internal/infrastructure/persistence/models"
	"officetools/internal/shared/db"
	apperrors "officetools/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("order already exists")
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	o.SetID(model.ID)
	return nil
}

// Update persists the mutable fields: status, reference, metadata and timestamps.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"reference":    model.Reference,
			"metadata":     model.Metadata,
			"updated_at":   model.UpdatedAt,
			"completed_at": model.CompletedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	return nil
}

func (r *OrderRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*order.Order, error) {
	return r.getBy(ctx, "invoice_id = ?", invoiceID)
}

func (r *OrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	return r.getBy(ctx, "session_id = ?", sessionID)
}

func (r *OrderRepository) getBy(ctx context.Context, where string, arg interface{}) (*order.Order, error) {
	var model models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var rows []models.OrderModel
	q := query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := max(filter.Page, 1)
		q = q.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := mappers.OrdersToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]*order.Order, error) {
	var rows []models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND created_at < ?", vo.OrderStatusPending.String(), createdBefore).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale orders: %w", err)
	}
	return mappers.OrdersToDomain(rows)
}
