package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"officetools/internal/shared/constants"
)

type OrderModel struct {
	ID            uint              `gorm:"primaryKey"`
	PlanName      string            `gorm:"size:64;not null"`
	Price         decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Currency      string            `gorm:"size:3;not null;default:'USD'"`
	Email         string            `gorm:"size:255;not null;index"`
	CustomerName  string            `gorm:"size:255;not null"`
	PaymentMethod string            `gorm:"size:32;not null"`
	Status        string            `gorm:"size:20;not null;index:idx_orders_status_created,priority:1"`
	SessionID     string            `gorm:"size:64;not null;uniqueIndex"`
	Reference     string            `gorm:"size:128;not null;default:''"`
	InvoiceID     string            `gorm:"size:32;not null;uniqueIndex"`
	Metadata      datatypes.JSONMap `gorm:"type:json"`
	CreatedAt     time.Time         `gorm:"not null;index:idx_orders_status_created,priority:2"`
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

func (OrderModel) TableName() string {
	return constants.TableOrders
}
