package models

import (
	"time"

	"officetools/internal/shared/constants"
)

type SubscriptionModel struct {
	ID          uint      `gorm:"primaryKey"`
	Email       string    `gorm:"size:255;not null;uniqueIndex"`
	PlanName    string    `gorm:"size:64;not null"`
	ActivatedAt time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
