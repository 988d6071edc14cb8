package models

import (
	"time"

	"officetools/internal/shared/constants"
)

type ReviewModel struct {
	ID         uint      `gorm:"primaryKey"`
	Tool       string    `gorm:"size:64;not null;index:idx_reviews_tool_pinned_created,priority:1"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"size:2000;not null;default:''"`
	AuthorName string    `gorm:"size:100;not null"`
	Email      string    `gorm:"size:255;not null;default:''"`
	Pinned     bool      `gorm:"not null;default:false;index:idx_reviews_tool_pinned_created,priority:2"`
	CreatedAt  time.Time `gorm:"not null;index:idx_reviews_tool_pinned_created,priority:3"`
}

func (ReviewModel) TableName() string {
	return constants.TableReviews
}
