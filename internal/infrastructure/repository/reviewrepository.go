package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"officetools/internal/domain/review"
	"officetools/internal/infrastructure/persistence/mappers"
	"officetools/internal/infrastructure/persistence/models"
	"officetools/internal/shared/db"
	apperrors "officetools/internal/shared/errors"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := mappers.ReviewToModel(rv)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	rv.SetID(model.ID)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return mappers.ReviewToDomain(&model), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReviewModel{}).
		Where("id = ?", rv.ID()).
		Updates(map[string]interface{}{
			"pinned":  rv.IsPinned(),
			"comment": rv.Comment(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}
	return nil
}

// List returns one page of reviews, pinned first then newest first.
// An empty filter.Tool lists every tool.
func (r *ReviewRepository) List(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ReviewModel{})
	if filter.Tool != "" {
		query = query.Where("tool = ?", filter.Tool)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var rows []models.ReviewModel
	q := query.Order("pinned DESC").Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := max(filter.Page, 1)
		q = q.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return mappers.ReviewsToDomain(rows), total, nil
}

// Summary returns the count and the average rating rounded to one decimal.
func (r *ReviewRepository) Summary(ctx context.Context, tool string) (*review.Summary, error) {
	var row struct {
		Count   int64
		Average float64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReviewModel{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("tool = ?", tool).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	return &review.Summary{
		Count:   row.Count,
		Average: math.Round(row.Average*10) / 10,
	}, nil
}
