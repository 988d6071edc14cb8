package usecases

import (
	"context"
	"fmt"

	"officetools/internal/application/review/dto"
	"officetools/internal/domain/review"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type ListAllReviewsQuery struct {
	Tool     string
	Page     int
	PageSize int
}

type ListAllReviewsResult struct {
	Reviews  []*dto.AdminReviewDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAllReviewsUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListAllReviewsUseCase(reviewRepo review.Repository, logger logger.Interface) *ListAllReviewsUseCase {
	return &ListAllReviewsUseCase{reviewRepo: reviewRepo, logger: logger}
}

// Execute lists reviews across tools for moderation. Tool is optional.
func (uc *ListAllReviewsUseCase) Execute(ctx context.Context, query ListAllReviewsQuery) (*ListAllReviewsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	reviews, total, err := uc.reviewRepo.List(ctx, review.ListFilter{
		Tool:     query.Tool,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &ListAllReviewsResult{
		Reviews:  dto.ToAdminReviewDTOList(reviews),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
