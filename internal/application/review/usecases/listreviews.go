package usecases

import (
	"context"
	"fmt"

	"officetools/internal/application/review/dto"
	"officetools/internal/domain/review"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

type ListReviewsQuery struct {
	Tool     string
	Page     int
	PageSize int
}

type ListReviewsResult struct {
	Reviews  []*dto.ReviewDTO
	Summary  dto.SummaryDTO
	Total    int64
	Page     int
	PageSize int
}

// ListReviewsUseCase serves the public list for one tool, pinned reviews
// first, with the rating summary.
type ListReviewsUseCase struct {
	reviewRepo review.Repository
	tools      ToolLookup
	logger     logger.Interface
}

func NewListReviewsUseCase(reviewRepo review.Repository, tools ToolLookup, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewRepo: reviewRepo, tools: tools, logger: logger}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error) {
	tool, ok := uc.tools.Get(query.Tool)
	if !ok {
		return nil, errors.NewNotFoundError("tool not found", query.Tool)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	reviews, total, err := uc.reviewRepo.List(ctx, review.ListFilter{
		Tool:     tool.Slug,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "tool", tool.Slug, "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	summary, err := uc.reviewRepo.Summary(ctx, tool.Slug)
	if err != nil {
		uc.logger.Errorw("failed to summarize reviews", "tool", tool.Slug, "error", err)
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	return &ListReviewsResult{
		Reviews:  dto.ToReviewDTOList(reviews),
		Summary:  dto.ToSummaryDTO(summary),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
