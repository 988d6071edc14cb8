package handlers

import (
	"context"

	reviewdto "officetools/internal/application/review/dto"
	reviewusecases "officetools/internal/application/review/usecases"
)

// Use case interfaces for ReviewHandler

type createReviewUseCase interface {
	Execute(ctx context.Context, cmd reviewusecases.CreateReviewCommand) (*reviewdto.ReviewDTO, error)
}

type listReviewsUseCase interface {
	Execute(ctx context.Context, query reviewusecases.ListReviewsQuery) (*reviewusecases.ListReviewsResult, error)
}
