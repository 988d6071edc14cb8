package usecases

import (
	"context"
	"fmt"
	"html"

	"officetools/internal/application/review/dto"
	"officetools/internal/domain/review"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type CreateReviewCommand struct {
	Tool       string
	Rating     int
	Comment    string
	AuthorName string
	Email      string
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	tools      ToolLookup
	stripper   TagStripper
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	tools ToolLookup,
	stripper TagStripper,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		tools:      tools,
		stripper:   stripper,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*dto.ReviewDTO, error) {
	tool, ok := uc.tools.Get(cmd.Tool)
	if !ok {
		return nil, errors.NewValidationError("unknown tool", cmd.Tool)
	}

	// bluemonday escapes the text it keeps; store it plain and let the
	// front end escape on render.
	comment := html.UnescapeString(uc.stripper.StripTags(cmd.Comment))
	authorName := html.UnescapeString(uc.stripper.StripTags(cmd.AuthorName))

	r, err := review.NewReview(tool.Slug, cmd.Rating, comment, authorName, cmd.Email)
	if err != nil {
		return nil, err
	}

	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create review", "tool", tool.Slug, "error", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	uc.logger.Infow("review created", "id", r.ID(), "tool", r.Tool(), "rating", r.Rating())
	return dto.ToReviewDTO(r), nil
}
