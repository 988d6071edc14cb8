package usecases

import (
	"context"
	"fmt"

	"officetools/internal/application/review/dto"
	"officetools/internal/domain/review"
	"officetools/internal/shared/logger"
)

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewDeleteReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{reviewRepo: reviewRepo, logger: logger}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, id uint, deletedBy string) error {
	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("review deleted", "id", id, "deleted_by", deletedBy)
	return nil
}

type SetReviewPinnedCommand struct {
	ID     uint
	Pinned bool
}

type SetReviewPinnedUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewSetReviewPinnedUseCase(reviewRepo review.Repository, logger logger.Interface) *SetReviewPinnedUseCase {
	return &SetReviewPinnedUseCase{reviewRepo: reviewRepo, logger: logger}
}

func (uc *SetReviewPinnedUseCase) Execute(ctx context.Context, cmd SetReviewPinnedCommand) (*dto.ReviewDTO, error) {
	r, err := uc.reviewRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if r.IsPinned() == cmd.Pinned {
		return dto.ToReviewDTO(r), nil
	}

	if cmd.Pinned {
		r.Pin()
	} else {
		r.Unpin()
	}
	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	uc.logger.Infow("review pin changed", "id", cmd.ID, "pinned", cmd.Pinned)
	return dto.ToReviewDTO(r), nil
}
