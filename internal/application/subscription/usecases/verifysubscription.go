package usecases

import (
	"context"

	"officetools/internal/application/subscription/dto"
	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type VerifySubscriptionQuery struct {
	Email string
}

type VerifySubscriptionUseCase struct {
	subRepo subscription.Repository
	logger  logger.Interface
}

func NewVerifySubscriptionUseCase(subRepo subscription.Repository, logger logger.Interface) *VerifySubscriptionUseCase {
	return &VerifySubscriptionUseCase{subRepo: subRepo, logger: logger}
}

// Execute looks the email up without caching. The active flag is computed
// from the expiry, so a row the sweep has not reached yet still reads as
// inactive once it expires. Unknown emails are inactive, not an error.
func (uc *VerifySubscriptionUseCase) Execute(ctx context.Context, query VerifySubscriptionQuery) (*dto.VerificationDTO, error) {
	email, err := subscription.NormalizeEmail(query.Email)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &dto.VerificationDTO{Email: email, Active: false}, nil
		}
		uc.logger.Errorw("failed to load subscription", "email", email, "error", err)
		return nil, err
	}

	return dto.ToVerificationDTO(sub, biztime.NowUTC()), nil
}
