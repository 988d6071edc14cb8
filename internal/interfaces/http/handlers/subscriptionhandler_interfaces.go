package handlers

import (
	"context"

	subdto "officetools/internal/application/subscription/dto"
	subusecases "officetools/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type verifySubscriptionUseCase interface {
	Execute(ctx context.Context, query subusecases.VerifySubscriptionQuery) (*subdto.VerificationDTO, error)
}

type checkToolAccessUseCase interface {
	Execute(ctx context.Context, query subusecases.CheckToolAccessQuery) (*subusecases.CheckToolAccessResult, error)
}
