package usecases

import (
	"context"
	"fmt"

	"officetools/internal/domain/subscription"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type CheckToolAccessQuery struct {
	Email string
	Tool  string
}

type CheckToolAccessResult struct {
	Allowed      bool   `json:"allowed"`
	RequiredPlan string `json:"required_plan,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// CheckToolAccessUseCase is the server-side plan gate: free tools are open,
// paid tools need an active subscription of at least the required rank.
type CheckToolAccessUseCase struct {
	subRepo subscription.Repository
	tools   ToolLookup
	plans   PlanLookup
	logger  logger.Interface
}

func NewCheckToolAccessUseCase(
	subRepo subscription.Repository,
	tools ToolLookup,
	plans PlanLookup,
	logger logger.Interface,
) *CheckToolAccessUseCase {
	return &CheckToolAccessUseCase{
		subRepo: subRepo,
		tools:   tools,
		plans:   plans,
		logger:  logger,
	}
}

func (uc *CheckToolAccessUseCase) Execute(ctx context.Context, query CheckToolAccessQuery) (*CheckToolAccessResult, error) {
	tool, ok := uc.tools.Get(query.Tool)
	if !ok {
		return nil, errors.NewNotFoundError("tool not found", query.Tool)
	}
	if tool.IsFree() {
		return &CheckToolAccessResult{Allowed: true}, nil
	}

	result := &CheckToolAccessResult{RequiredPlan: tool.RequiredPlan}
	required, ok := uc.plans.Get(tool.RequiredPlan)
	if !ok {
		uc.logger.Warnw("tool requires an unconfigured plan", "tool", tool.Slug, "plan", tool.RequiredPlan)
		result.Reason = "required plan is not available"
		return result, nil
	}

	if query.Email == "" {
		result.Reason = "subscriber email is required"
		return result, nil
	}
	email, err := subscription.NormalizeEmail(query.Email)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			result.Reason = "no subscription for this email"
			return result, nil
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	if !sub.IsActiveAt(biztime.NowUTC()) {
		result.Reason = "subscription has expired"
		return result, nil
	}

	held, ok := uc.plans.Get(sub.PlanName())
	if !ok || !held.Satisfies(required) {
		result.Reason = fmt.Sprintf("tool requires the %s plan", required.Name)
		return result, nil
	}

	result.Allowed = true
	return result, nil
}
