package dto

import (
	"time"

	"officetools/internal/domain/subscription"
)

// VerificationDTO is the public answer to "does this email have access".
// ExpiresAt and Plan are empty for unknown emails.
type VerificationDTO struct {
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	Plan      string     `json:"plan,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func ToVerificationDTO(sub *subscription.Subscription, now time.Time) *VerificationDTO {
	expiresAt := sub.ExpiresAt()
	return &VerificationDTO{
		Email:     sub.Email(),
		Active:    sub.IsActiveAt(now),
		Plan:      sub.PlanName(),
		ExpiresAt: &expiresAt,
	}
}
