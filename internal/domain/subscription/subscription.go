package subscription

import (
	"net/mail"
	"strings"
	"time"

	"officetools/internal/shared/biztime"
	"officetools/internal/shared/errors"
)

// Subscription grants a plan to an email until expiresAt. There is one
// subscription per email.
type Subscription struct {
	id          uint
	email       string
	planName    string
	activatedAt time.Time
	expiresAt   time.Time
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NormalizeEmail lowercases and validates an email address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", errors.NewValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errors.NewValidationError("invalid email address")
	}
	return email, nil
}

func NewSubscription(email, planName string, activatedAt time.Time, duration time.Duration) (*Subscription, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(planName) == "" {
		return nil, errors.NewValidationError("plan is required")
	}
	if duration <= 0 {
		return nil, errors.NewValidationError("plan duration must be positive")
	}

	now := biztime.NowUTC()
	return &Subscription{
		email:       normalized,
		planName:    planName,
		activatedAt: activatedAt,
		expiresAt:   activatedAt.Add(duration),
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Renew replaces the plan and restarts the period at now.
func (s *Subscription) Renew(planName string, now time.Time, duration time.Duration) error {
	if strings.TrimSpace(planName) == "" {
		return errors.NewValidationError("plan is required")
	}
	if duration <= 0 {
		return errors.NewValidationError("plan duration must be positive")
	}
	s.planName = planName
	s.activatedAt = now
	s.expiresAt = now.Add(duration)
	s.active = true
	s.updatedAt = biztime.NowUTC()
	return nil
}

// IsActiveAt is the access decision: the flag is set and expiry is in the future.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s.active && s.expiresAt.After(now)
}

func (s *Subscription) Deactivate() {
	if !s.active {
		return
	}
	s.active = false
	s.updatedAt = biztime.NowUTC()
}

func (s *Subscription) SetID(id uint) {
	s.id = id
}

func (s *Subscription) ID() uint               { return s.id }
func (s *Subscription) Email() string          { return s.email }
func (s *Subscription) PlanName() string       { return s.planName }
func (s *Subscription) ActivatedAt() time.Time { return s.activatedAt }
func (s *Subscription) ExpiresAt() time.Time   { return s.expiresAt }
func (s *Subscription) Active() bool           { return s.active }
func (s *Subscription) CreatedAt() time.Time   { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time   { return s.updatedAt }

// ReconstructSubscription rebuilds a subscription from storage.
func ReconstructSubscription(id uint, email, planName string, activatedAt, expiresAt time.Time, active bool, createdAt, updatedAt time.Time) *Subscription {
	return &Subscription{
		id:          id,
		email:       email,
		planName:    planName,
		activatedAt: activatedAt,
		expiresAt:   expiresAt,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
