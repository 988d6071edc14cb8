package subscription

import (
	"context"
	"time"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Subscription, error)
	// Upsert inserts or replaces the subscription keyed by email.
	Upsert(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	// ListExpired returns active subscriptions whose expiry is not after now.
	ListExpired(ctx context.Context, now time.Time) ([]*Subscription, error)
}
