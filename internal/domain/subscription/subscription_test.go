package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/shared/errors"
)

var start = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewSubscription(t *testing.T) {
	s, err := NewSubscription(" User@Example.com", "pro", start, 30*24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", s.Email())
	assert.Equal(t, "pro", s.PlanName())
	assert.Equal(t, start.Add(30*24*time.Hour), s.ExpiresAt())
	assert.True(t, s.Active())
}

func TestNewSubscription_Invalid(t *testing.T) {
	_, err := NewSubscription("nope", "pro", start, time.Hour)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewSubscription("a@b.co", "", start, time.Hour)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewSubscription("a@b.co", "pro", start, 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestIsActiveAt(t *testing.T) {
	s, err := NewSubscription("a@b.co", "basic", start, 24*time.Hour)
	require.NoError(t, err)

	assert.True(t, s.IsActiveAt(start.Add(time.Hour)))
	assert.False(t, s.IsActiveAt(start.Add(24*time.Hour)), "expiry instant is not active")
	assert.False(t, s.IsActiveAt(start.Add(48*time.Hour)))

	s.Deactivate()
	assert.False(t, s.IsActiveAt(start.Add(time.Hour)))
}

func TestRenewReplacesPlanAndRestartsPeriod(t *testing.T) {
	s, err := NewSubscription("a@b.co", "basic", start, 24*time.Hour)
	require.NoError(t, err)
	s.Deactivate()

	renewedAt := start.Add(72 * time.Hour)
	require.NoError(t, s.Renew("pro", renewedAt, 30*24*time.Hour))

	assert.Equal(t, "pro", s.PlanName())
	assert.Equal(t, renewedAt, s.ActivatedAt())
	assert.Equal(t, renewedAt.Add(30*24*time.Hour), s.ExpiresAt())
	assert.True(t, s.IsActiveAt(renewedAt.Add(time.Hour)))
}
