// Package biztime keeps all stored and transported times in UTC. The
// business timezone is only used when rendering dates for people (emails).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error

	nowFunc = time.Now
)

// Init sets the business timezone. Only the first call has an effect.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to initialize default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return nowFunc().UTC()
}

// FormatInBizTimezone formats t in the business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// DaysToDuration converts a plan length in days to a duration.
func DaysToDuration(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

// SetNowForTest pins NowUTC to a fixed instant and returns a restore func.
func SetNowForTest(t time.Time) func() {
	prev := nowFunc
	nowFunc = func() time.Time { return t }
	return func() { nowFunc = prev }
}
