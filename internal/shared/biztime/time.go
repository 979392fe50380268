// Package biztime provides business timezone helpers.
// Storage is always UTC; the business timezone decides which calendar day
// and month a usage event belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when the server config leaves the timezone empty.
const DefaultTimezone = "UTC"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. It may be called again (tests, config reload).
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, UTC if Init was never called.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayKey is the business calendar day of t, e.g. "2026-10-14".
func DayKey(t time.Time) string {
	return t.In(Location()).Format(dayLayout)
}

// MonthKey is the business calendar month of t, e.g. "2026-10".
func MonthKey(t time.Time) string {
	return t.In(Location()).Format(monthLayout)
}

// StartOfDayUTC returns 00:00 of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}
