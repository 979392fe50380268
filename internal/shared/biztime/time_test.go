package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayAndMonthKeys_UseBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Tokyo"))
	t.Cleanup(func() { _ = Init("UTC") })

	// 20:30 UTC on Oct 31 is already Nov 1 in Tokyo.
	ts := time.Date(2026, 10, 31, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-11-01", DayKey(ts))
	assert.Equal(t, "2026-11", MonthKey(ts))
	assert.Equal(t, time.Date(2026, 10, 31, 15, 0, 0, 0, time.UTC), StartOfDayUTC(ts))
}

func TestInit_RejectsUnknownZone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus_Mons"))
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
