// Package schedule gates remote fetches to a fixed daily cadence of refresh
// hours. All computations are pure functions of the supplied reference time.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Schedule is an ordered set of refresh hours-of-day in local time.
type Schedule struct {
	hours []int
}

// New creates a schedule from hours-of-day (0-23). Hours are sorted;
// duplicates are kept harmlessly.
func New(hours ...int) Schedule {
	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)
	return Schedule{hours: sorted}
}

// Default returns the standard nightly-dashboard cadence: 06:00, 13:00,
// 19:00 and 23:00 local time.
func Default() Schedule {
	return New(6, 13, 19, 23)
}

// NextRefresh returns the earliest configured hour strictly after now on the
// same calendar day, or the first configured hour of the following day.
// The result uses now's location.
func (s Schedule) NextRefresh(now time.Time) time.Time {
	for _, h := range s.hours {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, now.Location())
		if candidate.After(now) {
			return candidate
		}
	}

	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), s.hours[0], 0, 0, 0, now.Location())
}

// Until returns the time remaining before the next refresh.
func (s Schedule) Until(now time.Time) time.Duration {
	return s.NextRefresh(now).Sub(now)
}

// FormatCountdown renders a duration as "<H>h <M>m", omitting the hour part
// when zero. Negative durations render as "0m".
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
