// Package stats derives incident and streak statistics from completed
// workflow runs. All functions are pure; the reference time is always an
// explicit parameter so results are reproducible.
package stats

import (
	"sort"
	"time"

	"nightwatch/src/provider"
)

// Statistics is an immutable summary of a batch of runs.
type Statistics struct {
	// DaysWithoutIncident is the longest proven-clean span, in days, among
	// records newer than the most recent failure.
	DaysWithoutIncident int `json:"days_without_incident"`
	// LastIncident is the timestamp of the most recent failed run.
	// Nil means no failure was observed in the examined window.
	LastIncident *time.Time `json:"last_incident,omitempty"`
	// TotalBuilds is the provider-reported total, or the number of fetched
	// records when the provider did not report one.
	TotalBuilds int `json:"total_builds"`
	// SuccessRate is the percentage of successful runs, in [0,100].
	SuccessRate float64 `json:"success_rate"`
	// CurrentStreak counts consecutive successes from the newest run backward.
	CurrentStreak int `json:"current_streak"`
}

// Compute derives statistics from a batch of runs. records may arrive in any
// order; providerTotal is the provider-reported total run count (0 if
// unknown). An empty batch yields the zero Statistics.
func Compute(records []provider.BuildRecord, providerTotal int, now time.Time) Statistics {
	if len(records) == 0 {
		return Statistics{}
	}

	ordered := SortNewestFirst(records)

	var stats Statistics

	successes := 0
	for _, rec := range ordered {
		if !rec.Failed() {
			successes++
		}
	}
	stats.SuccessRate = 100 * float64(successes) / float64(len(ordered))

	for _, rec := range ordered {
		if rec.Failed() {
			break
		}
		stats.CurrentStreak++
	}

	incidentIdx := -1
	for i, rec := range ordered {
		if rec.Failed() {
			incidentIdx = i
			break
		}
	}

	if incidentIdx >= 0 {
		ts := ordered[incidentIdx].Timestamp
		stats.LastIncident = &ts
		// Longest clean span proven by the records newer than the incident,
		// not merely the newest record's age.
		for _, rec := range ordered[:incidentIdx] {
			if age := daysSince(now, rec.Timestamp) + 1; age > stats.DaysWithoutIncident {
				stats.DaysWithoutIncident = age
			}
		}
	} else {
		// No incident in the window: clean for at least the age of the
		// oldest known record.
		oldest := ordered[len(ordered)-1]
		stats.DaysWithoutIncident = daysSince(now, oldest.Timestamp) + 1
	}

	stats.TotalBuilds = providerTotal
	if stats.TotalBuilds == 0 {
		stats.TotalBuilds = len(ordered)
	}

	return stats
}

// SortNewestFirst returns a copy of records ordered by timestamp descending.
// Equal timestamps keep their input order.
func SortNewestFirst(records []provider.BuildRecord) []provider.BuildRecord {
	ordered := make([]provider.BuildRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})
	return ordered
}

// daysSince returns the whole days elapsed from t to now, never negative.
func daysSince(now time.Time, t time.Time) int {
	if !t.Before(now) {
		return 0
	}
	return int(now.Sub(t) / (24 * time.Hour))
}
