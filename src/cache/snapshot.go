package cache

import (
	"time"

	"nightwatch/src/provider"
	"nightwatch/src/stats"
)

// SnapshotKey is the single key under which the dashboard snapshot lives.
const SnapshotKey = "nightly_snapshot"

// Snapshot is one cached fetch-and-compute result. It is written whole and
// read whole; there is no incremental mutation.
type Snapshot struct {
	Statistics stats.Statistics `json:"statistics"`
	// Builds holds the most recent runs kept for display, newest first.
	Builds        []provider.BuildRecord `json:"builds"`
	FetchedAt     time.Time              `json:"fetched_at"`
	NextRefreshAt time.Time              `json:"next_refresh_at"`
}
