// Package pipeline wires the cache policy, the run provider and the
// statistics calculator into the load path shared by the TUI and the
// one-shot CLI commands.
package pipeline

import (
	"context"
	"time"

	"nightwatch/src/cache"
	"nightwatch/src/logger"
	"nightwatch/src/provider"
	"nightwatch/src/stats"
)

// Loader produces the current statistics snapshot, serving from cache while
// it is valid and fetching otherwise.
type Loader struct {
	provider provider.RunProvider
	policy   *cache.Policy
	log      logger.Logger
}

// NewLoader creates a loader.
func NewLoader(runProvider provider.RunProvider, policy *cache.Policy, log logger.Logger) *Loader {
	return &Loader{
		provider: runProvider,
		policy:   policy,
		log:      log,
	}
}

// Load returns the current snapshot and whether it was served from cache.
// It never returns nil: a failed fetch falls back to the deterministic
// placeholder series, so the display always has well-formed data.
func (l *Loader) Load(ctx context.Context, now time.Time) (*cache.Snapshot, bool) {
	if snap := l.policy.LoadValid(ctx, now); snap != nil {
		l.log.Debug("serving cached snapshot fetched at %s", snap.FetchedAt)
		return snap, true
	}
	return l.refresh(ctx, now), false
}

// ForceRefresh fetches and recomputes regardless of cache validity.
func (l *Loader) ForceRefresh(ctx context.Context, now time.Time) *cache.Snapshot {
	return l.refresh(ctx, now)
}

func (l *Loader) refresh(ctx context.Context, now time.Time) *cache.Snapshot {
	var records []provider.BuildRecord
	total := 0

	batch, err := l.provider.FetchRuns(ctx)
	if err != nil {
		l.log.Error("fetch failed, using placeholder series: %v", provider.WrapError(err))
		records = stats.PlaceholderRecords(now)
	} else {
		records = batch.Records
		total = batch.TotalCount
	}

	statistics := stats.Compute(records, total, now)
	ordered := stats.SortNewestFirst(records)

	return l.policy.Save(ctx, statistics, ordered, now)
}
