package cache

import (
	"context"
	"encoding/json"
	"time"

	"nightwatch/src/config"
	"nightwatch/src/logger"
	"nightwatch/src/provider"
	"nightwatch/src/schedule"
	"nightwatch/src/stats"
)

// Policy decides whether previously fetched data may still be served and
// stamps new snapshots with their expiry.
type Policy struct {
	store    Store
	schedule schedule.Schedule
	log      logger.Logger
}

// NewPolicy creates a policy over the given store and refresh schedule.
func NewPolicy(store Store, sched schedule.Schedule, log logger.Logger) *Policy {
	return &Policy{
		store:    store,
		schedule: sched,
		log:      log,
	}
}

// LoadValid returns the persisted snapshot if it has not yet expired.
// A missing, unreadable or corrupt snapshot is a cache miss, never an error:
// the caller falls through to a fresh fetch.
func (p *Policy) LoadValid(ctx context.Context, now time.Time) *Snapshot {
	data, err := p.store.Get(ctx, SnapshotKey)
	if err != nil {
		p.log.Debug("cache miss: %v", err)
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		p.log.Debug("discarding unreadable snapshot: %v", err)
		return nil
	}

	if !now.Before(snap.NextRefreshAt) {
		p.log.Debug("snapshot expired at %s", snap.NextRefreshAt)
		return nil
	}

	return &snap
}

// Save persists a new snapshot stamped with fetchedAt = now and the next
// scheduled refresh time. Persistence failures are logged and swallowed;
// serving the dashboard beats guaranteeing the cache, the next load simply
// re-fetches. The built snapshot is returned either way.
func (p *Policy) Save(ctx context.Context, statistics stats.Statistics, builds []provider.BuildRecord, now time.Time) *Snapshot {
	if len(builds) > config.MaxRecentBuilds {
		builds = builds[:config.MaxRecentBuilds]
	}

	snap := &Snapshot{
		Statistics:    statistics,
		Builds:        builds,
		FetchedAt:     now,
		NextRefreshAt: p.schedule.NextRefresh(now),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		p.log.Error("failed to encode snapshot: %v", err)
		return snap
	}

	if err := p.store.Set(ctx, SnapshotKey, data); err != nil {
		p.log.Error("failed to persist snapshot: %v", err)
	}

	return snap
}
