// Package provider defines the provider-neutral contract for fetching
// completed runs of the monitored workflow from a CI platform.
package provider

import "context"

// RunProvider fetches the most recent completed runs of the monitored workflow.
// Implementations return errors rather than substituting data; the
// placeholder-fallback decision belongs to the caller.
type RunProvider interface {
	// Name returns the provider name (e.g., "github")
	Name() string

	// FetchRuns retrieves the most recent completed runs
	FetchRuns(ctx context.Context) (*RunBatch, error)
}
