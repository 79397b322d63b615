package provider

import "time"

// Outcome is the normalized result of a completed run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// BuildRecord is one completed workflow run, normalized for the calculator.
type BuildRecord struct {
	// RunNumber is the provider's monotonically increasing run counter.
	RunNumber int `json:"run_number"`
	// Timestamp is when the run was created.
	Timestamp time.Time `json:"timestamp"`
	// Outcome is success or failure; any non-success conclusion maps to failure.
	Outcome Outcome `json:"outcome"`
	// Conclusion is the provider's original conclusion string, kept for display only.
	Conclusion string `json:"conclusion"`
	// URL links to the run's page on the provider.
	URL string `json:"url"`
}

// Failed reports whether this run counts as an incident.
func (r BuildRecord) Failed() bool {
	return r.Outcome != OutcomeSuccess
}

// RunBatch is one fetched page of runs plus the provider-reported total.
type RunBatch struct {
	Records []BuildRecord
	// TotalCount is the provider's total run count for the workflow.
	// Zero means the provider did not report one.
	TotalCount int
}
