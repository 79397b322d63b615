package githubactions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nightwatch/src/provider"
)

// fakeAPI serves a workflow list and a run list like the GitHub API.
func fakeAPI(t *testing.T, workflowsJSON, runsJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/repos/nightwatch-hq/platform/actions/workflows":
			w.Write([]byte(workflowsJSON))
		case "/repos/nightwatch-hq/platform/actions/workflows/22/runs":
			w.Write([]byte(runsJSON))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

const workflowsFixture = `{
	"total_count": 2,
	"workflows": [
		{"id": 11, "name": "CI", "path": ".github/workflows/ci.yml", "state": "active"},
		{"id": 22, "name": "nightly-build", "path": ".github/workflows/nightly-build.yml", "state": "active"}
	]
}`

const runsFixture = `{
	"total_count": 128,
	"workflow_runs": [
		{"id": 3, "run_number": 128, "status": "completed", "conclusion": "success",
		 "html_url": "https://github.com/nightwatch-hq/platform/actions/runs/3", "created_at": "2026-08-25T03:00:00Z"},
		{"id": 2, "run_number": 127, "status": "completed", "conclusion": "cancelled",
		 "html_url": "https://github.com/nightwatch-hq/platform/actions/runs/2", "created_at": "2026-08-24T03:00:00Z"},
		{"id": 1, "run_number": 126, "status": "completed", "conclusion": "failure",
		 "html_url": "https://github.com/nightwatch-hq/platform/actions/runs/1", "created_at": "2026-08-23T03:00:00Z"}
	]
}`

func newTestProvider(baseURL string) *Provider {
	p := NewProvider("nightwatch-hq", "platform", "Nightly Build")
	p.client.baseURL = baseURL
	return p
}

func TestProvider_FetchRuns(t *testing.T) {
	server := fakeAPI(t, workflowsFixture, runsFixture)
	defer server.Close()

	batch, err := newTestProvider(server.URL).FetchRuns(context.Background())
	if err != nil {
		t.Fatalf("FetchRuns() error = %v", err)
	}

	if batch.TotalCount != 128 {
		t.Errorf("TotalCount = %d, want 128", batch.TotalCount)
	}
	if len(batch.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(batch.Records))
	}

	first := batch.Records[0]
	if first.RunNumber != 128 {
		t.Errorf("RunNumber = %d, want 128", first.RunNumber)
	}
	if first.Outcome != provider.OutcomeSuccess {
		t.Errorf("Outcome = %s, want success", first.Outcome)
	}

	// Non-success conclusions normalize to failure but keep the original string
	cancelled := batch.Records[1]
	if cancelled.Outcome != provider.OutcomeFailure {
		t.Errorf("cancelled Outcome = %s, want failure", cancelled.Outcome)
	}
	if cancelled.Conclusion != "cancelled" {
		t.Errorf("Conclusion = %s, want cancelled", cancelled.Conclusion)
	}
}

func TestProvider_WorkflowNotFound(t *testing.T) {
	noNightly := `{
		"total_count": 1,
		"workflows": [
			{"id": 11, "name": "CI", "path": ".github/workflows/ci.yml", "state": "active"}
		]
	}`
	server := fakeAPI(t, noNightly, runsFixture)
	defer server.Close()

	_, err := newTestProvider(server.URL).FetchRuns(context.Background())
	if !errors.Is(err, provider.ErrWorkflowNotFound) {
		t.Errorf("error = %v, want ErrWorkflowNotFound", err)
	}
}

func TestMatchWorkflow(t *testing.T) {
	workflows := []Workflow{
		{ID: 1, Name: "CI", Path: ".github/workflows/ci.yml"},
		{ID: 2, Name: "Deploy", Path: ".github/workflows/deploy.yml"},
		{ID: 3, Name: "nightly_build", Path: ".github/workflows/nightly_build.yml"},
	}

	tests := []struct {
		name   string
		wanted string
		wantID int64
		wantOK bool
	}{
		{"case-insensitive name", "NIGHTLY BUILD", 3, true},
		{"space vs underscore", "Nightly Build", 3, true},
		{"path match", "nightly_build.yml", 3, true},
		{"no match", "Release", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchWorkflow(workflows, tt.wanted)
			if ok != tt.wantOK {
				t.Fatalf("matchWorkflow() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("matchWorkflow() ID = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

func TestMapConclusion(t *testing.T) {
	tests := []struct {
		conclusion string
		want       provider.Outcome
	}{
		{"success", provider.OutcomeSuccess},
		{"failure", provider.OutcomeFailure},
		{"cancelled", provider.OutcomeFailure},
		{"timed_out", provider.OutcomeFailure},
		{"skipped", provider.OutcomeFailure},
		{"", provider.OutcomeFailure},
	}

	for _, tt := range tests {
		if got := mapConclusion(tt.conclusion); got != tt.want {
			t.Errorf("mapConclusion(%q) = %s, want %s", tt.conclusion, got, tt.want)
		}
	}
}
