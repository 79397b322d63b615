package githubactions

import (
	"context"
	"fmt"
	"strings"

	"nightwatch/src/provider"
)

// Provider implements provider.RunProvider for GitHub Actions.
// It is pinned to one repository and one workflow, matched by name.
type Provider struct {
	client   *Client
	owner    string
	repo     string
	workflow string
}

// NewProvider creates a GitHub Actions provider for one repository's workflow.
// workflow is matched case-insensitively against workflow names and paths.
func NewProvider(owner, repo, workflow string) *Provider {
	return &Provider{
		client:   NewClient(),
		owner:    owner,
		repo:     repo,
		workflow: workflow,
	}
}

// Name returns "github"
func (p *Provider) Name() string {
	return "github"
}

// FetchRuns lists the repository's workflows, selects the monitored one, and
// retrieves its most recent completed runs.
func (p *Provider) FetchRuns(ctx context.Context) (*provider.RunBatch, error) {
	workflows, err := p.client.ListWorkflows(ctx, p.owner, p.repo)
	if err != nil {
		return nil, err
	}

	workflow, ok := matchWorkflow(workflows.Workflows, p.workflow)
	if !ok {
		return nil, fmt.Errorf("%w: no workflow matching %q in %s/%s",
			provider.ErrWorkflowNotFound, p.workflow, p.owner, p.repo)
	}

	runs, err := p.client.ListCompletedRuns(ctx, p.owner, p.repo, workflow.ID, runsPerPage)
	if err != nil {
		return nil, err
	}

	batch := &provider.RunBatch{
		Records:    make([]provider.BuildRecord, 0, len(runs.WorkflowRuns)),
		TotalCount: runs.TotalCount,
	}

	for _, run := range runs.WorkflowRuns {
		batch.Records = append(batch.Records, provider.BuildRecord{
			RunNumber:  run.RunNumber,
			Timestamp:  run.CreatedAt,
			Outcome:    mapConclusion(run.Conclusion),
			Conclusion: run.Conclusion,
			URL:        run.HTMLURL,
		})
	}

	return batch, nil
}

// runsPerPage is the completed-run page size requested from the API.
const runsPerPage = 50

// matchWorkflow finds the workflow whose name or path contains the wanted
// string, ignoring case and hyphen/underscore vs. space differences, so that
// "Nightly Build" also matches ".github/workflows/nightly-build.yml".
func matchWorkflow(workflows []Workflow, wanted string) (Workflow, bool) {
	needle := normalizeWorkflowName(wanted)
	for _, w := range workflows {
		if strings.Contains(normalizeWorkflowName(w.Name), needle) ||
			strings.Contains(normalizeWorkflowName(w.Path), needle) {
			return w, true
		}
	}
	return Workflow{}, false
}

func normalizeWorkflowName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return s
}

// mapConclusion normalizes a GitHub conclusion to a binary outcome.
// Cancelled, timed out and skipped runs all count as incidents.
func mapConclusion(conclusion string) provider.Outcome {
	if conclusion == "success" {
		return provider.OutcomeSuccess
	}
	return provider.OutcomeFailure
}
