// Package domain implements the droidtest tools on top of the adapters.
package domain

import (
	"context"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	"droidtest.dev/pkg/droidtest/internal/controller"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

// Workflow defines the operations exposed by the droidtest CLI.
type Workflow interface {
	CountLines(ctx context.Context, args LineCountArgs) (m.DiffTally, error)
	Scan(ctx context.Context, args ScanArgs) (m.ScanSummary, error)
	RunTests(ctx context.Context, args RunArgs) error
	Sync(ctx context.Context, args SyncArgs) (m.SyncSummary, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.GitCLIAdapter
	adapter.GitRepoAdapter
	adapter.BuildRunnerAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	gitCLI adapter.GitCLIAdapter,
	gitRepo adapter.GitRepoAdapter,
	buildRunner adapter.BuildRunnerAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:    fsAdapter,
		ReportStore:        reportStore,
		GitCLIAdapter:      gitCLI,
		GitRepoAdapter:     gitRepo,
		BuildRunnerAdapter: buildRunner,
		UI:                 ui,
	}
}
