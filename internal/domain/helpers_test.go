package domain_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	adaptermocks "droidtest.dev/pkg/droidtest/internal/adapter/mocks"
	"droidtest.dev/pkg/droidtest/internal/controller"
	"droidtest.dev/pkg/droidtest/internal/domain"
)

// harness wires a workflow to an in-memory filesystem, mocked git and build
// adapters and a SimpleUI printing into buffers.
type harness struct {
	fs       afero.Fs
	gitCLI   *adaptermocks.MockGitCLIAdapter
	gitRepo  *adaptermocks.MockGitRepoAdapter
	build    *adaptermocks.MockBuildRunnerAdapter
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	workflow domain.Workflow
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	return newHarnessWithFS(t, afero.NewMemMapFs())
}

func newHarnessWithFS(t *testing.T, fs afero.Fs) *harness {
	t.Helper()

	h := &harness{
		fs:      fs,
		gitCLI:  adaptermocks.NewMockGitCLIAdapter(t),
		gitRepo: adaptermocks.NewMockGitRepoAdapter(t),
		build:   adaptermocks.NewMockBuildRunnerAdapter(t),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}

	fsAdapter := adapter.NewSourceFSAdapter(fs)
	h.workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(fsAdapter),
		h.gitCLI,
		h.gitRepo,
		h.build,
		newBufferedUI(h.stdout, h.stderr),
	)

	return h
}

func newBufferedUI(stdout, stderr *bytes.Buffer) controller.UI {
	cmd := &cobra.Command{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return controller.NewSimpleUI(cmd)
}

func (h *harness) write(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, h.fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(h.fs, path, []byte(content), 0o644))
}

func (h *harness) read(t *testing.T, path string) string {
	t.Helper()

	content, err := afero.ReadFile(h.fs, path)
	require.NoError(t, err)

	return string(content)
}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}
