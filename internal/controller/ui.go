// Package controller provides output adapters for displaying droidtest results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// UI defines the interface for reporting progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayInfo(ctx context.Context, format string, args ...any)
	DisplayWarning(ctx context.Context, format string, args ...any)
	DisplaySuccess(ctx context.Context, format string, args ...any)
	DisplayLineTally(ctx context.Context, base, compare, path string, tally m.DiffTally)
	DisplayScanSummary(ctx context.Context, summary m.ScanSummary)
	DisplayCommand(ctx context.Context, args []string)
	DisplayCommandFailure(ctx context.Context, title string, err *m.CommandError)
	DisplayBuildOutput(ctx context.Context, stdout, stderr string)
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplaySyncSummary(ctx context.Context, summary m.SyncSummary)
	DisplayFQNs(ctx context.Context, fqns []m.FQN) error
}

// NewUI returns a TUI when output is an interactive terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
