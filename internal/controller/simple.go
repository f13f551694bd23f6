package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// SimpleUI implements UI by printing through a cobra Command's writers.
type SimpleUI struct {
	cmd     *cobra.Command
	printer *message.Printer

	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	headerStyle  lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:          cmd,
		printer:      message.NewPrinter(language.English),
		warnStyle:    renderer.NewStyle().Foreground(lipgloss.Color("3")),
		successStyle: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		headerStyle:  renderer.NewStyle().Bold(true),
	}
}

// DisplayInfo prints an informational line.
func (s *SimpleUI) DisplayInfo(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", fmt.Sprintf(format, args...))
}

// DisplayWarning prints a warning line.
func (s *SimpleUI) DisplayWarning(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.warnStyle.Render(fmt.Sprintf(format, args...)))
}

// DisplaySuccess prints a success line.
func (s *SimpleUI) DisplaySuccess(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.successStyle.Render(fmt.Sprintf(format, args...)))
}

// DisplayLineTally prints the added/deleted totals of a numstat diff.
func (s *SimpleUI) DisplayLineTally(ctx context.Context, base, compare, path string, tally m.DiffTally) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s\n", s.headerStyle.Render(fmt.Sprintf("%s  →  %s (in %s)", base, compare, path)))
	s.printf("%s\n", strings.Repeat("-", 46+len(path)))
	s.printf("Added lines   : %s\n", s.printer.Sprintf("%d", tally.Added))
	s.printf("Deleted lines : %s\n", s.printer.Sprintf("%d", tally.Deleted))
	s.printf("Total modified: %s\n", s.printer.Sprintf("%d", tally.Total()))
}

// DisplayScanSummary prints where the scan reports were written.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary m.ScanSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Reports generated: %s (hyperlinks) and %s (Gradle patterns)\n", summary.ReportPath, summary.FQNPath)
	s.printf("Total UI-test methods found: %d\n", summary.TotalMethods)
}

// DisplayCommand prints a command line, quoting arguments that contain spaces.
func (s *SimpleUI) DisplayCommand(ctx context.Context, args []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.Contains(arg, " ") {
			arg = `"` + arg + `"`
		}

		quoted = append(quoted, arg)
	}

	s.printf("Executing command:\n%s\n%s\n", strings.Join(quoted, " "), strings.Repeat("-", 20))
}

// DisplayCommandFailure prints the captured output of a failed child process.
func (s *SimpleUI) DisplayCommandFailure(ctx context.Context, title string, err *m.CommandError) {
	if ctx.Err() != nil || err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s:\n%s\n", title, strings.TrimRight(err.Output(), "\n"))
}

// DisplayBuildOutput prints captured build-tool output.
func (s *SimpleUI) DisplayBuildOutput(ctx context.Context, stdout, stderr string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Gradle output:\n%s\n", stdout)

	if stderr != "" {
		s.printf("Gradle errors/warnings:\n%s\n", stderr)
	}
}

// DisplayDiff prints a unified diff for path.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("  = %s (unchanged)\n", path)
		return
	}

	s.printf("%s", diff)
}

// DisplaySyncSummary prints the per-file outcome of a sync run.
func (s *SimpleUI) DisplaySyncSummary(ctx context.Context, summary m.SyncSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(summary.Files) == 0 {
		return
	}

	s.printf("\n%s", renderSyncTable(summary))

	if summary.DryRun {
		s.printf("\nDry run: %d file(s) would be copied from %s onto %s.\n", len(summary.Files), summary.OldRef, summary.NewRef)
		return
	}

	s.printf("\nDone.  %d file(s) are staged on %s.\n", len(summary.Files), summary.NewRef)
	s.printf("Double-check with 'git diff --staged' and commit when ready.\n")
}

func renderSyncTable(summary m.SyncSummary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Kept", "Removed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, file := range summary.Files {
		table.Append([]string{string(file.Path), fmt.Sprintf("%d", file.Kept), fmt.Sprintf("%d", file.Total-file.Kept)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(summary.Files)), "", ""})
	table.Render()

	return buf.String()
}

// DisplayFQNs prints the methods of an FQN list grouped by class.
func (s *SimpleUI) DisplayFQNs(ctx context.Context, fqns []m.FQN) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderFQNTable(fqns))

	return nil
}

func renderFQNTable(fqns []m.FQN) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Class", "Method"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	classes := 0
	previous := ""

	for _, fqn := range fqns {
		class := fqn.ClassName()
		if class == previous {
			class = ""
		} else {
			previous = class
			classes++
		}

		table.Append([]string{class, fqn.Method})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Classes %d", classes), fmt.Sprintf("%d", len(fqns))})
	table.Render()

	return buf.String()
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}
