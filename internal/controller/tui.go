package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// reserved lines for the header and the help footer of the FQN viewer.
const viewerChrome = 6

// TUI implements UI for interactive terminals. Line-oriented output is
// shared with SimpleUI; long listings open a scrollable Bubble Tea viewer.
type TUI struct {
	*SimpleUI

	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayFQNs shows the FQN table, paging it when it does not fit the terminal.
func (t *TUI) DisplayFQNs(ctx context.Context, fqns []m.FQN) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderFQNTable(fqns)

	width, height := 0, 0
	if f, ok := t.output.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	model := newFQNViewerModel(content, len(fqns), width, height)
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run FQN viewer: %w", err)
	}

	return nil
}

// fqnViewerModel is the Bubble Tea model for scrolling through an FQN table.
type fqnViewerModel struct {
	viewport viewport.Model
	content  string
	total    int
	height   int
	ready    bool

	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

func newFQNViewerModel(content string, total, width, height int) fqnViewerModel {
	vp := viewport.New(width, max(height-viewerChrome, 1))
	vp.SetContent(content)

	return fqnViewerModel{
		viewport:   vp,
		content:    content,
		total:      total,
		height:     height,
		ready:      height > 0,
		titleStyle: lipgloss.NewStyle().Bold(true),
		helpStyle:  lipgloss.NewStyle().Faint(true),
	}
}

func (fm fqnViewerModel) needsPagination() bool {
	if fm.height == 0 {
		return false
	}

	return strings.Count(fm.content, "\n") > fm.height-viewerChrome
}

func (fm fqnViewerModel) Init() tea.Cmd {
	return nil
}

func (fm fqnViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.height = msg.Height
		fm.viewport.Width = msg.Width
		fm.viewport.Height = max(msg.Height-viewerChrome, 1)
		fm.ready = true

		return fm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return fm, tea.Quit
		case "g", "home":
			fm.viewport.GotoTop()
			return fm, nil
		case "G", "end":
			fm.viewport.GotoBottom()
			return fm, nil
		}
	}

	var cmd tea.Cmd
	fm.viewport, cmd = fm.viewport.Update(msg)

	return fm, cmd
}

func (fm fqnViewerModel) View() string {
	if !fm.ready {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(fm.titleStyle.Render(fmt.Sprintf("  Test FQNs (%d)", fm.total)))
	b.WriteString("\n\n")
	b.WriteString(fm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(fm.helpStyle.Render(fmt.Sprintf("  %3.f%%  ↑/↓ scroll • g/G top/bottom • q quit", fm.viewport.ScrollPercent()*100)))
	b.WriteString("\n")

	return b.String()
}
