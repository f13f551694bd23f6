package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// DefaultTestRoot is the repository directory holding the unit/UI test sources.
const DefaultTestRoot = "app/src/test/java"

var (
	// ErrNotRepository is returned when the sync target is not a git working copy.
	ErrNotRepository = errors.New("does not look like a Git repository")
	// ErrDirtyWorktree is returned when the sync target has uncommitted changes.
	ErrDirtyWorktree = errors.New("Working tree has uncommitted changes — commit or stash first.") //nolint:staticcheck // printed verbatim
)

const syncedFileMode = 0o644

// SyncArgs contains the arguments for copying tests from one ref onto another.
type SyncArgs struct {
	Repo     m.Path
	OldRef   string
	NewRef   string
	FQNs     string
	TestRoot string
	DryRun   bool
}

// SyncState is a step of the sync state machine.
type SyncState int

// Sync states in execution order.
const (
	SyncParseWhitelist SyncState = iota
	SyncResolvePaths
	SyncCheckout
	SyncRewriteAndStage
	SyncDone
)

func (s SyncState) String() string {
	switch s {
	case SyncParseWhitelist:
		return "parse-whitelist"
	case SyncResolvePaths:
		return "resolve-paths"
	case SyncCheckout:
		return "checkout"
	case SyncRewriteAndStage:
		return "rewrite-and-stage"
	case SyncDone:
		return "done"
	}

	return fmt.Sprintf("SyncState(%d)", int(s))
}

// syncRun carries the data handed between sync states.
type syncRun struct {
	args      SyncArgs
	whitelist m.Whitelist
	// wanted maps a repository-relative file path to the union of wanted methods.
	wanted  map[string]m.MethodSet
	summary m.SyncSummary
}

func (w *workflow) Sync(ctx context.Context, args SyncArgs) (m.SyncSummary, error) {
	if args.TestRoot == "" {
		args.TestRoot = DefaultTestRoot
	}

	if err := w.checkSyncPreconditions(ctx, args); err != nil {
		return m.SyncSummary{}, err
	}

	run := &syncRun{
		args:    args,
		wanted:  map[string]m.MethodSet{},
		summary: m.SyncSummary{OldRef: args.OldRef, NewRef: args.NewRef, DryRun: args.DryRun},
	}

	state := SyncParseWhitelist
	for state != SyncDone {
		if err := ctx.Err(); err != nil {
			return run.summary, err
		}

		next, err := w.syncStep(ctx, run, state)
		if err != nil {
			slog.Error("sync failed", "state", state.String(), "error", err)
			return run.summary, err
		}

		slog.Debug("sync transition", "from", state.String(), "to", next.String())
		state = next
	}

	w.DisplaySyncSummary(ctx, run.summary)

	return run.summary, nil
}

func (w *workflow) syncStep(ctx context.Context, run *syncRun, state SyncState) (SyncState, error) {
	switch state {
	case SyncParseWhitelist:
		return w.syncParseWhitelist(ctx, run)
	case SyncResolvePaths:
		return w.syncResolvePaths(ctx, run)
	case SyncCheckout:
		return w.syncCheckout(ctx, run)
	case SyncRewriteAndStage:
		return w.syncRewriteAndStage(ctx, run)
	case SyncDone:
		return SyncDone, nil
	}

	return SyncDone, fmt.Errorf("unknown sync state %s", state)
}

func (w *workflow) checkSyncPreconditions(ctx context.Context, args SyncArgs) error {
	if !w.IsRepository(ctx, args.Repo) {
		return fmt.Errorf("%s %w", args.Repo, ErrNotRepository)
	}

	if args.DryRun {
		return nil
	}

	clean, err := w.IsClean(ctx, args.Repo)
	if err != nil {
		return fmt.Errorf("check worktree status: %w", err)
	}

	if !clean {
		return ErrDirtyWorktree
	}

	return nil
}

func (w *workflow) syncParseWhitelist(ctx context.Context, run *syncRun) (SyncState, error) {
	args := run.args
	w.DisplayInfo(ctx, "Reading list of tests from %s:%s …", args.OldRef, args.FQNs)

	raw, err := w.ReadFileAt(ctx, args.Repo, args.OldRef, args.FQNs)
	if err != nil {
		return SyncDone, fmt.Errorf("read %s:%s: %w", args.OldRef, args.FQNs, err)
	}

	whitelist, invalid := ParseWhitelist(string(raw))
	for _, line := range invalid {
		w.DisplayWarning(ctx, "  ⚠  ignoring malformed entry: %s", line)
	}

	run.whitelist = whitelist
	w.DisplayInfo(ctx, "→ %d FQNs in %d classes", whitelist.MethodCount(), len(whitelist))

	return SyncResolvePaths, nil
}

func (w *workflow) syncResolvePaths(ctx context.Context, run *syncRun) (SyncState, error) {
	args := run.args

	for _, class := range run.whitelist.Classes() {
		resolved := ""

		for _, candidate := range CandidatePaths(class, args.TestRoot) {
			ok, err := w.FileExistsAt(ctx, args.Repo, args.OldRef, candidate)
			if err != nil {
				return SyncDone, err
			}

			if ok {
				resolved = candidate
				break
			}
		}

		if resolved == "" {
			run.summary.Unresolved = append(run.summary.Unresolved, class)
			w.DisplayWarning(ctx, "  ⚠  NOT FOUND in %s: %s", args.OldRef, class)

			continue
		}

		if _, ok := run.wanted[resolved]; !ok {
			run.wanted[resolved] = m.NewMethodSet()
		}

		run.wanted[resolved].Union(run.whitelist[class])
	}

	if len(run.wanted) == 0 {
		w.DisplayInfo(ctx, "No matching test files to copy – nothing to do.")
		return SyncDone, nil
	}

	if args.DryRun {
		return SyncRewriteAndStage, nil
	}

	return SyncCheckout, nil
}

func (w *workflow) syncCheckout(ctx context.Context, run *syncRun) (SyncState, error) {
	w.DisplayInfo(ctx, "\nChecking out %s …", run.args.NewRef)

	if err := w.Checkout(ctx, run.args.Repo, run.args.NewRef); err != nil {
		return SyncDone, err
	}

	return SyncRewriteAndStage, nil
}

func (w *workflow) syncRewriteAndStage(ctx context.Context, run *syncRun) (SyncState, error) {
	args := run.args

	paths := make([]string, 0, len(run.wanted))
	for relPath := range run.wanted {
		paths = append(paths, relPath)
	}

	sort.Strings(paths)

	for _, relPath := range paths {
		keep := run.wanted[relPath]

		raw, err := w.ReadFileAt(ctx, args.Repo, args.OldRef, relPath)
		if err != nil {
			return SyncDone, fmt.Errorf("read %s:%s: %w", args.OldRef, relPath, err)
		}

		original := string(raw)
		pruned := PruneTests(original, keep, m.Path(relPath).Ext())

		synced := m.SyncedFile{
			Path:  m.Path(relPath),
			Kept:  len(pruned.Kept),
			Total: len(pruned.Kept) + len(pruned.Removed),
		}

		if args.DryRun {
			synced.Diff = unifiedDiff(relPath, args.OldRef, original, pruned.Content)
			w.DisplayDiff(ctx, synced.Path, synced.Diff)
			run.summary.Files = append(run.summary.Files, synced)

			continue
		}

		target := w.JoinPath(ctx, string(args.Repo), relPath)
		if err := w.WriteFile(ctx, target, []byte(pruned.Content), syncedFileMode); err != nil {
			return SyncDone, fmt.Errorf("write %s: %w", target, err)
		}

		if err := w.Stage(ctx, args.Repo, relPath); err != nil {
			return SyncDone, err
		}

		run.summary.Files = append(run.summary.Files, synced)
		w.DisplaySuccess(ctx, "  ✓ copied & pruned %s (%d tests kept)", relPath, len(keep))
	}

	return SyncDone, nil
}

func unifiedDiff(relPath, oldRef, before, after string) string {
	if before == after {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: oldRef + ":" + relPath,
		ToFile:   relPath + " (pruned)",
		Context:  3,
	})
	if err != nil {
		slog.Debug("diff failed", "path", relPath, "error", err)
		return ""
	}

	return diff
}
