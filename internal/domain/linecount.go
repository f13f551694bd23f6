package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"droidtest.dev/pkg/droidtest/internal/adapter"
	m "droidtest.dev/pkg/droidtest/internal/model"
)

// LineCountArgs contains the arguments for counting modified lines between two refs.
type LineCountArgs struct {
	Dir              m.Path
	Base             string
	Compare          string
	Path             string
	Extensions       []string
	IgnoreWhitespace bool
}

func (w *workflow) CountLines(ctx context.Context, args LineCountArgs) (m.DiffTally, error) {
	var paths []string
	if args.Path != "" {
		paths = []string{args.Path}
	}

	lines, err := w.DiffNumStat(ctx, adapter.NumStatArgs{
		Dir:              args.Dir,
		Base:             args.Base,
		Compare:          args.Compare,
		IgnoreWhitespace: args.IgnoreWhitespace,
		Paths:            paths,
	})
	if err != nil {
		var cmdErr *m.CommandError
		if errors.As(err, &cmdErr) {
			w.DisplayCommandFailure(ctx, "Git command failed", cmdErr)
			return m.DiffTally{}, err
		}

		return m.DiffTally{}, fmt.Errorf("diff numstat: %w", err)
	}

	tally := TallyNumStat(lines, args.Extensions)
	w.DisplayLineTally(ctx, args.Base, args.Compare, args.Path, tally)

	return tally, nil
}

// TallyNumStat sums the added and deleted counts of git --numstat records.
// Malformed and binary records are skipped. When extensions is non-empty only
// paths ending with one of them are counted.
func TallyNumStat(lines []string, extensions []string) m.DiffTally {
	var tally m.DiffTally

	for _, line := range lines {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}

		addedField, deletedField, path := fields[0], fields[1], strings.TrimSpace(fields[2])

		if addedField == "-" || deletedField == "-" {
			continue
		}

		if !hasAnySuffix(path, extensions) {
			continue
		}

		added, err := strconv.Atoi(addedField)
		if err != nil {
			slog.Debug("skipping numstat record", "line", line, "error", err)
			continue
		}

		deleted, err := strconv.Atoi(deletedField)
		if err != nil {
			slog.Debug("skipping numstat record", "line", line, "error", err)
			continue
		}

		tally.Added += added
		tally.Deleted += deleted
		tally.Files++
	}

	return tally
}

func hasAnySuffix(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}
