package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// ScanArgs contains the arguments for scanning a project for UI tests.
type ScanArgs struct {
	Root    m.Path
	Report  m.Path
	FQNs    m.Path
	Summary m.Path
	BaseURL string
	Exclude []string
	// Parallel bounds the number of files read concurrently; zero means unbounded.
	Parallel int
}

type scanResult struct {
	candidate bool
	report    m.FileReport
	warning   string
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.ScanSummary, error) {
	root := args.Root
	if root == "" {
		root = "."
	}

	rootAbs, err := w.AbsPath(ctx, root)
	if err != nil {
		return m.ScanSummary{}, fmt.Errorf("resolve root %s: %w", root, err)
	}

	paths, err := w.listTestSources(ctx, root, rootAbs, args.Exclude)
	if err != nil {
		return m.ScanSummary{}, err
	}

	results, err := w.classifySources(ctx, paths, rootAbs, args.Parallel)
	if err != nil {
		return m.ScanSummary{}, err
	}

	summary := m.ScanSummary{ReportPath: args.Report, FQNPath: args.FQNs}

	for _, result := range results {
		if result.warning != "" {
			w.DisplayWarning(ctx, "%s", result.warning)
		}

		if !result.candidate {
			continue
		}

		summary.Candidates++

		if len(result.report.Methods) == 0 {
			continue
		}

		summary.Files = append(summary.Files, result.report)
		summary.TotalMethods += len(result.report.Methods)
	}

	if summary.Candidates == 0 {
		w.DisplayInfo(ctx, "No UI test files found.")
		return summary, nil
	}

	if err := w.SaveHyperlinkReport(ctx, args.Report, summary.Files, args.BaseURL); err != nil {
		slog.Error("failed to save hyperlink report", "path", args.Report, "error", err)
		return summary, err
	}

	if err := w.SaveFQNs(ctx, args.FQNs, summary.FQNs()); err != nil {
		slog.Error("failed to save fqn list", "path", args.FQNs, "error", err)
		return summary, err
	}

	if args.Summary != "" {
		if err := w.SaveSummary(ctx, args.Summary, summary); err != nil {
			slog.Error("failed to save scan summary", "path", args.Summary, "error", err)
			return summary, err
		}
	}

	w.DisplayScanSummary(ctx, summary)

	return summary, nil
}

// listTestSources walks root, skipping hidden directories, and returns the
// sorted source files whose root-relative path lies under a src/...test
// directory.
func (w *workflow) listTestSources(ctx context.Context, root, rootAbs m.Path, exclude []string) ([]m.Path, error) {
	var paths []m.Path

	err := w.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if info.IsDir() {
			if path != string(root) && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		abs, err := w.AbsPath(ctx, m.Path(path))
		if err != nil {
			return err
		}

		rel := w.relativeTo(ctx, rootAbs, abs)
		if !IsTestSourcePath(m.Path("./" + strings.TrimPrefix(rel, "/"))) {
			return nil
		}

		if excluded(rel, exclude) {
			slog.Debug("excluded by pattern", "path", path)
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// classifySources reads and classifies every path. Results keep the input order.
func (w *workflow) classifySources(ctx context.Context, paths []m.Path, rootAbs m.Path, parallel int) ([]scanResult, error) {
	results := make([]scanResult, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, path := range paths {
		group.Go(func() error {
			content, err := w.ReadFile(groupCtx, path)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				results[i] = scanResult{warning: fmt.Sprintf("Warning: could not read %s: %v", path, err)}

				return nil
			}

			text := string(content)
			if !IsUITestSource(text) {
				return nil
			}

			abs, err := w.AbsPath(groupCtx, path)
			if err != nil {
				return err
			}

			file := m.SourceFile{Path: path, Content: text}
			results[i] = scanResult{
				candidate: true,
				report: m.FileReport{
					Path:    path,
					RelPath: w.relativeTo(groupCtx, rootAbs, abs),
					Package: ExtractPackage(text),
					Class:   path.Stem(),
					Methods: ExtractUITestMethods(file),
				},
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	return results, nil
}

// relativeTo returns target relative to rootAbs in slash form, or the absolute
// slash path when target lies outside the root.
func (w *workflow) relativeTo(ctx context.Context, rootAbs, target m.Path) string {
	rel, err := w.RelPath(ctx, rootAbs, target)
	if err != nil || rel.Slash() == ".." || strings.HasPrefix(rel.Slash(), "../") {
		return target.Slash()
	}

	return rel.Slash()
}

func excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, relPath)
		if err != nil {
			slog.Warn("invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}

		if ok {
			return true
		}
	}

	return false
}
