package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

const reportFileMode = 0o644

// ReportStore persists scan results and reads FQN lists back.
type ReportStore interface {
	SaveHyperlinkReport(ctx context.Context, path m.Path, files []m.FileReport, baseURL string) error
	SaveFQNs(ctx context.Context, path m.Path, fqns []m.FQN) error
	SaveSummary(ctx context.Context, path m.Path, summary m.ScanSummary) error
	LoadFQNs(ctx context.Context, path m.Path) ([]string, error)
}

type reportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore writing through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// HyperlinkURL joins baseURL and a root-relative slash path, or returns the
// relative path alone when baseURL is empty.
func HyperlinkURL(baseURL, relPath string) string {
	if baseURL == "" {
		return relPath
	}

	return strings.TrimRight(baseURL, "/") + "/" + relPath
}

// HyperlinkLine renders a spreadsheet HYPERLINK formula for a report header.
func HyperlinkLine(url, fileName string, count int) string {
	return fmt.Sprintf(`=HYPERLINK("%s", "%s (%d)")`, url, fileName, count)
}

func (s *reportStore) SaveHyperlinkReport(ctx context.Context, path m.Path, files []m.FileReport, baseURL string) error {
	var b strings.Builder

	for _, file := range files {
		if len(file.Methods) == 0 {
			continue
		}

		b.WriteString(HyperlinkLine(HyperlinkURL(baseURL, file.RelPath), filepath.Base(string(file.Path)), len(file.Methods)))
		b.WriteString("\n")

		for _, name := range file.MethodNames() {
			b.WriteString(name)
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	if err := s.fs.WriteFile(ctx, path, []byte(b.String()), reportFileMode); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *reportStore) SaveFQNs(ctx context.Context, path m.Path, fqns []m.FQN) error {
	var b strings.Builder

	for _, fqn := range fqns {
		b.WriteString(fqn.String())
		b.WriteString("\n")
	}

	if err := s.fs.WriteFile(ctx, path, []byte(b.String()), reportFileMode); err != nil {
		return fmt.Errorf("write fqn list %s: %w", path, err)
	}

	return nil
}

type summaryDocument struct {
	TotalMethods int               `yaml:"total_methods"`
	Files        []summaryFileItem `yaml:"files"`
}

type summaryFileItem struct {
	Path    string   `yaml:"path"`
	Package string   `yaml:"package,omitempty"`
	Class   string   `yaml:"class"`
	Methods []string `yaml:"methods"`
}

func (s *reportStore) SaveSummary(ctx context.Context, path m.Path, summary m.ScanSummary) error {
	doc := summaryDocument{TotalMethods: summary.TotalMethods}
	for _, file := range summary.Files {
		doc.Files = append(doc.Files, summaryFileItem{
			Path:    file.RelPath,
			Package: file.Package,
			Class:   file.Class,
			Methods: file.MethodNames(),
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, out, reportFileMode); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	return nil
}

func (s *reportStore) LoadFQNs(ctx context.Context, path m.Path) ([]string, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return m.ParseFQNList(string(content)), nil
}
