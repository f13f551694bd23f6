package adapter

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

func sampleReports() []m.FileReport {
	return []m.FileReport{
		{
			Path:    "/proj/app/src/test/java/pkg/sub/FooTest.kt",
			RelPath: "app/src/test/java/pkg/sub/FooTest.kt",
			Package: "pkg.sub",
			Class:   "FooTest",
			Methods: []m.TestMethod{{Name: "opensScreen"}, {Name: "closes screen"}},
		},
		{
			Path:    "/proj/app/src/test/java/BarTest.java",
			RelPath: "app/src/test/java/BarTest.java",
			Class:   "BarTest",
			Methods: []m.TestMethod{{Name: "clicks"}},
		},
		{
			Path:    "/proj/app/src/test/java/EmptyTest.kt",
			RelPath: "app/src/test/java/EmptyTest.kt",
			Class:   "EmptyTest",
		},
	}
}

func TestHyperlinkURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		rel     string
		want    string
	}{
		{"no base url", "", "app/Foo.kt", "app/Foo.kt"},
		{"base url", "https://github.com/org/repo/blob/main", "app/Foo.kt", "https://github.com/org/repo/blob/main/app/Foo.kt"},
		{"trailing slashes trimmed", "https://h/x//", "app/Foo.kt", "https://h/x/app/Foo.kt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HyperlinkURL(tt.baseURL, tt.rel))
		})
	}
}

func TestReportStore_SaveHyperlinkReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStore(NewSourceFSAdapter(fs))

	err := store.SaveHyperlinkReport(context.Background(), "/out/ui_test_report.txt", sampleReports(), "https://h/x/")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/out/ui_test_report.txt")
	require.NoError(t, err)

	want := `=HYPERLINK("https://h/x/app/src/test/java/pkg/sub/FooTest.kt", "FooTest.kt (2)")
opensScreen
closes screen

=HYPERLINK("https://h/x/app/src/test/java/BarTest.java", "BarTest.java (1)")
clicks

`
	assert.Equal(t, want, string(content))
}

func TestReportStore_SaveAndLoadFQNs(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStore(NewSourceFSAdapter(fs))
	ctx := context.Background()

	var fqns []m.FQN
	for _, report := range sampleReports() {
		fqns = append(fqns, report.FQNs()...)
	}

	require.NoError(t, store.SaveFQNs(ctx, "/out/ui_test_fqns.txt", fqns))

	content, err := afero.ReadFile(fs, "/out/ui_test_fqns.txt")
	require.NoError(t, err)
	assert.Equal(t, "pkg.sub.FooTest.opensScreen\npkg.sub.FooTest.closes screen\nBarTest.clicks\n", string(content))

	ids, err := store.LoadFQNs(ctx, "/out/ui_test_fqns.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg.sub.FooTest.opensScreen", "pkg.sub.FooTest.closes screen", "BarTest.clicks"}, ids)
}

func TestReportStore_LoadFQNs_SkipsCommentsAndBlanks(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/list.txt": "# header\n\n  a.B.c  \n   # indented comment\nd.E.f\n",
	})
	store := NewReportStore(NewSourceFSAdapter(fs))

	ids, err := store.LoadFQNs(context.Background(), "/list.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.B.c", "d.E.f"}, ids)

	_, err = store.LoadFQNs(context.Background(), "/missing.txt")
	assert.Error(t, err)
}

func TestReportStore_SaveSummary(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStore(NewSourceFSAdapter(fs))

	reports := sampleReports()[:2]
	summary := m.ScanSummary{Files: reports, TotalMethods: 3}

	require.NoError(t, store.SaveSummary(context.Background(), "/out/summary.yaml", summary))

	content, err := afero.ReadFile(fs, "/out/summary.yaml")
	require.NoError(t, err)

	var doc summaryDocument
	require.NoError(t, yaml.Unmarshal(content, &doc))

	assert.Equal(t, 3, doc.TotalMethods)
	require.Len(t, doc.Files, 2)
	assert.Equal(t, "pkg.sub", doc.Files[0].Package)
	assert.Equal(t, "FooTest", doc.Files[0].Class)
	assert.Equal(t, []string{"opensScreen", "closes screen"}, doc.Files[0].Methods)
	assert.Empty(t, doc.Files[1].Package)
	assert.NotContains(t, string(content), "package: \"\"")
}
