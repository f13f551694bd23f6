package model

// FileReport holds the UI-test methods found in a single source file.
type FileReport struct {
	Path    Path
	RelPath string
	Package string
	Class   string
	Methods []TestMethod
}

// MethodNames returns the method names in discovery order.
func (r FileReport) MethodNames() []string {
	names := make([]string, 0, len(r.Methods))
	for _, method := range r.Methods {
		names = append(names, method.Name)
	}

	return names
}

// FQNs returns the fully qualified names of the file's methods.
func (r FileReport) FQNs() []FQN {
	fqns := make([]FQN, 0, len(r.Methods))
	for _, method := range r.Methods {
		fqns = append(fqns, FQN{Package: r.Package, Class: r.Class, Method: method.Name})
	}

	return fqns
}

// ScanSummary is the outcome of a UI-test scan.
type ScanSummary struct {
	// Files lists only files with at least one UI-test method, in path order.
	Files        []FileReport
	TotalMethods int
	// Candidates is the number of files that passed the file selection predicate.
	Candidates int
	ReportPath Path
	FQNPath    Path
}

// FQNs returns every UI-test method FQN in report order.
func (s ScanSummary) FQNs() []FQN {
	var fqns []FQN
	for _, file := range s.Files {
		fqns = append(fqns, file.FQNs()...)
	}

	return fqns
}

// SyncedFile describes one file rewritten by the syncer.
type SyncedFile struct {
	Path  Path
	Kept  int
	Total int
	Diff  string
}

// SyncSummary is the outcome of a sync run.
type SyncSummary struct {
	OldRef     string
	NewRef     string
	Files      []SyncedFile
	Unresolved []string
	DryRun     bool
}
