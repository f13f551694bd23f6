package model

import "strings"

// Span is a half-open range inside a source file.
type Span struct {
	Start int
	End   int
}

// TestMethod is an annotated test method discovered in a source file.
type TestMethod struct {
	File        Path
	Name        string
	Annotations []string
	// Body holds the line range [Start, End) for scanner results and the
	// byte range for pruner matches.
	Body Span
	UI   bool
}

// FQN is a fully qualified test method name: package.Class.method.
type FQN struct {
	Package string
	Class   string
	Method  string
}

// ClassName returns package.Class, or Class when the package is empty.
func (f FQN) ClassName() string {
	if f.Package == "" {
		return f.Class
	}

	return f.Package + "." + f.Class
}

func (f FQN) String() string {
	return f.ClassName() + "." + f.Method
}

// ParseFQN splits a flat identifier on its last two dots. The boolean is false
// when the identifier has no class/method separator.
func ParseFQN(raw string) (FQN, bool) {
	raw = strings.TrimSpace(raw)

	classPart, method, ok := cutLast(raw, ".")
	if !ok || classPart == "" || method == "" {
		return FQN{}, false
	}

	pkg, class, hasPkg := cutLast(classPart, ".")
	if !hasPkg {
		return FQN{Class: classPart, Method: method}, true
	}

	return FQN{Package: pkg, Class: class, Method: method}, true
}

func cutLast(s, sep string) (string, string, bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}

	return s[:idx], s[idx+len(sep):], true
}

// ParseFQNList returns the identifiers of a flat FQN list, skipping blank
// lines and lines starting with '#'.
func ParseFQNList(content string) []string {
	var ids []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ids = append(ids, line)
	}

	return ids
}
