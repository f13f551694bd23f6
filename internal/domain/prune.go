package domain

import (
	"regexp"
	"strings"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// Declarations preceded by a block of one or more annotation lines.
// Group 1 is the annotation block, group 2 the method name.
var (
	kotlinAnnotatedFun = regexp.MustCompile(
		"(?m)((?:^[ \\t]*@\\w+[^\\n]*\\n)+)" +
			"[ \\t]*(?:(?:override|public|internal|private|protected|open|suspend)[ \\t]+)*" +
			"fun[ \\t]+(`[^`]+`|\\w+)[ \\t]*\\([^)]*\\)[ \\t]*" +
			"(?::[ \\t]*[\\w.<>?, ]+?[ \\t]*)?" +
			"(?:=[ \\t]*[\\w.]+(?:<[^>\\n]*>)?(?:\\([^)\\n]*\\))?[ \\t]*)?" +
			"\\{")
	javaAnnotatedVoid = regexp.MustCompile(
		`(?m)((?:^[ \t]*@\w+[^\n]*\n)+)` +
			`[ \t]*(?:(?:public|protected|private|static|final|synchronized)[ \t]+)*` +
			`void[ \t]+(\w+)[ \t]*\([^)]*\)[ \t]*` +
			`(?:throws[ \t]+[\w.]+(?:[ \t]*,[ \t]*[\w.]+)*[ \t]*)?` +
			`\{`)

	testAnnotation = regexp.MustCompile(`@(?:[\w.]+\.)?(?:Test|ParameterizedTest)\b`)
)

// PruneResult is the outcome of PruneTests.
type PruneResult struct {
	Content string
	Kept    []string
	Removed []string
}

func declarationPattern(ext m.SourceExtension) *regexp.Regexp {
	if ext == m.ExtKotlin {
		return kotlinAnnotatedFun
	}

	return javaAnnotatedVoid
}

// PruneTests removes every @Test or @ParameterizedTest method of src whose
// name is not in keep. A removed method spans from the first line of its
// annotation block through its closing brace; every other byte is preserved.
// Methods without a test annotation (setup, teardown, helpers) are untouched,
// as are declarations sitting inside comments or string literals.
func PruneTests(src string, keep m.MethodSet, ext m.SourceExtension) PruneResult {
	var (
		out    strings.Builder
		result PruneResult
		lex    *lexResult
		last   int
	)

	for _, loc := range declarationPattern(ext).FindAllStringSubmatchIndex(src, -1) {
		start, end := loc[0], loc[1]
		if start < last {
			continue
		}

		block := src[loc[2]:loc[3]]
		if !testAnnotation.MatchString(block) {
			continue
		}

		if lex == nil {
			scanned := lexSource(src, dialectForExt(ext))
			lex = &scanned
		}

		if !lex.inCode(annotationStart(src, loc[2])) || !lex.opensBlock(end-1) {
			continue
		}

		name := strings.TrimSpace(strings.Trim(src[loc[4]:loc[5]], "`"))
		if keep.Has(name) {
			result.Kept = append(result.Kept, name)
			continue
		}

		out.WriteString(src[last:start])
		last = closingBraceEnd(lex.braces, end-1, len(src))
		result.Removed = append(result.Removed, name)
	}

	out.WriteString(src[last:])
	result.Content = out.String()

	return result
}

// annotationStart returns the offset of the first '@' of the annotation block
// starting at blockStart.
func annotationStart(src string, blockStart int) int {
	if idx := strings.IndexByte(src[blockStart:], '@'); idx >= 0 {
		return blockStart + idx
	}

	return blockStart
}
