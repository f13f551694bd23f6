package domain

import (
	"regexp"
	"strings"
	"unicode"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

const testAnnotationMarker = "@Test"

// Heuristics for detecting UI calls inside a test method body.
var (
	composeCalls = regexp.MustCompile(
		`\b(?:compose(?:Test)?Rule` +
			`|on(?:Node|AllNodes)\s*\(` +
			`|has(?:Text|ContentDescription|TestTag)\s*\(` +
			`|perform(?:Click|Scroll|TextInput)\s*\(` +
			`|assert(?:Exists|IsDisplayed|HasText))`)
	espressoCalls = regexp.MustCompile(
		`\b(?:on(?:View|Data|WebView)\s*\(` +
			`|with(?:Id|Text|ContentDescription)\s*\(` +
			`|pressBack\s*\(` +
			`|ViewActions|ViewAssertions)`)
)

var (
	uiImportPattern = regexp.MustCompile(`androidx\.compose\.ui\.test|androidx\.test\.espresso`)
	testPathPattern = regexp.MustCompile(`/src/.*test`)
	packagePattern  = regexp.MustCompile(`(?m)^[ \t]*package[ \t]+([\w.]+)`)

	kotlinDeclBacktick = regexp.MustCompile("\\bfun\\s+`([^`]+)`")
	kotlinDeclIdent    = regexp.MustCompile(`\bfun\s+(\w+)`)
	javaDecl           = regexp.MustCompile(`\bvoid\s+(\w+)\s*\(`)

	kotlinDeclStart = regexp.MustCompile(`^\s*fun\s`)
	javaDeclStart   = regexp.MustCompile(`^\s*(?:(?:public|protected|private|static|final|synchronized)\s+)*void\s`)
)

// LooksLikeUITest reports whether a method body contains Compose or Espresso calls.
func LooksLikeUITest(body string) bool {
	return composeCalls.MatchString(body) || espressoCalls.MatchString(body)
}

// IsTestSourcePath reports whether path has a test source extension and lives
// under a src/...test directory.
func IsTestSourcePath(path m.Path) bool {
	if path.Ext() == "" {
		return false
	}

	return testPathPattern.MatchString(path.Slash())
}

// IsUITestSource reports whether content imports a UI-test toolkit and
// carries at least one test annotation.
func IsUITestSource(content string) bool {
	return uiImportPattern.MatchString(content) && strings.Contains(content, testAnnotationMarker)
}

// ExtractPackage returns the first package declaration of content, or an
// empty string when there is none.
func ExtractPackage(content string) string {
	match := packagePattern.FindStringSubmatch(content)
	if match == nil {
		return ""
	}

	return match[1]
}

// ExtractTestMethods returns every @Test-annotated method of file in
// discovery order, each flagged with whether its body looks like a UI test.
// Annotations without a following declaration are discarded.
func ExtractTestMethods(file m.SourceFile) []m.TestMethod {
	lang := dialectFor(file.Path)
	text := strings.ReplaceAll(file.Content, "\r\n", "\n")
	lines := m.SourceFile{Content: text}.Lines()
	deltas := lineBraceDeltas(text, len(lines), lang)

	var methods []m.TestMethod

	idx := 0
	for idx < len(lines) {
		if !isTestAnnotationLine(lines[idx]) {
			idx++
			continue
		}

		declIdx, name, ok := findDeclaration(lines, idx, lang)
		if !ok {
			idx++
			continue
		}

		end := collectBody(lines, deltas, declIdx, lang)
		body := strings.Join(lines[declIdx:end], "\n")

		annotationEnd := declIdx
		if annotationEnd == idx {
			annotationEnd = idx + 1
		}

		methods = append(methods, m.TestMethod{
			File:        file.Path,
			Name:        name,
			Annotations: append([]string(nil), lines[idx:annotationEnd]...),
			Body:        m.Span{Start: declIdx, End: end},
			UI:          LooksLikeUITest(body),
		})

		idx = end
	}

	return methods
}

// ExtractUITestMethods returns only the methods classified as UI tests.
func ExtractUITestMethods(file m.SourceFile) []m.TestMethod {
	var ui []m.TestMethod

	for _, method := range ExtractTestMethods(file) {
		if method.UI {
			ui = append(ui, method)
		}
	}

	return ui
}

func isTestAnnotationLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), testAnnotationMarker)
}

func isDeclarationStart(line string, lang dialect) bool {
	if lang == dialectJava {
		return javaDeclStart.MatchString(line)
	}

	return kotlinDeclStart.MatchString(line)
}

func matchDeclaration(line string, lang dialect) (string, bool) {
	if lang == dialectJava {
		if match := javaDecl.FindStringSubmatch(line); match != nil {
			return match[1], true
		}

		return "", false
	}

	if match := kotlinDeclBacktick.FindStringSubmatch(line); match != nil {
		return match[1], true
	}

	if match := kotlinDeclIdent.FindStringSubmatch(line); match != nil {
		return match[1], true
	}

	return "", false
}

// findDeclaration looks for the method declared by the annotation at idx,
// starting with the rest of the annotation line itself.
func findDeclaration(lines []string, idx int, lang dialect) (int, string, bool) {
	rest := strings.TrimLeftFunc(lines[idx], unicode.IsSpace)[len(testAnnotationMarker):]
	if name, ok := matchDeclaration(rest, lang); ok {
		return idx, name, true
	}

	for j := idx + 1; j < len(lines); j++ {
		if name, ok := matchDeclaration(lines[j], lang); ok {
			return j, name, true
		}

		if isTestAnnotationLine(lines[j]) {
			return 0, "", false
		}
	}

	return 0, "", false
}

// collectBody returns the exclusive end line of the method starting at start.
// It stops once the running brace depth is back at or below zero and the next
// line opens another annotated test or declaration, so nested blocks do not
// end the body early.
func collectBody(lines []string, deltas []int, start int, lang dialect) int {
	depth := 0
	i := start

	for i < len(lines) {
		depth += deltas[i]
		i++

		if depth <= 0 && i < len(lines) &&
			(isTestAnnotationLine(lines[i]) || isDeclarationStart(lines[i], lang)) {
			break
		}
	}

	return i
}
