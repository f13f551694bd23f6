package domain

import (
	"sort"
	"strings"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// dialect selects the lexical rules used when locating braces.
type dialect int

const (
	dialectKotlin dialect = iota
	dialectJava
)

func dialectFor(path m.Path) dialect {
	if path.Ext() == m.ExtKotlin {
		return dialectKotlin
	}

	return dialectJava
}

func dialectForExt(ext m.SourceExtension) dialect {
	if ext == m.ExtKotlin {
		return dialectKotlin
	}

	return dialectJava
}

// braceToken is a brace found in code position.
type braceToken struct {
	Offset int
	Open   bool
}

type frameKind int

const (
	frameCode frameKind = iota
	frameTemplate
	frameString
	frameRawString
)

type lexFrame struct {
	kind  frameKind
	depth int
	start int
}

// lexResult holds the code-position braces of a source text and the byte
// ranges covered by comments and literals, merged and sorted by offset.
type lexResult struct {
	braces []braceToken
	masked []m.Span
}

// scanBraces returns the braces of src that sit in code position, skipping
// comments, string and char literals, raw strings and back-tick identifiers.
// Code inside Kotlin string templates is lexed but its braces are not reported.
func scanBraces(src string, lang dialect) []braceToken {
	return lexSource(src, lang).braces
}

//nolint:gocognit,cyclop,funlen // single-pass state machine
func lexSource(src string, lang dialect) lexResult {
	var (
		tokens []braceToken
		masked []m.Span
	)

	stack := []lexFrame{{kind: frameCode}}
	n := len(src)
	i := 0

	for i < n {
		top := &stack[len(stack)-1]
		c := src[i]

		switch top.kind {
		case frameCode, frameTemplate:
			switch {
			case c == '/' && i+1 < n && src[i+1] == '/':
				end := skipLineComment(src, i)
				masked = append(masked, m.Span{Start: i, End: end})
				i = end
			case c == '/' && i+1 < n && src[i+1] == '*':
				end := skipBlockComment(src, i, lang == dialectKotlin)
				masked = append(masked, m.Span{Start: i, End: end})
				i = end
			case strings.HasPrefix(src[i:], `"""`):
				stack = append(stack, lexFrame{kind: frameRawString, start: i})
				i += 3
			case c == '"':
				stack = append(stack, lexFrame{kind: frameString, start: i})
				i++
			case c == '\'':
				end := skipCharLiteral(src, i)
				masked = append(masked, m.Span{Start: i, End: end})
				i = end
			case c == '`':
				i = skipBacktickName(src, i)
			case c == '{':
				if top.kind == frameTemplate {
					top.depth++
				} else {
					tokens = append(tokens, braceToken{Offset: i, Open: true})
				}

				i++
			case c == '}':
				if top.kind == frameTemplate {
					top.depth--
					if top.depth == 0 {
						stack = stack[:len(stack)-1]
					}
				} else {
					tokens = append(tokens, braceToken{Offset: i, Open: false})
				}

				i++
			default:
				i++
			}

		case frameString:
			switch {
			case c == '\\':
				i += 2
			case c == '"':
				stack = stack[:len(stack)-1]
				i++
				masked = append(masked, m.Span{Start: top.start, End: i})
			case c == '\n':
				// unterminated literal, recover at end of line
				stack = stack[:len(stack)-1]
				masked = append(masked, m.Span{Start: top.start, End: i})
				i++
			case lang == dialectKotlin && c == '$' && i+1 < n && src[i+1] == '{':
				stack = append(stack, lexFrame{kind: frameTemplate, depth: 1})
				i += 2
			default:
				i++
			}

		case frameRawString:
			switch {
			case strings.HasPrefix(src[i:], `"""`):
				// Kotlin allows extra quotes before the closing delimiter.
				for i+3 < n && src[i+3] == '"' {
					i++
				}

				stack = stack[:len(stack)-1]
				i += 3
				masked = append(masked, m.Span{Start: top.start, End: i})
			case lang == dialectJava && c == '\\':
				i += 2
			case lang == dialectKotlin && c == '$' && i+1 < n && src[i+1] == '{':
				stack = append(stack, lexFrame{kind: frameTemplate, depth: 1})
				i += 2
			default:
				i++
			}
		}
	}

	for _, frame := range stack[1:] {
		if frame.kind == frameString || frame.kind == frameRawString {
			masked = append(masked, m.Span{Start: frame.start, End: n})
		}
	}

	return lexResult{braces: tokens, masked: mergeSpans(masked)}
}

// mergeSpans sorts spans by start and joins the overlapping ones. Literals
// nested in templates lie inside the enclosing literal's span.
func mergeSpans(spans []m.Span) []m.Span {
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].Start < spans[b].Start })

	merged := []m.Span{spans[0]}
	for _, span := range spans[1:] {
		last := &merged[len(merged)-1]
		if span.Start < last.End {
			last.End = max(last.End, span.End)
			continue
		}

		merged = append(merged, span)
	}

	return merged
}

// inCode reports whether offset lies outside every comment and literal.
func (r lexResult) inCode(offset int) bool {
	idx := sort.Search(len(r.masked), func(i int) bool {
		return r.masked[i].End > offset
	})

	return idx == len(r.masked) || r.masked[idx].Start > offset
}

// opensBlock reports whether offset holds a code-position opening brace.
func (r lexResult) opensBlock(offset int) bool {
	idx := sort.Search(len(r.braces), func(i int) bool {
		return r.braces[i].Offset >= offset
	})

	return idx < len(r.braces) && r.braces[idx].Offset == offset && r.braces[idx].Open
}

func skipLineComment(src string, i int) int {
	end := strings.IndexByte(src[i:], '\n')
	if end < 0 {
		return len(src)
	}

	return i + end
}

func skipBlockComment(src string, i int, nested bool) int {
	depth := 0
	n := len(src)

	for i < n {
		switch {
		case src[i] == '/' && i+1 < n && src[i+1] == '*':
			if depth == 0 || nested {
				depth++
			}

			i += 2
		case src[i] == '*' && i+1 < n && src[i+1] == '/':
			depth--
			i += 2

			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}

	return n
}

func skipCharLiteral(src string, i int) int {
	n := len(src)

	if i+1 < n && src[i+1] == '\\' {
		// escaped char such as '\'' or '{'
		for j := i + 3; j < n && j < i+10; j++ {
			if src[j] == '\'' {
				return j + 1
			}

			if src[j] == '\n' {
				break
			}
		}

		return i + 1
	}

	if i+2 < n && src[i+2] == '\'' {
		return i + 3
	}

	return i + 1
}

func skipBacktickName(src string, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '`':
			return j + 1
		case '\n':
			return i + 1
		}
	}

	return i + 1
}

// closingBraceEnd returns the offset just past the brace that closes the one
// at openOffset, counting from depth 1. It returns len(src) when the braces
// never balance.
func closingBraceEnd(tokens []braceToken, openOffset, srcLen int) int {
	start := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].Offset > openOffset
	})

	depth := 1

	for _, tok := range tokens[start:] {
		if tok.Open {
			depth++
			continue
		}

		depth--
		if depth == 0 {
			return tok.Offset + 1
		}
	}

	return srcLen
}

// lineBraceDeltas returns, per line of text, the count of code-position
// opening braces minus closing braces.
func lineBraceDeltas(text string, lineCount int, lang dialect) []int {
	deltas := make([]int, lineCount)
	if lineCount == 0 {
		return deltas
	}

	line := 0
	pos := 0

	for _, tok := range scanBraces(text, lang) {
		for pos < tok.Offset {
			next := strings.IndexByte(text[pos:tok.Offset], '\n')
			if next < 0 {
				pos = tok.Offset
				break
			}

			line++
			pos += next + 1
		}

		if line >= lineCount {
			break
		}

		if tok.Open {
			deltas[line]++
		} else {
			deltas[line]--
		}
	}

	return deltas
}
