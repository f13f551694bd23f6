package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

func braceOffsets(tokens []braceToken) []int {
	offsets := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		offsets = append(offsets, tok.Offset)
	}

	return offsets
}

func TestScanBraces_IgnoresNonCodeBraces(t *testing.T) {
	tests := []struct {
		name string
		lang dialect
		src  string
		want int
	}{
		{"string literal", dialectKotlin, `val s = "{ not code }"`, 0},
		{"escaped quote in string", dialectJava, `String s = "\"{";`, 0},
		{"line comment", dialectKotlin, "// { }\n", 0},
		{"block comment", dialectJava, "/* { } */", 0},
		{"char literal", dialectJava, `char c = '{'; char d = '}';`, 0},
		{"escaped char literal", dialectKotlin, `val c = '\''; val d = '{'`, 0},
		{"raw string", dialectKotlin, `val json = """{ "a": "}" }"""`, 0},
		{"java text block", dialectJava, "String j = \"\"\"\n{ \\\"\\\"\\\" }\n\"\"\";", 0},
		{"backtick name", dialectKotlin, "fun `opens {dialog}`() {", 1},
		{"template braces are not reported", dialectKotlin, `val s = "${items.map { it }}" + "$name"`, 0},
		{"code after template", dialectKotlin, `val s = "${a}" ; run {`, 1},
		{"unterminated string recovers at newline", dialectKotlin, "val s = \"oops\n{", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, scanBraces(tt.src, tt.lang), tt.want)
		})
	}
}

func TestScanBraces_NestedBlockComments(t *testing.T) {
	src := "/* a /* b */ { */ {"

	kotlin := scanBraces(src, dialectKotlin)
	require.Len(t, kotlin, 1)
	assert.Equal(t, strings.LastIndex(src, "{"), kotlin[0].Offset)

	// Java block comments do not nest, so the comment ends at the first "*/".
	assert.Len(t, scanBraces(src, dialectJava), 2)
}

func TestScanBraces_ReportsCodeBracesInOrder(t *testing.T) {
	src := "fun a() {\n  if (x) { y(\"}\") }\n}\n"

	tokens := scanBraces(src, dialectKotlin)
	require.Len(t, tokens, 4)
	assert.True(t, tokens[0].Open)
	assert.True(t, tokens[1].Open)
	assert.False(t, tokens[2].Open)
	assert.False(t, tokens[3].Open)
	assert.Equal(t, strings.LastIndex(src, "}"), tokens[3].Offset)
}

func TestClosingBraceEnd(t *testing.T) {
	src := "a { b { c } d } e"
	tokens := scanBraces(src, dialectJava)
	assert.Equal(t, []int{2, 6, 10, 14}, braceOffsets(tokens))

	assert.Equal(t, 15, closingBraceEnd(tokens, 2, len(src)))
	assert.Equal(t, 11, closingBraceEnd(tokens, 6, len(src)))

	unbalanced := "x { { }"
	assert.Equal(t, len(unbalanced), closingBraceEnd(scanBraces(unbalanced, dialectJava), 2, len(unbalanced)))
}

func TestLineBraceDeltas(t *testing.T) {
	text := "fun a() {\n  val s = \"{{\"\n  run { b() }\n}\n// }"
	lines := strings.Split(text, "\n")

	assert.Equal(t, []int{1, 0, 0, -1, 0}, lineBraceDeltas(text, len(lines), dialectKotlin))
	assert.Empty(t, lineBraceDeltas("", 0, dialectKotlin))
}

func TestLexSource_MaskedSpans(t *testing.T) {
	src := "x /* c */ y \"s\" z\n// d\nw"

	lex := lexSource(src, dialectJava)

	assert.Equal(t, []m.Span{{Start: 2, End: 9}, {Start: 12, End: 15}, {Start: 18, End: 22}}, lex.masked)

	for offset, want := range map[int]bool{0: true, 2: false, 8: false, 9: true, 13: false, 16: true, 21: false, 23: true} {
		assert.Equal(t, want, lex.inCode(offset), "offset %d", offset)
	}
}

func TestLexSource_TemplateStringsMerge(t *testing.T) {
	src := "val s = \"a ${ \"b\" } c\""

	lex := lexSource(src, dialectKotlin)

	assert.Equal(t, []m.Span{{Start: 8, End: len(src)}}, lex.masked)
}

func TestLexSource_UnterminatedRawStringMasksToEnd(t *testing.T) {
	src := "val s = \"\"\"\n{\n"

	lex := lexSource(src, dialectKotlin)

	assert.Empty(t, lex.braces)
	assert.Equal(t, []m.Span{{Start: 8, End: len(src)}}, lex.masked)
}

func TestLexResult_OpensBlock(t *testing.T) {
	src := "fun a() { /* { */ }"

	lex := lexSource(src, dialectKotlin)

	assert.True(t, lex.opensBlock(8))
	assert.False(t, lex.opensBlock(13))
	assert.False(t, lex.opensBlock(18))
}
