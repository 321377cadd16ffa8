package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagTokens drains the lexer in tag mode.
func tagTokens(t *testing.T, src string) []token {
	t.Helper()
	l := &lexer{input: src}
	var toks []token
	for {
		tok, err := l.nextTagToken()
		require.NoError(t, err)
		if tok.typ == tEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerTagMode(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []tokenType
	}{
		{"open_tag", `<div>`, []tokenType{tLess, tName, tGreater}},
		{"self_closing", `<br/>`, []tokenType{tLess, tName, tSlashGreater}},
		{"closing_tag", `</div>`, []tokenType{tLessSlash, tName, tGreater}},
		{"fragment", `<></>`, []tokenType{tLess, tGreater, tLessSlash, tGreater}},
		{"attr_string", `a="x"`, []tokenType{tName, tEquals, tString}},
		{"attr_single_quote", `a='x'`, []tokenType{tName, tEquals, tString}},
		{"spread_prefix", `{...`, []tokenType{tOpenBrace, tDotDotDot}},
		{"braces", `{}`, []tokenType{tOpenBrace, tCloseBrace}},
		{"whitespace_skipped", " \t\r\n a ", []tokenType{tName}},
		{"line_comment_skipped", "a // rest\n b", []tokenType{tName, tName}},
		{"block_comment_skipped", "a /* x */ b", []tokenType{tName, tName}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := tagTokens(t, tt.s)
			got := make([]tokenType, len(toks))
			for i, tok := range toks {
				got[i] = tok.typ
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexerNames(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"simple", "div", "div"},
		{"hyphenated", "data-foo", "data-foo"},
		{"namespaced", "svg:rect", "svg:rect"},
		{"member", "Foo.Bar.Baz", "Foo.Bar.Baz"},
		{"dollar_underscore", "$_x", "$_x"},
		{"stops_at_equals", "class=", "class"},
		{"unicode", "日本語", "日本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &lexer{input: tt.s}
			tok, err := l.nextTagToken()
			require.NoError(t, err)
			require.Equal(t, tName, tok.typ)
			assert.Equal(t, tt.want, tok.raw)
		})
	}
}

func TestLexerStrings(t *testing.T) {
	l := &lexer{input: `"a &lt; b"`}
	tok, err := l.nextTagToken()
	require.NoError(t, err)
	require.Equal(t, tString, tok.typ)
	assert.Equal(t, `"a &lt; b"`, tok.raw)
	assert.Equal(t, "a < b", tok.value)

	// JSX strings have no backslash escapes: the backslash is literal and
	// does not protect the quote.
	l = &lexer{input: `"a\"`}
	tok, err = l.nextTagToken()
	require.NoError(t, err)
	assert.Equal(t, `a\`, tok.value)

	// Newlines are permitted inside JSX strings.
	l = &lexer{input: "\"a\nb\""}
	tok, err = l.nextTagToken()
	require.NoError(t, err)
	assert.Equal(t, "a\nb", tok.value)
}

func TestLexerTagModeErrors(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want error
	}{
		{"unterminated_string", `"abc`, ErrUnterminatedString},
		{"unexpected_char", `@`, ErrUnexpectedCharacter},
		{"lone_slash", `/ `, ErrUnexpectedCharacter},
		{"lone_dot", `.x`, ErrUnexpectedCharacter},
		{"unterminated_comment", `/* x`, ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &lexer{input: tt.s}
			_, err := l.nextTagToken()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.NotZero(t, se.Span.Line)
		})
	}
}

func TestLexerTextMode(t *testing.T) {
	l := &lexer{input: "Hello &amp; bye{x}<b></b>"}

	tok, err := l.nextTextToken()
	require.NoError(t, err)
	require.Equal(t, tText, tok.typ)
	assert.Equal(t, "Hello &amp; bye", tok.raw)
	assert.Equal(t, "Hello & bye", tok.value)

	tok, err = l.nextTextToken()
	require.NoError(t, err)
	assert.Equal(t, tOpenBrace, tok.typ)
	l.pos = tok.end + 2 // skip over "x}"

	tok, err = l.nextTextToken()
	require.NoError(t, err)
	assert.Equal(t, tLess, tok.typ)
	l.pos += 2 // skip over "b>"

	tok, err = l.nextTextToken()
	require.NoError(t, err)
	assert.Equal(t, tLessSlash, tok.typ)
}

func TestScanExprText(t *testing.T) {
	tests := []struct {
		name string
		s    string // input positioned just after the '{'
		want string
	}{
		{"simple", `x}`, "x"},
		{"nested_braces", `{a: 1}}`, "{a: 1}"},
		{"brace_in_string", `"}" + x}`, `"}" + x`},
		{"escaped_quote_in_string", `"\"}" + x}`, `"\"}" + x`},
		{"brace_in_template", "`}` + x}", "`}` + x"},
		{"brace_in_line_comment", "x // }\n}", "x // }\n"},
		{"brace_in_block_comment", `x /* } */}`, `x /* } */`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &lexer{input: tt.s}
			inner, span, err := l.scanExprText(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inner)
			assert.Equal(t, len(tt.want), span.Length)
		})
	}

	l := &lexer{input: `x + {y`}
	_, _, err := l.scanExprText(0)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
