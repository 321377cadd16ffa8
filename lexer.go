package jsx

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type tokenType int

const (
	tEOF          tokenType = iota
	tLess                   // <
	tLessSlash              // </
	tGreater                // >
	tSlashGreater           // />
	tEquals                 // =
	tOpenBrace              // {
	tCloseBrace             // }
	tDotDotDot              // ...
	tName                   // identifier-like fragment, may contain ':' '.' '-'
	tString                 // quoted attribute value
	tText                   // text run between tags
)

var tokenNames = map[tokenType]string{
	tEOF:          "end of input",
	tLess:         `"<"`,
	tLessSlash:    `"</"`,
	tGreater:      `">"`,
	tSlashGreater: `"/>"`,
	tEquals:       `"="`,
	tOpenBrace:    `"{"`,
	tCloseBrace:   `"}"`,
	tDotDotDot:    `"..."`,
	tName:         "name",
	tString:       "string literal",
	tText:         "text",
}

func (t tokenType) String() string { return tokenNames[t] }

type token struct {
	typ   tokenType
	raw   string // raw source slice, including quotes for tString
	value string // entity-decoded value for tString and tText
	start int    // byte offset of the first character
	end   int    // byte offset just past the last character
}

// lexer scans JSX-specific tokens directly off the input buffer. It has two
// scanning modes: tag mode (inside <...>, nextTagToken) and text mode
// (between tags, nextTextToken). Mode switching is owned entirely by the
// parser; the lexer holds no grammar knowledge.
type lexer struct {
	input string
	pos   int // current position in the input
	width int // width of last rune read from input
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

// backup steps back one rune. Can be called only once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// peek returns but does not consume the next rune.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) token(typ tokenType, start int) token {
	return token{typ: typ, raw: l.input[start:l.pos], start: start, end: l.pos}
}

// nextTagToken scans the next token in tag mode. Whitespace and JS comments
// between tokens are skipped.
func (l *lexer) nextTagToken() (token, error) {
	for {
		start := l.pos
		r := l.next()
		switch {
		case r == eof:
			return token{typ: tEOF, start: start, end: start}, nil
		case isWhitespace(r):
			continue
		case r == '<':
			if l.peek() == '/' {
				l.next()
				return l.token(tLessSlash, start), nil
			}
			return l.token(tLess, start), nil
		case r == '>':
			return l.token(tGreater, start), nil
		case r == '=':
			return l.token(tEquals, start), nil
		case r == '{':
			return l.token(tOpenBrace, start), nil
		case r == '}':
			return l.token(tCloseBrace, start), nil
		case r == '/':
			switch l.peek() {
			case '>':
				l.next()
				return l.token(tSlashGreater, start), nil
			case '/':
				l.skipLineComment()
				continue
			case '*':
				if !l.skipBlockComment() {
					return token{}, syntaxError(l.input, ErrUnexpectedEOF, start, l.pos-start,
						`expected "*/" to terminate comment`)
				}
				continue
			}
			return token{}, syntaxError(l.input, ErrUnexpectedCharacter, start, 1, "unexpected %q", r)
		case r == '.':
			if strings.HasPrefix(l.input[l.pos:], "..") {
				l.pos += 2
				return l.token(tDotDotDot, start), nil
			}
			return token{}, syntaxError(l.input, ErrUnexpectedCharacter, start, 1, "unexpected %q", r)
		case r == '\'' || r == '"':
			return l.scanString(r, start)
		case isIdentStart(r):
			return l.scanName(start), nil
		default:
			return token{}, syntaxError(l.input, ErrUnexpectedCharacter, start, l.pos-start, "unexpected %q", r)
		}
	}
}

// scanName absorbs a maximal name fragment. ':' and '.' join fragments into
// namespaced and member forms; splitting them apart is the name parser's job.
func (l *lexer) scanName(start int) token {
	for {
		r := l.next()
		if isIdentPart(r) || r == ':' || r == '.' {
			continue
		}
		if r != eof {
			l.backup()
		}
		return l.token(tName, start)
	}
}

// scanString scans a JSX string literal. Unlike JS strings there are no
// backslash escapes: the raw run of characters up to the matching quote is
// taken verbatim, with entity references decoded.
func (l *lexer) scanString(quote rune, start int) (token, error) {
	for {
		r := l.next()
		if r == eof {
			return token{}, syntaxError(l.input, ErrUnterminatedString, start, l.pos-start,
				"unterminated string literal")
		}
		if r == quote {
			tok := l.token(tString, start)
			tok.value = decodeEntities(tok.raw[1 : len(tok.raw)-1])
			return tok, nil
		}
	}
}

// nextTextToken scans the next token in text mode: either a maximal non-empty
// run of text up to (not including) the next '<' or '{', or the structural
// token that ended the run. Entity references are decoded; a '&' without a
// terminating ';' or with a malformed body stays literal text.
func (l *lexer) nextTextToken() (token, error) {
	start := l.pos
	for {
		r := l.next()
		switch r {
		case eof:
			if l.pos > start {
				tok := l.token(tText, start)
				tok.value = decodeEntities(tok.raw)
				return tok, nil
			}
			return token{typ: tEOF, start: start, end: start}, nil
		case '<', '{':
			l.backup()
			if l.pos > start {
				tok := l.token(tText, start)
				tok.value = decodeEntities(tok.raw)
				return tok, nil
			}
			l.next()
			if r == '{' {
				return l.token(tOpenBrace, start), nil
			}
			if l.peek() == '/' {
				l.next()
				return l.token(tLessSlash, start), nil
			}
			return l.token(tLess, start), nil
		}
	}
}

// scanExprText extracts the raw text of a {...} expression container. The
// opening brace has already been consumed; the scan balances nested braces,
// honoring JS string literals (with backslash escapes) and comments, and
// consumes the matching close brace. The returned span covers the inner text.
func (l *lexer) scanExprText(openPos int) (string, Span, error) {
	start := l.pos
	depth := 0
	for {
		r := l.next()
		switch r {
		case eof:
			return "", Span{}, syntaxError(l.input, ErrUnexpectedEOF, openPos, l.pos-openPos,
				`expected "}" to close expression container`)
		case '}':
			if depth == 0 {
				inner := l.input[start : l.pos-1]
				line, col := position(l.input, start)
				return inner, Span{Offset: start, Line: line, Column: col, Length: len(inner)}, nil
			}
			depth--
		case '{':
			depth++
		case '\'', '"', '`':
			if err := l.scanExprString(r, openPos); err != nil {
				return "", Span{}, err
			}
		case '/':
			switch l.peek() {
			case '/':
				l.skipLineComment()
			case '*':
				if !l.skipBlockComment() {
					return "", Span{}, syntaxError(l.input, ErrUnexpectedEOF, openPos, l.pos-openPos,
						`expected "*/" to terminate comment`)
				}
			}
		}
	}
}

// scanExprString skips a JS string or template literal inside an expression
// container, honoring backslash escapes.
func (l *lexer) scanExprString(quote rune, openPos int) error {
	for {
		r := l.next()
		switch r {
		case eof:
			return syntaxError(l.input, ErrUnexpectedEOF, openPos, l.pos-openPos,
				"unterminated string in expression container")
		case '\\':
			l.next()
		case quote:
			return nil
		}
	}
}

func (l *lexer) skipLineComment() {
	for {
		switch l.next() {
		case '\n', '\r', '\u2028', '\u2029':
			l.backup()
			return
		case eof:
			return
		}
	}
}

// skipBlockComment reports whether the comment was terminated before EOF.
// The caller has consumed '/' and peeked '*'.
func (l *lexer) skipBlockComment() bool {
	l.next() // consume '*'
	for {
		switch l.next() {
		case '*':
			if l.peek() == '/' {
				l.next()
				return true
			}
		case eof:
			return false
		}
	}
}
