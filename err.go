package jsx

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying parse failures. Every failure returned by the
// parser wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrUnterminatedString    = errors.New("unterminated string literal")
	ErrUnexpectedCharacter   = errors.New("unexpected character")
	ErrInvalidNamespacedName = errors.New("invalid namespaced name")
	ErrTagNameMismatch       = errors.New("mismatched closing tag")
	ErrUnsupportedSyntax     = errors.New("unsupported syntax")
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
)

// SyntaxError reports a parse failure with its location in the source buffer.
// A failed parse yields no tree: the first error aborts the whole parse.
type SyntaxError struct {
	Err  error  // one of the sentinel errors above
	Msg  string // human-readable description
	Span Span   // location of the offending source text
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// syntaxError builds a SyntaxError with line/column resolved from the offset.
func syntaxError(src string, sentinel error, offset, length int, format string, args ...any) *SyntaxError {
	line, col := position(src, offset)
	return &SyntaxError{
		Err: sentinel,
		Msg: fmt.Sprintf(format, args...),
		Span: Span{
			Offset: offset,
			Line:   line,
			Column: col,
			Length: length,
		},
	}
}
