package jsx

// Span represents a source location in a buffer.
type Span struct {
	Offset int // Byte offset in the buffer
	Line   int // 1-based line number (filled in on error paths)
	Column int // 1-based column number (in runes, not bytes)
	Length int // Length in bytes
}

// IsZero returns true if the span is uninitialized
func (s Span) IsZero() bool {
	return s.Offset == 0 && s.Line == 0 && s.Column == 0 && s.Length == 0
}

// End returns the end offset of the span
func (s Span) End() int {
	return s.Offset + s.Length
}

// position computes the 1-based line and column for a byte offset.
func position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
