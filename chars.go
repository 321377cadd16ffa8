package jsx

import "unicode"

// Character classification for JSX names and whitespace. The ASCII cases are
// checked with plain comparisons; everything else falls through to the
// unicode tables used for JS identifiers.

// isIdentStart reports whether r may begin a JSX name.
func isIdentStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		return true
	case r == '_' || r == '$':
		return true
	case r < 0x80:
		return false
	}
	return unicode.In(r, unicode.L, unicode.Nl)
}

// isIdentPart reports whether r may continue a JSX name. Unlike ordinary JS
// identifiers, JSX names permit '-' (e.g. data-foo, aria-label).
func isIdentPart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
		return true
	case r == '_' || r == '$' || r == '-':
		return true
	case r < 0x80:
		return false
	case r == '\u200c' || r == '\u200d': // ZWNJ, ZWJ
		return true
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// isWhitespace reports whether r is JS whitespace, including line terminators.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	case '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return r > 0x80 && unicode.In(r, unicode.Zs)
}
