// Package jsx parses JSX markup: HTML-like element syntax embedded in
// expression position of a host language.
//
// The package implements the syntax extension only. It scans JSX-specific
// lexical forms (tag delimiters, name fragments, entity-decoded text and
// string runs), drives a recursive grammar for elements, fragments,
// attributes and children, and produces an immutable AST with exact source
// spans. Expressions inside {...} containers are delegated to a host
// expression parser through the ExpressionParser interface; the built-in
// host is backed by expr-lang.
//
// A minimal round trip:
//
//	node, err := jsx.Parse(`<a href="https://example.com">Visit {site.name}</a>`)
//	if err != nil { ... }
//	el := node.(*jsx.Element)
//
// Parsing is a single synchronous pass over an in-memory buffer with no
// partial-AST recovery: the first syntax error aborts the parse and is
// returned as a *SyntaxError carrying the offending source span.
package jsx
