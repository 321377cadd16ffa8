package jsx

import (
	"strings"
	"unicode/utf8"
)

// Options configures optional JSX syntax. The zero value of each field keeps
// the reference behavior: namespaced names are recognized, namespaced
// objects in member chains are not.
type Options struct {
	// AllowNamespaces permits XML-style namespaced names such as <svg:rect/>.
	// When false, encountering a ':' in a name fails with ErrUnsupportedSyntax.
	AllowNamespaces bool

	// AllowNamespacedObjects permits a namespaced name at the head of a
	// member chain, such as <ns:Foo.Bar/>. When false, mixing the namespace
	// and member forms fails with ErrInvalidNamespacedName.
	AllowNamespacedObjects bool
}

// DefaultOptions returns the options matching the reference implementation's
// defaults.
func DefaultOptions() Options {
	return Options{AllowNamespaces: true}
}

// Parser parses JSX elements and fragments. A Parser is safe for concurrent
// use: all per-parse state lives on the call stack.
type Parser struct {
	opts Options
	host ExpressionParser
}

// NewParser returns a Parser using the given host expression parser for
// {...} containers. A nil host selects the built-in expr-lang host; a nil
// opts selects DefaultOptions.
func NewParser(host ExpressionParser, opts *Options) *Parser {
	p := &Parser{host: host}
	if p.host == nil {
		p.host = ExprLangHost{}
	}
	if opts != nil {
		p.opts = *opts
	} else {
		p.opts = DefaultOptions()
	}
	return p
}

// Parse parses src as a single JSX element or fragment, optionally
// surrounded by whitespace. It returns the root node: *Element or *Fragment.
func (p *Parser) Parse(src string) (Child, error) {
	node, end, err := p.ParseAt(src, 0)
	if err != nil {
		return nil, err
	}
	rest := src[end:]
	if i := strings.IndexFunc(rest, func(r rune) bool { return !isWhitespace(r) }); i >= 0 {
		return nil, syntaxError(src, ErrUnexpectedCharacter, end+i, 1,
			"unexpected text after element")
	}
	return node, nil
}

// ParseAt parses one JSX element or fragment starting at offset, where the
// source must contain a '<' after optional whitespace. It returns the parsed
// node and the offset just past its closing '>', so an embedding expression
// grammar can hand over at a '<' and resume afterwards.
func (p *Parser) ParseAt(src string, offset int) (Child, int, error) {
	ps := &parser{
		lex:  &lexer{input: src, pos: offset},
		opts: p.opts,
		host: p.host,
	}
	tok, err := ps.lex.nextTagToken()
	if err != nil {
		return nil, 0, err
	}
	if tok.typ != tLess {
		return nil, 0, ps.unexpected(tok, tLess)
	}
	node, err := ps.parseElement(tok.start)
	if err != nil {
		return nil, 0, err
	}
	return node, ps.lex.pos, nil
}

// Parse parses src as a single JSX element or fragment with the default
// options and the built-in expr-lang expression host.
func Parse(src string) (Child, error) {
	return NewParser(nil, nil).Parse(src)
}

// parser holds the per-parse state: the lexer over the input buffer, the
// syntax options, and the host expression parser for {...} containers.
type parser struct {
	lex  *lexer
	opts Options
	host ExpressionParser
}

func (p *parser) unexpected(tok token, want tokenType) error {
	if tok.typ == tEOF {
		return syntaxError(p.lex.input, ErrUnexpectedEOF, tok.start, 0,
			"expected %v, found end of input", want)
	}
	sentinel := ErrUnexpectedCharacter
	return syntaxError(p.lex.input, sentinel, tok.start, tok.end-tok.start,
		"expected %v, found %v", want, tok.typ)
}

// parseElement parses one element or fragment. The opening '<' at ltPos has
// been consumed and the lexer is in tag mode. On success the lexer is
// positioned just past the construct's final '>'.
func (p *parser) parseElement(ltPos int) (Child, error) {
	tok, err := p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}

	// <> opens a fragment: no name, no attributes.
	if tok.typ == tGreater {
		children, _, err := p.parseChildren(nil, ltPos)
		if err != nil {
			return nil, err
		}
		return &Fragment{
			Pos:      Span{Offset: ltPos, Length: p.lex.pos - ltPos},
			Children: children,
		}, nil
	}

	if tok.typ != tName {
		return nil, p.unexpected(tok, tName)
	}
	name, err := p.parseName(tok)
	if err != nil {
		return nil, err
	}

	attrs, endTok, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	opening := OpeningElement{
		Pos:         Span{Offset: ltPos, Length: endTok.end - ltPos},
		Name:        name,
		Attrs:       attrs,
		SelfClosing: endTok.typ == tSlashGreater,
	}

	if opening.SelfClosing {
		return &Element{
			Pos:     Span{Offset: ltPos, Length: p.lex.pos - ltPos},
			Opening: opening,
		}, nil
	}

	children, closing, err := p.parseChildren(name, ltPos)
	if err != nil {
		return nil, err
	}
	return &Element{
		Pos:      Span{Offset: ltPos, Length: p.lex.pos - ltPos},
		Opening:  opening,
		Children: children,
		Closing:  closing,
	}, nil
}

// parseAttributes parses zero or more attributes up to the '>' or '/>' that
// ends the opening tag, preserving source order. Repeated attribute names
// are not validated here; that is left to downstream consumers.
func (p *parser) parseAttributes() ([]Attribute, token, error) {
	var attrs []Attribute
	for {
		tok, err := p.lex.nextTagToken()
		if err != nil {
			return nil, token{}, err
		}
		switch tok.typ {
		case tGreater, tSlashGreater:
			return attrs, tok, nil
		case tOpenBrace:
			attr, err := p.parseSpreadAttribute(tok)
			if err != nil {
				return nil, token{}, err
			}
			attrs = append(attrs, attr)
		case tName:
			attr, err := p.parseNamedAttribute(tok)
			if err != nil {
				return nil, token{}, err
			}
			attrs = append(attrs, attr)
		default:
			return nil, token{}, p.unexpected(tok, tGreater)
		}
	}
}

// parseSpreadAttribute parses {...expr} with the '{' already consumed.
func (p *parser) parseSpreadAttribute(open token) (*SpreadAttribute, error) {
	tok, err := p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}
	if tok.typ != tDotDotDot {
		return nil, p.unexpected(tok, tDotDotDot)
	}
	// The scan starts right after the dots, so the span covers just the
	// spread expression.
	inner, span, err := p.lex.scanExprText(open.start)
	if err != nil {
		return nil, err
	}
	expr, err := p.host.ParseExpression(inner, span)
	if err != nil {
		return nil, p.hostError(err, span)
	}
	return &SpreadAttribute{
		Pos:  Span{Offset: open.start, Length: p.lex.pos - open.start},
		Expr: expr,
	}, nil
}

// parseNamedAttribute parses name, name=value, name={expr} or name=<el/>.
// An attribute name with no '=' is the boolean-true shorthand.
func (p *parser) parseNamedAttribute(nameTok token) (*NamedAttribute, error) {
	name, err := p.parseName(nameTok)
	if err != nil {
		return nil, err
	}

	tok, err := p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}
	if tok.typ != tEquals {
		// Boolean shorthand; put the token back for the attribute loop.
		p.lex.pos = tok.start
		return &NamedAttribute{
			Pos:  Span{Offset: nameTok.start, Length: nameTok.end - nameTok.start},
			Name: name,
		}, nil
	}

	tok, err = p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}
	var value Value
	switch tok.typ {
	case tString:
		value = &StringValue{
			Pos:   Span{Offset: tok.start, Length: tok.end - tok.start},
			Raw:   tok.raw,
			Value: tok.value,
		}
	case tOpenBrace:
		value, err = p.parseAttrContainer(tok)
		if err != nil {
			return nil, err
		}
	case tLess:
		child, err := p.parseElement(tok.start)
		if err != nil {
			return nil, err
		}
		value = child.(Value)
	default:
		return nil, p.unexpected(tok, tString)
	}
	return &NamedAttribute{
		Pos:   Span{Offset: nameTok.start, Length: p.lex.pos - nameTok.start},
		Name:  name,
		Value: value,
	}, nil
}

// parseAttrContainer parses a {expr} attribute value with the '{' already
// consumed. A bare {} is an error; braces holding only a comment are kept as
// an EmptyExpression for comment fidelity.
func (p *parser) parseAttrContainer(open token) (*Container, error) {
	inner, span, err := p.lex.scanExprText(open.start)
	if err != nil {
		return nil, err
	}
	pos := Span{Offset: open.start, Length: p.lex.pos - open.start}
	if isBlankExpr(inner) {
		if strings.TrimFunc(inner, isWhitespace) == "" {
			return nil, syntaxError(p.lex.input, ErrUnexpectedCharacter, open.start, pos.Length,
				"attributes must only be assigned a non-empty expression")
		}
		return &Container{Pos: pos, Expr: &EmptyExpression{Pos: span}}, nil
	}
	expr, err := p.host.ParseExpression(inner, span)
	if err != nil {
		return nil, p.hostError(err, span)
	}
	return &Container{Pos: pos, Expr: expr}, nil
}

// parseChildren parses the children of a non-self-closing element or
// fragment up to and including its closing tag. openName is nil for
// fragments. The lexer runs in text mode between tags.
func (p *parser) parseChildren(openName Name, ltPos int) ([]Child, *ClosingElement, error) {
	var children []Child
	for {
		tok, err := p.lex.nextTextToken()
		if err != nil {
			return nil, nil, err
		}
		switch tok.typ {
		case tText:
			children = append(children, Text{
				Pos:   Span{Offset: tok.start, Length: tok.end - tok.start},
				Raw:   tok.raw,
				Value: tok.value,
			})
		case tOpenBrace:
			child, err := p.parseChildContainer(tok)
			if err != nil {
				return nil, nil, err
			}
			children = append(children, child)
		case tLess:
			child, err := p.parseElement(tok.start)
			if err != nil {
				return nil, nil, err
			}
			children = append(children, child)
		case tLessSlash:
			closing, err := p.parseClosing(openName, ltPos, tok)
			if err != nil {
				return nil, nil, err
			}
			return children, closing, nil
		case tEOF:
			return nil, nil, syntaxError(p.lex.input, ErrUnexpectedEOF, tok.start, 0,
				"expected closing tag for %s", describeOpening(openName))
		}
	}
}

// parseChildContainer parses a {expr} child with the '{' already consumed.
// Empty and comment-only containers become EmptyExpression children.
func (p *parser) parseChildContainer(open token) (*Container, error) {
	inner, span, err := p.lex.scanExprText(open.start)
	if err != nil {
		return nil, err
	}
	pos := Span{Offset: open.start, Length: p.lex.pos - open.start}
	if isBlankExpr(inner) {
		return &Container{Pos: pos, Expr: &EmptyExpression{Pos: span}}, nil
	}
	expr, err := p.host.ParseExpression(inner, span)
	if err != nil {
		return nil, p.hostError(err, span)
	}
	return &Container{Pos: pos, Expr: expr}, nil
}

// parseClosing parses a closing tag with the '</' already consumed. The
// closing name must structurally match the opening name: both absent
// (fragment), or the same identifier, namespace pair or member chain.
func (p *parser) parseClosing(openName Name, ltPos int, lessSlash token) (*ClosingElement, error) {
	tok, err := p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}

	if tok.typ == tGreater {
		// </> closes a fragment.
		if openName != nil {
			return nil, syntaxError(p.lex.input, ErrTagNameMismatch, lessSlash.start, tok.end-lessSlash.start,
				"expected closing tag %q, found closing fragment", openName.String())
		}
		return nil, nil
	}

	if tok.typ != tName {
		return nil, p.unexpected(tok, tName)
	}
	closeName, err := p.parseName(tok)
	if err != nil {
		return nil, err
	}
	if openName == nil {
		return nil, syntaxError(p.lex.input, ErrTagNameMismatch, tok.start, tok.end-tok.start,
			"expected closing fragment, found closing tag %q", closeName.String())
	}
	if !nameEqual(openName, closeName) {
		return nil, syntaxError(p.lex.input, ErrTagNameMismatch, tok.start, tok.end-tok.start,
			"expected closing tag %q to match opening tag %q", closeName.String(), openName.String())
	}

	tok, err = p.lex.nextTagToken()
	if err != nil {
		return nil, err
	}
	if tok.typ != tGreater {
		return nil, p.unexpected(tok, tGreater)
	}
	return &ClosingElement{
		Pos:  Span{Offset: lessSlash.start, Length: tok.end - lessSlash.start},
		Name: closeName,
	}, nil
}

// hostError wraps an expression parse failure from the host with the
// container's location unless the host already produced a SyntaxError.
func (p *parser) hostError(err error, span Span) error {
	if se, ok := err.(*SyntaxError); ok {
		return se
	}
	return syntaxError(p.lex.input, ErrUnexpectedCharacter, span.Offset, span.Length,
		"invalid expression: %v", err)
}

// isBlankExpr reports whether container text holds no expression: only
// whitespace and JS comments.
func isBlankExpr(s string) bool {
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				return true
			}
			i += j + 1
		case strings.HasPrefix(s[i:], "/*"):
			j := strings.Index(s[i+2:], "*/")
			if j < 0 {
				return true
			}
			i += j + 4
		default:
			r, w := utf8.DecodeRuneInString(s[i:])
			if !isWhitespace(r) {
				return false
			}
			i += w
		}
	}
	return true
}

func describeOpening(name Name) string {
	if name == nil {
		return "fragment"
	}
	return `"` + name.String() + `"`
}
