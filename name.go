package jsx

import (
	"strings"
	"unicode/utf8"
)

// Name is a JSX tag or attribute name: a plain identifier, a namespaced pair
// such as svg:rect, or a member chain such as Foo.Bar.Baz. Namespaced and
// member forms are mutually exclusive on a single node; a member chain may
// carry a namespaced object at its head only when Options.
// AllowNamespacedObjects is set.
type Name interface {
	Node
	// String returns the canonical source form of the name.
	String() string
	nameNode()
}

// Ident is a single JSX identifier. Hyphens are permitted (data-foo).
type Ident struct {
	Pos  Span
	Name string
}

// NamespacedName is a namespaced name pair (ns:name). Namespaced names are
// terminal: no member segments may follow the local part.
type NamespacedName struct {
	Pos   Span
	Space *Ident // namespace prefix
	Name  *Ident // local name
}

// MemberExpr is a member-expression-shaped name (a.b.c), composed
// left-to-right: the object of the outermost node is the longest prefix.
type MemberExpr struct {
	Pos      Span
	Object   Name // *Ident, *MemberExpr, or *NamespacedName
	Property *Ident
}

func (n *Ident) Span() Span          { return n.Pos }
func (n *NamespacedName) Span() Span { return n.Pos }
func (n *MemberExpr) Span() Span     { return n.Pos }

func (n *Ident) String() string          { return n.Name }
func (n *NamespacedName) String() string { return n.Space.Name + ":" + n.Name.Name }
func (n *MemberExpr) String() string     { return n.Object.String() + "." + n.Property.Name }

func (n *Ident) nameNode()          {}
func (n *NamespacedName) nameNode() {}
func (n *MemberExpr) nameNode()     {}

// parseName structures a maximal name fragment scanned by the lexer into its
// qualified form, validating the grammar
//
//	Name := Identifier (":" Identifier)? ("." Identifier)*
//
// subject to the parser options: namespaces may be disabled entirely, and a
// namespaced object may head a member chain only when enabled.
func (p *parser) parseName(tok token) (Name, error) {
	raw := tok.raw
	src := p.lex.input

	colon := strings.IndexByte(raw, ':')
	dot := strings.IndexByte(raw, '.')

	if colon >= 0 {
		if !p.opts.AllowNamespaces {
			return nil, syntaxError(src, ErrUnsupportedSyntax, tok.start+colon, 1,
				"namespaced names are not enabled")
		}
		if strings.IndexByte(raw[colon+1:], ':') >= 0 {
			return nil, syntaxError(src, ErrInvalidNamespacedName, tok.start, len(raw),
				"name %q has more than one namespace separator", raw)
		}
		if dot >= 0 {
			if dot < colon {
				return nil, syntaxError(src, ErrInvalidNamespacedName, tok.start, len(raw),
					"namespace separator cannot follow a member access in %q", raw)
			}
			if !p.opts.AllowNamespacedObjects {
				return nil, syntaxError(src, ErrInvalidNamespacedName, tok.start, len(raw),
					"namespaced name %q cannot have member accesses", raw)
			}
		}
	}

	// Split into dot segments; the first segment may carry the namespace pair.
	var name Name
	offset := tok.start
	for i, seg := range strings.Split(raw, ".") {
		if i == 0 {
			head, err := p.parseNameHead(seg, offset)
			if err != nil {
				return nil, err
			}
			name = head
		} else {
			prop, err := p.parseIdent(seg, offset)
			if err != nil {
				return nil, err
			}
			name = &MemberExpr{
				Pos:      Span{Offset: tok.start, Length: prop.Pos.End() - tok.start},
				Object:   name,
				Property: prop,
			}
		}
		offset += len(seg) + 1
	}
	return name, nil
}

// parseNameHead parses the first dot segment: a plain identifier or a
// namespaced pair.
func (p *parser) parseNameHead(seg string, offset int) (Name, error) {
	colon := strings.IndexByte(seg, ':')
	if colon < 0 {
		return p.parseIdent(seg, offset)
	}
	space, err := p.parseIdent(seg[:colon], offset)
	if err != nil {
		return nil, err
	}
	local, err := p.parseIdent(seg[colon+1:], offset+colon+1)
	if err != nil {
		return nil, err
	}
	return &NamespacedName{
		Pos:   Span{Offset: offset, Length: len(seg)},
		Space: space,
		Name:  local,
	}, nil
}

func (p *parser) parseIdent(seg string, offset int) (*Ident, error) {
	first, _ := utf8.DecodeRuneInString(seg)
	if seg == "" || !isIdentStart(first) {
		return nil, syntaxError(p.lex.input, ErrUnexpectedCharacter, offset, max(len(seg), 1),
			"expected identifier")
	}
	return &Ident{Pos: Span{Offset: offset, Length: len(seg)}, Name: seg}, nil
}

// nameEqual reports whether two names are structurally identical: the same
// simple identifier, the same namespace pair, or the same member chain.
func nameEqual(a, b Name) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}
