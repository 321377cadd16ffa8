package jsx

// Node is implemented by every JSX AST node. Nodes are built bottom-up in a
// single parse pass and never mutated afterward; ownership is strictly
// tree-shaped.
type Node interface {
	// Span reports the node's location in the source buffer.
	Span() Span
}

// Expression is an opaque node produced by the host expression parser for
// the contents of a {...} container or a spread attribute. The built-in host
// produces *HostExpr values; an EmptyExpression marks a container holding
// only a comment or nothing.
type Expression any

// Child is a node that may appear between an element's opening and closing
// tags: Text, *Element, *Fragment or *Container.
type Child interface {
	Node
	childNode()
}

// Value is a node that may appear as an attribute value: *StringValue,
// *Container, *Element or *Fragment.
type Value interface {
	Node
	valueNode()
}

// Attribute is one attribute of an opening element: *NamedAttribute or
// *SpreadAttribute. Order within an element is significant and preserved.
type Attribute interface {
	Node
	attrNode()
}

// Text is a run of literal text between tags. Value holds the text with
// entity references decoded; Raw is the verbatim source span.
type Text struct {
	Pos   Span
	Raw   string
	Value string
}

// Container is a {...} region holding one host-language expression, or an
// *EmptyExpression when the braces hold only a comment or nothing.
type Container struct {
	Pos  Span
	Expr Expression
}

// EmptyExpression marks a comment-only or empty expression container. It
// contributes no value but is preserved for position and comment fidelity.
type EmptyExpression struct {
	Pos Span
}

// StringValue is a quoted attribute value. JSX string literals have no
// backslash escapes; Value holds the text with entity references decoded.
type StringValue struct {
	Pos   Span
	Raw   string // includes the quotes
	Value string
}

// NamedAttribute is a name=value attribute. A nil Value means the boolean
// shorthand (<input disabled>).
type NamedAttribute struct {
	Pos   Span
	Name  Name
	Value Value
}

// SpreadAttribute is a {...expr} attribute.
type SpreadAttribute struct {
	Pos  Span
	Expr Expression
}

// OpeningElement is the <name attrs...> or <name attrs.../> form.
type OpeningElement struct {
	Pos         Span
	Name        Name
	Attrs       []Attribute
	SelfClosing bool
}

// ClosingElement is the </name> form.
type ClosingElement struct {
	Pos  Span
	Name Name
}

// Element is a parsed JSX element. Closing is nil if and only if
// Opening.SelfClosing is true.
type Element struct {
	Pos      Span
	Opening  OpeningElement
	Children []Child
	Closing  *ClosingElement
}

// Fragment is the nameless grouping form <>...</>.
type Fragment struct {
	Pos      Span
	Children []Child
}

func (n Text) Span() Span             { return n.Pos }
func (n *Container) Span() Span       { return n.Pos }
func (n *EmptyExpression) Span() Span { return n.Pos }
func (n *StringValue) Span() Span     { return n.Pos }
func (n *NamedAttribute) Span() Span  { return n.Pos }
func (n *SpreadAttribute) Span() Span { return n.Pos }
func (n *OpeningElement) Span() Span  { return n.Pos }
func (n *ClosingElement) Span() Span  { return n.Pos }
func (n *Element) Span() Span         { return n.Pos }
func (n *Fragment) Span() Span        { return n.Pos }

func (Text) childNode()       {}
func (*Container) childNode() {}
func (*Element) childNode()   {}
func (*Fragment) childNode()  {}

func (*StringValue) valueNode() {}
func (*Container) valueNode()   {}
func (*Element) valueNode()     {}
func (*Fragment) valueNode()    {}

func (*NamedAttribute) attrNode()  {}
func (*SpreadAttribute) attrNode() {}
