package jsx

import (
	"fmt"

	"github.com/beevik/etree"
)

// Dump renders a parsed JSX tree as indented XML for inspection and golden
// comparisons in tests. Expression containers appear as {raw} character
// data, spread attributes as a "..." pseudo-attribute, fragments as a
// <fragment> wrapper.
func Dump(n Node) string {
	doc := etree.NewDocument()
	addTree(&doc.Element, n)
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return fmt.Sprintf("dump: %v", err)
	}
	return s
}

func addTree(dst *etree.Element, n Node) {
	switch t := n.(type) {
	case *Element:
		el := dst.CreateElement(t.Opening.Name.String())
		for _, attr := range t.Opening.Attrs {
			addAttr(el, attr)
		}
		for _, c := range t.Children {
			addTree(el, c)
		}
	case *Fragment:
		el := dst.CreateElement("fragment")
		for _, c := range t.Children {
			addTree(el, c)
		}
	case Text:
		dst.AddChild(etree.NewText(t.Value))
	case *Container:
		dst.AddChild(etree.NewText("{" + exprText(t.Expr) + "}"))
	}
}

func addAttr(el *etree.Element, attr Attribute) {
	switch t := attr.(type) {
	case *SpreadAttribute:
		el.CreateAttr("...", exprText(t.Expr))
	case *NamedAttribute:
		switch v := t.Value.(type) {
		case nil:
			el.CreateAttr(t.Name.String(), "")
		case *StringValue:
			el.CreateAttr(t.Name.String(), v.Value)
		case *Container:
			el.CreateAttr(t.Name.String(), "{"+exprText(v.Expr)+"}")
		default:
			// Nested element or fragment value: dump it inline.
			el.CreateAttr(t.Name.String(), Dump(v))
		}
	}
}

// exprText returns a printable form of an opaque host expression.
func exprText(x Expression) string {
	switch t := x.(type) {
	case *EmptyExpression:
		return ""
	case *HostExpr:
		return t.Raw
	default:
		return fmt.Sprintf("%v", t)
	}
}
