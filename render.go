package jsx

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/expr-lang/expr/vm"
	"golang.org/x/net/html"
)

// Render evaluates a parsed JSX tree against env and writes it as HTML.
// Expression containers and expression-valued attributes must have been
// produced by the built-in expr-lang host; spread attributes must evaluate
// to a map. Empty containers render nothing.
func Render(w io.Writer, n Node, env map[string]any) error {
	r := &renderer{env: env}
	root := &html.Node{Type: html.DocumentNode}
	if err := r.appendNode(root, n); err != nil {
		return err
	}
	return html.Render(w, root)
}

// RenderString is Render into a string.
func RenderString(n Node, env map[string]any) (string, error) {
	var b strings.Builder
	if err := Render(&b, n, env); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	vm  vm.VM
	env map[string]any
}

func (r *renderer) appendNode(dst *html.Node, n Node) error {
	switch t := n.(type) {
	case *Element:
		el := &html.Node{Type: html.ElementNode, Data: t.Opening.Name.String()}
		for _, attr := range t.Opening.Attrs {
			if err := r.appendAttr(el, attr); err != nil {
				return err
			}
		}
		dst.AppendChild(el)
		for _, c := range t.Children {
			if err := r.appendNode(el, c); err != nil {
				return err
			}
		}
	case *Fragment:
		for _, c := range t.Children {
			if err := r.appendNode(dst, c); err != nil {
				return err
			}
		}
	case Text:
		dst.AppendChild(&html.Node{Type: html.TextNode, Data: t.Value})
	case *Container:
		v, ok, err := r.eval(t.Expr)
		if err != nil {
			return err
		}
		if ok && v != nil {
			dst.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
		}
	default:
		return fmt.Errorf("render: unsupported node %T", n)
	}
	return nil
}

func (r *renderer) appendAttr(el *html.Node, attr Attribute) error {
	switch t := attr.(type) {
	case *SpreadAttribute:
		v, _, err := r.eval(t.Expr)
		if err != nil {
			return err
		}
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("render: spread attribute must evaluate to a map, got %T", v)
		}
		for _, k := range sortedKeys(m) {
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: fmt.Sprint(m[k])})
		}
	case *NamedAttribute:
		val, err := r.attrValue(t.Value)
		if err != nil {
			return err
		}
		el.Attr = append(el.Attr, html.Attribute{Key: t.Name.String(), Val: val})
	}
	return nil
}

func (r *renderer) attrValue(v Value) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil // boolean shorthand
	case *StringValue:
		return t.Value, nil
	case *Container:
		ev, ok, err := r.eval(t.Expr)
		if err != nil || !ok {
			return "", err
		}
		return fmt.Sprint(ev), nil
	case *Element, *Fragment:
		return RenderString(t, r.env)
	}
	return "", fmt.Errorf("render: unsupported attribute value %T", v)
}

// eval evaluates an opaque host expression. The second result is false for
// empty (comment-only) expressions, which render nothing.
func (r *renderer) eval(x Expression) (any, bool, error) {
	switch t := x.(type) {
	case *EmptyExpression:
		return nil, false, nil
	case *HostExpr:
		v, err := t.Value(&r.vm, r.env)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	return nil, false, fmt.Errorf("render: expression %T was not produced by the expr-lang host", x)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic output for tests and diffing.
	sort.Strings(keys)
	return keys
}
