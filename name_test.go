package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNameString(t *testing.T, s string, opts Options) (Name, error) {
	t.Helper()
	p := &parser{lex: &lexer{input: s}, opts: opts}
	tok, err := p.lex.nextTagToken()
	require.NoError(t, err)
	require.Equal(t, tName, tok.typ)
	return p.parseName(tok)
}

func TestParseName(t *testing.T) {
	opts := DefaultOptions()

	t.Run("simple", func(t *testing.T) {
		n, err := parseNameString(t, "div", opts)
		require.NoError(t, err)
		id, ok := n.(*Ident)
		require.True(t, ok)
		assert.Equal(t, "div", id.Name)
		assert.Equal(t, Span{Offset: 0, Length: 3}, id.Pos)
	})

	t.Run("hyphenated", func(t *testing.T) {
		n, err := parseNameString(t, "data-foo", opts)
		require.NoError(t, err)
		assert.Equal(t, "data-foo", n.(*Ident).Name)
	})

	t.Run("namespaced", func(t *testing.T) {
		n, err := parseNameString(t, "svg:rect", opts)
		require.NoError(t, err)
		ns, ok := n.(*NamespacedName)
		require.True(t, ok)
		assert.Equal(t, "svg", ns.Space.Name)
		assert.Equal(t, "rect", ns.Name.Name)
		assert.Equal(t, "svg:rect", ns.String())
	})

	t.Run("member_chain", func(t *testing.T) {
		n, err := parseNameString(t, "Foo.Bar.Baz", opts)
		require.NoError(t, err)
		outer, ok := n.(*MemberExpr)
		require.True(t, ok)
		assert.Equal(t, "Baz", outer.Property.Name)
		inner, ok := outer.Object.(*MemberExpr)
		require.True(t, ok)
		assert.Equal(t, "Bar", inner.Property.Name)
		assert.Equal(t, "Foo", inner.Object.(*Ident).Name)
		assert.Equal(t, "Foo.Bar.Baz", n.String())
	})

	t.Run("namespace_with_member_rejected", func(t *testing.T) {
		_, err := parseNameString(t, "ns:a.b", opts)
		assert.ErrorIs(t, err, ErrInvalidNamespacedName)
	})

	t.Run("member_then_namespace_rejected", func(t *testing.T) {
		_, err := parseNameString(t, "a.b:c", opts)
		assert.ErrorIs(t, err, ErrInvalidNamespacedName)
	})

	t.Run("double_namespace_rejected", func(t *testing.T) {
		_, err := parseNameString(t, "a:b:c", opts)
		assert.ErrorIs(t, err, ErrInvalidNamespacedName)
	})

	t.Run("empty_local_name_rejected", func(t *testing.T) {
		_, err := parseNameString(t, "ns:", opts)
		assert.ErrorIs(t, err, ErrUnexpectedCharacter)
	})

	t.Run("trailing_dot_rejected", func(t *testing.T) {
		_, err := parseNameString(t, "a.", opts)
		assert.ErrorIs(t, err, ErrUnexpectedCharacter)
	})
}

func TestParseNameOptions(t *testing.T) {
	t.Run("namespaces_disabled", func(t *testing.T) {
		_, err := parseNameString(t, "svg:rect", Options{AllowNamespaces: false})
		assert.ErrorIs(t, err, ErrUnsupportedSyntax)
	})

	t.Run("namespaced_object_enabled", func(t *testing.T) {
		n, err := parseNameString(t, "ns:Foo.Bar",
			Options{AllowNamespaces: true, AllowNamespacedObjects: true})
		require.NoError(t, err)
		m, ok := n.(*MemberExpr)
		require.True(t, ok)
		assert.Equal(t, "Bar", m.Property.Name)
		ns, ok := m.Object.(*NamespacedName)
		require.True(t, ok)
		assert.Equal(t, "ns:Foo", ns.String())
	})

	t.Run("namespaced_object_needs_namespaces", func(t *testing.T) {
		_, err := parseNameString(t, "ns:Foo.Bar",
			Options{AllowNamespaces: false, AllowNamespacedObjects: true})
		assert.ErrorIs(t, err, ErrUnsupportedSyntax)
	})
}
