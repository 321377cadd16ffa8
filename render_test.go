package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSrc(t *testing.T, src string, env map[string]any) string {
	t.Helper()
	node := mustParse(t, src)
	out, err := RenderString(node, env)
	require.NoError(t, err)
	return out
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		env  map[string]any
		want string
	}{
		{
			"static",
			`<p class="x">hi</p>`,
			nil,
			`<p class="x">hi</p>`,
		},
		{
			"interpolation",
			`<p>Hello {name}!</p>`,
			map[string]any{"name": "World"},
			`<p>Hello World!</p>`,
		},
		{
			"void_element",
			`<input disabled value={n}/>`,
			map[string]any{"n": 3},
			`<input disabled="" value="3"/>`,
		},
		{
			"fragment_flattened",
			`<>a<b>c</b></>`,
			nil,
			`a<b>c</b>`,
		},
		{
			"empty_container_skipped",
			`<p>{/* decorative */}ok{}</p>`,
			nil,
			`<p>ok</p>`,
		},
		{
			"text_reescaped",
			`<p>&lt;tag&gt; &amp; more</p>`,
			nil,
			`<p>&lt;tag&gt; &amp; more</p>`,
		},
		{
			"spread_sorted_before_named",
			`<a {...props} id="z"></a>`,
			map[string]any{"props": map[string]any{"rel": "me", "href": "/x"}},
			`<a href="/x" rel="me" id="z"></a>`,
		},
		{
			"element_attr_value",
			`<div data-icon=<i/>></div>`,
			nil,
			`<div data-icon="&lt;i&gt;&lt;/i&gt;"></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSrc(t, tt.src, tt.env))
		})
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("spread_not_a_map", func(t *testing.T) {
		node := mustParse(t, `<a {...props}/>`)
		_, err := RenderString(node, map[string]any{"props": 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spread attribute must evaluate to a map")
	})

	t.Run("foreign_expression", func(t *testing.T) {
		node, err := NewParser(rawOnlyHost{}, nil).Parse(`<p>{x}</p>`)
		require.NoError(t, err)
		_, err = RenderString(node, nil)
		require.Error(t, err)
	})
}
