package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Dump output goes through an XML indenter, so these assertions check content
// rather than exact layout.
func TestDump(t *testing.T) {
	t.Run("element", func(t *testing.T) {
		out := Dump(mustParse(t, `<div id="1" disabled>text {x}</div>`))
		assert.Contains(t, out, `<div id="1" disabled="">`)
		assert.Contains(t, out, "text ")
		assert.Contains(t, out, "{x}")
		assert.Contains(t, out, "</div>")
	})

	t.Run("spread", func(t *testing.T) {
		out := Dump(mustParse(t, `<a {...props}/>`))
		assert.Contains(t, out, `...="props"`)
	})

	t.Run("fragment", func(t *testing.T) {
		out := Dump(mustParse(t, `<>hi</>`))
		assert.Contains(t, out, "<fragment>")
		assert.Contains(t, out, "hi")
	})

	t.Run("empty_container", func(t *testing.T) {
		out := Dump(mustParse(t, `<p>{/* note */}</p>`))
		assert.Contains(t, out, "{}")
	})
}
