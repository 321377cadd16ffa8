package jsx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprLangHostParse(t *testing.T) {
	at := Span{Offset: 10, Line: 1, Column: 11, Length: 5}
	x, err := ExprLangHost{}.ParseExpression("1 + 2", at)
	require.NoError(t, err)

	he := x.(*HostExpr)
	assert.Equal(t, "1 + 2", he.Raw)
	assert.NotNil(t, he.Tree)
	assert.Equal(t, at, he.Span())
}

func TestExprLangHostParseError(t *testing.T) {
	at := Span{Offset: 3, Line: 1, Column: 4, Length: 3}
	_, err := ExprLangHost{}.ParseExpression("1 +", at)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, at, se.Span)
	assert.Contains(t, se.Msg, "invalid expression")
}

func TestHostExprValue(t *testing.T) {
	x, err := ExprLangHost{}.ParseExpression("a + b", Span{})
	require.NoError(t, err)
	he := x.(*HostExpr)

	v, err := he.Value(nil, map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	// The compiled program is cached across evaluations.
	p1, err := he.Program()
	require.NoError(t, err)
	p2, err := he.Program()
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	v, err = he.Value(nil, map[string]any{"a": 10, "b": 20})
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestHostExprConcurrentValue(t *testing.T) {
	x, err := ExprLangHost{}.ParseExpression("a * 2", Span{})
	require.NoError(t, err)
	he := x.(*HostExpr)

	// Evaluations from multiple goroutines share the lazily compiled program.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := he.Value(nil, map[string]any{"a": 21})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
}

type rawOnlyHost struct{}

func (rawOnlyHost) ParseExpression(src string, at Span) (Expression, error) {
	return src, nil
}

func TestCustomHost(t *testing.T) {
	p := NewParser(rawOnlyHost{}, nil)
	node, err := p.Parse(`<p>{ anything goes here }</p>`)
	require.NoError(t, err)

	cont := node.(*Element).Children[0].(*Container)
	assert.Equal(t, " anything goes here ", cont.Expr)
}
