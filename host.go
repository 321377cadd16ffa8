package jsx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/compiler"
	"github.com/expr-lang/expr/conf"
	"github.com/expr-lang/expr/file"
	expr_parser "github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// ExpressionParser is the capability the JSX grammar consumes from a host
// expression parser. The JSX layer extracts the raw text of a {...}
// container (brace-balanced, string- and comment-aware) and delegates it
// here; the returned Expression is carried opaquely in the AST.
//
// Implementations must treat each call as independent: the parser may be
// used concurrently from multiple goroutines.
type ExpressionParser interface {
	// ParseExpression parses one full expression. src is the raw container
	// text and at its location in the outer buffer, for error reporting.
	ParseExpression(src string, at Span) (Expression, error)
}

// ExprLangHost is the built-in ExpressionParser backed by expr-lang. It
// produces *HostExpr nodes that can be lazily compiled and evaluated.
type ExprLangHost struct{}

func (ExprLangHost) ParseExpression(src string, at Span) (Expression, error) {
	tree, err := expr_parser.Parse(src)
	if err != nil {
		var fileErr *file.Error
		msg := err.Error()
		if errors.As(err, &fileErr) {
			msg = fileErr.Message
		}
		return nil, &SyntaxError{
			Err:  ErrUnexpectedCharacter,
			Msg:  fmt.Sprintf("invalid expression: %s", msg),
			Span: at,
		}
	}
	return &HostExpr{Raw: src, Tree: tree, Pos: at}, nil
}

// HostExpr is the expression node produced by ExprLangHost.
type HostExpr struct {
	Raw  string             // raw container text
	Tree *expr_parser.Tree  // parsed expr-lang AST
	Pos  Span

	compileOnce sync.Once
	prog        *vm.Program
	progErr     error
}

func (x *HostExpr) Span() Span { return x.Pos }

// Program compiles the parsed tree on first use and caches the result; opts
// from later calls are ignored. Safe for concurrent use. Compilation is
// untyped; embedders that want env type checking should supply their own
// ExpressionParser.
func (x *HostExpr) Program(opts ...expr.Option) (*vm.Program, error) {
	x.compileOnce.Do(func() {
		c := conf.CreateNew()
		for _, opt := range opts {
			opt(c)
		}
		prog, err := compiler.Compile(x.Tree, c)
		if err != nil {
			x.progErr = fmt.Errorf("compile %q: %w", x.Raw, err)
			return
		}
		x.prog = prog
	})
	return x.prog, x.progErr
}

// Value compiles (if needed) and evaluates the expression against env.
func (x *HostExpr) Value(v *vm.VM, env any) (any, error) {
	prog, err := x.Program()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return vm.Run(prog, env)
	}
	return v.Run(prog, env)
}
