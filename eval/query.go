package eval

import (
	"fmt"

	"github.com/defable/fscript/debug"
	"github.com/defable/fscript/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled boolean predicate over expressions.
type Query struct {
	Source string
	prg    *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling query %q: %w", src, err)
	}
	return &Query{Source: src, prg: prg}, nil
}

// Match reports whether the query holds for e.
func (q *Query) Match(path string, depth int, e *ir.Expression) (bool, error) {
	res, err := expr.Run(q.prg, ExprEnv(path, depth, e))
	if err != nil {
		return false, fmt.Errorf("query %q at %s: %w", q.Source, path, err)
	}
	ok, _ := res.(bool)
	if debug.Query() {
		debug.Logf("query %q at %s (%s): %t\n", q.Source, path, e, ok)
	}
	return ok, nil
}

// Found is an expression matched by a query.
type Found struct {
	Path       string
	Depth      int
	Expression *ir.Expression
}

// Select returns the expressions of exprs, nested ones included, for which
// q holds, in depth first order.
func (q *Query) Select(exprs []*ir.Expression) ([]Found, error) {
	var (
		res []Found
		err error
	)
	ir.Walk(exprs, func(path string, depth int, e *ir.Expression) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = q.Match(path, depth, e)
		if ok {
			res = append(res, Found{Path: path, Depth: depth, Expression: e})
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
