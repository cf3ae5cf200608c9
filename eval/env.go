package eval

import (
	"os"

	"github.com/defable/fscript/ir"

	"github.com/expr-lang/expr"
)

// Env is the variable environment of one query evaluation.
type Env struct {
	Kind  string `expr:"kind"`
	Name  string `expr:"name"`
	Ref   string `expr:"ref"`
	Path  string `expr:"path"`
	Depth int    `expr:"depth"`
	Value any    `expr:"value"`
	VKind string `expr:"vkind"`
	Truth bool   `expr:"truth"`
	Args  int    `expr:"args"`
	Text  string `expr:"text"`
}

// ExprEnv builds the query environment of e found at path.
func ExprEnv(path string, depth int, e *ir.Expression) Env {
	env := Env{
		Kind:  e.Type.String(),
		Name:  e.Name(),
		Path:  path,
		Depth: depth,
	}
	var v *ir.Value
	switch e.Type {
	case ir.CommentType:
		env.Text = e.Comment.Text
	case ir.CallType:
		env.Ref = e.Call.Reference.String()
		env.Args = len(e.Call.Arguments)
	case ir.FieldType:
		env.Ref = e.Field.Reference.String()
		v = &e.Field.Value
	case ir.ValueType:
		v = e.Value
	}
	if v != nil {
		env.Value = v.Any()
		env.VKind = v.Type.String()
		env.Truth = ir.Truth(*v)
		if v.Type == ir.StringKind || v.Type == ir.NameKind {
			env.Text = v.Text
		}
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
