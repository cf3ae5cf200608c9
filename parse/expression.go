package parse

import (
	"github.com/defable/fscript/debug"
	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

// expressionList decodes expressions each followed by ';' until one cannot
// be decoded, which ends the list.  Only fatal errors are returned.
func (p *decoder) expressionList(i int) ([]*ir.Expression, int, error) {
	res := []*ir.Expression{}
	for {
		e, j, err := p.expression(i)
		if err == nil {
			j, err = p.terminator(e, j)
		}
		if err != nil {
			if token.IsFatal(err) {
				return nil, i, err
			}
			return res, i, nil
		}
		if j == i {
			return res, i, nil
		}
		res = append(res, e)
		i = j
	}
}

// terminator consumes the ';' after an expression.  It is optional after
// fields, comments and markup, which end themselves.
func (p *decoder) terminator(e *ir.Expression, i int) (int, error) {
	if p.at(i) == ';' {
		return i + 1, nil
	}
	switch e.Type {
	case ir.FieldType, ir.CommentType, ir.MarkupType:
		return i, nil
	}
	return i, p.expected("';'", i)
}

// expression tries comment, markup, call, field and value in that order.
// Call precedes field so `f(...)` is never a reference followed by a
// value, and field precedes value so `name value;` is not a bare name.
func (p *decoder) expression(i int) (*ir.Expression, int, error) {
	j := token.SkipMultiSpace(p.d, i)
	e, k, err := alt(p, j,
		(*decoder).commentExpr,
		(*decoder).markupExpr,
		(*decoder).callExpr,
		(*decoder).fieldExpr,
		(*decoder).valueExpr)
	if err != nil {
		return nil, i, err
	}
	if p.opts.positions != nil {
		p.opts.positions[e] = p.pos(j)
	}
	if debug.Decode() {
		debug.Logf("%s at %s\n", e, p.pos(j))
	}
	return e, token.SkipSpace(p.d, k), nil
}

func (p *decoder) commentExpr(i int) (*ir.Expression, int, error) {
	c, j, err := p.comment(i)
	if err != nil {
		return nil, i, err
	}
	return ir.FromComment(c), j, nil
}

func (p *decoder) markupExpr(i int) (*ir.Expression, int, error) {
	m, j, err := p.markup(i)
	if err != nil {
		return nil, i, err
	}
	return ir.FromMarkup(m), j, nil
}

func (p *decoder) callExpr(i int) (*ir.Expression, int, error) {
	c, j, err := p.call(i)
	if err != nil {
		return nil, i, err
	}
	return ir.FromCall(c), j, nil
}

func (p *decoder) fieldExpr(i int) (*ir.Expression, int, error) {
	f, j, err := p.field(i)
	if err != nil {
		return nil, i, err
	}
	return ir.FromField(f), j, nil
}

func (p *decoder) valueExpr(i int) (*ir.Expression, int, error) {
	v, j, err := p.value(i)
	if err != nil {
		return nil, i, err
	}
	return ir.FromValue(v), j, nil
}
