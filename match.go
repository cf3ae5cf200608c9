// Package fscript holds operations over whole decoded script documents.
package fscript

import (
	"github.com/defable/fscript/debug"
	"github.com/defable/fscript/ir"
)

// Match reports whether doc contains pattern.
//
// Each non-comment expression of pattern must match a distinct expression
// of doc at the same level, in any order.  Fields match on reference and
// value, calls on reference and argument by argument, markup on name and
// recursively on body.  A None value in the pattern matches any value.
func Match(doc, pattern []*ir.Expression) bool {
	_, ok := matchList(doc, pattern)
	return ok
}

// matchList returns for each non-comment pattern expression the index of
// the doc expression it matched.  Each doc expression is used at most once;
// assignments are searched with backtracking.
func matchList(doc, pattern []*ir.Expression) ([]int, bool) {
	var ps []*ir.Expression
	for _, p := range pattern {
		if p.Type != ir.CommentType {
			ps = append(ps, p)
		}
	}
	used := make([]bool, len(doc))
	res := make([]int, len(ps))
	ok := assign(doc, ps, used, res, 0)
	if debug.Match() {
		debug.Logf("match %d pattern expressions against %d: %t\n", len(ps), len(doc), ok)
	}
	if !ok {
		return nil, false
	}
	return res, true
}

func assign(doc, ps []*ir.Expression, used []bool, res []int, k int) bool {
	if k == len(ps) {
		return true
	}
	for i, d := range doc {
		if used[i] || !matchExpr(d, ps[k]) {
			continue
		}
		used[i] = true
		res[k] = i
		if assign(doc, ps, used, res, k+1) {
			return true
		}
		used[i] = false
	}
	return false
}

func matchExpr(d, p *ir.Expression) bool {
	if d.Type != p.Type {
		return false
	}
	switch p.Type {
	case ir.FieldType:
		return d.Field.Reference.String() == p.Field.Reference.String() &&
			matchValue(d.Field.Value, p.Field.Value)
	case ir.CallType:
		if d.Call.Reference.String() != p.Call.Reference.String() {
			return false
		}
		if len(d.Call.Arguments) != len(p.Call.Arguments) {
			return false
		}
		for i := range p.Call.Arguments {
			if !matchExpr(d.Call.Arguments[i], p.Call.Arguments[i]) {
				return false
			}
		}
		return true
	case ir.MarkupType:
		if d.Markup.Name != p.Markup.Name {
			return false
		}
		_, ok := matchList(d.Markup.Body, p.Markup.Body)
		return ok
	case ir.ValueType:
		return matchValue(*d.Value, *p.Value)
	case ir.CommentType:
		return d.Comment.Text == p.Comment.Text
	}
	return false
}

func matchValue(d, p ir.Value) bool {
	if p.Type == ir.NoneKind {
		return true
	}
	return d == p
}

// Trim returns the parts of doc matched by pattern, in pattern order, or
// nil when doc does not match.
func Trim(pattern, doc []*ir.Expression) []*ir.Expression {
	idx, ok := matchList(doc, pattern)
	if !ok {
		return nil
	}
	res := []*ir.Expression{}
	j := 0
	for _, p := range pattern {
		if p.Type == ir.CommentType {
			continue
		}
		d := doc[idx[j]]
		j++
		if p.Type == ir.MarkupType {
			d = ir.FromMarkup(ir.NewMarkup(d.Markup.Name, Trim(p.Markup.Body, d.Markup.Body)...))
		}
		res = append(res, d)
	}
	return res
}
