package parse

import (
	"fmt"

	"github.com/defable/fscript/debug"
	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

// field decodes `reference value;` followed by the end of the statement:
// one or more line breaks, or the end of input, a markup tag or a comment.
func (p *decoder) field(i int) (*ir.Field, int, error) {
	j := token.SkipLineEndings(p.d, i)
	ref, j, err := p.reference(j)
	if err != nil {
		return nil, i, err
	}
	j = token.SkipSpace(p.d, j)
	v, j, err := p.value(j)
	if err != nil {
		return nil, i, err
	}
	if p.at(j) != ';' {
		return nil, i, p.expected("';'", j)
	}
	j, err = p.fieldEnd(j + 1)
	if err != nil {
		return nil, i, err
	}
	return ir.NewField(ref, v), j, nil
}

func (p *decoder) fieldEnd(i int) (int, error) {
	j := token.SkipSpace(p.d, i)
	if token.LineEnding(p.d, j) != 0 {
		return token.SkipLineEndings(p.d, j), nil
	}
	switch {
	case j == len(p.d),
		p.at(j) == '<',
		token.HasPrefixAt(p.d, j, token.LineCommentStart),
		token.HasPrefixAt(p.d, j, token.BlockCommentStart):
		return j, nil
	}
	return i, p.expected("line break", j)
}

func (p *decoder) fieldNamed(i int, name string) (*ir.Field, int, error) {
	f, j, err := p.field(i)
	if err != nil {
		return nil, i, err
	}
	if f.Reference.Type != ir.NameRef || f.Reference.Name != name {
		return nil, i, p.fail(fmt.Errorf("%w: want %q, got %q", token.ErrTagName, name, f.Reference.String()), i)
	}
	return f, j, nil
}

// call decodes `reference(expr, ...)`.  Arguments are full expressions.
func (p *decoder) call(i int) (*ir.Call, int, error) {
	ref, j, err := p.reference(i)
	if err != nil {
		return nil, i, err
	}
	if p.at(j) != '(' {
		return nil, i, p.expected("'('", j)
	}
	if err := p.enter(j); err != nil {
		return nil, i, err
	}
	defer p.leave()
	j++
	var args []*ir.Expression
	for {
		arg, k, err := p.expression(j)
		if err != nil {
			return nil, i, err
		}
		args = append(args, arg)
		switch p.at(k) {
		case ',':
			j = k + 1
			continue
		case ')':
			return ir.NewCall(ref, args...), token.SkipSpace(p.d, k+1), nil
		}
		return nil, i, p.expected("',' or ')'", k)
	}
}

// markup decodes `<name> body <\name>`.  Once the opening tag is read the
// block is committed: a missing or different closing tag is fatal.
func (p *decoder) markup(i int) (*ir.Markup, int, error) {
	j := token.SkipSpace(p.d, i)
	if p.at(j) != '<' {
		return nil, i, p.expected("'<'", j)
	}
	k := token.Alnum(p.d, j+1)
	if k == j+1 {
		return nil, i, p.expected("markup name", j+1)
	}
	if p.at(k) != '>' {
		return nil, i, p.expected("'>'", k)
	}
	name := string(p.d[j+1 : k])
	if err := p.enter(j); err != nil {
		return nil, i, err
	}
	defer p.leave()
	if debug.Markup() {
		debug.Logf("markup <%s> open at %s\n", name, p.pos(j))
	}

	k = token.SkipMultiSpace(p.d, k+1)
	body, k, err := p.expressionList(k)
	if err != nil {
		return nil, i, err
	}
	k = token.SkipMultiSpace(p.d, k)
	closer := `<\` + name + `>`
	if !token.HasPrefixAt(p.d, k, closer) {
		return nil, i, p.fatal(fmt.Errorf("%w: expected %s", token.ErrMismatch, closer), k)
	}
	k = token.SkipSpace(p.d, k+len(closer))
	return ir.NewMarkup(name, body...), k, nil
}
