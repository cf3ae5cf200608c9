package parse

import (
	"errors"
	"fmt"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

// Decode decodes the longest list of terminated expressions at the start of
// d and returns it with the unconsumed remainder.
func Decode(d []byte, opts ...ParseOption) ([]*ir.Expression, []byte, error) {
	return DecodeExpressionList(d, opts...)
}

// Parse decodes a whole document.  Anything but whitespace left after the
// expression list is reported as token.ErrTrailing along with the furthest
// failure the decoder ran into.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Expression, error) {
	p := newDecoder(d, opts)
	res, i, err := p.expressionList(0)
	if err != nil {
		return nil, err
	}
	j := token.SkipMultiSpace(d, i)
	if j == len(d) {
		return res, nil
	}
	if p.furthest != nil && p.furthest.Pos.I >= j {
		return nil, fmt.Errorf("%w: %w", token.ErrTrailing, p.furthest)
	}
	return nil, token.NewDecodeErr(token.ErrTrailing, p.pos(j))
}

func DecodeExpressionList(d []byte, opts ...ParseOption) ([]*ir.Expression, []byte, error) {
	return run(d, opts, (*decoder).expressionList)
}

func DecodeExpression(d []byte, opts ...ParseOption) (*ir.Expression, []byte, error) {
	return run(d, opts, (*decoder).expression)
}

func DecodeField(d []byte, opts ...ParseOption) (*ir.Field, []byte, error) {
	return run(d, opts, (*decoder).field)
}

// DecodeFieldNamed decodes a field whose reference must be the plain name
// name, failing with token.ErrTagName otherwise.
func DecodeFieldNamed(d []byte, name string, opts ...ParseOption) (*ir.Field, []byte, error) {
	return run(d, opts, func(p *decoder, i int) (*ir.Field, int, error) {
		return p.fieldNamed(i, name)
	})
}

func DecodeReference(d []byte, opts ...ParseOption) (ir.Reference, []byte, error) {
	return run(d, opts, (*decoder).reference)
}

func DecodeAccessor(d []byte, opts ...ParseOption) (ir.Accessor, []byte, error) {
	return run(d, opts, (*decoder).accessor)
}

func DecodeValue(d []byte, opts ...ParseOption) (ir.Value, []byte, error) {
	return run(d, opts, (*decoder).value)
}

func DecodeCall(d []byte, opts ...ParseOption) (*ir.Call, []byte, error) {
	return run(d, opts, (*decoder).call)
}

func DecodeMarkup(d []byte, opts ...ParseOption) (*ir.Markup, []byte, error) {
	return run(d, opts, (*decoder).markup)
}

func DecodeComment(d []byte, opts ...ParseOption) (*ir.Comment, []byte, error) {
	return run(d, opts, (*decoder).comment)
}

func run[T any](d []byte, opts []ParseOption, f func(*decoder, int) (T, int, error)) (T, []byte, error) {
	p := newDecoder(d, opts)
	res, i, err := f(p, 0)
	if err != nil {
		var zero T
		return zero, d, err
	}
	return res, d[i:], nil
}

type decoder struct {
	d        []byte
	posDoc   *token.PosDoc
	opts     *parseOpts
	depth    int
	furthest *token.DecodeErr
}

func newDecoder(d []byte, opts []ParseOption) *decoder {
	return &decoder{
		d:      d,
		posDoc: token.NewPosDoc(d),
		opts:   newOpts(opts),
	}
}

func (p *decoder) pos(i int) *token.Pos {
	return p.posDoc.Pos(i)
}

func (p *decoder) at(i int) byte {
	if i < len(p.d) {
		return p.d[i]
	}
	return 0
}

func (p *decoder) track(err error) error {
	var de *token.DecodeErr
	if !errors.As(err, &de) {
		return err
	}
	if p.furthest == nil || de.Pos.I >= p.furthest.Pos.I {
		p.furthest = de
	}
	return err
}

func (p *decoder) fail(e error, i int) error {
	return p.track(token.NewDecodeErr(e, p.pos(i)))
}

func (p *decoder) fatal(e error, i int) error {
	return token.FatalErr(e, p.pos(i))
}

func (p *decoder) expected(what string, i int) error {
	return p.track(token.ExpectedErr(what, p.pos(i)))
}

// enter guards recursion into call arguments and markup bodies.
func (p *decoder) enter(i int) error {
	if p.depth >= p.opts.maxDepth {
		return p.fatal(fmt.Errorf("%w: limit %d", token.ErrDepth, p.opts.maxDepth), i)
	}
	p.depth++
	return nil
}

func (p *decoder) leave() {
	p.depth--
}

// alt returns the first success of fs at i.  A fatal error stops the
// search; otherwise the failure furthest into the input is returned.
func alt[T any](p *decoder, i int, fs ...func(*decoder, int) (T, int, error)) (T, int, error) {
	var (
		zero T
		best error
		bi   = -1
	)
	for _, f := range fs {
		res, j, err := f(p, i)
		if err == nil {
			return res, j, nil
		}
		if token.IsFatal(err) {
			return zero, i, err
		}
		var de *token.DecodeErr
		if errors.As(err, &de) && de.Pos.I > bi {
			best, bi = err, de.Pos.I
		} else if best == nil {
			best = err
		}
	}
	return zero, i, best
}
