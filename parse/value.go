package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

var errRange = errors.New("out of range")

// value decodes a literal, trying in order: boolean keyword, float, 32 bit
// integer, 64 bit unsigned integer, quoted string, bare name and finally
// the empty literal.
func (p *decoder) value(i int) (ir.Value, int, error) {
	if b, j, ok := token.Keyword(p.d, i); ok {
		return ir.FromBool(b), j, nil
	}
	f, j, err := p.float(i)
	if err == nil {
		return ir.FromFloat(f), j, nil
	}
	if token.IsFatal(err) {
		return ir.Value{}, i, err
	}
	n, j, err := p.number(i)
	if err == nil {
		return ir.FromNumber(n), j, nil
	}
	if errors.Is(err, errRange) && token.Sign(p.d, i) != 0 {
		// no other literal accepts a sign
		return ir.Value{}, i, p.fatal(fmt.Errorf("%w: %q overflows 32 bits", token.ErrValue, p.d[i:j]), i)
	}
	u, j, err := p.bigNumber(i)
	if err == nil {
		return ir.FromBigNumber(u), j, nil
	}
	if errors.Is(err, errRange) {
		return ir.Value{}, i, p.fatal(fmt.Errorf("%w: %q overflows 64 bits", token.ErrValue, p.d[i:j]), i)
	}
	if p.at(i) == '"' {
		s, j, err := token.Quoted(p.d, i)
		if err != nil {
			return ir.Value{}, i, p.fatal(err, i)
		}
		return ir.FromString(s), j, nil
	}
	if j := token.BareName(p.d, i); j > i {
		return ir.FromName(string(p.d[i:j])), j, nil
	}
	return p.none(i)
}

func (p *decoder) none(i int) (ir.Value, int, error) {
	if !p.opts.strictNone {
		return ir.None(), i, nil
	}
	j := token.SkipSpace(p.d, i)
	switch p.at(j) {
	case ';', ',', ')', '\r', '\n':
		return ir.None(), i, nil
	}
	if j == len(p.d) {
		return ir.None(), i, nil
	}
	return ir.Value{}, i, p.expected("value", i)
}

// float decodes [+-]digits.digits as a 32 bit float.
func (p *decoder) float(i int) (float32, int, error) {
	j := i + token.Sign(p.d, i)
	k := token.Digits(p.d, j)
	if k == j {
		return 0, i, p.expected("digits", j)
	}
	if p.at(k) != '.' {
		return 0, i, p.expected(".", k)
	}
	l := token.Digits(p.d, k+1)
	if l == k+1 {
		return 0, i, p.expected("fractional digits", l)
	}
	f, err := strconv.ParseFloat(string(p.d[i:l]), 32)
	if err != nil {
		return 0, i, p.fatal(fmt.Errorf("%w: %q is not a 32 bit float", token.ErrValue, p.d[i:l]), i)
	}
	return float32(f), l, nil
}

// number decodes [+-]digits as a signed 32 bit integer.  On overflow the
// returned error wraps errRange and the offset is the end of the digits.
func (p *decoder) number(i int) (int32, int, error) {
	j := i + token.Sign(p.d, i)
	k := token.Digits(p.d, j)
	if k == j {
		return 0, i, p.expected("digits", j)
	}
	n, err := strconv.ParseInt(string(p.d[i:k]), 10, 32)
	if err != nil {
		return 0, k, p.fail(fmt.Errorf("%w: %w", token.ErrValue, errRange), i)
	}
	return int32(n), k, nil
}

// bigNumber decodes unsigned digits as a 64 bit integer.
func (p *decoder) bigNumber(i int) (uint64, int, error) {
	k := token.Digits(p.d, i)
	if k == i {
		return 0, i, p.expected("digits", i)
	}
	u, err := strconv.ParseUint(string(p.d[i:k]), 10, 64)
	if err != nil {
		return 0, k, p.fail(fmt.Errorf("%w: %w", token.ErrValue, errRange), i)
	}
	return u, k, nil
}
