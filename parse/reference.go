package parse

import (
	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

// reference decodes an identifier followed by any number of accessors.
// Decoding stops at the first accessor that does not decode.
func (p *decoder) reference(i int) (ir.Reference, int, error) {
	j := token.Ident(p.d, i)
	if j == i {
		return ir.Reference{}, i, p.expected("identifier", i)
	}
	name := string(p.d[i:j])
	var acc []ir.Accessor
	for {
		a, k, err := p.accessor(j)
		if err != nil {
			break
		}
		acc = append(acc, a)
		j = k
	}
	if len(acc) == 0 {
		return ir.RefName(name), j, nil
	}
	return ir.RefProperty(name, acc...), j, nil
}

func (p *decoder) accessor(i int) (ir.Accessor, int, error) {
	switch p.at(i) {
	case '.':
		j := token.Ident(p.d, i+1)
		if j == i+1 {
			return ir.Accessor{}, i, p.fail(token.ErrProperty, i)
		}
		return ir.AccessName(string(p.d[i+1 : j])), j, nil
	case '[':
		var a ir.Accessor
		n, j, err := p.number(i + 1)
		if err == nil {
			a = ir.AccessIndex(n)
		} else {
			j = token.Ident(p.d, i+1)
			if j == i+1 {
				return ir.Accessor{}, i, p.fail(token.ErrProperty, i)
			}
			a = ir.AccessIndexName(string(p.d[i+1 : j]))
		}
		if p.at(j) == ']' {
			j++
		}
		return a, j, nil
	}
	return ir.Accessor{}, i, p.expected("'.' or '['", i)
}
