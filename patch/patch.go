// Package patch applies RFC 6902 JSON patches to decoded script trees.
//
// The tree is marshaled to its JSON form, patched and unmarshaled again, so
// patch paths address that form, e.g. "/1/markup/body/0/field/value".
package patch

import (
	"encoding/json"
	"fmt"

	"github.com/defable/fscript/debug"
	"github.com/defable/fscript/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

type Patch struct {
	ops jsonpatch.Patch
}

func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the patched tree.  exprs is left unchanged.
func (p *Patch) Apply(exprs []*ir.Expression) ([]*ir.Expression, error) {
	d, err := json.Marshal(exprs)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d patch ops to\n%s\n", len(p.ops), exprs)
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	var res []*ir.Expression
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("patched tree is invalid: %w", err)
	}
	for i, e := range res {
		if e == nil {
			return nil, fmt.Errorf("patched tree is invalid: null expression at %d", i)
		}
	}
	if debug.Patch() {
		debug.Logf("patched:\n%s\n", res)
	}
	return res, nil
}

// Apply decodes patch and applies it to exprs.
func Apply(exprs []*ir.Expression, patch []byte) ([]*ir.Expression, error) {
	p, err := Decode(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(exprs)
}
