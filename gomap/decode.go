// Package gomap loads decoded script documents into Go values.
//
// A document is first mapped to a generic tree of maps and slices and then
// unmarshaled with encoding/json, so targets use ordinary `json` struct
// tags:
//
//	Name "Troll";            -> {"Name": "Troll"}
//	<Stats> Health 250; <\Stats>  -> {"Stats": {"Health": 250}}
//	SetScale(1.5, 2);        -> {"SetScale": [1.5, 2]}
//	Anim.Idle "idle_01";     -> {"Anim": {"Idle": "idle_01"}}
//
// A name given more than once collects its values into a list.  Comments
// are dropped and None values map to null.
package gomap

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/parse"
)

// FromIRer is implemented by values that load themselves from a decoded
// document.
type FromIRer interface {
	FromIR([]*ir.Expression) error
}

// Load decodes the script d and stores the result in p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	exprs, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromExpressions(exprs, p)
}

func FromExpressions(exprs []*ir.Expression, p any) error {
	if x, ok := p.(FromIRer); ok {
		return x.FromIR(exprs)
	}
	m, err := ToMap(exprs)
	if err != nil {
		return err
	}
	d, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(d, p)
}

// ToMap maps the named expressions of exprs to a generic tree.
func ToMap(exprs []*ir.Expression) (map[string]any, error) {
	res := map[string]any{}
	for _, e := range exprs {
		switch e.Type {
		case ir.FieldType:
			if err := setRef(res, e.Field.Reference, e.Field.Value.Any()); err != nil {
				return nil, err
			}
		case ir.CallType:
			args, err := toSlice(e.Call.Arguments)
			if err != nil {
				return nil, err
			}
			if err := setRef(res, e.Call.Reference, args); err != nil {
				return nil, err
			}
		case ir.MarkupType:
			body, err := ToMap(e.Markup.Body)
			if err != nil {
				return nil, err
			}
			if err := add(res, e.Markup.Name, body); err != nil {
				return nil, fmt.Errorf("<%s>: %w", e.Markup.Name, err)
			}
		}
	}
	return res, nil
}

func toSlice(exprs []*ir.Expression) ([]any, error) {
	res := make([]any, 0, len(exprs))
	for _, e := range exprs {
		switch e.Type {
		case ir.ValueType:
			res = append(res, e.Value.Any())
		case ir.CallType:
			args, err := toSlice(e.Call.Arguments)
			if err != nil {
				return nil, err
			}
			res = append(res, map[string]any{e.Call.Reference.String(): args})
		case ir.MarkupType, ir.FieldType:
			m, err := ToMap([]*ir.Expression{e})
			if err != nil {
				return nil, err
			}
			res = append(res, m)
		}
	}
	return res, nil
}

// setRef stores v under the path of ref, creating intermediate maps for
// each accessor.
func setRef(m map[string]any, ref ir.Reference, v any) error {
	keys := []string{ref.Name}
	for _, a := range ref.Accessors {
		switch a.Type {
		case ir.IndexAccess:
			keys = append(keys, strconv.FormatInt(int64(a.Index), 10))
		default:
			keys = append(keys, a.Name)
		}
	}
	for _, k := range keys[:len(keys)-1] {
		prev, ok := m[k]
		if !ok {
			sub := map[string]any{}
			m[k] = sub
			m = sub
			continue
		}
		x, isMap := prev.(map[string]any)
		if !isMap {
			return fmt.Errorf("%s: %q is already set to a non map value", ref, k)
		}
		m = x
	}
	if err := add(m, keys[len(keys)-1], v); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	return nil
}

// add stores v under k, collecting repeated keys into a multi.  A map and a
// non map value never share a key.
func add(m map[string]any, k string, v any) error {
	prev, ok := m[k]
	if !ok {
		m[k] = v
		return nil
	}
	l, isMulti := prev.(multi)
	first := prev
	if isMulti {
		first = l[0]
	}
	if isMapValue(first) != isMapValue(v) {
		return fmt.Errorf("%q mixes a map with a non map value", k)
	}
	if isMulti {
		m[k] = append(l, v)
		return nil
	}
	m[k] = multi{prev, v}
	return nil
}

func isMapValue(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// multi marks a list collected from repeated names, as opposed to call
// arguments.
type multi []any
