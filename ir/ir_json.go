package ir

import (
	"encoding/json"
	"fmt"
)

func (e *Expression) UnmarshalJSON(d []byte) error {
	type C Expression
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*e = Expression(*tmp)
	return e.check()
}

func (e *Expression) check() error {
	var set bool
	switch e.Type {
	case CommentType:
		set = e.Comment != nil
	case MarkupType:
		set = e.Markup != nil
	case CallType:
		set = e.Call != nil
	case FieldType:
		set = e.Field != nil
	case ValueType:
		set = e.Value != nil
	}
	if !set {
		return fmt.Errorf("%s expression without %s payload", e.Type, e.Type)
	}
	for i, c := range e.Children() {
		if c == nil {
			return fmt.Errorf("%s expression with null child at %d", e.Type, i)
		}
	}
	return nil
}

func (r *Reference) UnmarshalJSON(d []byte) error {
	type C Reference
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*r = Reference(*tmp)
	if r.Name == "" {
		return fmt.Errorf("reference without name")
	}
	switch r.Type {
	case NameRef:
		if len(r.Accessors) != 0 {
			return fmt.Errorf("name reference %q with accessors", r.Name)
		}
	case PropertyRef:
		if len(r.Accessors) == 0 {
			return fmt.Errorf("property reference %q without accessors", r.Name)
		}
	}
	return nil
}
