package ir

import "fmt"

// Type is the kind of an Expression.
type Type int

const (
	CommentType Type = iota
	MarkupType
	CallType
	FieldType
	ValueType
)

var typeNames = map[Type]string{
	CommentType: "Comment",
	MarkupType:  "Markup",
	CallType:    "Call",
	FieldType:   "Field",
	ValueType:   "Value",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	return unmarshalEnum(typeNames, t, d, "type")
}

func Types() []Type {
	return []Type{
		CommentType,
		MarkupType,
		CallType,
		FieldType,
		ValueType,
	}
}

// Kind is the variant of a literal Value.  The zero Value is None.
type Kind int

const (
	NoneKind Kind = iota
	BoolKind
	FloatKind
	NumberKind
	BigNumberKind
	StringKind
	NameKind
)

var kindNames = map[Kind]string{
	BoolKind:      "Bool",
	FloatKind:     "Float",
	NumberKind:    "Number",
	BigNumberKind: "BigNumber",
	StringKind:    "String",
	NameKind:      "Name",
	NoneKind:      "None",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	return unmarshalEnum(kindNames, k, d, "value kind")
}

func Kinds() []Kind {
	return []Kind{
		NoneKind,
		BoolKind,
		FloatKind,
		NumberKind,
		BigNumberKind,
		StringKind,
		NameKind,
	}
}

// RefKind distinguishes plain names from property paths.
type RefKind int

const (
	NameRef RefKind = iota
	PropertyRef
)

var refKindNames = map[RefKind]string{
	NameRef:     "Name",
	PropertyRef: "Property",
}

func (k RefKind) String() string {
	s, ok := refKindNames[k]
	if ok {
		return s
	}
	return "<unknown reference>"
}

func (k RefKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *RefKind) UnmarshalText(d []byte) error {
	return unmarshalEnum(refKindNames, k, d, "reference kind")
}

// AccessorKind is the kind of one step of a property path.
type AccessorKind int

const (
	NameAccess AccessorKind = iota
	IndexAccess
	IndexNameAccess
)

var accessorKindNames = map[AccessorKind]string{
	NameAccess:      "Name",
	IndexAccess:     "Index",
	IndexNameAccess: "IndexName",
}

func (k AccessorKind) String() string {
	s, ok := accessorKindNames[k]
	if ok {
		return s
	}
	return "<unknown accessor>"
}

func (k AccessorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AccessorKind) UnmarshalText(d []byte) error {
	return unmarshalEnum(accessorKindNames, k, d, "accessor kind")
}

type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

var commentKindNames = map[CommentKind]string{
	LineComment:  "Line",
	BlockComment: "Block",
}

func (k CommentKind) String() string {
	s, ok := commentKindNames[k]
	if ok {
		return s
	}
	return "<unknown comment>"
}

func (k CommentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CommentKind) UnmarshalText(d []byte) error {
	return unmarshalEnum(commentKindNames, k, d, "comment kind")
}

func unmarshalEnum[T comparable](names map[T]string, dst *T, d []byte, what string) error {
	for k, v := range names {
		if v == string(d) {
			*dst = k
			return nil
		}
	}
	return fmt.Errorf("unrecognized %s %q", what, d)
}
