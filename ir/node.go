package ir

import (
	"strconv"
	"strings"
)

// Expression is one decoded unit of a script document.  Exactly one of the
// payload fields is set, selected by Type.
type Expression struct {
	Type Type `json:"type"`

	Comment *Comment `json:"comment,omitempty"`
	Markup  *Markup  `json:"markup,omitempty"`
	Call    *Call    `json:"call,omitempty"`
	Field   *Field   `json:"field,omitempty"`
	Value   *Value   `json:"value,omitempty"`
}

// Field is a `reference value;` assignment.
type Field struct {
	Reference Reference `json:"reference"`
	Value     Value     `json:"value"`
}

// Reference names an assignment target or a callee.  A PropertyRef always
// has at least one accessor.
type Reference struct {
	Type      RefKind    `json:"type"`
	Name      string     `json:"name"`
	Accessors []Accessor `json:"accessors,omitempty"`
}

// Accessor is one `.name`, `[index]` or `[name]` step of a property path.
type Accessor struct {
	Type  AccessorKind `json:"type"`
	Name  string       `json:"name,omitempty"`
	Index int32        `json:"index,omitempty"`
}

// Value is a literal.  Text holds the text of both StringKind and
// NameKind values.
type Value struct {
	Type      Kind    `json:"type"`
	Bool      bool    `json:"bool,omitempty"`
	Float     float32 `json:"float,omitempty"`
	Number    int32   `json:"number,omitempty"`
	BigNumber uint64  `json:"bigNumber,omitempty"`
	Text      string  `json:"string,omitempty"`
}

type Call struct {
	Reference Reference     `json:"reference"`
	Arguments []*Expression `json:"arguments"`
}

// Markup is a `<name> ... <\name>` block.
type Markup struct {
	Name string        `json:"name"`
	Body []*Expression `json:"body"`
}

type Comment struct {
	Type CommentKind `json:"type"`
	Text string      `json:"text"`
}

func FromComment(c *Comment) *Expression {
	return &Expression{Type: CommentType, Comment: c}
}

func FromMarkup(m *Markup) *Expression {
	return &Expression{Type: MarkupType, Markup: m}
}

func FromCall(c *Call) *Expression {
	return &Expression{Type: CallType, Call: c}
}

func FromField(f *Field) *Expression {
	return &Expression{Type: FieldType, Field: f}
}

func FromValue(v Value) *Expression {
	return &Expression{Type: ValueType, Value: &v}
}

func NewLineComment(text string) *Comment {
	return &Comment{Type: LineComment, Text: text}
}

func NewBlockComment(text string) *Comment {
	return &Comment{Type: BlockComment, Text: text}
}

func NewMarkup(name string, body ...*Expression) *Markup {
	if body == nil {
		body = []*Expression{}
	}
	return &Markup{Name: name, Body: body}
}

func NewCall(ref Reference, args ...*Expression) *Call {
	return &Call{Reference: ref, Arguments: args}
}

func NewField(ref Reference, v Value) *Field {
	return &Field{Reference: ref, Value: v}
}

func RefName(name string) Reference {
	return Reference{Type: NameRef, Name: name}
}

func RefProperty(name string, acc ...Accessor) Reference {
	return Reference{Type: PropertyRef, Name: name, Accessors: acc}
}

func AccessName(name string) Accessor {
	return Accessor{Type: NameAccess, Name: name}
}

func AccessIndex(i int32) Accessor {
	return Accessor{Type: IndexAccess, Index: i}
}

func AccessIndexName(name string) Accessor {
	return Accessor{Type: IndexNameAccess, Name: name}
}

func FromBool(v bool) Value {
	return Value{Type: BoolKind, Bool: v}
}

func FromFloat(v float32) Value {
	return Value{Type: FloatKind, Float: v}
}

func FromNumber(v int32) Value {
	return Value{Type: NumberKind, Number: v}
}

func FromBigNumber(v uint64) Value {
	return Value{Type: BigNumberKind, BigNumber: v}
}

func FromString(v string) Value {
	return Value{Type: StringKind, Text: v}
}

func FromName(v string) Value {
	return Value{Type: NameKind, Text: v}
}

func None() Value {
	return Value{Type: NoneKind}
}

// Name returns the identifying name of an expression: the reference base
// of a field or call, the block name of a markup, and "" otherwise.
func (e *Expression) Name() string {
	switch e.Type {
	case FieldType:
		return e.Field.Reference.Name
	case CallType:
		return e.Call.Reference.Name
	case MarkupType:
		return e.Markup.Name
	}
	return ""
}

// Children returns the nested expressions: call arguments or markup body.
func (e *Expression) Children() []*Expression {
	switch e.Type {
	case CallType:
		return e.Call.Arguments
	case MarkupType:
		return e.Markup.Body
	}
	return nil
}

func (e *Expression) String() string {
	switch e.Type {
	case CommentType:
		return e.Comment.String()
	case MarkupType:
		return "Markup <" + e.Markup.Name + ">"
	case CallType:
		return "Call " + e.Call.Reference.String() + "(" + strconv.Itoa(len(e.Call.Arguments)) + ")"
	case FieldType:
		return "Field " + e.Field.Reference.String() + " = " + e.Field.Value.String()
	case ValueType:
		return "Value " + e.Value.String()
	}
	return "<unknown expression>"
}

func (c *Comment) String() string {
	return c.Type.String() + "Comment " + strconv.Quote(c.Text)
}

func (r Reference) String() string {
	if len(r.Accessors) == 0 {
		return r.Name
	}
	buf := &strings.Builder{}
	buf.WriteString(r.Name)
	for _, a := range r.Accessors {
		buf.WriteString(a.String())
	}
	return buf.String()
}

func (a Accessor) String() string {
	switch a.Type {
	case NameAccess:
		return "." + a.Name
	case IndexAccess:
		return "[" + strconv.FormatInt(int64(a.Index), 10) + "]"
	case IndexNameAccess:
		return "[" + a.Name + "]"
	}
	return "<unknown accessor>"
}

func (v Value) String() string {
	switch v.Type {
	case BoolKind:
		return "Bool(" + strconv.FormatBool(v.Bool) + ")"
	case FloatKind:
		return "Float(" + strconv.FormatFloat(float64(v.Float), 'g', -1, 32) + ")"
	case NumberKind:
		return "Number(" + strconv.FormatInt(int64(v.Number), 10) + ")"
	case BigNumberKind:
		return "BigNumber(" + strconv.FormatUint(v.BigNumber, 10) + ")"
	case StringKind:
		return "String(" + strconv.Quote(v.Text) + ")"
	case NameKind:
		return "Name(" + strconv.Quote(v.Text) + ")"
	case NoneKind:
		return "None"
	}
	return "<unknown value>"
}

// Any returns the Go value carried by v: bool, float32, int32, uint64,
// string or nil.
func (v Value) Any() any {
	switch v.Type {
	case BoolKind:
		return v.Bool
	case FloatKind:
		return v.Float
	case NumberKind:
		return v.Number
	case BigNumberKind:
		return v.BigNumber
	case StringKind, NameKind:
		return v.Text
	}
	return nil
}
