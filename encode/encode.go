package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/defable/fscript/format"
	"github.com/defable/fscript/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent string
	Color  func(ir.Type, ColorAttr, string) string

	w   io.Writer
	err error
}

func Encode(exprs []*ir.Expression, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  ", w: w}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.MarshalIndent(exprs, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := json.Marshal(exprs)
		if err != nil {
			return err
		}
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return fmt.Errorf("error converting to yaml: %w", err)
		}
		_, err = w.Write(y)
		return err
	case format.OutlineFormat:
		ir.Walk(exprs, func(_ string, depth int, e *ir.Expression) bool {
			if es.err != nil {
				return false
			}
			es.line(depth, e)
			return es.err == nil
		})
		return es.err
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}

func EncodeExpression(e *ir.Expression, w io.Writer, opts ...EncodeOption) error {
	return Encode([]*ir.Expression{e}, w, opts...)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) line(depth int, e *ir.Expression) {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(es.indent, depth))
	buf.WriteString(es.color(e.Type, KindColor, e.Type.String()))
	buf.WriteByte(' ')
	switch e.Type {
	case ir.CommentType:
		buf.WriteString(es.color(e.Type, ValueColor, e.Comment.Type.String()+" "+strconv.Quote(e.Comment.Text)))
	case ir.MarkupType:
		buf.WriteString(es.color(e.Type, SepColor, "<"))
		buf.WriteString(es.color(e.Type, NameColor, e.Markup.Name))
		buf.WriteString(es.color(e.Type, SepColor, ">"))
	case ir.CallType:
		buf.WriteString(es.color(e.Type, NameColor, e.Call.Reference.String()))
		buf.WriteString(es.color(e.Type, SepColor, "("+strconv.Itoa(len(e.Call.Arguments))+")"))
	case ir.FieldType:
		buf.WriteString(es.color(e.Type, NameColor, e.Field.Reference.String()))
		buf.WriteString(es.color(e.Type, SepColor, " = "))
		buf.WriteString(es.color(e.Type, ValueColor, e.Field.Value.String()))
	case ir.ValueType:
		buf.WriteString(es.color(e.Type, ValueColor, e.Value.String()))
	}
	buf.WriteByte('\n')
	_, es.err = io.WriteString(es.w, buf.String())
}

// MustString renders exprs as an outline without trailing newline.
func MustString(exprs ...*ir.Expression) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(exprs, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
