package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/defable/fscript/encode"
	"github.com/defable/fscript/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	path, e := doc.expressionAt(int(params.Position.Line), int(params.Position.Character))
	if e == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(path, e),
		},
	}, nil
}

// expressionAt finds the expression starting on line closest to col,
// preferring the innermost one.
func (doc *document) expressionAt(line, col int) (string, *ir.Expression) {
	var (
		best     *ir.Expression
		bestPath string
		bestDist = -1
	)
	ir.Walk(doc.exprs, func(path string, _ int, e *ir.Expression) bool {
		pos := doc.positions[e]
		if pos == nil {
			return true
		}
		l, c := pos.LineCol()
		if l != line {
			return true
		}
		dist := abs(c - col)
		if best == nil || dist <= bestDist {
			best, bestPath, bestDist = e, path, dist
		}
		return true
	})
	return bestPath, best
}

func buildHoverText(path string, e *ir.Expression) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "**%s** `%s`\n\n", e.Type, path)
	buf.WriteString("```\n")
	buf.WriteString(encode.MustString(e))
	buf.WriteString("\n```\n")
	switch e.Type {
	case ir.FieldType:
		v := e.Field.Value
		fmt.Fprintf(buf, "\nvalue kind: %s, truth: %t\n", v.Type, ir.Truth(v))
	case ir.MarkupType:
		fmt.Fprintf(buf, "\n%d expressions in block\n", ir.Count(e.Markup.Body))
	}
	return buf.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
