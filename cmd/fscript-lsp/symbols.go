package main

import (
	"context"

	"github.com/defable/fscript/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	syms := doc.symbols(doc.exprs)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols lists markup blocks, fields and calls.  Calls nested in call
// arguments are left out.
func (doc *document) symbols(exprs []*ir.Expression) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for _, e := range exprs {
		pos := doc.positions[e]
		if pos == nil {
			continue
		}
		sym := protocol.DocumentSymbol{Name: e.Name()}
		var width int
		switch e.Type {
		case ir.MarkupType:
			sym.Kind = protocol.SymbolKindNamespace
			sym.Children = doc.symbols(e.Markup.Body)
			width = len(e.Markup.Name) + 2
		case ir.FieldType:
			sym.Kind = protocol.SymbolKindField
			sym.Name = e.Field.Reference.String()
			sym.Detail = e.Field.Value.String()
			width = len(sym.Name)
		case ir.CallType:
			sym.Kind = protocol.SymbolKindFunction
			sym.Name = e.Call.Reference.String()
			sym.Detail = e.String()
			width = len(sym.Name)
		default:
			continue
		}
		l, c := pos.LineCol()
		sym.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(l), Character: uint32(c)},
			End:   protocol.Position{Line: uint32(l), Character: uint32(c + width)},
		}
		sym.SelectionRange = sym.Range
		res = append(res, sym)
	}
	return res
}
