package main

import (
	"context"
	"errors"
	"sync"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/parse"
	"github.com/defable/fscript/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document holds the last decoded state of an open file.  When the file
// does not decode, exprs holds the expressions before the failure and err
// the failure.
type document struct {
	uri       string
	content   string
	version   int32
	posDoc    *token.PosDoc
	exprs     []*ir.Expression
	positions map[*ir.Expression]*token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	d := []byte(content)
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		posDoc:    token.NewPosDoc(d),
		positions: make(map[*ir.Expression]*token.Pos),
	}
	doc.exprs, doc.err = parse.Parse(d, parse.ParsePositions(doc.positions))
	if doc.err == nil {
		return doc
	}
	clear(doc.positions)
	doc.exprs, _, _ = parse.Decode(d, parse.ParsePositions(doc.positions))
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "fscript",
	}
	var de *token.DecodeErr
	if errors.As(doc.err, &de) {
		diagnostic.Message = de.Err.Error()
		line, col := doc.posDoc.LineCol(de.Pos.I)
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change.  A zero range replaces the whole
// document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	pd := token.NewPosDoc([]byte(content))
	start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
	end := pd.Offset(int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
