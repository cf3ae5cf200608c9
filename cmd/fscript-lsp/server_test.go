package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const script = `// header
<Creature>
  Name "Troll";
  SetScale(1.5);
<\Creature>
Version 3;
`

func TestValidateDocument(t *testing.T) {
	doc := newDocument("file:///a.def", script, 1)
	if diags := validateDocument(doc); len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
	doc = newDocument("file:///b.def", "a 1;\n<G>\n  b \"open;\n", 1)
	diags := validateDocument(doc)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	want := protocol.Position{Line: 2, Character: 4}
	if diags[0].Range.Start != want {
		t.Errorf("got %v want %v", diags[0].Range.Start, want)
	}
	if !strings.Contains(diags[0].Message, "unterminated string") {
		t.Errorf("got %q", diags[0].Message)
	}
	doc = newDocument("file:///c.def", "a 1;\nfoo bar", 1)
	diags = validateDocument(doc)
	if len(diags) != 1 || diags[0].Range.Start.Line != 1 {
		t.Fatalf("got %v", diags)
	}
	if len(doc.exprs) != 1 {
		t.Errorf("expected the decoded prefix to be kept, got %d", len(doc.exprs))
	}
}

func TestSymbols(t *testing.T) {
	doc := newDocument("file:///a.def", script, 1)
	syms := doc.symbols(doc.exprs)
	if len(syms) != 2 {
		t.Fatalf("got %d symbols", len(syms))
	}
	var names []string
	for _, c := range syms[0].Children {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Name", "SetScale"}, names); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if syms[0].Kind != protocol.SymbolKindNamespace || syms[1].Kind != protocol.SymbolKindField {
		t.Errorf("got kinds %v %v", syms[0].Kind, syms[1].Kind)
	}
	if syms[1].Range.Start.Line != 5 {
		t.Errorf("Version on line %d", syms[1].Range.Start.Line)
	}
}

func TestExpressionAt(t *testing.T) {
	doc := newDocument("file:///a.def", script, 1)
	path, e := doc.expressionAt(3, 3)
	if e == nil {
		t.Fatal("nothing found")
	}
	if path != "$[1].body[1]" || e.Name() != "SetScale" {
		t.Errorf("got %s %s", path, e)
	}
	if text := buildHoverText(path, e); !strings.Contains(text, "**Call**") {
		t.Errorf("got %q", text)
	}
	if _, e := doc.expressionAt(40, 0); e != nil {
		t.Errorf("got %s", e)
	}
}

func TestOpenBlocks(t *testing.T) {
	for in, want := range map[string][]string{
		"<A>\n<B> x;\n":                  {"A", "B"},
		"<A>\n<B> x;\n<\\B>\n":           {"A"},
		"<A> // <B>\n \"<C>\" /* <D> */": {"A"},
		"<A><\\A>":                       nil,
		"a < b;":                         nil,
		"s \"\xff\";\n<A>\n":             {"A"},
		"s \"<B>\xff\" <C>":              {"C"},
	} {
		if diff := cmp.Diff(want, openBlocks([]byte(in))); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", in, diff)
		}
	}
}

func TestApplyChange(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 2},
			End:   protocol.Position{Line: 1, Character: 3},
		},
		Text: "9",
	}
	if got := applyChange("a 1;\nb 2;\n", change); got != "a 1;\nb 9;\n" {
		t.Errorf("got %q", got)
	}
	if got := applyChange("old", protocol.TextDocumentContentChangeEvent{Text: "new"}); got != "new" {
		t.Errorf("got %q", got)
	}
}
