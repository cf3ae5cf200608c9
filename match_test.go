package fscript

import (
	"testing"

	"github.com/defable/fscript/encode"
	"github.com/defable/fscript/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    "a 1;\n",
		match: "a 1;\n",
		res:   true,
	},
	{
		in:    "a 0;\n",
		match: "a 1;\n",
		res:   false,
	},
	{
		in:    "a 1;\nb 2;\n",
		match: "b 2;\n",
		res:   true,
	},
	{
		in:    "b 2;\n",
		match: "a 1;\nb 2;\n",
		res:   false,
	},
	{
		in:    "a \"x\";\n",
		match: "a;\n",
		res:   true,
	},
	{
		in:    "a 1;\n",
		match: "a 1.0;\n",
		res:   false,
	},
	{
		in:    "<G>\n  a 1;\n  b 2;\n<\\G>\n",
		match: "<G> b 2; <\\G>",
		res:   true,
	},
	{
		in:    "<G>\n  a 1;\n<\\G>\n",
		match: "<H> a 1; <\\H>",
		res:   false,
	},
	{
		in:    "f(1, x);\n",
		match: "f(1, x);",
		res:   true,
	},
	{
		in:    "f(1, x);\n",
		match: "f(1);",
		res:   false,
	},
	{
		in:    "a 1;\n",
		match: "// only a comment\n",
		res:   true,
	},
	{
		in:    "a 1;\na 1;\n",
		match: "a 1;\na 1;\n",
		res:   true,
	},
	{
		in:    "a 1;\n",
		match: "a 1;\na 1;\n",
		res:   false,
	},
	{
		in:    "a 1;\na 2;\n",
		match: "a;\na 1;\n",
		res:   true,
	},
	{
		in:    "<G>\n  a 1;\n  a 2;\n<\\G>\n",
		match: "<G> a; a 2; <\\G>",
		res:   true,
	},
	{
		in:    "a 1;\nb 2;\n",
		match: "a;\na;\n",
		res:   false,
	},
}

func TestMatch(t *testing.T) {
	for i, mt := range matchTests {
		doc, err := parse.Parse([]byte(mt.in))
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		pat, err := parse.Parse([]byte(mt.match))
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if res := Match(doc, pat); res != mt.res {
			t.Errorf("%d: match %q on %q gave %t", i, mt.match, mt.in, res)
		}
	}
}

func TestTrim(t *testing.T) {
	doc, err := parse.Parse([]byte("top 1;\n<G>\n  a 1;\n  b 2;\n<\\G>\nother 3;\n"))
	if err != nil {
		t.Fatal(err)
	}
	pat, err := parse.Parse([]byte("<G> b; <\\G>\ntop 1;\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(Trim(pat, doc)...)
	want := "Markup <G>\n  Field b = Number(2)\nField top = Number(1)"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if Trim(pat, doc[:1]) != nil {
		t.Error("expected no match")
	}
}

func TestTrimWildcardOrder(t *testing.T) {
	doc, err := parse.Parse([]byte("a 1;\na 2;\n"))
	if err != nil {
		t.Fatal(err)
	}
	pat, err := parse.Parse([]byte("a;\na 1;\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(Trim(pat, doc)...)
	want := "Field a = Number(2)\nField a = Number(1)"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
