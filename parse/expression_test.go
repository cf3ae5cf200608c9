package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeCallErrors(t *testing.T) {
	for _, in := range []string{"f(1 2)", "f(2.5, /* c */ TRUE)", "f(1", "f", "(1)"} {
		_, rest, err := DecodeCall([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if token.IsFatal(err) {
			t.Errorf("%q: unexpected fatal error %v", in, err)
		}
		if string(rest) != in {
			t.Errorf("%q: rest %q", in, rest)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	_, _, err := DecodeCall([]byte("a(b(c(1)))"), MaxDepth(2))
	if !errors.Is(err, token.ErrDepth) {
		t.Fatalf("got %v want %v", err, token.ErrDepth)
	}
	if !token.IsFatal(err) {
		t.Error("depth error should be fatal")
	}
	if _, _, err := DecodeCall([]byte("a(b(c(1)))"), MaxDepth(3)); err != nil {
		t.Error(err)
	}
	deep := strings.Repeat("<A>", 400)
	_, _, err = Decode([]byte(deep))
	if !errors.Is(err, token.ErrDepth) {
		t.Errorf("got %v want %v", err, token.ErrDepth)
	}
}

type markupTest struct {
	in   string
	want *ir.Markup
	rest string
}

func TestDecodeMarkup(t *testing.T) {
	mts := []markupTest{
		{
			in:   `<Group> a 1; <\Group>`,
			want: ir.NewMarkup("Group", ir.FromField(ir.NewField(ir.RefName("a"), ir.FromNumber(1)))),
		},
		{
			in:   "<Group>\n  a 1;\n  b \"x\";\n<\\Group>\n",
			want: ir.NewMarkup("Group",
				ir.FromField(ir.NewField(ir.RefName("a"), ir.FromNumber(1))),
				ir.FromField(ir.NewField(ir.RefName("b"), ir.FromString("x")))),
			rest: "\n",
		},
		{
			in:   "<A><B>x;<\\B><\\A>",
			want: ir.NewMarkup("A",
				ir.FromMarkup(ir.NewMarkup("B",
					ir.FromField(ir.NewField(ir.RefName("x"), ir.None()))))),
		},
		{
			in:   "  <Empty>\n<\\Empty>  ;",
			want: ir.NewMarkup("Empty"),
			rest: ";",
		},
		{
			in:   "<Calls> f(1); g(2); <\\Calls>",
			want: ir.NewMarkup("Calls",
				ir.FromCall(ir.NewCall(ir.RefName("f"), ir.FromValue(ir.FromNumber(1)))),
				ir.FromCall(ir.NewCall(ir.RefName("g"), ir.FromValue(ir.FromNumber(2))))),
		},
	}
	for _, mt := range mts {
		m, rest, err := DecodeMarkup([]byte(mt.in))
		if err != nil {
			t.Errorf("%q: %v", mt.in, err)
			continue
		}
		if diff := cmp.Diff(mt.want, m); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", mt.in, diff)
		}
		if string(rest) != mt.rest {
			t.Errorf("%q: rest %q want %q", mt.in, rest, mt.rest)
		}
	}
}

func TestDecodeMarkupErrors(t *testing.T) {
	ets := []errTest{
		{in: `<Group> a 1; <\Other>`, e: token.ErrMismatch, fatal: true},
		{in: "<A> x;", e: token.ErrMismatch, fatal: true},
		{in: "<A> /* x", e: token.ErrUnterminatedComment, fatal: true},
		{in: "<\\A>", e: token.ErrMismatch},
		{in: "<A", e: token.ErrMismatch},
		{in: "<A-B>", e: token.ErrMismatch},
	}
	for _, et := range ets {
		_, _, err := DecodeMarkup([]byte(et.in))
		if !errors.Is(err, et.e) {
			t.Errorf("%q: got %v want %v", et.in, err, et.e)
			continue
		}
		if token.IsFatal(err) != et.fatal {
			t.Errorf("%q: fatal=%t want %t", et.in, token.IsFatal(err), et.fatal)
		}
	}
}

type commentTest struct {
	in   string
	want *ir.Comment
	rest string
}

func TestDecodeComment(t *testing.T) {
	cts := []commentTest{
		{in: "// trailing comment\n", want: ir.NewLineComment(" trailing comment"), rest: "\n"},
		{in: "// crlf\r\nx", want: ir.NewLineComment(" crlf"), rest: "\r\nx"},
		{in: "//\n", want: ir.NewLineComment(""), rest: "\n"},
		{in: "/* block */", want: ir.NewBlockComment(" block ")},
		{in: "/* a\n b */ rest", want: ir.NewBlockComment(" a\n b "), rest: " rest"},
		{in: "/**/", want: ir.NewBlockComment("")},
	}
	for _, ct := range cts {
		c, rest, err := DecodeComment([]byte(ct.in))
		if err != nil {
			t.Errorf("%q: %v", ct.in, err)
			continue
		}
		if diff := cmp.Diff(ct.want, c); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", ct.in, diff)
		}
		if string(rest) != ct.rest {
			t.Errorf("%q: rest %q want %q", ct.in, rest, ct.rest)
		}
	}
}

func TestDecodeCommentErrors(t *testing.T) {
	ets := []errTest{
		{in: "// no newline", e: token.ErrUnterminatedComment, fatal: true},
		{in: "/* open", e: token.ErrUnterminatedComment, fatal: true},
		{in: "/* open *", e: token.ErrUnterminatedComment, fatal: true},
		{in: "// \xfe\n", e: token.ErrBadUTF8, fatal: true},
		{in: "x", e: token.ErrMismatch},
		{in: "/", e: token.ErrMismatch},
	}
	for _, et := range ets {
		_, _, err := DecodeComment([]byte(et.in))
		if !errors.Is(err, et.e) {
			t.Errorf("%q: got %v want %v", et.in, err, et.e)
			continue
		}
		if token.IsFatal(err) != et.fatal {
			t.Errorf("%q: fatal=%t want %t", et.in, token.IsFatal(err), et.fatal)
		}
	}
}

type exprTest struct {
	in   string
	want *ir.Expression
	rest string
}

func TestDecodeExpression(t *testing.T) {
	ets := []exprTest{
		{in: "  // c\n", want: ir.FromComment(ir.NewLineComment(" c")), rest: "\n"},
		{in: "\n\t/* c */  ;", want: ir.FromComment(ir.NewBlockComment(" c ")), rest: ";"},
		{in: "name(1) ;", want: ir.FromCall(ir.NewCall(ir.RefName("name"), ir.FromValue(ir.FromNumber(1)))), rest: ";"},
		{in: "a 1;\n", want: ir.FromField(ir.NewField(ir.RefName("a"), ir.FromNumber(1)))},
		{in: "TRUE", want: ir.FromValue(ir.FromBool(true))},
		{in: "foo", want: ir.FromValue(ir.FromName("foo"))},
		{in: "foo bar", want: ir.FromValue(ir.FromName("foo bar"))},
		{in: "foo bar;", want: ir.FromField(ir.NewField(ir.RefName("foo"), ir.FromName("bar")))},
		{in: "<M>\n<\\M>", want: ir.FromMarkup(ir.NewMarkup("M"))},
	}
	for _, et := range ets {
		e, rest, err := DecodeExpression([]byte(et.in))
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if diff := cmp.Diff(et.want, e); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", et.in, diff)
		}
		if string(rest) != et.rest {
			t.Errorf("%q: rest %q want %q", et.in, rest, et.rest)
		}
	}
}

const doc = `// header
<Group>
  a 1;
  set(x, 2.5);
<\Group>
last "v";
`

func docWant() []*ir.Expression {
	return []*ir.Expression{
		ir.FromComment(ir.NewLineComment(" header")),
		ir.FromMarkup(ir.NewMarkup("Group",
			ir.FromField(ir.NewField(ir.RefName("a"), ir.FromNumber(1))),
			ir.FromCall(ir.NewCall(ir.RefName("set"),
				ir.FromValue(ir.FromName("x")),
				ir.FromValue(ir.FromFloat(2.5)))))),
		ir.FromField(ir.NewField(ir.RefName("last"), ir.FromString("v"))),
	}
}

func TestDecodeDocument(t *testing.T) {
	exprs, rest, err := Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(docWant(), exprs); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if len(rest) != 0 {
		t.Errorf("rest %q", rest)
	}
	parsed, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exprs, parsed); diff != "" {
		t.Errorf("decode and parse differ (-decode +parse)\n%s", diff)
	}
}

func TestDecodeIdempotent(t *testing.T) {
	a, _, err := Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("(-first +second)\n%s", diff)
	}
}

func TestDecodePartial(t *testing.T) {
	exprs, rest, err := Decode([]byte("a 1;\nfoo bar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) != 1 || exprs[0].Type != ir.FieldType {
		t.Errorf("got %v", exprs)
	}
	if string(rest) != "foo bar" {
		t.Errorf("rest %q", rest)
	}
	_, err = Parse([]byte("a 1;\nfoo bar"))
	if !errors.Is(err, token.ErrTrailing) {
		t.Errorf("got %v want %v", err, token.ErrTrailing)
	}
	var de *token.DecodeErr
	if !errors.As(err, &de) {
		t.Fatalf("no position in %v", err)
	}
	if de.Pos.Line() != 1 {
		t.Errorf("error on line %d, want 1", de.Pos.Line())
	}
}

func TestDecodeEmptyAndTerminators(t *testing.T) {
	exprs, err := Parse([]byte(" \n\t\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) != 0 {
		t.Errorf("got %v", exprs)
	}
	exprs, err = Parse([]byte("1;\"s\";;f(TRUE);\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []*ir.Expression{
		ir.FromValue(ir.FromNumber(1)),
		ir.FromValue(ir.FromString("s")),
		ir.FromValue(ir.None()),
		ir.FromCall(ir.NewCall(ir.RefName("f"), ir.FromValue(ir.FromBool(true)))),
	}
	if diff := cmp.Diff(want, exprs); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDecodeFatalPropagates(t *testing.T) {
	for in, e := range map[string]error{
		"a 1;\n/* open":           token.ErrUnterminatedComment,
		"a \"open;\n":             token.ErrUnterminated,
		"<A>\n x 1;\n<\\B>\n":     token.ErrMismatch,
		"f(99999999999999999999)": token.ErrValue,
	} {
		_, _, err := Decode([]byte(in))
		if !errors.Is(err, e) {
			t.Errorf("%q: got %v want %v", in, err, e)
		}
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Expression]*token.Pos{}
	exprs, err := Parse([]byte("a 1;\n  b 2;\n"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) != 2 {
		t.Fatalf("got %d expressions", len(exprs))
	}
	pos := positions[exprs[1]]
	if pos == nil {
		t.Fatal("no position recorded")
	}
	if l, c := pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("got line %d col %d", l, c)
	}
}
