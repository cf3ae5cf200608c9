package ir

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() []*Expression {
	return []*Expression{
		FromComment(NewLineComment(" header")),
		FromMarkup(NewMarkup("Group",
			FromField(NewField(RefName("a"), FromNumber(1))),
			FromCall(NewCall(RefProperty("obj", AccessName("set"), AccessIndex(2)),
				FromValue(FromName("x")),
				FromValue(FromFloat(2.5)))))),
		FromField(NewField(RefProperty("last", AccessIndexName("k")), FromString("v"))),
		FromValue(FromBigNumber(1 << 40)),
	}
}

func TestExpressionString(t *testing.T) {
	exprs := sample()
	want := []string{
		`LineComment " header"`,
		"Markup <Group>",
		`Field last[k] = String("v")`,
		"Value BigNumber(1099511627776)",
	}
	for i, e := range exprs {
		if got := e.String(); got != want[i] {
			t.Errorf("%d: got %q want %q", i, got, want[i])
		}
	}
	call := exprs[1].Markup.Body[1]
	if got := call.String(); got != "Call obj.set[2](2)" {
		t.Errorf("got %q", got)
	}
	if got := call.Name(); got != "obj" {
		t.Errorf("got name %q", got)
	}
	if got := FromValue(None()).String(); got != "Value None" {
		t.Errorf("got %q", got)
	}
}

func TestWalk(t *testing.T) {
	var paths []string
	Walk(sample(), func(path string, depth int, e *Expression) bool {
		paths = append(paths, path+" "+strings.Repeat(">", depth)+e.Type.String())
		return true
	})
	want := []string{
		"$[0] Comment",
		"$[1] Markup",
		"$[1].body[0] >Field",
		"$[1].body[1] >Call",
		"$[1].body[1].args[0] >>Value",
		"$[1].body[1].args[1] >>Value",
		"$[2] Field",
		"$[3] Value",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if n := Count(sample()); n != len(want) {
		t.Errorf("count %d", n)
	}
	n := 0
	Walk(sample(), func(_ string, _ int, e *Expression) bool {
		n++
		return e.Type != MarkupType
	})
	if n != 4 {
		t.Errorf("skipping markup children visited %d", n)
	}
}

func TestTruth(t *testing.T) {
	for _, v := range []Value{FromBool(true), FromFloat(0.5), FromNumber(-1), FromBigNumber(1), FromString("x"), FromName("n")} {
		if !Truth(v) {
			t.Errorf("%s should be true", v)
		}
	}
	for _, v := range []Value{FromBool(false), FromFloat(0), FromNumber(0), FromBigNumber(0), FromString(""), None()} {
		if Truth(v) {
			t.Errorf("%s should be false", v)
		}
	}
}

func TestJSON(t *testing.T) {
	exprs := sample()
	d, err := json.Marshal(exprs)
	if err != nil {
		t.Fatal(err)
	}
	var back []*Expression
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exprs, back); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if !strings.Contains(string(d), `"type":"Markup"`) {
		t.Errorf("types not marshaled by name: %s", d)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{"type":"Field"}`,
		`{"type":"Bogus"}`,
		`{"type":"Field","field":{"reference":{"type":"Name","name":""},"value":{"type":"None"}}}`,
		`{"type":"Field","field":{"reference":{"type":"Property","name":"a"},"value":{"type":"None"}}}`,
		`{"type":"Field","field":{"reference":{"type":"Name","name":"a","accessors":[{"type":"Name","name":"b"}]},"value":{"type":"None"}}}`,
		`{"type":"Value","value":{"type":"Int"}}`,
		`{"type":"Markup","markup":{"name":"A","body":[null]}}`,
		`{"type":"Call","call":{"reference":{"type":"Name","name":"f"},"arguments":[{"type":"Value","value":{"type":"None"}},null]}}`,
	} {
		var e Expression
		if err := json.Unmarshal([]byte(in), &e); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestEnumText(t *testing.T) {
	for _, k := range Kinds() {
		d, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%s: got %s %v", k, back, err)
		}
	}
	for _, ty := range Types() {
		d, _ := ty.MarshalText()
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != ty {
			t.Errorf("%s: got %s %v", ty, back, err)
		}
	}
}
