package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/defable/fscript/token"
)

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.def")
	bad := filepath.Join(dir, "bad.def")
	if err := os.WriteFile(good, []byte("<G>\n  a 1;\n<\\G>\nb 2;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("a 1;\n  b \"open;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	res := checkFile(cfg, good)
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.exprs != 2 {
		t.Errorf("got %d expressions", res.exprs)
	}
	res = checkFile(cfg, bad)
	if !errors.Is(res.err, token.ErrUnterminated) {
		t.Fatalf("got %v", res.err)
	}
	if loc := errLocation(res.err); loc != "2:5" {
		t.Errorf("got %s", loc)
	}
	if loc := errLocation(os.ErrNotExist); loc != "0:0" {
		t.Errorf("got %s", loc)
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{Strict: true, MaxDepth: 4}
	if n := len(cfg.parseOpts()); n != 2 {
		t.Errorf("got %d options", n)
	}
	if n := len((&MainConfig{}).parseOpts()); n != 0 {
		t.Errorf("got %d options", n)
	}
}
