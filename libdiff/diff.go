// Package libdiff computes line diffs between decoded script trees.
//
// Trees are compared through their outline rendering, so two documents
// differing only in layout or terminators diff as equal.
package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/defable/fscript/encode"
	"github.com/defable/fscript/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + " " + l.Text
}

func outline(exprs []*ir.Expression) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(exprs, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diff returns the outline lines of from and to, each marked as kept,
// inserted or deleted.
func Diff(from, to []*ir.Expression) ([]Line, error) {
	a, err := outline(from)
	if err != nil {
		return nil, err
	}
	b, err := outline(to)
	if err != nil {
		return nil, err
	}
	return DiffText(a, b), nil
}

// DiffText is Diff on already rendered text.
func DiffText(from, to string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Write renders lines to w, coloring insertions and deletions when colors
// is set.
func Write(w io.Writer, lines []Line, colors bool) error {
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, l := range lines {
		s := l.String()
		if colors {
			switch l.Op {
			case Insert:
				s = ins(s)
			case Delete:
				s = del(s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
