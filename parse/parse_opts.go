package parse

import (
	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

const DefaultMaxDepth = 256

type parseOpts struct {
	maxDepth   int
	strictNone bool
	positions  map[*ir.Expression]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of calls and markup blocks.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// StrictNone makes the empty literal match only before ';', ',', ')', a
// line break or the end of input, instead of anywhere.
func StrictNone() ParseOption {
	return func(o *parseOpts) { o.strictNone = true }
}

// ParsePositions records the start of every decoded expression in m.
// Expressions decoded in abandoned alternatives may be recorded too.
func ParsePositions(m map[*ir.Expression]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
