// Package parse decodes script documents into [ir.Expression] trees.
//
// # Usage
//
//	// Decode as many expressions as possible, keeping the remainder
//	exprs, rest, err := parse.Decode(data)
//
//	// Decode a whole document, failing on trailing input
//	exprs, err := parse.Parse(data)
//
//	// Decode a single construct
//	v, rest, err := parse.DecodeValue([]byte(`"a\"b"`))
//
// The decoder is a recursive descent over the grammar
//
//	document      = { expression ";" }
//	expression    = ws* (comment | markup | call | field | value) ws*
//	field         = {newline} reference sp* value ";" newline+
//	call          = reference "(" [ expression {"," expression} ] ")" sp*
//	markup        = sp* "<" ident ">" ws* document ws* "<\" ident ">" sp*
//	reference     = ident [ accessor+ ]
//	accessor      = "." ident | "[" (signed-int | ident) ["]"]
//	value         = bool | float | int32 | uint64 | string | name | (empty)
//
// Alternatives are tried in the order written and the first success wins.
// Field, comment and markup expressions carry their own terminator so the
// list ";" after them is optional.
//
// Errors are [*token.DecodeErr] values wrapping the sentinel errors of
// package token.  Fatal errors (unterminated strings and comments, numeric
// overflow, mismatched markup closers, excessive nesting) abort the whole
// decode; other failures only make the decoder try the next alternative.
//
// Decoding is stateless and safe to run concurrently on separate buffers.
package parse
