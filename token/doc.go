// Package token provides the lexical layer of the script decoder.
//
// It holds byte predicates and scanners for identifiers, bare names, digit
// runs, whitespace, line endings, keywords, quoted strings and comments, all
// operating on offsets into an in-memory buffer.  [PosDoc] and [Pos] turn those
// offsets into line and column information and [DecodeErr] carries the error
// taxonomy shared by the decoder.
package token
