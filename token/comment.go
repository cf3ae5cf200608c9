package token

import (
	"bytes"
	"unicode/utf8"
)

const (
	LineCommentStart  = "//"
	BlockCommentStart = "/*"
	BlockCommentEnd   = "*/"
)

// LineComment scans a line comment whose opener is at i.  The text runs up
// to the next "\n", less one "\r" right before it, and the line ending is
// left for the caller.  A comment running into the end of input is an
// error.
func LineComment(d []byte, i int) (string, int, error) {
	if !HasPrefixAt(d, i, LineCommentStart) {
		return "", i, ErrMismatch
	}
	start := i + len(LineCommentStart)
	nl := bytes.IndexByte(d[start:], '\n')
	if nl == -1 {
		return "", len(d), ErrUnterminatedComment
	}
	end := start + nl
	if end > start && d[end-1] == '\r' {
		end--
	}
	text := d[start:end]
	if !utf8.Valid(text) {
		return "", start, ErrBadUTF8
	}
	return string(text), end, nil
}

// BlockComment scans a block comment whose opener is at i.  The returned
// end is just past the closing "*/".
func BlockComment(d []byte, i int) (string, int, error) {
	if !HasPrefixAt(d, i, BlockCommentStart) {
		return "", i, ErrMismatch
	}
	start := i + len(BlockCommentStart)
	n := bytes.Index(d[start:], []byte(BlockCommentEnd))
	if n == -1 {
		return "", len(d), ErrUnterminatedComment
	}
	text := d[start : start+n]
	if !utf8.Valid(text) {
		return "", start, ErrBadUTF8
	}
	return string(text), start + n + len(BlockCommentEnd), nil
}
