package token

import (
	"errors"
	"fmt"
)

var (
	ErrMismatch            = errors.New("unexpected input")
	ErrTagName             = errors.New("invalid tag name")
	ErrProperty            = errors.New("invalid script property")
	ErrValue               = errors.New("invalid script value")
	ErrBadUTF8             = errors.New("bad utf8")
	ErrUnterminated        = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrDepth               = errors.New("nesting too deep")
	ErrTrailing            = errors.New("trailing input")
)

// DecodeErr is an error positioned in the decoded document.
//
// A Fatal error is a committed failure: the decoder recognized the start of a
// construct and then found it malformed, so no other alternative is tried.
type DecodeErr struct {
	Err   error
	Pos   Pos
	Fatal bool
}

func NewDecodeErr(e error, p *Pos) *DecodeErr {
	return &DecodeErr{Err: e, Pos: *p}
}

func FatalErr(e error, p *Pos) *DecodeErr {
	return &DecodeErr{Err: e, Pos: *p, Fatal: true}
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

func ExpectedErr(what string, p *Pos) error {
	return NewDecodeErr(fmt.Errorf("%w: expected %s", ErrMismatch, what), p)
}

// IsFatal reports whether err is a committed decode failure.
func IsFatal(err error) bool {
	var de *DecodeErr
	if !errors.As(err, &de) {
		return false
	}
	return de.Fatal
}
