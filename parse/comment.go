package parse

import (
	"errors"

	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/token"
)

func (p *decoder) comment(i int) (*ir.Comment, int, error) {
	return alt(p, i, (*decoder).lineComment, (*decoder).blockComment)
}

func (p *decoder) lineComment(i int) (*ir.Comment, int, error) {
	if !token.HasPrefixAt(p.d, i, token.LineCommentStart) {
		return nil, i, p.expected(token.LineCommentStart, i)
	}
	text, j, err := token.LineComment(p.d, i)
	if err != nil {
		return nil, i, p.commentErr(err, i, j)
	}
	return ir.NewLineComment(text), j, nil
}

func (p *decoder) blockComment(i int) (*ir.Comment, int, error) {
	if !token.HasPrefixAt(p.d, i, token.BlockCommentStart) {
		return nil, i, p.expected(token.BlockCommentStart, i)
	}
	text, j, err := token.BlockComment(p.d, i)
	if err != nil {
		return nil, i, p.commentErr(err, i, j)
	}
	return ir.NewBlockComment(text), j, nil
}

// unterminated comments are reported at their opener, bad utf8 where the
// text starts.
func (p *decoder) commentErr(err error, open, at int) error {
	if errors.Is(err, token.ErrUnterminatedComment) {
		return p.fatal(err, open)
	}
	return p.fatal(err, at)
}
