package main

import (
	"context"

	"github.com/defable/fscript/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := doc.posDoc.Offset(int(params.Position.Line), int(params.Position.Character))

	completions := []protocol.CompletionItem{
		{
			Label:  token.KeywordTrue,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: "boolean true",
		},
		{
			Label:  token.KeywordFalse,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: "boolean false",
		},
	}
	open := openBlocks([]byte(doc.content[:off]))
	for i := len(open) - 1; i >= 0; i-- {
		closer := `<\` + open[i] + `>`
		completions = append(completions, protocol.CompletionItem{
			Label:  closer,
			Kind:   protocol.CompletionItemKindSnippet,
			Detail: "close <" + open[i] + ">",
		})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}

// openBlocks returns the names of the markup blocks still open at the end
// of d, outermost first.  Tags inside comments and strings are skipped.
func openBlocks(d []byte) []string {
	var stack []string
	for i := 0; i < len(d); {
		switch {
		case token.HasPrefixAt(d, i, token.LineCommentStart):
			_, j, _ := token.LineComment(d, i)
			i = max(j, i+2)
		case token.HasPrefixAt(d, i, token.BlockCommentStart):
			_, j, _ := token.BlockComment(d, i)
			i = max(j, i+2)
		case d[i] == '"':
			_, j, err := token.Quoted(d, i)
			if err != nil {
				// j is at the closing quote or the end of d
				j++
			}
			i = max(j, i+1)
		case d[i] == '<':
			closing := i+1 < len(d) && d[i+1] == '\\'
			start := i + 1
			if closing {
				start++
			}
			j := token.Alnum(d, start)
			if j == start || j >= len(d) || d[j] != '>' {
				i++
				continue
			}
			name := string(d[start:j])
			if !closing {
				stack = append(stack, name)
			} else if n := len(stack); n > 0 && stack[n-1] == name {
				stack = stack[:n-1]
			}
			i = j + 1
		default:
			i++
		}
	}
	if len(stack) == 0 {
		return nil
	}
	return stack
}
