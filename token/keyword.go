package token

const (
	KeywordTrue  = "TRUE"
	KeywordFalse = "FALSE"
)

// Keyword matches the boolean keywords at i.  Matching is case sensitive
// and does not look at what follows the keyword.
func Keyword(d []byte, i int) (v bool, end int, ok bool) {
	switch {
	case HasPrefixAt(d, i, KeywordTrue):
		return true, i + len(KeywordTrue), true
	case HasPrefixAt(d, i, KeywordFalse):
		return false, i + len(KeywordFalse), true
	}
	return false, i, false
}
