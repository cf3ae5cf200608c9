package token

import "unicode/utf8"

// Quoted scans a double quoted string whose opening quote is at i.
//
// Inside the quotes a backslash escapes a quote or another backslash.  A
// backslash before any other byte is kept as is.  The returned end is the
// offset just past the closing quote.
func Quoted(d []byte, i int) (string, int, error) {
	if i >= len(d) || d[i] != '"' {
		return "", i, ErrMismatch
	}
	j := i + 1
	var sd []byte
	for j < len(d) {
		c := d[j]
		switch c {
		case '"':
			if !utf8.Valid(sd) {
				return "", j, ErrBadUTF8
			}
			return string(sd), j + 1, nil
		case '\\':
			if j+1 < len(d) && (d[j+1] == '"' || d[j+1] == '\\') {
				sd = append(sd, d[j+1])
				j += 2
				continue
			}
		}
		sd = append(sd, c)
		j++
	}
	return "", j, ErrUnterminated
}
