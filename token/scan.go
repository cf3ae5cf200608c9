package token

import "bytes"

func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsIdent reports whether c may appear in an identifier.
func IsIdent(c byte) bool {
	return IsAlnum(c) || c == '_'
}

// IsBareName reports whether c may appear in a bare word literal,
// which unlike an identifier admits spaces.
func IsBareName(c byte) bool {
	return IsIdent(c) || c == ' '
}

// IsSpace reports horizontal whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsMultiSpace reports horizontal whitespace and line break bytes.
func IsMultiSpace(c byte) bool {
	return IsSpace(c) || c == '\r' || c == '\n'
}

// While returns the end of the run of bytes starting at i satisfying f.
func While(d []byte, i int, f func(byte) bool) int {
	for i < len(d) && f(d[i]) {
		i++
	}
	return i
}

func SkipSpace(d []byte, i int) int {
	return While(d, i, IsSpace)
}

func SkipMultiSpace(d []byte, i int) int {
	return While(d, i, IsMultiSpace)
}

// LineEnding returns the length of the "\n" or "\r\n" at i, or 0.
func LineEnding(d []byte, i int) int {
	if i < len(d) && d[i] == '\n' {
		return 1
	}
	if i+1 < len(d) && d[i] == '\r' && d[i+1] == '\n' {
		return 2
	}
	return 0
}

// SkipLineEndings consumes consecutive line endings starting at i.
func SkipLineEndings(d []byte, i int) int {
	for {
		n := LineEnding(d, i)
		if n == 0 {
			return i
		}
		i += n
	}
}

func HasPrefixAt(d []byte, i int, pre string) bool {
	if i > len(d) {
		return false
	}
	return bytes.HasPrefix(d[i:], []byte(pre))
}

// Sign returns the length of an optional '+' or '-' at i.
func Sign(d []byte, i int) int {
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		return 1
	}
	return 0
}

func Digits(d []byte, i int) int {
	return While(d, i, IsDigit)
}

func Ident(d []byte, i int) int {
	return While(d, i, IsIdent)
}

func BareName(d []byte, i int) int {
	return While(d, i, IsBareName)
}

func Alnum(d []byte, i int) int {
	return While(d, i, IsAlnum)
}
