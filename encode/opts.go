package encode

import "github.com/defable/fscript/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent sets the outline indentation unit, two spaces by default.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
