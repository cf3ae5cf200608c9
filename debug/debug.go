package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Markup bool
	Query  bool
	Patch  bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("FSCRIPT_DEBUG_DECODE")
	d.Markup = boolEnv("FSCRIPT_DEBUG_MARKUP")
	d.Query = boolEnv("FSCRIPT_DEBUG_QUERY")
	d.Patch = boolEnv("FSCRIPT_DEBUG_PATCH")
	d.Match = boolEnv("FSCRIPT_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Markup() bool {
	return d.Markup
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
