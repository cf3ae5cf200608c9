package ir

import "strconv"

// WalkFunc is called for each expression with its path and nesting depth.
// Returning false skips the expression's children.
type WalkFunc func(path string, depth int, e *Expression) bool

// Walk visits exprs depth first.  Paths have the form `$[0].body[2].args[1]`.
func Walk(exprs []*Expression, f WalkFunc) {
	walk(exprs, "$", 0, f)
}

func walk(exprs []*Expression, prefix string, depth int, f WalkFunc) {
	for i, e := range exprs {
		path := prefix + "[" + strconv.Itoa(i) + "]"
		if !f(path, depth, e) {
			continue
		}
		switch e.Type {
		case CallType:
			walk(e.Call.Arguments, path+".args", depth+1, f)
		case MarkupType:
			walk(e.Markup.Body, path+".body", depth+1, f)
		}
	}
}

// Count returns the number of expressions in exprs, nested ones included.
func Count(exprs []*Expression) int {
	n := 0
	Walk(exprs, func(string, int, *Expression) bool {
		n++
		return true
	})
	return n
}
