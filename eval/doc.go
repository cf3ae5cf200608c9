// Package eval runs expr-lang predicates over decoded script trees.
//
// A query is compiled once and evaluated against every expression of a
// tree.  Each evaluation sees an [Env] describing one expression:
//
//	kind   "Comment", "Markup", "Call", "Field" or "Value"
//	name   reference or markup name, "" otherwise
//	ref    full reference of a field or call, e.g. "foo.bar[2]"
//	path   tree path, e.g. "$[1].body[0]"
//	depth  nesting depth, 0 at top level
//	value  Go value of a field or value literal, nil otherwise
//	vkind  kind of that literal, e.g. "Number"
//	truth  truthiness of that literal
//	args   number of call arguments
//	text   comment text, string or name literal text
package eval
