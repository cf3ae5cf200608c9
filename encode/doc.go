// Package encode renders decoded script trees for inspection.
//
// The outline format prints one expression per line, indented by nesting
// depth, optionally in color.  The JSON and YAML formats render the IR's
// JSON form.  None of them produce script source.
package encode
