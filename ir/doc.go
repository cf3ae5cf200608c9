// Package ir provides the tree representation of decoded script documents.
//
// # Overview
//
// A document is an ordered list of [Expression] nodes.  Each expression is
// a tagged union selected by its Type:
//
//   - CommentType: a line (`// ...`) or block (`/* ... */`) comment
//   - MarkupType: a `<name> ... <\name>` block holding a body of expressions
//   - CallType: `reference(arg, ...)` where each argument is an expression
//   - FieldType: a `reference value;` assignment
//   - ValueType: a bare literal
//
// Literal values are one of Bool, Float (32 bit), Number (signed 32 bit),
// BigNumber (unsigned 64 bit), String, Name (an unquoted bare word) or None.
//
// A parent exclusively owns its children; nodes are never shared between
// trees and the decoder does not modify a node once it has returned it.
//
// The IR marshals to and from JSON with a "type" discriminator on every
// tagged union, which is what the encode and patch packages build on.
package ir
