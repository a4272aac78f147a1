// Package lexer defines the token and position contract produced by the
// (external, out of scope) scanner and consumed by the AST and diagnostics
// sink. It does not implement scanning; it only fixes the shapes the rest of
// the pipeline depends on.
package lexer

import "fmt"

// Position identifies a location in a source file. Column is a rune count,
// not a byte offset, so multi-byte UTF-8 source is reported consistently.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position as "line:col", the form used by diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.Offset == 0
}
