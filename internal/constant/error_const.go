package constant

import (
	"fmt"
	"io"
	"os"
)

// errorStream is where ErrorConst writes; tests can redirect it via
// SetErrorStream without needing a semantic pass in scope.
var errorStream io.Writer = os.Stderr

// SetErrorStream redirects ErrorConst's output, returning the previous
// stream so callers (tests, an embedding REPL) can restore it.
func SetErrorStream(w io.Writer) io.Writer {
	prev := errorStream
	errorStream = w
	return prev
}

// ErrorConst reports msg directly to the configured error stream and
// returns nil. spec.md §9 flags this as a possibly-intentional oddity:
// unlike every other diagnostic in this module, a folding failure bypasses
// the semantic analyser's diag.Sink entirely. That is retained here so
// constant folding keeps working as a standalone facility (e.g. a future
// constant-expression evaluator) without requiring a Sink to exist.
func ErrorConst(msg string) Const {
	fmt.Fprintf(errorStream, "Error: %s\n", msg)
	return nil
}
