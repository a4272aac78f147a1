// Package diag implements the diagnostics sink the semantic analyser
// reports errors to. It never halts traversal: callers record a diagnostic
// and keep going so a single run surfaces as many problems as possible.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

// Severity classifies a recorded diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityICE
)

func (s Severity) String() string {
	if s == SeverityICE {
		return "ICE"
	}
	return "Error"
}

// Diagnostic is one recorded problem, localized to a source position.
type Diagnostic struct {
	Pos      lexer.Position
	Message  string
	Severity Severity
}

// Format renders a diagnostic as "<line:col> Error: <text>", the line
// format spec.md's diagnostics sink contract specifies.
func Format(d Diagnostic) string {
	return fmt.Sprintf("%s %s: %s", d.Pos, d.Severity, d.Message)
}

// Sink accumulates diagnostics produced over one analysis run.
type Sink struct {
	items []Diagnostic
}

// NewSink returns an empty diagnostics sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add records a formatted error at pos. It never panics or halts the caller.
func (s *Sink) Add(pos lexer.Position, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	})
}

// Errors returns every diagnostic recorded so far, in recording order.
func (s *Sink) Errors() []Diagnostic {
	return s.items
}

// Count returns the number of diagnostics recorded.
func (s *Sink) Count() int {
	return len(s.items)
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.items) > 0
}

// AddICE records a fatal internal-compiler-error diagnostic on the sink,
// tagged SeverityICE, and then panics with the same *ICE. Analyzer.Run's
// deferred recover is the only intended catcher: it turns the panic into
// an abort of the current traversal without re-recording anything, since
// the diagnostic this call appended already carries the location and
// message (spec.md §7).
func (s *Sink) AddICE(pos lexer.Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.items = append(s.items, Diagnostic{
		Pos:      pos,
		Message:  msg,
		Severity: SeverityICE,
	})
	panic(&ICE{Pos: pos, Message: msg})
}

// Emit writes every diagnostic to w, each followed by the offending source
// line (if available) and a caret pointing at the column, matching the
// style of a traditional single-pass compiler's error output.
func (s *Sink) Emit(w io.Writer, source string) {
	lines := strings.Split(source, "\n")
	for _, d := range s.items {
		fmt.Fprintln(w, Format(d))
		if d.Pos.Line >= 1 && d.Pos.Line <= len(lines) {
			line := lines[d.Pos.Line-1]
			fmt.Fprintln(w, line)
			col := d.Pos.Column
			if col < 1 {
				col = 1
			}
			fmt.Fprintln(w, strings.Repeat(" ", col-1)+"^")
		}
	}
}

// ICE is a fatal internal-compiler-error signal. It is not a user-facing
// diagnostic in the Sink.Add sense: Sink.AddICE raises it as a panic and
// it is recovered only at the top of Analyzer.Run, where it is turned
// into a location-traced abort. It is a programming-bug signal.
type ICE struct {
	Pos     lexer.Position
	Message string
}

func (e *ICE) Error() string {
	return fmt.Sprintf("%s ICE: %s", e.Pos, e.Message)
}
