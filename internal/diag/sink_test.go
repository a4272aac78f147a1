package diag

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/lexer"
)

func TestAddAccumulatesWithoutPanicking(t *testing.T) {
	s := NewSink()
	s.Add(lexer.Position{Line: 1, Column: 1}, "first %s", "problem")
	s.Add(lexer.Position{Line: 2, Column: 3}, "second problem")

	if !s.HasErrors() {
		t.Fatal("HasErrors() = false after two Add calls")
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	errs := s.Errors()
	if errs[0].Message != "first problem" || errs[0].Severity != SeverityError {
		t.Errorf("Errors()[0] = %+v, want message %q severity Error", errs[0], "first problem")
	}
}

func TestAddICERecordsThenPanics(t *testing.T) {
	s := NewSink()
	pos := lexer.Position{Line: 5, Column: 7}

	defer func() {
		r := recover()
		ice, ok := r.(*ICE)
		if !ok {
			t.Fatalf("recover() = %v (%T), want *ICE", r, r)
		}
		if ice.Pos != pos || ice.Message != "unreachable: node kind bool" {
			t.Errorf("ICE = %+v, want Pos %v Message %q", ice, pos, "unreachable: node kind bool")
		}

		if s.Count() != 1 {
			t.Fatalf("Count() after AddICE = %d, want 1", s.Count())
		}
		recorded := s.Errors()[0]
		if recorded.Severity != SeverityICE {
			t.Errorf("recorded Severity = %v, want SeverityICE", recorded.Severity)
		}
		if recorded.Message != ice.Message {
			t.Errorf("recorded Message = %q, want %q matching the panic value", recorded.Message, ice.Message)
		}
	}()

	s.AddICE(pos, "unreachable: node kind %s", "bool")
	t.Fatal("AddICE should have panicked before reaching here")
}

func TestFormat(t *testing.T) {
	d := Diagnostic{
		Pos:      lexer.Position{Line: 3, Column: 9},
		Message:  "type mismatch",
		Severity: SeverityError,
	}
	got := Format(d)
	want := "3:9 Error: type mismatch"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "Error" {
		t.Errorf("SeverityError.String() = %q, want %q", SeverityError.String(), "Error")
	}
	if SeverityICE.String() != "ICE" {
		t.Errorf("SeverityICE.String() = %q, want %q", SeverityICE.String(), "ICE")
	}
}

func TestEmitEchoesSourceLineAndCaret(t *testing.T) {
	s := NewSink()
	s.Add(lexer.Position{Line: 2, Column: 5}, "bad token")

	var buf strings.Builder
	s.Emit(&buf, "line one\nline two\nline three")

	out := buf.String()
	if !strings.Contains(out, "line two") {
		t.Errorf("Emit output missing offending source line, got:\n%s", out)
	}
	if !strings.Contains(out, "    ^") {
		t.Errorf("Emit output missing caret at column 5, got:\n%s", out)
	}
}
