package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

// scripted отдаёт заранее заданные строки, затем io.EOF.
type scripted struct {
	lines   []string
	prompts []string
	history []string
}

func (s *scripted) Prompt(p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scripted) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"let a = 1;", false},
		{"fn main() {", true},
		{"fn main() {\n let a = (1 +", true},
		{"fn main() {\n}", false},
		{"#[inline", true},
		{"#![no_std]", false},
		{"let s = \"open", true},
		{"let s = \"done\";", false},
		{"}", false},
		{"let $ = 1;", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := NeedsMore(tt.src); got != tt.want {
			t.Errorf("NeedsMore(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestRun_MultilineInput(t *testing.T) {
	r := &scripted{lines: []string{"fn main() {", "  let a = 1;", "}", ":quit", "let never = 1;"}}
	var out bytes.Buffer
	if err := Run(context.Background(), r, &out, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.lines) != 1 {
		t.Fatalf(":quit should stop reading, %d lines left", len(r.lines))
	}
	want := []string{promptMain, promptCont, promptCont, promptMain}
	if strings.Join(r.prompts, "|") != strings.Join(want, "|") {
		t.Fatalf("prompts = %q, want %q", r.prompts, want)
	}
	if !strings.Contains(out.String(), "FUNCTION_DECL") {
		t.Fatalf("AST tree missing from output:\n%s", out.String())
	}
	if len(r.history) != 2 || r.history[0] != "fn main() {   let a = 1; }" {
		t.Fatalf("history = %q", r.history)
	}
}

func TestRun_DiagnosticsAndCommands(t *testing.T) {
	r := &scripted{lines: []string{
		":format dot",
		"let = 1;",
		":format nope",
		":tokens",
		"let b = 2;",
		":bogus",
	}}
	var out bytes.Buffer
	if err := Run(context.Background(), r, &out, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"format dot",
		"SYN2102",
		"digraph",
		"usage: :format",
		"token listing on",
		"IDENT",
		"unknown command :bogus",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestRun_EOFMidInputStillParses(t *testing.T) {
	r := &scripted{lines: []string{"fn main() {"}}
	var out bytes.Buffer
	if err := Run(context.Background(), r, &out, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "SYN") {
		t.Fatalf("expected a syntax diagnostic for the unterminated block:\n%s", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, &scripted{}, io.Discard, Options{}); err == nil {
		t.Fatal("expected context error")
	}
}
