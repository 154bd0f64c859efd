package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
)

const sampleProgram = `#![no_std]

// точка входа
pub struct Config {
    name: String,
    retries: u32,
}

trait Runner<T: Clone> {
    type Output;
    fn run(self, cfg: &Config) -> Output;
}

#[inline]
pub(crate) async fn start(cfg: &Config, jobs: [u8; 4]) -> (i32, bool) {
    let mut n: i32 = 0;
    let done;
    n += cfg.retries * 2;
    log::info("start");
    { n }
}
`

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment\n"} {
		prog, bag := parseSource(t, input)
		if len(prog.Stmts) != 0 || bag.Len() != 0 {
			t.Fatalf("%q: expected empty program, got %d stmts, %s", input, len(prog.Stmts), diagnosticsSummary(bag))
		}
	}
}

func TestParse_SampleProgram(t *testing.T) {
	prog, bag := parseSource(t, sampleProgram)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	wantKinds := []ast.Kind{ast.KindStructDecl, ast.KindTraitDecl, ast.KindFunctionDecl}
	if len(prog.Stmts) != len(wantKinds) {
		t.Fatalf("expected %d statements, got %d", len(wantKinds), len(prog.Stmts))
	}
	for i, k := range wantKinds {
		if prog.Stmts[i].Kind() != k {
			t.Errorf("stmt %d: got %v, want %v", i, prog.Stmts[i].Kind(), k)
		}
	}
	if len(prog.Attrs) != 1 || prog.Attrs[0].Args != nil {
		t.Fatalf("unexpected global attrs: %+v", prog.Attrs)
	}
	fn := prog.Stmts[2].(*ast.FunctionDecl)
	if fn.Vis != ast.VisCrate || !fn.IsAsync || len(fn.Attrs) != 1 {
		t.Fatalf("unexpected fn header: vis=%v async=%v attrs=%d", fn.Vis, fn.IsAsync, len(fn.Attrs))
	}
	if len(fn.Body.Stmts) != 5 {
		t.Fatalf("expected 5 body statements, got %d", len(fn.Body.Stmts))
	}
	if d := fn.Body.Stmts[1].(*ast.VarDecl); !d.IsForwardDeclOnly {
		t.Fatal("let done; must be a forward declaration")
	}
}

func TestParse_LexicalErrorStopsParsing(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStmts int
	}{
		{name: "unterminated string", input: `let a = 1; let b = "abc`, wantStmts: 1},
		{name: "unknown char", input: "let a = 1; let b = 2 @ 3; let c = 4;", wantStmts: 2},
		{name: "unknown char first", input: "$ let a = 1;", wantStmts: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, bag, res := parseSourceWith(t, tt.input, Options{})
			if !res.Errored {
				t.Fatal("expected Errored")
			}
			if bag.Len() != 1 || bag.Items()[0].Code != diag.LexInvalidToken {
				t.Fatalf("expected a single %s, got %s", diag.LexInvalidToken.ID(), diagnosticsSummary(bag))
			}
			if len(prog.Stmts) != tt.wantStmts {
				t.Fatalf("expected %d statements, got %d", tt.wantStmts, len(prog.Stmts))
			}
		})
	}
}

func TestParse_MaxErrorsCapsReportsOnly(t *testing.T) {
	input := strings.Repeat("let = 1;\n", 10)
	_, bag, res := parseSourceWith(t, input, Options{MaxErrors: 3})
	if !res.Errored {
		t.Fatal("error flag must be set regardless of the cap")
	}
	if got := bag.CountErrors(); got != 3 {
		t.Fatalf("expected 3 reported errors, got %d: %s", got, diagnosticsSummary(bag))
	}
}

func TestParse_NoReporter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.lust", []byte("let = ;")))
	p := New(lexer.New(file, lexer.Options{}), Options{})
	prog := p.Parse()
	if prog == nil || !p.IsError() {
		t.Fatalf("expected partial program with error flag, got %v / %v", prog, p.IsError())
	}
}

func TestParse_ContextCancelled(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.lust", []byte(sampleProgram)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := ParseFile(ctx, lexer.New(file, lexer.Options{}), Options{})
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.Err)
	}
	if res.Program == nil {
		t.Fatal("program must be returned even when cancelled")
	}
}

func dumpTree(n ast.Node) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, depth int) bool {
		fmt.Fprintf(&b, "%s%s %v\n", strings.Repeat("  ", depth), n.Name(), n.Span())
		return true
	})
	return b.String()
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{sampleProgram, "let const x = 1; fn f( { } struct S { a b }"}
	for _, input := range inputs {
		first, bag1 := parseSource(t, input)
		for range 5 {
			again, bag2 := parseSource(t, input)
			if dumpTree(first) != dumpTree(again) {
				t.Fatalf("tree differs between runs for %q", input)
			}
			if diagnosticsSummary(bag1) != diagnosticsSummary(bag2) {
				t.Fatalf("diagnostics differ between runs for %q", input)
			}
		}
	}
}

func TestParse_RecoveryTerminates(t *testing.T) {
	inputs := []string{
		"}}}}",
		"fn",
		"struct",
		"trait T {",
		"#[",
		"#!",
		"pub(",
		"let x: [",
		"fn f(a: i32, ",
		"{ { {",
		"a = = = b;",
		"struct S { #[x] }",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, bag := parseSource(t, input)
			if !bag.HasErrors() {
				t.Fatalf("expected errors, got %s", diagnosticsSummary(bag))
			}
		})
	}
}
