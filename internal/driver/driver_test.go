package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lust/internal/diag"
	"lust/internal/observ"
	"lust/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize_File(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.lust", "let x: i32 = 1;")
	res, err := Tokenize(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{
		token.KwLet, token.Ident, token.Colon, token.TypeName,
		token.Assign, token.IntLit, token.Semicolon, token.EOF,
	}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, res.Tokens[i].Kind, k)
		}
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenize_LexerReportsErrors(t *testing.T) {
	res := TokenizeSource(context.Background(), "<stdin>", []byte("let $ = \"open"), Options{})
	codes := make([]diag.Code, 0, res.Bag.Len())
	for _, d := range res.Bag.Items() {
		codes = append(codes, d.Code)
	}
	if len(codes) != 2 || codes[0] != diag.LexUnknownChar || codes[1] != diag.LexUnterminatedString {
		t.Fatalf("codes = %v, want [LEX1001 LEX1002]", codes)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("last token = %s, want END", last.Kind)
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	if _, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.lust"), Options{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_File(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lust", "fn main() { let a = 1 + 2; }")
	timer := observ.NewTimer()
	res, err := Parse(context.Background(), path, Options{Timer: timer})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Errored || res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Program.Stmts) != 1 {
		t.Fatalf("stmts = %d, want 1", len(res.Program.Stmts))
	}
	rep := timer.Report()
	if len(rep.Phases) != 2 || rep.Phases[0].Name != "load" || rep.Phases[1].Name != "parse" {
		t.Fatalf("phases = %+v", rep.Phases)
	}
}

func TestParseSource_InvalidTokenReportedOnce(t *testing.T) {
	res, err := ParseSource(context.Background(), "<repl>", []byte("let a = 1; let b = $ ;"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Errored {
		t.Fatal("expected errored result")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexInvalidToken {
		t.Fatalf("diagnostics = %v, want single LEX1003", items)
	}
}

func TestParseSource_MaxDiagnostics(t *testing.T) {
	src := "let = ; let = ; let = ; let = ;"
	res, err := ParseSource(context.Background(), "x", []byte(src), Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() > 2 {
		t.Fatalf("bag len = %d, want <= 2", res.Bag.Len())
	}
	if !res.Errored {
		t.Fatal("errored flag must be set even when reports are capped")
	}
}

func TestParseSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := ParseSource(ctx, "x", []byte("let a = 1;"), Options{})
	if err == nil {
		t.Fatal("expected context error")
	}
	if res == nil || res.Program == nil {
		t.Fatal("partial program must still be returned")
	}
}
