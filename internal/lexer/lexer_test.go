package lexer_test

import (
	"fmt"
	"testing"

	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.lust", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

// collectAllTokens собирает все токены до EOF (EOF не включается)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	toks := collectAllTokens(lx)
	got := kindsOf(toks)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("%q:\n got  %v\n want %v", input, got, want)
	}
	return toks
}

func TestLetStatement(t *testing.T) {
	toks := expectKinds(t, "let a = 1;",
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon)
	if toks[1].Text != "a" || toks[3].Text != "1" {
		t.Fatalf("texts: %q %q", toks[1].Text, toks[3].Text)
	}
}

func TestTypePositionReclassification(t *testing.T) {
	toks := expectKinds(t, ": Foo", token.Colon, token.TypeName)
	if toks[1].Text != "Foo" {
		t.Fatalf("text = %q", toks[1].Text)
	}

	expectKinds(t, "let x: u8 = y;",
		token.KwLet, token.Ident, token.Colon, token.TypeName, token.Assign, token.Ident, token.Semicolon)

	// ключевые слова не переклассифицируются
	expectKinds(t, "x: self", token.Ident, token.Colon, token.KwSelf)
	// только непосредственно после ':'
	expectKinds(t, "a::b", token.Ident, token.ColonColon, token.Ident)
	expectKinds(t, ": &T", token.Colon, token.Amp, token.Ident)
}

func TestCommentDoesNotResetLookback(t *testing.T) {
	expectKinds(t, ": // note\nFoo", token.Colon, token.Comment, token.TypeName)
}

func TestPrevKindIgnoresComments(t *testing.T) {
	lx, _ := makeTestLexer("a; // c")
	if lx.PrevKind() != token.EOF {
		t.Fatalf("initial PrevKind = %v", lx.PrevKind())
	}
	lx.Next()
	lx.Next()
	c := lx.Next()
	if c.Kind != token.Comment {
		t.Fatalf("expected comment, got %v", c.Kind)
	}
	if lx.PrevKind() != token.Semicolon {
		t.Fatalf("PrevKind = %v, want SEMICOLON", lx.PrevKind())
	}
}

func TestNumbers(t *testing.T) {
	toks := expectKinds(t, "123.5", token.FloatLit)
	if toks[0].Text != "123.5" {
		t.Fatalf("text = %q", toks[0].Text)
	}
	toks = expectKinds(t, "123.", token.IntLit, token.Dot)
	if toks[0].Text != "123" {
		t.Fatalf("text = %q", toks[0].Text)
	}
	expectKinds(t, "1..5", token.IntLit, token.DotDot, token.IntLit)
	expectKinds(t, "0..=9", token.IntLit, token.DotDotEq, token.IntLit)
	expectKinds(t, "a.0", token.Ident, token.Dot, token.IntLit)
}

func TestStrings(t *testing.T) {
	toks := expectKinds(t, `"hello" "a\"b" ""`, token.StringLit, token.StringLit, token.StringLit)
	if toks[0].Text != "hello" {
		t.Errorf("text = %q", toks[0].Text)
	}
	if toks[1].Text != `a\"b` {
		t.Errorf("escaped text = %q", toks[1].Text)
	}
	if toks[2].Text != "" || toks[2].Span.Len() != 2 {
		t.Errorf("empty string: text=%q span=%v", toks[2].Text, toks[2].Span)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer(`let s = "abc`)
	toks := collectAllTokens(lx)
	last := toks[len(toks)-1]
	if last.Kind != token.Invalid {
		t.Fatalf("last token = %v, want ERROR", last.Kind)
	}
	if last.Text != "unterminated string literal" {
		t.Fatalf("message = %q", last.Text)
	}
	if last.Offset() != 8 {
		t.Fatalf("offset = %d, want 8", last.Offset())
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("diagnostics = %+v", rep.diagnostics)
	}
}

func TestComments(t *testing.T) {
	toks := expectKinds(t, "a // tail\nb", token.Ident, token.Comment, token.Ident)
	if toks[1].Text != "// tail" {
		t.Fatalf("comment text = %q", toks[1].Text)
	}
	expectKinds(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestGreedyOperators(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
	}{
		{"..=", token.DotDotEq},
		{"..", token.DotDot},
		{".", token.Dot},
		{"::", token.ColonColon},
		{"->", token.Arrow},
		{"#[", token.HashBracket},
		{"#!", token.HashBang},
		{"#", token.Hash},
		{"++", token.PlusPlus},
		{"+=", token.PlusAssign},
		{"--", token.MinusMinus},
		{"-=", token.MinusAssign},
		{"**", token.StarStar},
		{"*=", token.StarAssign},
		{"/=", token.SlashAssign},
		{"%=", token.PercentAssign},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"&&", token.AndAnd},
		{"&=", token.AmpAssign},
		{"||", token.OrOr},
		{"|=", token.PipeAssign},
		{"^=", token.CaretAssign},
		{"~", token.Tilde},
		{"'", token.Quote},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks := expectKinds(t, tt.in, tt.want)
			if toks[0].Text != tt.in {
				t.Fatalf("text = %q", toks[0].Text)
			}
		})
	}
}

func TestWordOperators(t *testing.T) {
	expectKinds(t, "a or b and not c",
		token.Ident, token.OrOr, token.Ident, token.AndAnd, token.Bang, token.Ident)
}

func TestOffsets(t *testing.T) {
	lx, _ := makeTestLexer("fn  main() {}")
	want := []uint32{0, 4, 8, 9, 11, 12}
	for i, tok := range collectAllTokens(lx) {
		if tok.Offset() != want[i] {
			t.Fatalf("token %d (%v) offset = %d, want %d", i, tok.Kind, tok.Offset(), want[i])
		}
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, rep := makeTestLexer("a $ b")
	toks := collectAllTokens(lx)
	if got := kindsOf(toks); fmt.Sprint(got) != fmt.Sprint([]token.Kind{token.Ident, token.Invalid, token.Ident}) {
		t.Fatalf("kinds = %v", got)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("diagnostics = %+v", rep.diagnostics)
	}
	// не-буквенная руна целиком
	lx, _ = makeTestLexer("→")
	toks = collectAllTokens(lx)
	if len(toks) != 1 || toks[0].Kind != token.Invalid || toks[0].Span.Len() != 3 {
		t.Fatalf("arrow rune: %+v", toks)
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	toks := expectKinds(t, "let переменная = 1;",
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon)
	if toks[1].Text != "переменная" {
		t.Fatalf("text = %q", toks[1].Text)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	for range 3 {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("after end got %v", k)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if lx.Peek().Text != "a" || lx.Peek().Text != "a" {
		t.Fatal("Peek must be idempotent")
	}
	if lx.Next().Text != "a" || lx.Next().Text != "b" {
		t.Fatal("Next after Peek lost a token")
	}
}

func TestWithoutReporter(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("x.lust", []byte(`"open`))), lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("got %v", tok.Kind)
	}
}
