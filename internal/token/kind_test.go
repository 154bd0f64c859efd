package token_test

import (
	"strings"
	"testing"

	"lust/internal/source"
	"lust/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.IntLit, token.FloatLit, token.StringLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.TypeName, token.KwLet, token.Plus, token.LParen} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.PlusAssign, token.Arrow, token.StarStar, token.DotDotEq,
		token.ColonColon, token.HashBracket, token.HashBang, token.Tilde, token.RBracket,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.KwReturn, token.StringLit, token.EOF, token.Comment} {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

// TestKindStringTotal: каждое значение имеет непустое уникальное имя.
func TestKindStringTotal(t *testing.T) {
	seen := make(map[string]token.Kind)
	for _, k := range token.Kinds() {
		name := k.String()
		if name == "" || name == "UNKNOWN" {
			t.Fatalf("kind %d has no display name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("display name %q shared by %d and %d", name, prev, k)
		}
		seen[name] = k
	}
	if got := token.Kind(250).String(); got != "UNKNOWN" {
		t.Fatalf("out of range kind = %q, want UNKNOWN", got)
	}
}

func TestKeywordsRenderAsLexeme(t *testing.T) {
	for _, k := range token.Kinds() {
		if !k.IsKeyword() {
			continue
		}
		if s := k.String(); strings.ToLower(s) != s {
			t.Errorf("keyword %v must render lower-case", k)
		}
	}
}

func TestTokenOffset(t *testing.T) {
	tk := token.Token{Kind: token.Ident, Span: source.Span{Start: 7, End: 10}, Text: "foo"}
	if tk.Offset() != 7 {
		t.Fatalf("Offset = %d, want 7", tk.Offset())
	}
}
