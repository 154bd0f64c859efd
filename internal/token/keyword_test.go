package token_test

import (
	"testing"

	"lust/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want token.Kind
	}{
		{"let", token.KwLet},
		{"const", token.KwConst},
		{"fn", token.KwFn},
		{"struct", token.KwStruct},
		{"trait", token.KwTrait},
		{"type", token.KwType},
		{"async", token.KwAsync},
		{"pub", token.KwPub},
		{"crate", token.KwCrate},
		{"super", token.KwSuper},
		{"self", token.KwSelf},
		{"return", token.KwReturn},
		{"or", token.OrOr},
		{"and", token.AndAnd},
		{"not", token.Bang},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.word)
		if !ok || got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v,%v; want %v,true", tt.word, got, ok, tt.want)
		}
	}
}

func TestLookupKeywordCaseSensitive(t *testing.T) {
	for _, w := range []string{"Let", "FN", "Self", "OR", "foo", "u8", ""} {
		if k, ok := token.LookupKeyword(w); ok {
			t.Errorf("LookupKeyword(%q) unexpectedly matched %v", w, k)
		}
	}
}
