package token

import (
	"lust/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Offset returns the byte offset of the first character of the lexeme.
func (t Token) Offset() uint32 {
	return t.Span.Start
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier in either position.
func (t Token) IsIdent() bool { return t.Kind.IsName() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}
