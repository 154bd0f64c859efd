package lexer

import (
	"lust/internal/diag"
	"lust/internal/token"
)

// scanString: "..." с экранированием одного символа после '\' (\" не закрывает строку).
// Escape-последовательности не декодируются: Text — сырое тело без кавычек.
// Перевод строки внутри допустим; EOF до закрывающей кавычки — Invalid.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: string(lx.file.Content[sp.Start+1 : sp.End-1]),
			}
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump() // на EOF — no-op
		default:
			lx.cursor.Bump()
		}
	}
	const msg = "unterminated string literal"
	lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), msg)
	return lx.invalid(start, msg)
}

// scanComment: "//" до конца строки, без самого '\n'.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}
