package lexer

import (
	"lust/internal/token"
)

// scanNumber: [0-9]+ → IntLit; [0-9]+ '.' [0-9]+ → FloatLit.
// "123." остаётся IntLit, точка уйдёт отдельным токеном.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.eatDigits()

	kind := token.IntLit
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		lx.eatDigits()
		kind = token.FloatLit
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
