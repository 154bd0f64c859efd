package lexer

import (
	"fmt"

	"lust/internal/diag"
	"lust/internal/token"
)

// scanIdentOrKeyword: максимальный захват [_A-Za-z0-9] (плюс Unicode-буквы), затем поиск по keywords.
// Не-ключевое слово сразу после ':' становится TypeName.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		// не буква: одна руна целиком уходит в Invalid
		lx.bumpRune()
		msg := fmt.Sprintf("unexpected character %q", r)
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), msg)
		return lx.invalid(start, msg)
	}
	lx.bumpRune()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if kw, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kw
		return tok
	}
	if lx.prev == token.Colon {
		tok.Kind = token.TypeName
	}
	return tok
}
