package lexer

import (
	"fmt"

	"lust/internal/diag"
	"lust/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Решение всегда принимается по одному символу вперёд.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('.', '.', '='):
		return lx.emit(token.DotDotEq, start)
	case lx.try2('.', '.'):
		return lx.emit(token.DotDot, start)
	case lx.try2(':', ':'):
		return lx.emit(token.ColonColon, start)
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('#', '['):
		return lx.emit(token.HashBracket, start)
	case lx.try2('#', '!'):
		return lx.emit(token.HashBang, start)
	case lx.try2('+', '+'):
		return lx.emit(token.PlusPlus, start)
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start)
	case lx.try2('-', '-'):
		return lx.emit(token.MinusMinus, start)
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start)
	case lx.try2('*', '*'):
		return lx.emit(token.StarStar, start)
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start)
	case lx.try2('%', '='):
		return lx.emit(token.PercentAssign, start)
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start)
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start)
	case lx.try2('&', '='):
		return lx.emit(token.AmpAssign, start)
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start)
	case lx.try2('|', '='):
		return lx.emit(token.PipeAssign, start)
	case lx.try2('^', '='):
		return lx.emit(token.CaretAssign, start)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	if k, ok := singleCharKinds[ch]; ok {
		return lx.emit(k, start)
	}

	// неизвестный символ
	msg := fmt.Sprintf("unexpected character %q", rune(ch))
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), msg)
	return lx.invalid(start, msg)
}

var singleCharKinds = map[byte]token.Kind{
	'+':  token.Plus,
	'-':  token.Minus,
	'*':  token.Star,
	'/':  token.Slash,
	'%':  token.Percent,
	'=':  token.Assign,
	'!':  token.Bang,
	'<':  token.Lt,
	'>':  token.Gt,
	'&':  token.Amp,
	'|':  token.Pipe,
	'^':  token.Caret,
	'~':  token.Tilde,
	'.':  token.Dot,
	':':  token.Colon,
	'#':  token.Hash,
	'\'': token.Quote,
	',':  token.Comma,
	';':  token.Semicolon,
	'(':  token.LParen,
	')':  token.RParen,
	'{':  token.LBrace,
	'}':  token.RBrace,
	'[':  token.LBracket,
	']':  token.RBracket,
}
