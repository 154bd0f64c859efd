package lexer

import (
	"lust/internal/diag"
	"lust/internal/source"
)

type Options struct {
	// Reporter получает лексические ошибки; nil — молчим, но продолжаем лексить.
	// Ошибка в любом случае приходит в поток как token.Invalid.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
