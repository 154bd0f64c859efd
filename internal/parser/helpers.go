package parser

import (
	"fmt"
	"slices"

	"lust/internal/diag"
	"lust/internal/fix"
	"lust/internal/source"
	"lust/internal/token"
)

// pull достаёт следующий значимый токен из лексера.
// Лексическая ошибка репортится один раз и дальше ведёт себя как конец входа.
func (p *Parser) pull() token.Token {
	if p.halted {
		return token.Token{Kind: token.EOF, Span: p.emptyAfter(p.tok.Span)}
	}
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case token.Comment:
			continue
		case token.Invalid:
			p.halted = true
			p.report(diag.LexInvalidToken, diag.SevError, tok.Span, tok.Text)
			return token.Token{Kind: token.EOF, Span: source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start}}
		}
		return tok
	}
}

// advance — съедает текущий токен и обновляет lastSpan. На EOF ничего не делает.
func (p *Parser) advance() token.Token {
	tok := p.tok
	if tok.Kind == token.EOF {
		return tok
	}
	p.lastSpan = tok.Span
	p.tok = p.pull()
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.tok.Kind)
}

// optional съедает токен только если он совпал.
func (p *Parser) optional(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect — ожидаем конкретный токен. Если нет — репортим и пропускаем ровно один токен.
func (p *Parser) expect(k token.Kind, reason string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	msg := fmt.Sprintf("expected %s, found %s", k, describe(p.tok))
	if reason != "" {
		msg += ": " + reason
	}
	var fixes []diag.Fix
	if k == token.Semicolon {
		fixes = append(fixes, fix.InsertText("insert `;`", p.emptyAfter(p.lastSpan), ";"))
	}
	p.report(expectCode(k), diag.SevError, p.diagSpan(), msg, fixes...)
	p.advance()
	return token.Token{Kind: token.Invalid, Span: p.lastSpan}, false
}

// expectName принимает Ident или TypeName (идентификатор после ':' лексер помечает как TYPE).
func (p *Parser) expectName(reason string) (token.Token, bool) {
	if p.tok.Kind.IsName() {
		return p.advance(), true
	}
	return p.expect(token.Ident, reason)
}

func expectCode(k token.Kind) diag.Code {
	switch k {
	case token.Semicolon:
		return diag.SynExpectSemicolon
	case token.Ident:
		return diag.SynExpectIdentifier
	default:
		return diag.SynUnexpectedToken
	}
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "END"
	case tok.Kind.IsName() || tok.Kind.IsLiteral():
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}

// diagSpan — лучший span для диагностики: на EOF указываем сразу за последним токеном.
func (p *Parser) diagSpan() source.Span {
	if p.tok.Kind == token.EOF && p.lastSpan.End > p.tok.Span.Start {
		return p.emptyAfter(p.lastSpan)
	}
	return p.tok.Span
}

func (p *Parser) emptyAfter(sp source.Span) source.Span {
	return source.Span{File: sp.File, Start: sp.End, End: sp.End}
}

// spanFrom покрывает от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// репортует ошибку на текущем токене
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, fixes ...diag.Fix) {
	if p.halted && code != diag.LexInvalidToken {
		// после лексической ошибки молчим: всё дальнейшее — её следствие
		if sev == diag.SevError {
			p.errored = true
		}
		return
	}
	if sev == diag.SevError {
		p.errored = true
		p.opts.CurrentErrors++
		if p.opts.Enough() {
			return // достигли максимального количества ошибок
		}
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, nil, fixes)
	}
}
