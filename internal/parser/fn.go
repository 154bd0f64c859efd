package parser

import (
	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parseFunctionDecl: [async] fn IDENT [GENERICS] '(' PARAMS ')' ['->' TYPE] (';' | BLOCK)
// Вне трейта отсутствие и тела, и ';' фатально для объявления. В трейте сигнатура сохраняется.
func (p *Parser) parseFunctionDecl(inTrait bool) *ast.FunctionDecl {
	start := p.tok.Span
	fn := &ast.FunctionDecl{}
	fn.IsAsync = p.optional(token.KwAsync)
	if _, ok := p.expect(token.KwFn, "after 'async'"); !ok {
		return nil
	}
	name, ok := p.expect(token.Ident, "function name")
	if !ok {
		return nil
	}
	fn.Ident = name.Text

	if p.at(token.Lt) {
		fn.Generics = p.parseGenericParams()
	}
	if fn.Params = p.parseParamList(); fn.Params == nil {
		return nil
	}

	if p.optional(token.Arrow) {
		fn.RetType = p.parseType()
	}
	if fn.RetType == nil {
		fn.RetType = ast.Unit(p.emptyAfter(p.lastSpan))
	}

	switch {
	case p.optional(token.Semicolon):
		fn.EndsWithSemicolon = true
	case p.at(token.LBrace):
		if fn.Body = p.parseBlock(); fn.Body == nil {
			return nil
		}
	default:
		p.err(diag.SynExpectFnBody, "expected function body or ';', found "+describe(p.tok))
		if !inTrait {
			return nil
		}
	}
	fn.Sp = p.spanFrom(start)
	return fn
}

// parseParamList: '(' [ self | IDENT ':' TYPE ] (',' IDENT ':' TYPE)* ')'
// Неудачный параметр обрывает список.
func (p *Parser) parseParamList() *ast.ParamList {
	start := p.tok.Span
	if _, ok := p.expect(token.LParen, "parameter list"); !ok {
		return nil
	}
	l := &ast.ParamList{}
	for !p.atOr(token.RParen, token.EOF) {
		if p.at(token.KwSelf) && !l.HasSelf && len(l.Params) == 0 {
			p.advance()
			l.HasSelf = true
		} else {
			prm := p.parseParam()
			if prm == nil {
				break
			}
			l.Params = append(l.Params, prm)
		}
		if !p.optional(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "to close parameter list")
	l.Sp = p.spanFrom(start)
	return l
}

func (p *Parser) parseParam() *ast.Param {
	start := p.tok.Span
	name, ok := p.expect(token.Ident, "parameter name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.Colon, "parameter type"); !ok {
		return nil
	}
	typ := p.parseType()
	if typ == nil {
		return nil
	}
	return &ast.Param{Ident: name.Text, Type: typ, Sp: p.spanFrom(start)}
}
