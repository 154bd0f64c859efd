package parser

import (
	"strconv"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parseType разбирает выражение типа по первому токену.
// Возвращает nil (интерфейсный) при ошибке, которая уже зарепорчена.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.tok.Kind {
	case token.KwFn:
		if t := p.parseFunctionType(); t != nil {
			return t
		}
	case token.LBracket:
		if t := p.parseArrayType(); t != nil {
			return t
		}
	case token.LParen:
		if t := p.parseTupleType(); t != nil {
			return t
		}
	case token.Amp, token.AndAnd:
		if t := p.parseReferenceType(); t != nil {
			return t
		}
	case token.Ident, token.TypeName, token.KwSelf, token.KwSuper, token.KwCrate:
		return p.parseNamedType()
	default:
		p.err(diag.SynExpectType, "expected type, found "+describe(p.tok))
		p.advance()
	}
	return nil
}

// fn '(' TYPE,* ')' ['->' TYPE]
func (p *Parser) parseFunctionType() *ast.FunctionType {
	start := p.tok.Span
	p.advance() // fn
	if _, ok := p.expect(token.LParen, "function type parameters"); !ok {
		return nil
	}
	ft := &ast.FunctionType{}
	params, ok := p.parseTypeList(token.RParen)
	if !ok {
		return nil
	}
	ft.Params = params
	if p.optional(token.Arrow) {
		if ft.Ret = p.parseType(); ft.Ret == nil {
			return nil
		}
	} else {
		ft.Ret = ast.Unit(p.emptyAfter(p.lastSpan))
	}
	ft.Sp = p.spanFrom(start)
	return ft
}

// '[' TYPE ';' INT ']'
// Плохой размер — ошибка, но тип строится с Size = 0.
func (p *Parser) parseArrayType() *ast.ArrayType {
	start := p.tok.Span
	p.advance() // [
	at := &ast.ArrayType{}
	if at.Elem = p.parseType(); at.Elem == nil {
		return nil
	}
	if _, ok := p.expect(token.Semicolon, "array size"); !ok {
		return nil
	}
	sizeTok := p.tok
	if sizeTok.Kind == token.IntLit {
		p.advance()
		n, err := strconv.ParseUint(sizeTok.Text, 10, 64)
		if err != nil {
			p.report(diag.SynBadArraySize, diag.SevError, sizeTok.Span, "invalid array size "+strconv.Quote(sizeTok.Text))
			n = 0
		}
		at.Size = n
	} else {
		p.report(diag.SynBadArraySize, diag.SevError, p.diagSpan(), "expected array size, found "+describe(sizeTok))
		if !p.at(token.RBracket) {
			p.advance()
		}
	}
	if _, ok := p.expect(token.RBracket, "to close array type"); !ok {
		return nil
	}
	at.Sp = p.spanFrom(start)
	return at
}

// '(' TYPE,* ')'; () — unit.
func (p *Parser) parseTupleType() *ast.TupleType {
	start := p.tok.Span
	p.advance() // (
	elems, ok := p.parseTypeList(token.RParen)
	if !ok {
		return nil
	}
	return &ast.TupleType{Elems: elems, Sp: p.spanFrom(start)}
}

// '&' ['mut'] TYPE. '&&' лексер склеивает, поэтому это две ссылки подряд.
func (p *Parser) parseReferenceType() *ast.ReferenceType {
	start := p.tok.Span
	double := p.advance().Kind == token.AndAnd
	mutable := p.optional(token.KwMut)
	elem := p.parseType()
	if elem == nil {
		return nil
	}
	ref := &ast.ReferenceType{Mutable: mutable, Elem: elem, Sp: p.spanFrom(start)}
	if double {
		return &ast.ReferenceType{Elem: ref, Sp: ref.Sp}
	}
	return ref
}

// QUALIFIED_NAME ['<' TYPE,* '>']
func (p *Parser) parseNamedType() ast.TypeExpr {
	start := p.tok.Span
	name, ok := p.parseQualifiedName(true)
	if !ok {
		return nil
	}
	if !p.optional(token.Lt) {
		return &ast.TrivialType{Path: name, Sp: p.spanFrom(start)}
	}
	args, ok := p.parseTypeList(token.Gt)
	if !ok {
		return nil
	}
	return &ast.GenericType{Base: name, Args: args, Sp: p.spanFrom(start)}
}

// parseTypeList читает TYPE (',' TYPE)* до закрывающего токена включительно.
// Открывающий токен уже съеден.
func (p *Parser) parseTypeList(closing token.Kind) ([]ast.TypeExpr, bool) {
	var out []ast.TypeExpr
	for !p.atOr(closing, token.EOF) {
		t := p.parseType()
		if t == nil {
			return nil, false
		}
		out = append(out, t)
		if !p.optional(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(closing, "to close type list"); !ok {
		return nil, false
	}
	return out, true
}
