package parser

import (
	"lust/internal/ast"
	"lust/internal/token"
)

// parseStructDecl: struct IDENT [GENERICS] '{' FIELD* '}' ';'*
// FIELD = [attrs] [pub] IDENT ':' TYPE (',' | ';'); перед '}' разделитель не обязателен.
func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.tok.Span
	p.advance() // struct
	name, ok := p.expect(token.Ident, "struct name")
	if !ok {
		return nil
	}
	s := &ast.StructDecl{Ident: name.Text}
	if p.at(token.Lt) {
		s.Generics = p.parseGenericParams()
	}
	if _, ok := p.expect(token.LBrace, "struct body"); !ok {
		return nil
	}
	for !p.atOr(token.RBrace, token.EOF) {
		f := p.parseStructField()
		if f == nil {
			continue // expect уже сдвинул поток
		}
		s.Fields = append(s.Fields, f)
		if p.at(token.RBrace) {
			break
		}
		if !p.optional(token.Comma) && !p.optional(token.Semicolon) {
			p.expect(token.Comma, "between struct fields")
		}
	}
	p.expect(token.RBrace, "to close struct body")
	for p.optional(token.Semicolon) {
	}
	s.Sp = p.spanFrom(start)
	return s
}

func (p *Parser) parseStructField() *ast.StructField {
	start := p.tok.Span
	f := &ast.StructField{}
	for p.at(token.HashBracket) {
		f.Attrs = append(f.Attrs, p.parseAttributeGroup()...)
	}
	if p.at(token.KwPub) {
		f.Vis = p.parseVisibility()
	}
	name, ok := p.expect(token.Ident, "field name")
	if !ok {
		return nil
	}
	f.Ident = name.Text
	if _, ok := p.expect(token.Colon, "field type"); !ok {
		return nil
	}
	if f.Type = p.parseType(); f.Type == nil {
		return nil
	}
	f.Sp = p.spanFrom(start)
	return f
}
