package parser

import (
	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parseTraitDecl: trait IDENT [GENERICS] ( ';' | '{' MEMBER* '}' )
// MEMBER = type IDENT ['=' TYPE] ';' | const IDENT ':' TYPE ['=' EXPR] ';' | FUNCTION_DECL
func (p *Parser) parseTraitDecl() *ast.TraitDecl {
	start := p.tok.Span
	p.advance() // trait
	name, ok := p.expect(token.Ident, "trait name")
	if !ok {
		return nil
	}
	t := &ast.TraitDecl{Ident: name.Text}
	if p.at(token.Lt) {
		t.Generics = p.parseGenericParams()
	}
	if p.optional(token.Semicolon) {
		t.EndsWithSemicolon = true
		t.Sp = p.spanFrom(start)
		return t
	}
	if _, ok := p.expect(token.LBrace, "trait body or ';'"); !ok {
		return nil
	}
	t.HasBody = true

	for !p.atOr(token.RBrace, token.EOF) {
		var attrs []*ast.Attribute
		for p.at(token.HashBracket) {
			attrs = append(attrs, p.parseAttributeGroup()...)
		}
		switch p.tok.Kind {
		case token.Semicolon:
			p.advance()
		case token.KwType:
			if m := p.parseMorphismType(); m != nil {
				t.Types = append(t.Types, m)
			}
			if len(attrs) > 0 {
				p.report(diag.SynBadAttribute, diag.SevWarning, attrs[0].Sp, "attributes on associated types are ignored")
			}
		case token.KwConst:
			if c := p.parseVarDecl(); c != nil {
				c.Attrs = attrs
				t.Consts = append(t.Consts, c)
			}
		case token.KwAsync, token.KwFn:
			if fn := p.parseFunctionDecl(true); fn != nil {
				fn.Attrs = attrs
				t.Methods = append(t.Methods, fn)
			}
		case token.RBrace, token.EOF:
			if len(attrs) > 0 {
				p.report(diag.SynBadAttribute, diag.SevWarning, attrs[0].Sp,
					"attribute is not followed by a trait member")
			}
		default:
			p.err(diag.SynUnexpectedTraitMember, "expected 'type', 'const' or 'fn' in trait body, found "+describe(p.tok))
			p.advance()
		}
	}
	p.expect(token.RBrace, "to close trait body")
	for p.optional(token.Semicolon) {
	}
	t.Sp = p.spanFrom(start)
	return t
}

// parseMorphismType: type IDENT ['=' TYPE] ';'
func (p *Parser) parseMorphismType() *ast.MorphismType {
	start := p.tok.Span
	p.advance() // type
	name, ok := p.expect(token.Ident, "associated type name")
	if !ok {
		return nil
	}
	m := &ast.MorphismType{Ident: name.Text}
	if p.optional(token.Assign) {
		if m.Default = p.parseType(); m.Default == nil {
			return nil
		}
	}
	p.expect(token.Semicolon, "after associated type")
	m.Sp = p.spanFrom(start)
	return m
}
