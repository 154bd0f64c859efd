package parser

import (
	"lust/internal/ast"
	"lust/internal/token"
)

// parseGenericParams: '<' PARAM (',' PARAM)* '>'
// PARAM = TYPE [':' BOUND ('+' BOUND)*], BOUND — квалифицированное имя.
func (p *Parser) parseGenericParams() []*ast.GenericParam {
	p.advance() // '<'
	var out []*ast.GenericParam
	for !p.atOr(token.Gt, token.EOF) {
		g := p.parseGenericParam()
		if g == nil {
			break
		}
		out = append(out, g)
		if !p.optional(token.Comma) {
			break
		}
	}
	p.expect(token.Gt, "to close generic parameter list")
	return out
}

func (p *Parser) parseGenericParam() *ast.GenericParam {
	start := p.tok.Span
	typ := p.parseType()
	if typ == nil {
		return nil
	}
	g := &ast.GenericParam{Types: []ast.TypeExpr{typ}}
	if p.optional(token.Colon) {
		for {
			bound, ok := p.parseQualifiedName(false)
			if !ok {
				break
			}
			g.Bounds = append(g.Bounds, bound)
			if !p.optional(token.Plus) {
				break
			}
		}
	}
	g.Sp = p.spanFrom(start)
	return g
}
