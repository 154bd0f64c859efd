package parser

import (
	"fmt"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parseVarDecl: (let|const) [mut] IDENT [':' TYPE] ( ';' | '=' EXPR ';' )
// let вместе с const — жёсткая ошибка: объявление разбирается до конца и отбрасывается.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.tok.Span
	first := p.advance()
	d := &ast.VarDecl{IsConst: first.Kind == token.KwConst}
	conflict := false

modifiers:
	for {
		switch p.tok.Kind {
		case token.KwMut:
			if d.IsMutable {
				p.err(diag.SynDuplicateModifier, "duplicate 'mut'")
			}
			p.advance()
			d.IsMutable = true
		case token.KwLet, token.KwConst:
			switch {
			case p.tok.Kind == first.Kind:
				p.err(diag.SynDuplicateModifier, fmt.Sprintf("duplicate '%s'", p.tok.Text))
			case !conflict:
				conflict = true
				p.err(diag.SynLetConstConflict, "'let' and 'const' cannot be combined in one declaration")
			}
			p.advance()
		default:
			break modifiers
		}
	}

	name, ok := p.expect(token.Ident, "variable name")
	if !ok {
		return nil
	}
	d.Ident = name.Text

	if p.optional(token.Colon) {
		if d.Type = p.parseType(); d.Type == nil {
			return nil
		}
	}

	if p.optional(token.Semicolon) {
		d.IsForwardDeclOnly = true
		d.EndsWithSemicolon = true
	} else {
		if _, ok := p.expect(token.Assign, "variable initializer or ';'"); !ok {
			return nil
		}
		if d.Init = p.parseExpr(); d.Init == nil {
			return nil
		}
		_, d.EndsWithSemicolon = p.expect(token.Semicolon, "after variable declaration")
	}

	if conflict {
		return nil
	}
	d.Sp = p.spanFrom(start)
	return d
}
