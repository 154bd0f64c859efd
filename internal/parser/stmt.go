package parser

import (
	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parseStatement собирает висящие атрибуты, разбирает один оператор и
// прикрепляет к нему атрибуты. nil — оператор не построен (ошибка уже зарепорчена).
func (p *Parser) parseStatement() ast.Stmt {
	p.collectAttributes()
	if p.at(token.EOF) || (p.depth > 0 && p.at(token.RBrace)) {
		return nil
	}
	// забираем атрибуты до разбора: вложенные операторы тела не должны их увидеть
	attrs := p.pendingAttrs
	p.pendingAttrs = nil
	stmt := p.parseItem()
	if stmt == nil {
		p.pendingAttrs = append(attrs, p.pendingAttrs...)
		return nil
	}
	if len(attrs) > 0 {
		base := stmt.Base()
		base.Attrs = append(attrs, base.Attrs...)
	}
	return stmt
}

// parseItem выбирает по первому токену нужный распознаватель.
func (p *Parser) parseItem() ast.Stmt {
	switch p.tok.Kind {
	case token.KwLet, token.KwConst:
		if d := p.parseVarDecl(); d != nil {
			return d
		}
	case token.KwAsync, token.KwFn:
		if fn := p.parseFunctionDecl(false); fn != nil {
			return fn
		}
	case token.KwPub:
		return p.parseVisibilityPrefixed()
	case token.LBrace:
		if b := p.parseBlock(); b != nil {
			b.EndsWithSemicolon = p.optional(token.Semicolon)
			return b
		}
	case token.KwStruct:
		if s := p.parseStructDecl(); s != nil {
			return s
		}
	case token.KwTrait:
		if t := p.parseTraitDecl(); t != nil {
			return t
		}
	default:
		return p.parseExprStatement()
	}
	return nil
}

// parseExprStatement: EXPR ';'. Без ';' это хвостовое выражение (значение блока).
func (p *Parser) parseExprStatement() ast.Stmt {
	e := p.parseExpr()
	if e == nil {
		return nil
	}
	base := e.Base()
	base.Statement = true
	base.EndsWithSemicolon = p.optional(token.Semicolon)
	return e
}

// parseVisibilityPrefixed: pub[(self|super|crate)] STATEMENT
func (p *Parser) parseVisibilityPrefixed() ast.Stmt {
	vis := p.parseVisibility()
	stmt := p.parseItem()
	if stmt == nil {
		return nil
	}
	stmt.Base().Vis = vis
	return stmt
}

// parseVisibility съедает 'pub' и необязательное ограничение в скобках.
func (p *Parser) parseVisibility() ast.Visibility {
	p.advance() // pub
	if !p.optional(token.LParen) {
		return ast.VisPublic
	}
	vis := ast.VisPublic
	switch p.tok.Kind {
	case token.KwSelf:
		vis = ast.VisPrivate
	case token.KwSuper:
		vis = ast.VisSuper
	case token.KwCrate:
		vis = ast.VisCrate
	default:
		p.err(diag.SynBadVisibility, "expected 'self', 'super' or 'crate' in visibility, found "+describe(p.tok))
		if p.at(token.RParen) {
			p.advance()
			return vis
		}
	}
	p.advance()
	p.expect(token.RParen, "to close visibility restriction")
	return vis
}

// parseBlock: '{' STATEMENT* '}'
func (p *Parser) parseBlock() *ast.Block {
	start := p.tok.Span
	if _, ok := p.expect(token.LBrace, "block"); !ok {
		return nil
	}
	b := &ast.Block{}
	p.depth++
	defer func() { p.depth-- }()
	for !p.atOr(token.RBrace, token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			b.Stmts = append(b.Stmts, stmt)
		}
	}
	p.dropDanglingAttrs("attribute is not followed by a statement")
	p.expect(token.RBrace, "to close block")
	b.Sp = p.spanFrom(start)
	return b
}
