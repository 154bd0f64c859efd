package parser

import (
	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// parsePrimary: LITERAL | QUALIFIED_NAME ['(' ARGS ')'] | '(' EXPR ')' | BLOCK | if ...
func (p *Parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit:
		return p.parseLiteral()
	case token.Ident, token.TypeName, token.KwSelf, token.KwSuper, token.KwCrate:
		if e := p.parseNameOrCall(); e != nil {
			return e
		}
	case token.LParen:
		return p.parseParenExpr()
	case token.LBrace:
		start := p.tok.Span
		if b := p.parseBlock(); b != nil {
			return &ast.BlockExpr{StmtBase: ast.StmtBase{Sp: p.spanFrom(start)}, Block: b}
		}
	case token.KwIf:
		p.err(diag.FutIfExprNotSupported, "'if' expressions are not supported yet")
		p.advance()
	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+describe(p.tok))
		p.advance()
	}
	return nil
}

func (p *Parser) parseLiteral() *ast.Literal {
	tok := p.advance()
	op := ast.OpLiteralInteger
	switch tok.Kind {
	case token.FloatLit:
		op = ast.OpLiteralFloat
	case token.StringLit:
		op = ast.OpLiteralString
	}
	return &ast.Literal{StmtBase: ast.StmtBase{Sp: tok.Span}, Op: op, Value: tok.Text}
}

// имя или вызов: a::b::c [ '(' ARGS ')' ]
func (p *Parser) parseNameOrCall() *ast.QualifiedNameExpr {
	start := p.tok.Span
	name, ok := p.parseQualifiedName(true)
	if !ok {
		return nil
	}
	e := &ast.QualifiedNameExpr{Path: name}
	if p.at(token.LParen) {
		if e.Args = p.parseCallArgs(); e.Args == nil {
			return nil
		}
	}
	e.Sp = p.spanFrom(start)
	return e
}

// '(' EXPR (',' EXPR)* ')'. Неудачный аргумент пропускается.
func (p *Parser) parseCallArgs() *ast.CallArgs {
	start := p.tok.Span
	p.advance() // (
	args := &ast.CallArgs{}
	for !p.atOr(token.RParen, token.EOF) {
		if arg := p.parseExpr(); arg != nil {
			args.Args = append(args.Args, arg)
		}
		if !p.optional(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, "to close call arguments"); !ok {
		return nil
	}
	args.Sp = p.spanFrom(start)
	return args
}

func (p *Parser) parseParenExpr() ast.Expr {
	start := p.advance().Span // (
	e := p.parseExpr()
	if e == nil {
		return nil
	}
	if _, ok := p.expect(token.RParen, "to close parenthesized expression"); !ok {
		return nil
	}
	e.Base().Sp = p.spanFrom(start)
	return e
}

// parseQualifiedName: NAME ('::' NAME)*
// allowPathKw разрешает начинать путь с self/super/crate.
func (p *Parser) parseQualifiedName(allowPathKw bool) (ast.QualifiedName, bool) {
	var segs []string
	switch {
	case p.tok.Kind.IsName():
		segs = append(segs, p.advance().Text)
	case allowPathKw && p.atOr(token.KwSelf, token.KwSuper, token.KwCrate):
		segs = append(segs, p.advance().Kind.String())
	default:
		p.err(diag.SynExpectIdentifier, "expected name, found "+describe(p.tok))
		p.advance()
		return ast.QualifiedName{}, false
	}
	for p.optional(token.ColonColon) {
		tok, ok := p.expectName("after '::'")
		if !ok {
			return ast.QualifiedName{}, false
		}
		segs = append(segs, tok.Text)
	}
	last := len(segs) - 1
	q := ast.QualifiedName{Name: segs[last]}
	if last > 0 {
		q.Namespaces = segs[:last]
	}
	return q, true
}
