package parser

import (
	"strings"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/token"
)

// collectAttributes разбирает подряд идущие #[...] (в pendingAttrs) и #![...] (в Program).
func (p *Parser) collectAttributes() {
	for {
		switch p.tok.Kind {
		case token.HashBracket:
			p.pendingAttrs = append(p.pendingAttrs, p.parseAttributeGroup()...)
		case token.HashBang:
			p.program.Attrs = append(p.program.Attrs, p.parseAttributeGroup()...)
		default:
			return
		}
	}
}

// parseAttributeGroup: '#[' ATTR (',' ATTR)* ']'  |  '#!' '[' ATTR (',' ATTR)* ']'
func (p *Parser) parseAttributeGroup() []*ast.Attribute {
	global := p.advance().Kind == token.HashBang
	if global {
		if _, ok := p.expect(token.LBracket, "global attribute"); !ok {
			return nil
		}
	}
	var attrs []*ast.Attribute
	for !p.atOr(token.RBracket, token.EOF) {
		attr := p.parseAttribute(global)
		if attr == nil {
			break
		}
		attrs = append(attrs, attr)
		if !p.optional(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, "to close attribute")
	return attrs
}

// parseAttribute: QUALIFIED_NAME [ '(' ARG (',' ARG)* ')' ]
// Аргумент — исходный текст токенов до ',' или ')' на нулевой глубине.
func (p *Parser) parseAttribute(global bool) *ast.Attribute {
	start := p.tok.Span
	path, ok := p.parseQualifiedName(false)
	if !ok {
		return nil
	}
	attr := &ast.Attribute{Path: path, Global: global}
	if p.optional(token.LParen) {
		attr.Args = p.parseAttributeArgs()
	}
	attr.Sp = p.spanFrom(start)
	return attr
}

func (p *Parser) parseAttributeArgs() []string {
	content := p.lx.File().Content
	args := []string{}
	depth := 0
	argStart, argEnd := -1, -1
	flush := func() {
		if argStart >= 0 {
			args = append(args, strings.TrimSpace(string(content[argStart:argEnd])))
		}
		argStart, argEnd = -1, -1
	}
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 {
				flush()
				p.expect(token.RParen, "to close attribute arguments")
				return args
			}
			depth--
		case token.Comma:
			if depth == 0 {
				flush()
				p.advance()
				continue
			}
		}
		if argStart < 0 {
			argStart = int(p.tok.Span.Start)
		}
		argEnd = int(p.tok.Span.End)
		p.advance()
	}
	p.err(diag.SynBadAttribute, "unterminated attribute argument list")
	return args
}
