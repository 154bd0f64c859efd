package parser

import (
	"lust/internal/ast"
	"lust/internal/token"
)

type binaryLevel struct {
	ops        map[token.Kind]ast.OpKind
	rightAssoc bool
}

// binaryLevels — лестница приоритетов от самого слабого к самому сильному.
// Каждый уровень кроме присваивания левоассоциативен.
var binaryLevels = []binaryLevel{
	{ops: map[token.Kind]ast.OpKind{
		token.Assign:        ast.OpAssign,
		token.PlusAssign:    ast.OpAssignAdd,
		token.MinusAssign:   ast.OpAssignSub,
		token.StarAssign:    ast.OpAssignMul,
		token.SlashAssign:   ast.OpAssignDiv,
		token.PipeAssign:    ast.OpAssignBitOr,
		token.CaretAssign:   ast.OpAssignBitXor,
		token.AmpAssign:     ast.OpAssignBitAnd,
		token.PercentAssign: ast.OpAssignMod,
	}, rightAssoc: true},
	{ops: map[token.Kind]ast.OpKind{token.OrOr: ast.OpLogicalOr}},
	{ops: map[token.Kind]ast.OpKind{token.AndAnd: ast.OpLogicalAnd}},
	{ops: map[token.Kind]ast.OpKind{token.EqEq: ast.OpEqual}},
	{ops: map[token.Kind]ast.OpKind{token.BangEq: ast.OpNotEqual}},
	{ops: map[token.Kind]ast.OpKind{token.Lt: ast.OpLess}},
	{ops: map[token.Kind]ast.OpKind{token.LtEq: ast.OpLessEqual}},
	{ops: map[token.Kind]ast.OpKind{token.Gt: ast.OpGreater}},
	{ops: map[token.Kind]ast.OpKind{token.GtEq: ast.OpGreaterEqual}},
	{ops: map[token.Kind]ast.OpKind{token.Plus: ast.OpAdd}},
	{ops: map[token.Kind]ast.OpKind{token.Minus: ast.OpSub}},
	{ops: map[token.Kind]ast.OpKind{token.Star: ast.OpMul}},
	{ops: map[token.Kind]ast.OpKind{token.Slash: ast.OpDiv}},
	{ops: map[token.Kind]ast.OpKind{token.Pipe: ast.OpBitOr}},
	{ops: map[token.Kind]ast.OpKind{token.Caret: ast.OpBitXor}},
	{ops: map[token.Kind]ast.OpKind{token.Amp: ast.OpBitAnd}},
	{ops: map[token.Kind]ast.OpKind{token.Percent: ast.OpMod}},
	{ops: map[token.Kind]ast.OpKind{token.StarStar: ast.OpPow}},
	{ops: map[token.Kind]ast.OpKind{token.Dot: ast.OpMemberVisit}},
}

var unaryOps = map[token.Kind]ast.OpKind{
	token.Minus:      ast.OpNegate,
	token.PlusPlus:   ast.OpIncrement,
	token.MinusMinus: ast.OpDecrement,
	token.Bang:       ast.OpLogicalNot,
	token.Tilde:      ast.OpBitNot,
}

// parseExpr — вход в разбор выражения.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) ast.Expr {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	lvl := binaryLevels[level]
	left := p.parseBinary(level + 1)
	if left == nil {
		return nil
	}
	for {
		op, ok := lvl.ops[p.tok.Kind]
		if !ok {
			return left
		}
		p.advance()
		next := level + 1
		if lvl.rightAssoc {
			next = level
		}
		right := p.parseBinary(next)
		if right == nil {
			return nil
		}
		left = &ast.Operator{
			StmtBase: ast.StmtBase{Sp: left.Span().Cover(right.Span())},
			Op:       op,
			Left:     left,
			Right:    right,
		}
		if lvl.rightAssoc {
			return left
		}
	}
}

// parseUnary: ('-' | '++' | '--' | '!' | '~')* PRIMARY
func (p *Parser) parseUnary() ast.Expr {
	op, ok := unaryOps[p.tok.Kind]
	if !ok {
		return p.parsePrimary()
	}
	start := p.advance().Span
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}
	return &ast.Operator{
		StmtBase: ast.StmtBase{Sp: start.Cover(operand.Span())},
		Op:       op,
		Right:    operand,
	}
}
