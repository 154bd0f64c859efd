package ast

import "lust/internal/source"

// OpKind — тег операции выражения.
type OpKind uint8

const (
	OpInvalid OpKind = iota

	OpAssign
	OpAssignAdd
	OpAssignSub
	OpAssignMul
	OpAssignDiv
	OpAssignBitOr
	OpAssignBitXor
	OpAssignBitAnd
	OpAssignMod
	OpLogicalOr
	OpLogicalAnd
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitOr
	OpBitXor
	OpBitAnd
	OpPow
	OpMemberVisit

	OpNegate
	OpIncrement
	OpDecrement
	OpLogicalNot
	OpBitNot

	OpLiteralInteger
	OpLiteralFloat
	OpLiteralString
	OpVariable
	OpFunctionCall
	OpBlock
	OpIf

	opCount
)

var opNames = [...]string{
	OpInvalid:        "INVALID",
	OpAssign:         "ASSIGNMENT",
	OpAssignAdd:      "ASSIGNMENT_ADD",
	OpAssignSub:      "ASSIGNMENT_SUBTRACT",
	OpAssignMul:      "ASSIGNMENT_MULTIPLY",
	OpAssignDiv:      "ASSIGNMENT_DIVIDE",
	OpAssignBitOr:    "ASSIGNMENT_BITWISE_OR",
	OpAssignBitXor:   "ASSIGNMENT_BITWISE_XOR",
	OpAssignBitAnd:   "ASSIGNMENT_BITWISE_AND",
	OpAssignMod:      "ASSIGNMENT_MOD",
	OpLogicalOr:      "LOGICAL_OR",
	OpLogicalAnd:     "LOGICAL_AND",
	OpEqual:          "LOGICAL_EQUALITY",
	OpNotEqual:       "LOGICAL_NONE_EQUALITY",
	OpLess:           "LOGICAL_RELATION_LESS_THAN",
	OpLessEqual:      "LOGICAL_RELATION_LESS_THAN_EQUALITY",
	OpGreater:        "LOGICAL_RELATION_GREATER_THAN",
	OpGreaterEqual:   "LOGICAL_RELATION_GREATER_THAN_EQUALITY",
	OpAdd:            "ARITHMETIC_ADD",
	OpSub:            "ARITHMETIC_SUBTRACT",
	OpMul:            "ARITHMETIC_MULTIPLY",
	OpDiv:            "ARITHMETIC_DIVIDE",
	OpMod:            "ARITHMETIC_MOD",
	OpBitOr:          "BITWISE_OR",
	OpBitXor:         "BITWISE_XOR",
	OpBitAnd:         "BITWISE_AND",
	OpPow:            "ARITHMETIC_EXPONENT",
	OpMemberVisit:    "MEMBER_VISIT",
	OpNegate:         "UNARY_ARITHMETIC_MINUS",
	OpIncrement:      "UNARY_ARITHMETIC_SELF_INCREASE",
	OpDecrement:      "UNARY_ARITHMETIC_SELF_DECREASE",
	OpLogicalNot:     "UNARY_LOGICAL_NOT",
	OpBitNot:         "UNARY_BITWISE_INVERSE",
	OpLiteralInteger: "LITERAL_INTEGER",
	OpLiteralFloat:   "LITERAL_FLOAT",
	OpLiteralString:  "LITERAL_STRING",
	OpVariable:       "VARIABLE",
	OpFunctionCall:   "FUNCTION_CALL",
	OpBlock:          "BLOCK",
	OpIf:             "IF",
}

func (o OpKind) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "INVALID"
}

// IsUnary reports whether the operator takes a single (right) operand.
func (o OpKind) IsUnary() bool {
	return o >= OpNegate && o <= OpBitNot
}

// Operator — бинарная или унарная операция. У унарной задан только Right.
type Operator struct {
	StmtBase
	Op    OpKind
	Left  Expr
	Right Expr
}

func (*Operator) Kind() Kind     { return KindOperator }
func (*Operator) exprNode()      {}
func (o *Operator) Name() string { return o.displayName(o.Op.String()) }
func (o *Operator) Children() []Node {
	out := o.attrNodes()
	if o.Left != nil {
		out = append(out, o.Left)
	}
	if o.Right != nil {
		out = append(out, o.Right)
	}
	return out
}

// Literal — целый, вещественный или строковый литерал. Value хранит текст токена.
type Literal struct {
	StmtBase
	Op    OpKind // OpLiteralInteger | OpLiteralFloat | OpLiteralString
	Value string
}

func (l *Literal) Kind() Kind {
	switch l.Op {
	case OpLiteralFloat:
		return KindFloatLiteral
	case OpLiteralString:
		return KindStringLiteral
	default:
		return KindIntegerLiteral
	}
}
func (*Literal) exprNode()          {}
func (l *Literal) Name() string     { return l.displayName(l.Op.String()) }
func (l *Literal) Children() []Node { return l.attrNodes() }

// QualifiedNameExpr — использование имени; с аргументами это вызов функции.
type QualifiedNameExpr struct {
	StmtBase
	Path QualifiedName
	Args *CallArgs // nil — просто переменная
}

func (*QualifiedNameExpr) Kind() Kind { return KindQualifiedName }
func (*QualifiedNameExpr) exprNode()  {}

// Op returns OpFunctionCall for calls and OpVariable otherwise.
func (q *QualifiedNameExpr) Op() OpKind {
	if q.Args != nil {
		return OpFunctionCall
	}
	return OpVariable
}
func (q *QualifiedNameExpr) Name() string { return q.displayName(q.Op().String()) }
func (q *QualifiedNameExpr) Children() []Node {
	out := q.attrNodes()
	if q.Args != nil {
		out = append(out, q.Args)
	}
	return out
}

// CallArgs — аргументы вызова (a, b, c).
type CallArgs struct {
	Args []Expr
	Sp   source.Span
}

func (*CallArgs) Kind() Kind          { return KindCallArgs }
func (*CallArgs) Name() string        { return KindCallArgs.String() }
func (c *CallArgs) Span() source.Span { return c.Sp }
func (c *CallArgs) Children() []Node  { return appendNodes(nil, c.Args) }

// BlockExpr — блок в позиции выражения.
type BlockExpr struct {
	StmtBase
	Block *Block
}

func (*BlockExpr) Kind() Kind     { return KindBlockExpr }
func (*BlockExpr) exprNode()      {}
func (b *BlockExpr) Name() string { return b.displayName(OpBlock.String()) }
func (b *BlockExpr) Children() []Node {
	out := b.attrNodes()
	if b.Block != nil {
		out = append(out, b.Block)
	}
	return out
}

// ConditionalBlockExpr — if cond { } [else { }]. Парсер пока таких узлов не строит.
type ConditionalBlockExpr struct {
	StmtBase
	Cond Expr
	Then *Block
	Else *Block
}

func (*ConditionalBlockExpr) Kind() Kind     { return KindConditionalBlockExpr }
func (*ConditionalBlockExpr) exprNode()      {}
func (c *ConditionalBlockExpr) Name() string { return c.displayName(OpIf.String()) }
func (c *ConditionalBlockExpr) Children() []Node {
	out := c.attrNodes()
	if c.Cond != nil {
		out = append(out, c.Cond)
	}
	if c.Then != nil {
		out = append(out, c.Then)
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}
