// Package ast describes the syntax tree produced by the parser.
//
// The taxonomy is closed: every node is one of the structs in this package and
// reports its grammar rule through Kind. Parents own their children exclusively;
// Children never contains nil and lists owned nodes in source order.
package ast

import "lust/internal/source"

// Kind тег грамматического правила узла.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram
	KindVarDecl
	KindFunctionDecl
	KindParamList
	KindParam
	KindBlock
	KindStructDecl
	KindStructField
	KindTraitDecl
	KindMorphismType
	KindAttribute
	KindGenericParam
	KindOperator
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindQualifiedName
	KindCallArgs
	KindBlockExpr
	KindConditionalBlockExpr
	KindTrivialType
	KindTupleType
	KindReferenceType
	KindGenericType
	KindFunctionType
	KindArrayType

	kindCount
)

var kindNames = [...]string{
	KindInvalid:              "NONE",
	KindProgram:              "PROGRAM",
	KindVarDecl:              "VAR_DECL",
	KindFunctionDecl:         "FUNCTION_DECL",
	KindParamList:            "INVOKE_PARAM_LIST",
	KindParam:                "INVOKE_PARAM",
	KindBlock:                "BLOCK",
	KindStructDecl:           "STRUCT_DECL",
	KindStructField:          "STRUCT_FIELD",
	KindTraitDecl:            "TRAIT_DECL",
	KindMorphismType:         "MORPHISM_TYPE",
	KindAttribute:            "ATTRIBUTE",
	KindGenericParam:         "GENERIC_PARAM",
	KindOperator:             "OPERATOR",
	KindIntegerLiteral:       "INTEGER_LITERAL",
	KindFloatLiteral:         "FLOAT_LITERAL",
	KindStringLiteral:        "STRING_LITERAL",
	KindQualifiedName:        "QUALIFIED_NAME_USAGE",
	KindCallArgs:             "INVOKE_ARGS",
	KindBlockExpr:            "BLOCK_EXPR",
	KindConditionalBlockExpr: "CONDITIONAL_BLOCK_EXPR",
	KindTrivialType:          "TYPE_TRIVIAL",
	KindTupleType:            "TYPE_TUPLE",
	KindReferenceType:        "TYPE_REFERENCE",
	KindGenericType:          "TYPE_GENERIC",
	KindFunctionType:         "TYPE_FUNCTION",
	KindArrayType:            "TYPE_ARRAY",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Node — общий контракт всех узлов дерева.
type Node interface {
	Kind() Kind
	// Name is the display name used by dumps and visualizers.
	Name() string
	// Children returns owned children in order; absent optionals are skipped.
	Children() []Node
	Span() source.Span
}

// Stmt is anything that can stand in a statement list.
type Stmt interface {
	Node
	Base() *StmtBase
}

// Expr is a statement that yields a value.
type Expr interface {
	Stmt
	exprNode()
}

// TypeExpr is a type expression.
type TypeExpr interface {
	Node
	typeNode()
}

// Walk обходит дерево в pre-order. Если fn возвращает false, потомки узла пропускаются.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

func appendNodes[T Node](out []Node, items []T) []Node {
	for _, it := range items {
		out = append(out, it)
	}
	return out
}
