package ast

import (
	"strconv"
	"strings"

	"lust/internal/source"
)

// TrivialType — именованный тип: i32, std::string::String.
type TrivialType struct {
	Path QualifiedName
	Sp   source.Span
}

func (*TrivialType) Kind() Kind          { return KindTrivialType }
func (*TrivialType) Name() string        { return KindTrivialType.String() }
func (*TrivialType) typeNode()           {}
func (t *TrivialType) Span() source.Span { return t.Sp }
func (*TrivialType) Children() []Node    { return nil }

// TupleType — (A, B, ...); пустой кортеж — unit.
type TupleType struct {
	Elems []TypeExpr
	Sp    source.Span
}

func (*TupleType) Kind() Kind          { return KindTupleType }
func (*TupleType) Name() string        { return KindTupleType.String() }
func (*TupleType) typeNode()           {}
func (t *TupleType) Span() source.Span { return t.Sp }
func (t *TupleType) Children() []Node  { return appendNodes(nil, t.Elems) }

// IsUnit reports whether the tuple is the empty tuple ().
func (t *TupleType) IsUnit() bool { return len(t.Elems) == 0 }

// ReferenceType — &T или &mut T.
type ReferenceType struct {
	Mutable bool
	Elem    TypeExpr
	Sp      source.Span
}

func (*ReferenceType) Kind() Kind          { return KindReferenceType }
func (*ReferenceType) Name() string        { return KindReferenceType.String() }
func (*ReferenceType) typeNode()           {}
func (r *ReferenceType) Span() source.Span { return r.Sp }
func (r *ReferenceType) Children() []Node {
	if r.Elem == nil {
		return nil
	}
	return []Node{r.Elem}
}

// GenericType — Base<Args...>.
type GenericType struct {
	Base QualifiedName
	Args []TypeExpr
	Sp   source.Span
}

func (*GenericType) Kind() Kind          { return KindGenericType }
func (*GenericType) Name() string        { return KindGenericType.String() }
func (*GenericType) typeNode()           {}
func (g *GenericType) Span() source.Span { return g.Sp }
func (g *GenericType) Children() []Node  { return appendNodes(nil, g.Args) }

// FunctionType — fn(A, B) -> R. Ret всегда задан (по умолчанию unit).
type FunctionType struct {
	Params []TypeExpr
	Ret    TypeExpr
	Sp     source.Span
}

func (*FunctionType) Kind() Kind          { return KindFunctionType }
func (*FunctionType) Name() string        { return KindFunctionType.String() }
func (*FunctionType) typeNode()           {}
func (f *FunctionType) Span() source.Span { return f.Sp }
func (f *FunctionType) Children() []Node {
	out := appendNodes(nil, f.Params)
	if f.Ret != nil {
		out = append(out, f.Ret)
	}
	return out
}

// ArrayType — [T; N].
type ArrayType struct {
	Elem TypeExpr
	Size uint64
	Sp   source.Span
}

func (*ArrayType) Kind() Kind          { return KindArrayType }
func (*ArrayType) Name() string        { return KindArrayType.String() }
func (*ArrayType) typeNode()           {}
func (a *ArrayType) Span() source.Span { return a.Sp }
func (a *ArrayType) Children() []Node {
	if a.Elem == nil {
		return nil
	}
	return []Node{a.Elem}
}

// Unit builds the () type at the given position.
func Unit(sp source.Span) *TupleType {
	return &TupleType{Sp: sp}
}

// IsUnit reports whether t is the empty tuple.
func IsUnit(t TypeExpr) bool {
	tt, ok := t.(*TupleType)
	return ok && tt.IsUnit()
}

// TypeString renders a type expression back to source-like text.
func TypeString(t TypeExpr) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t TypeExpr) {
	switch t := t.(type) {
	case nil:
		b.WriteString("<nil>")
	case *TrivialType:
		b.WriteString(t.Path.String())
	case *TupleType:
		b.WriteByte('(')
		writeTypeList(b, t.Elems)
		b.WriteByte(')')
	case *ReferenceType:
		b.WriteByte('&')
		if t.Mutable {
			b.WriteString("mut ")
		}
		writeType(b, t.Elem)
	case *GenericType:
		b.WriteString(t.Base.String())
		b.WriteByte('<')
		writeTypeList(b, t.Args)
		b.WriteByte('>')
	case *FunctionType:
		b.WriteString("fn(")
		writeTypeList(b, t.Params)
		b.WriteByte(')')
		if t.Ret != nil && !IsUnit(t.Ret) {
			b.WriteString(" -> ")
			writeType(b, t.Ret)
		}
	case *ArrayType:
		b.WriteByte('[')
		writeType(b, t.Elem)
		b.WriteString("; ")
		b.WriteString(strconv.FormatUint(t.Size, 10))
		b.WriteByte(']')
	}
}

func writeTypeList(b *strings.Builder, ts []TypeExpr) {
	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, t)
	}
}
