package ast

import "lust/internal/source"

// StmtBase — общая часть всех операторов: атрибуты, видимость, признак ';'.
type StmtBase struct {
	Attrs             []*Attribute
	Vis               Visibility
	EndsWithSemicolon bool
	// Statement is set on an expression that stands as a statement of its own.
	Statement bool
	Sp        source.Span
}

func (b *StmtBase) Base() *StmtBase   { return b }
func (b *StmtBase) Span() source.Span { return b.Sp }

// IsTail reports whether the node is an expression statement without a trailing ';'.
func (b *StmtBase) IsTail() bool {
	return b.Statement && !b.EndsWithSemicolon
}

func (b *StmtBase) displayName(name string) string {
	if b.IsTail() {
		return name + "(RET)"
	}
	return name
}

func (b *StmtBase) attrNodes() []Node {
	return appendNodes(nil, b.Attrs)
}

// Program — корень дерева одного файла.
type Program struct {
	Attrs []*Attribute // #![...]
	Stmts []Stmt
	Sp    source.Span
}

func (*Program) Kind() Kind          { return KindProgram }
func (*Program) Name() string        { return KindProgram.String() }
func (p *Program) Span() source.Span { return p.Sp }
func (p *Program) Children() []Node {
	out := appendNodes(nil, p.Attrs)
	return appendNodes(out, p.Stmts)
}

// Block — { stmt* }.
type Block struct {
	StmtBase
	Stmts []Stmt
}

func (*Block) Kind() Kind   { return KindBlock }
func (*Block) Name() string { return KindBlock.String() }
func (b *Block) Children() []Node {
	return appendNodes(b.attrNodes(), b.Stmts)
}

// Tail returns the trailing expression statement without ';', if any.
func (b *Block) Tail() Expr {
	if len(b.Stmts) == 0 {
		return nil
	}
	if e, ok := b.Stmts[len(b.Stmts)-1].(Expr); ok && e.Base().IsTail() {
		return e
	}
	return nil
}

// VarDecl — let/const объявление. Также используется для const-членов трейта.
type VarDecl struct {
	StmtBase
	IsConst   bool
	IsMutable bool
	Ident     string
	Type      TypeExpr // nil, если не указан
	Init      Expr     // nil для forward-объявления
	// IsForwardDeclOnly: `let x;` / `let x: T;` без инициализатора.
	IsForwardDeclOnly bool
}

func (*VarDecl) Kind() Kind     { return KindVarDecl }
func (d *VarDecl) Name() string { return KindVarDecl.String() }
func (d *VarDecl) Children() []Node {
	out := d.attrNodes()
	if d.Type != nil {
		out = append(out, d.Type)
	}
	if d.Init != nil {
		out = append(out, d.Init)
	}
	return out
}

// FunctionDecl — [async] fn name<G>(params) -> T (; | block).
type FunctionDecl struct {
	StmtBase
	IsAsync  bool
	Ident    string
	Generics []*GenericParam
	Params   *ParamList
	RetType  TypeExpr // всегда задан; по умолчанию unit
	Body     *Block   // nil — только сигнатура
}

func (*FunctionDecl) Kind() Kind   { return KindFunctionDecl }
func (*FunctionDecl) Name() string { return KindFunctionDecl.String() }
func (d *FunctionDecl) Children() []Node {
	out := appendNodes(d.attrNodes(), d.Generics)
	if d.Params != nil {
		out = append(out, d.Params)
	}
	if d.RetType != nil {
		out = append(out, d.RetType)
	}
	if d.Body != nil {
		out = append(out, d.Body)
	}
	return out
}

// IsMethod reports whether the first parameter is a bare `self`.
func (d *FunctionDecl) IsMethod() bool {
	return d.Params != nil && d.Params.HasSelf
}

// ParamList — список параметров функции.
type ParamList struct {
	HasSelf bool
	Params  []*Param
	Sp      source.Span
}

func (*ParamList) Kind() Kind          { return KindParamList }
func (*ParamList) Name() string        { return KindParamList.String() }
func (l *ParamList) Span() source.Span { return l.Sp }
func (l *ParamList) Children() []Node  { return appendNodes(nil, l.Params) }

// Param — IDENT : TYPE.
type Param struct {
	Ident string
	Type  TypeExpr
	Sp    source.Span
}

func (*Param) Kind() Kind          { return KindParam }
func (*Param) Name() string        { return KindParam.String() }
func (p *Param) Span() source.Span { return p.Sp }
func (p *Param) Children() []Node {
	if p.Type == nil {
		return nil
	}
	return []Node{p.Type}
}
