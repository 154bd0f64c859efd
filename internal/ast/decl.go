package ast

import "lust/internal/source"

// StructDecl — struct Name<G> { field* }.
type StructDecl struct {
	StmtBase
	Ident    string
	Generics []*GenericParam
	Fields   []*StructField
}

func (*StructDecl) Kind() Kind   { return KindStructDecl }
func (*StructDecl) Name() string { return KindStructDecl.String() }
func (d *StructDecl) Children() []Node {
	out := appendNodes(d.attrNodes(), d.Generics)
	return appendNodes(out, d.Fields)
}

// StructField — [#[..]] [pub] IDENT : TYPE.
type StructField struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident string
	Type  TypeExpr
	Sp    source.Span
}

func (*StructField) Kind() Kind          { return KindStructField }
func (*StructField) Name() string        { return KindStructField.String() }
func (f *StructField) Span() source.Span { return f.Sp }
func (f *StructField) Children() []Node {
	out := appendNodes(nil, f.Attrs)
	if f.Type != nil {
		out = append(out, f.Type)
	}
	return out
}

// TraitDecl — trait Name<G> (; | { member* }).
// Associated constants are VarDecl nodes with IsConst set.
type TraitDecl struct {
	StmtBase
	Ident    string
	Generics []*GenericParam
	Types    []*MorphismType
	Consts   []*VarDecl
	Methods  []*FunctionDecl
	// HasBody is false for the `trait Name;` form.
	HasBody bool
}

func (*TraitDecl) Kind() Kind   { return KindTraitDecl }
func (*TraitDecl) Name() string { return KindTraitDecl.String() }
func (d *TraitDecl) Children() []Node {
	out := appendNodes(d.attrNodes(), d.Generics)
	out = appendNodes(out, d.Types)
	out = appendNodes(out, d.Consts)
	return appendNodes(out, d.Methods)
}

// MorphismType — ассоциированный тип трейта: type X [= T];
type MorphismType struct {
	Ident   string
	Default TypeExpr // nil, если без значения по умолчанию
	Sp      source.Span
}

func (*MorphismType) Kind() Kind          { return KindMorphismType }
func (*MorphismType) Name() string        { return KindMorphismType.String() }
func (m *MorphismType) Span() source.Span { return m.Sp }
func (m *MorphismType) Children() []Node {
	if m.Default == nil {
		return nil
	}
	return []Node{m.Default}
}

// Attribute — элемент #[...] или #![...]: путь плюс необязательные аргументы.
// Каждый аргумент хранится как исходный текст.
type Attribute struct {
	Path   QualifiedName
	Args   []string
	Global bool
	Sp     source.Span
}

func (*Attribute) Kind() Kind          { return KindAttribute }
func (*Attribute) Name() string        { return KindAttribute.String() }
func (a *Attribute) Span() source.Span { return a.Sp }
func (*Attribute) Children() []Node    { return nil }

// GenericParam — T [: Bound (+ Bound)*] внутри <...>.
type GenericParam struct {
	Types  []TypeExpr
	Bounds []QualifiedName
	Sp     source.Span
}

func (*GenericParam) Kind() Kind          { return KindGenericParam }
func (*GenericParam) Name() string        { return KindGenericParam.String() }
func (g *GenericParam) Span() source.Span { return g.Sp }
func (g *GenericParam) Children() []Node  { return appendNodes(nil, g.Types) }
