package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"lust/internal/ast"
	"lust/internal/source"
)

// ASTNodeOutput — сериализуемое представление узла для json/yaml.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Kind     string          `json:"kind" yaml:"kind"`
	Detail   string          `json:"detail,omitempty" yaml:"detail,omitempty"`
	Span     string          `json:"span" yaml:"span"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildASTOutput converts the tree rooted at n into its serializable form.
func BuildASTOutput(n ast.Node, fs *source.FileSet) ASTNodeOutput {
	out := ASTNodeOutput{
		Type:   n.Name(),
		Kind:   n.Kind().String(),
		Detail: nodeDetail(n),
		Span:   formatSpan(n.Span(), fs),
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, BuildASTOutput(c, fs))
	}
	return out
}

// ASTFormats — форматы, которые понимает FormatAST.
var ASTFormats = []string{"pretty", "tree", "json", "yaml", "dot"}

// FormatAST renders prog in one of ASTFormats.
func FormatAST(w io.Writer, format string, prog *ast.Program, fs *source.FileSet) error {
	switch format {
	case "pretty":
		return FormatASTPretty(w, prog, fs)
	case "tree":
		return FormatASTTree(w, prog, fs)
	case "json":
		return FormatASTJSON(w, prog, fs)
	case "yaml":
		return FormatASTYAML(w, prog, fs)
	case "dot":
		return FormatASTDot(w, prog)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// FormatASTPretty печатает дерево с отступами в стиле ├─ / └─.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	fmt.Fprintf(w, "%s (span: %s)\n", rootHeader(prog, fs), formatSpan(prog.Span(), fs))
	children := prog.Children()
	for i, c := range children {
		writePrettyNode(w, c, fs, "", i == len(children)-1)
	}
	return nil
}

func writePrettyNode(w io.Writer, n ast.Node, fs *source.FileSet, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	label := n.Name()
	if d := nodeDetail(n); d != "" {
		label += " " + d
	}
	fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, label, formatSpan(n.Span(), fs))
	children := n.Children()
	for i, c := range children {
		writePrettyNode(w, c, fs, prefix+next, i == len(children)-1)
	}
}

func FormatASTJSON(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog, fs))
}

func FormatASTYAML(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildASTOutput(prog, fs)); err != nil {
		return err
	}
	return enc.Close()
}

func rootHeader(prog *ast.Program, fs *source.FileSet) string {
	if fs == nil {
		return prog.Name()
	}
	return fmt.Sprintf("%s %s", prog.Name(), displayPath(fs, prog.Span().File, PathModeAuto))
}

// nodeDetail — короткая подпись узла: имя, модификаторы, значение литерала.
func nodeDetail(n ast.Node) string {
	var parts []string
	if s, ok := n.(ast.Stmt); ok && s.Base().Vis != ast.VisPrivate {
		parts = append(parts, s.Base().Vis.String())
	}
	switch n := n.(type) {
	case *ast.VarDecl:
		kw := "let"
		if n.IsConst {
			kw = "const"
		}
		parts = append(parts, kw)
		if n.IsMutable {
			parts = append(parts, "mut")
		}
		parts = append(parts, n.Ident)
		if n.IsForwardDeclOnly {
			parts = append(parts, "(forward)")
		}
	case *ast.FunctionDecl:
		if n.IsAsync {
			parts = append(parts, "async")
		}
		parts = append(parts, n.Ident)
	case *ast.ParamList:
		if n.HasSelf {
			parts = append(parts, "self")
		}
	case *ast.Param:
		parts = append(parts, n.Ident)
	case *ast.StructDecl:
		parts = append(parts, n.Ident)
	case *ast.StructField:
		if n.Vis != ast.VisPrivate {
			parts = append(parts, n.Vis.String())
		}
		parts = append(parts, n.Ident)
	case *ast.TraitDecl:
		parts = append(parts, n.Ident)
	case *ast.MorphismType:
		parts = append(parts, n.Ident)
	case *ast.Attribute:
		s := n.Path.String()
		if n.Args != nil {
			s += "(" + strings.Join(n.Args, ", ") + ")"
		}
		if n.Global {
			s = "!" + s
		}
		parts = append(parts, s)
	case *ast.GenericParam:
		if len(n.Bounds) > 0 {
			bounds := make([]string, len(n.Bounds))
			for i, b := range n.Bounds {
				bounds[i] = b.String()
			}
			parts = append(parts, ": "+strings.Join(bounds, " + "))
		}
	case *ast.Literal:
		if n.Op == ast.OpLiteralString {
			parts = append(parts, fmt.Sprintf("%q", n.Value))
		} else {
			parts = append(parts, n.Value)
		}
	case *ast.QualifiedNameExpr:
		parts = append(parts, n.Path.String())
	case *ast.TrivialType, *ast.GenericType, *ast.ReferenceType, *ast.ArrayType, *ast.TupleType, *ast.FunctionType:
		parts = append(parts, ast.TypeString(n.(ast.TypeExpr)))
	}
	return strings.Join(parts, " ")
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
