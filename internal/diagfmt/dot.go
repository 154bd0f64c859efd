package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"lust/internal/ast"
)

// FormatASTDot выводит дерево в формате Graphviz: обход в pre-order,
// одна вершина на узел с подписью Name(), одно ребро на пару родитель→потомок.
func FormatASTDot(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	var b strings.Builder
	b.WriteString("digraph AST {\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	next := 0
	var visit func(n ast.Node) int
	visit = func(n ast.Node) int {
		id := next
		next++
		fmt.Fprintf(&b, "  n%d [label=%s];\n", id, dotQuote(n.Name()))
		for _, c := range n.Children() {
			cid := visit(c)
			fmt.Fprintf(&b, "  n%d -> n%d;\n", id, cid)
		}
		return id
	}
	visit(prog)

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
