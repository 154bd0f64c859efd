package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/testkit"
)

func parseSource(t *testing.T, input string) (*ast.Program, *diag.Bag) {
	t.Helper()
	prog, bag, _ := parseSourceWith(t, input, Options{})
	return prog, bag
}

func parseSourceWith(t *testing.T, input string, opts Options) (*ast.Program, *diag.Bag, Result) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.lust", []byte(input)))
	bag := diag.NewBag(0)
	opts.Reporter = &diag.BagReporter{Bag: bag}
	res := ParseFile(context.Background(), lexer.New(file, lexer.Options{}), opts)
	if err := testkit.CheckTreeInvariants(res.Program, file); err != nil {
		t.Fatalf("tree invariants violated for %q: %v", input, err)
	}
	return res.Program, bag, res
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// exprString — компактная s-запись выражения для сравнения деревьев.
func exprString(e ast.Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"
	case *ast.Operator:
		if e.Op.IsUnary() {
			return fmt.Sprintf("(%s %s)", e.Op, exprString(e.Right))
		}
		return fmt.Sprintf("(%s %s %s)", e.Op, exprString(e.Left), exprString(e.Right))
	case *ast.Literal:
		if e.Op == ast.OpLiteralString {
			return fmt.Sprintf("%q", e.Value)
		}
		return e.Value
	case *ast.QualifiedNameExpr:
		if e.Args == nil {
			return e.Path.String()
		}
		args := make([]string, len(e.Args.Args))
		for i, a := range e.Args.Args {
			args[i] = exprString(a)
		}
		return e.Path.String() + "(" + strings.Join(args, ", ") + ")"
	case *ast.BlockExpr:
		return fmt.Sprintf("{%d}", len(e.Block.Stmts))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// firstStmt returns the single top-level statement or fails.
func firstStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	return prog.Stmts[0]
}
