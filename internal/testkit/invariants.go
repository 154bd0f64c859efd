package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lust/internal/ast"
	"lust/internal/source"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a parsed program:
// 1) program span is ordered and within file content bounds
// 2) no node has a nil child and every node has a valid kind
// 3) every node span is ordered, points to the same file and lies inside the program span
func CheckTreeInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}

	// 1) program span sanity
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := prog.Span()
	if root.End < root.Start {
		return fmt.Errorf("program span is inverted: %v", root)
	}
	if root.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", root.End, lenContent)
	}

	// 2) + 3)
	var failure error
	ast.Walk(prog, func(n ast.Node, depth int) bool {
		if failure != nil {
			return false
		}
		if n.Kind() == ast.KindInvalid {
			failure = fmt.Errorf("node %q at depth %d has invalid kind", n.Name(), depth)
			return false
		}
		for i, c := range n.Children() {
			if isNil(c) {
				failure = fmt.Errorf("node %q at depth %d: child %d is nil", n.Name(), depth, i)
				return false
			}
		}
		if n == ast.Node(prog) {
			return true
		}
		sp := n.Span()
		if sp.End < sp.Start {
			failure = fmt.Errorf("node %q: inverted span %v", n.Name(), sp)
			return false
		}
		if sp.File != sf.ID {
			failure = fmt.Errorf("node %q: span file mismatch: got=%d want=%d", n.Name(), sp.File, sf.ID)
			return false
		}
		if sp.Start < root.Start || sp.End > root.End {
			failure = fmt.Errorf("node %q: span %v is outside program span %v", n.Name(), sp, root)
			return false
		}
		return true
	})
	return failure
}

// isNil ловит и nil-интерфейс, и типизированный nil внутри интерфейса.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *ast.Block:
		return v == nil
	case *ast.ParamList:
		return v == nil
	case *ast.CallArgs:
		return v == nil
	case *ast.TupleType:
		return v == nil
	case *ast.TrivialType:
		return v == nil
	case *ast.GenericType:
		return v == nil
	case *ast.ReferenceType:
		return v == nil
	case *ast.FunctionType:
		return v == nil
	case *ast.ArrayType:
		return v == nil
	}
	return false
}
