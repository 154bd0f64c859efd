package parser

import (
	"testing"

	"lust/internal/ast"
	"lust/internal/diag"
)

func parseTypeOf(t *testing.T, typ string) (ast.TypeExpr, *diag.Bag) {
	t.Helper()
	prog, bag := parseSource(t, "let v: "+typ+";")
	if len(prog.Stmts) == 0 {
		return nil, bag
	}
	d, ok := prog.Stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", prog.Stmts[0])
	}
	return d.Type, bag
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantKind ast.Kind
	}{
		{"i32", "i32", ast.KindTrivialType},
		{"std::vec::Vec", "std::vec::Vec", ast.KindTrivialType},
		{"crate::Config", "crate::Config", ast.KindTrivialType},
		{"Vec<i32>", "Vec<i32>", ast.KindGenericType},
		{"HashMap<String, Vec<u8>>", "HashMap<String, Vec<u8>>", ast.KindGenericType},
		{"()", "()", ast.KindTupleType},
		{"(i32, bool)", "(i32, bool)", ast.KindTupleType},
		{"&str", "&str", ast.KindReferenceType},
		{"&mut Vec<T>", "&mut Vec<T>", ast.KindReferenceType},
		{"&&T", "&&T", ast.KindReferenceType},
		{"[u8; 16]", "[u8; 16]", ast.KindArrayType},
		{"[[i32; 2]; 3]", "[[i32; 2]; 3]", ast.KindArrayType},
		{"fn()", "fn()", ast.KindFunctionType},
		{"fn(i32, &str) -> bool", "fn(i32, &str) -> bool", ast.KindFunctionType},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, bag := parseTypeOf(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			if typ == nil {
				t.Fatal("type is nil")
			}
			if got := ast.TypeString(typ); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if typ.Kind() != tt.wantKind {
				t.Errorf("kind: got %v, want %v", typ.Kind(), tt.wantKind)
			}
		})
	}
}

func TestParseType_FunctionDefaultsToUnit(t *testing.T) {
	typ, bag := parseTypeOf(t, "fn(i32)")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	ft := typ.(*ast.FunctionType)
	if !ast.IsUnit(ft.Ret) {
		t.Fatalf("expected unit return, got %s", ast.TypeString(ft.Ret))
	}
}

func TestParseType_ArraySize(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		typ, _ := parseTypeOf(t, "[u8; 4096]")
		if got := typ.(*ast.ArrayType).Size; got != 4096 {
			t.Fatalf("size: got %d", got)
		}
	})
	t.Run("overflow keeps the node", func(t *testing.T) {
		typ, bag := parseTypeOf(t, "[u8; 99999999999999999999999]")
		if !hasCode(bag, diag.SynBadArraySize) {
			t.Fatalf("expected %s, got %s", diag.SynBadArraySize.ID(), diagnosticsSummary(bag))
		}
		at, ok := typ.(*ast.ArrayType)
		if !ok || at.Size != 0 {
			t.Fatalf("expected array type with size 0, got %#v", typ)
		}
	})
	t.Run("non-numeric size", func(t *testing.T) {
		typ, bag := parseTypeOf(t, "[u8; N]")
		if !hasCode(bag, diag.SynBadArraySize) {
			t.Fatalf("expected %s, got %s", diag.SynBadArraySize.ID(), diagnosticsSummary(bag))
		}
		if _, ok := typ.(*ast.ArrayType); !ok {
			t.Fatalf("expected array type, got %T", typ)
		}
	})
}

func TestParseType_Errors(t *testing.T) {
	for _, input := range []string{"1", "+", "Vec<", "(i32"} {
		t.Run(input, func(t *testing.T) {
			typ, bag := parseTypeOf(t, input)
			if typ != nil {
				t.Fatalf("expected nil type, got %s", ast.TypeString(typ))
			}
			if !bag.HasErrors() {
				t.Fatal("expected an error")
			}
		})
	}
}
