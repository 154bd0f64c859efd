package parser

import (
	"testing"

	"lust/internal/ast"
	"lust/internal/diag"
)

func parseExprStmt(t *testing.T, input string) ast.Expr {
	t.Helper()
	prog, bag := parseSource(t, input+";")
	if bag.HasErrors() {
		t.Fatalf("%q: unexpected errors: %s", input, diagnosticsSummary(bag))
	}
	e, ok := firstStmt(t, prog).(ast.Expr)
	if !ok {
		t.Fatalf("expected expression statement, got %T", prog.Stmts[0])
	}
	return e
}

func TestParseExpr_Precedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(ARITHMETIC_ADD 1 (ARITHMETIC_MULTIPLY 2 3))"},
		{"(1 + 2) * 3", "(ARITHMETIC_MULTIPLY (ARITHMETIC_ADD 1 2) 3)"},
		{"a = b = c", "(ASSIGNMENT a (ASSIGNMENT b c))"},
		{"x += y * 2", "(ASSIGNMENT_ADD x (ARITHMETIC_MULTIPLY y 2))"},
		{"a %= 3", "(ASSIGNMENT_MOD a 3)"},
		{"1 - 2 - 3", "(ARITHMETIC_SUBTRACT (ARITHMETIC_SUBTRACT 1 2) 3)"},
		{"a - b + c", "(ARITHMETIC_ADD (ARITHMETIC_SUBTRACT a b) c)"},
		{"a + b - c", "(ARITHMETIC_ADD a (ARITHMETIC_SUBTRACT b c))"},
		{"a || b && c", "(LOGICAL_OR a (LOGICAL_AND b c))"},
		{"a or b and not c", "(LOGICAL_OR a (LOGICAL_AND b (UNARY_LOGICAL_NOT c)))"},
		{"x == y != z", "(LOGICAL_EQUALITY x (LOGICAL_NONE_EQUALITY y z))"},
		{"a < b == c >= d", "(LOGICAL_EQUALITY (LOGICAL_RELATION_LESS_THAN a b) (LOGICAL_RELATION_GREATER_THAN_EQUALITY c d))"},
		{"a | b ^ c & d", "(BITWISE_OR a (BITWISE_XOR b (BITWISE_AND c d)))"},
		{"a % b ** c", "(ARITHMETIC_MOD a (ARITHMETIC_EXPONENT b c))"},
		{"a.b.c", "(MEMBER_VISIT (MEMBER_VISIT a b) c)"},
		{"a.len() + 1", "(ARITHMETIC_ADD (MEMBER_VISIT a len()) 1)"},
		{"-a ** 2", "(ARITHMETIC_EXPONENT (UNARY_ARITHMETIC_MINUS a) 2)"},
		{"--x", "(UNARY_ARITHMETIC_SELF_DECREASE x)"},
		{"++x", "(UNARY_ARITHMETIC_SELF_INCREASE x)"},
		{"!~x", "(UNARY_LOGICAL_NOT (UNARY_BITWISE_INVERSE x))"},
		{"- -x", "(UNARY_ARITHMETIC_MINUS (UNARY_ARITHMETIC_MINUS x))"},
		{"f(1, x + 2)", "f(1, (ARITHMETIC_ADD x 2))"},
		{"f()", "f()"},
		{"std::io::read(buf)", "std::io::read(buf)"},
		{"self::helper()", "self::helper()"},
		{`greet("hi")`, `greet("hi")`},
		{"1.5 / 2", "(ARITHMETIC_DIVIDE 1.5 2)"},
		{"x = { 1 }", "(ASSIGNMENT x {1})"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := exprString(parseExprStmt(t, tt.input)); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParseExpr_Literals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
		value string
	}{
		{"42", ast.KindIntegerLiteral, "42"},
		{"3.14", ast.KindFloatLiteral, "3.14"},
		{`"hello world"`, ast.KindStringLiteral, "hello world"},
	}
	for _, tt := range tests {
		lit, ok := parseExprStmt(t, tt.input).(*ast.Literal)
		if !ok {
			t.Fatalf("%s: expected literal", tt.input)
		}
		if lit.Kind() != tt.kind || lit.Value != tt.value {
			t.Errorf("%s: got kind=%v value=%q", tt.input, lit.Kind(), lit.Value)
		}
	}
}

func TestParseExpr_VariableAndCallNames(t *testing.T) {
	v := parseExprStmt(t, "counter").(*ast.QualifiedNameExpr)
	if v.Op() != ast.OpVariable || v.Name() != "VARIABLE" {
		t.Fatalf("variable: op=%v name=%q", v.Op(), v.Name())
	}
	c := parseExprStmt(t, "a::b::run(1)").(*ast.QualifiedNameExpr)
	if c.Op() != ast.OpFunctionCall || len(c.Args.Args) != 1 {
		t.Fatalf("call: op=%v args=%+v", c.Op(), c.Args)
	}
	if got := c.Path.Namespaces; len(got) != 2 || got[0] != "a" || got[1] != "b" || c.Path.Name != "run" {
		t.Fatalf("call path: %+v", c.Path)
	}
}

func TestParseExpr_TailAndStatement(t *testing.T) {
	prog, bag := parseSource(t, "fn f() { x = 1; { y } x }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	body := firstStmt(t, prog).(*ast.FunctionDecl).Body
	if len(body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(body.Stmts))
	}
	if got := body.Stmts[0].Name(); got != "ASSIGNMENT" {
		t.Errorf("statement name: %q", got)
	}
	inner, ok := body.Stmts[1].(*ast.Block)
	if !ok {
		t.Fatalf("expected nested block, got %T", body.Stmts[1])
	}
	if got := inner.Stmts[0].Name(); got != "VARIABLE(RET)" {
		t.Errorf("inner tail name: %q", got)
	}
	if got := body.Stmts[2].Name(); got != "VARIABLE(RET)" {
		t.Errorf("tail name: %q", got)
	}
}

func TestParseExpr_IfIsNotSupported(t *testing.T) {
	prog, bag := parseSource(t, "let x = if a { 1 };")
	if !hasCode(bag, diag.FutIfExprNotSupported) {
		t.Fatalf("expected %s, got %s", diag.FutIfExprNotSupported.ID(), diagnosticsSummary(bag))
	}
	for _, s := range prog.Stmts {
		if _, ok := s.(*ast.VarDecl); ok {
			t.Fatal("declaration with an if initializer must be dropped")
		}
	}
}

func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		input    string
		wantCode diag.Code
	}{
		{"1 + ;", diag.SynExpectExpression},
		{"f(1, 2;", diag.SynUnexpectedToken},
		{"(1 + 2;", diag.SynUnexpectedToken},
		{"a::;", diag.SynExpectIdentifier},
		{"true;", diag.SynExpectExpression},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, bag := parseSource(t, tt.input)
			if !hasCode(bag, tt.wantCode) {
				t.Fatalf("expected %s, got %s", tt.wantCode.ID(), diagnosticsSummary(bag))
			}
		})
	}
}
