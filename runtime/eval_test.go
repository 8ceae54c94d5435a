package runtime

import (
	"testing"

	"github.com/panyam/forest/decl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalExpr(t *testing.T, expr Expr) (Value, *Interpreter, string) {
	t.Helper()
	interp, out := NewTestInterpreter(t)
	result := interp.Evaluate(expr, interp.Env)
	return result, interp, out.String()
}

func TestEvalLiterals(t *testing.T) {
	v, interp, _ := evalExpr(t, decl.IntLit(42))
	assert.Equal(t, IntValue(42), v)
	assert.False(t, interp.HasErrors())

	v, _, _ = evalExpr(t, decl.StrLit("hello"))
	assert.Equal(t, StringValue("hello"), v)
}

func TestEvalVariable(t *testing.T) {
	interp, _ := NewTestInterpreter(t)
	interp.Env.Vars.Set("i", IntValue(7))
	assert.Equal(t, IntValue(7), interp.Evaluate(decl.Ident("i"), interp.Env))
	assert.False(t, interp.HasErrors())
}

func TestEvalVariableNotFound(t *testing.T) {
	v, interp, out := evalExpr(t, decl.Ident("missing"))
	assert.True(t, v.IsEmpty())
	require.Len(t, interp.Errors, 1)
	assert.ErrorIs(t, interp.Errors[0], ErrVariableNotFound)
	assert.Equal(t, "Error: variable 'missing' not found\n", out)
}

func TestEvalPlus(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected Value
	}{
		{"int+int", decl.Binary(decl.IntLit(2), "+", decl.IntLit(3)), IntValue(5)},
		{"str+str", decl.Binary(decl.StrLit("a"), "+", decl.StrLit("b")), StringValue("ab")},
		{"int+str", decl.Binary(decl.IntLit(5), "+", decl.StrLit("x")), StringValue("5x")},
		{"str+int", decl.Binary(decl.StrLit("x"), "+", decl.IntLit(5)), StringValue("x5")},
		{"str+negative", decl.Binary(decl.StrLit("n"), "+", decl.Negate(decl.IntLit(4))), StringValue("n-4")},
		{"left assoc", decl.Binary(decl.Binary(decl.IntLit(1), "+", decl.IntLit(2)), "+", decl.StrLit("x")), StringValue("3x")},
		{"right nested", decl.Binary(decl.IntLit(1), "+", decl.Binary(decl.IntLit(2), "+", decl.StrLit("x"))), StringValue("12x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, interp, _ := evalExpr(t, tt.expr)
			assert.Equal(t, tt.expected, v)
			assert.False(t, interp.HasErrors())
		})
	}
}

func TestEvalIntegerOperators(t *testing.T) {
	tests := []struct {
		left, right int64
		op          string
		expected    int64
	}{
		{10, 3, "-", 7},
		{10, 3, "*", 30},
		{10, 3, "/", 3},
		{-7, 2, "/", -3},
		{7, -2, "/", -3},
		{10, 3, "%", 1},
		{-7, 2, "%", -1},
		{7, -2, "%", 1},
	}
	for _, tt := range tests {
		expr := decl.Binary(decl.IntLit(tt.left), tt.op, decl.IntLit(tt.right))
		t.Run(expr.String(), func(t *testing.T) {
			v, interp, _ := evalExpr(t, expr)
			assert.Equal(t, IntValue(tt.expected), v)
			assert.False(t, interp.HasErrors())
		})
	}
}

func TestEvalIntegerOperatorsRejectStrings(t *testing.T) {
	for _, op := range []string{"-", "*", "/", "%"} {
		t.Run(op, func(t *testing.T) {
			v, interp, out := evalExpr(t, decl.Binary(decl.IntLit(5), op, decl.StrLit("x")))
			assert.True(t, v.IsEmpty())
			require.Len(t, interp.Errors, 1)
			assert.ErrorIs(t, interp.Errors[0], ErrTypeMismatch)
			assert.Contains(t, out, "requires integer operands")
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	v, interp, out := evalExpr(t, decl.Binary(decl.IntLit(5), "/", decl.IntLit(0)))
	assert.True(t, v.IsEmpty())
	require.Len(t, interp.Errors, 1)
	assert.ErrorIs(t, interp.Errors[0], ErrDivisionByZero)
	assert.Equal(t, "Error: division by zero\n", out)

	v, interp, out = evalExpr(t, decl.Binary(decl.IntLit(5), "%", decl.IntLit(0)))
	assert.True(t, v.IsEmpty())
	require.Len(t, interp.Errors, 1)
	assert.ErrorIs(t, interp.Errors[0], ErrDivisionByZero)
	assert.Equal(t, "Error: modulo by zero\n", out)
}

func TestEvalNegate(t *testing.T) {
	v, interp, _ := evalExpr(t, decl.Negate(decl.IntLit(3)))
	assert.Equal(t, IntValue(-3), v)
	assert.False(t, interp.HasErrors())

	v, interp, _ = evalExpr(t, decl.Negate(decl.StrLit("x")))
	assert.True(t, v.IsEmpty())
	require.Len(t, interp.Errors, 1)
	assert.ErrorIs(t, interp.Errors[0], ErrTypeMismatch)
}

func TestEvalEmptyOperandReportedOnce(t *testing.T) {
	expr := decl.Binary(decl.Binary(decl.Ident("nope"), "-", decl.IntLit(1)), "+", decl.StrLit("x"))
	v, interp, out := evalExpr(t, expr)
	assert.True(t, v.IsEmpty())
	require.Len(t, interp.Errors, 1)
	assert.ErrorIs(t, interp.Errors[0], ErrVariableNotFound)
	assert.Equal(t, "Error: variable 'nope' not found\n", out)
}

func TestDiagnosticWithPosition(t *testing.T) {
	ident := decl.Ident("x")
	ident.StartPos = Location{Pos: 10, Line: 2, Col: 7}
	_, interp, out := evalExpr(t, ident)
	require.Len(t, interp.Errors, 1)
	assert.Equal(t, "Error: line 2, col 7: variable 'x' not found\n", out)
	assert.Equal(t, []error{ErrVariableNotFound}, Kinds(interp.Errors))
}
