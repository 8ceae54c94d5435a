package runtime

import (
	"fmt"
	"strconv"

	"github.com/panyam/forest/decl"
)

// Evaluate reduces an expression to a Value.  Failures are reported where
// they happen and yield the empty value, which callers check before using
// the result.  An empty operand is passed through without being reported
// again.
func (i *Interpreter) Evaluate(expr Expr, env *Environment) Value {
	switch n := expr.(type) {
	case *LiteralExpr:
		return n.Value
	case *IdentifierExpr:
		return i.evalIdentifierExpr(n, env)
	case *BinaryExpr:
		return i.evalBinaryExpr(n, env)
	case *UnaryExpr:
		return i.evalUnaryExpr(n, env)
	default:
		panic(fmt.Errorf("Evaluate not implemented for node type %T", expr))
	}
}

func (i *Interpreter) evalIdentifierExpr(n *IdentifierExpr, env *Environment) Value {
	value, ok := env.Vars.Get(n.Name)
	if !ok {
		i.report(ErrVariableNotFound, n, "variable '%s' not found", n.Name)
		return EmptyValue
	}
	return value
}

func (i *Interpreter) evalBinaryExpr(b *BinaryExpr, env *Environment) Value {
	left := i.Evaluate(b.Left, env)
	right := i.Evaluate(b.Right, env)
	if left.IsEmpty() || right.IsEmpty() {
		return EmptyValue
	}

	if b.Operator == decl.OpPlus {
		return i.evalPlus(b, left, right)
	}

	switch b.Operator {
	case decl.OpMinus, decl.OpTimes, decl.OpDivide, decl.OpMod:
	default:
		panic(fmt.Errorf("unsupported binary operator: %s", b.Operator))
	}
	if !left.IsInt() || !right.IsInt() {
		i.report(ErrTypeMismatch, b, "operator '%s' requires integer operands, got %s and %s", b.Operator, left.Type, right.Type)
		return EmptyValue
	}

	l, r := left.IntVal(), right.IntVal()
	switch b.Operator {
	case decl.OpMinus:
		return IntValue(l - r)
	case decl.OpTimes:
		return IntValue(l * r)
	case decl.OpDivide:
		if r == 0 {
			i.report(ErrDivisionByZero, b, "division by zero")
			return EmptyValue
		}
		return IntValue(l / r)
	default:
		if r == 0 {
			i.report(ErrDivisionByZero, b, "modulo by zero")
			return EmptyValue
		}
		return IntValue(l % r)
	}
}

// evalPlus adds ints and concatenates everything else, stringifying an int
// operand in place.
func (i *Interpreter) evalPlus(b *BinaryExpr, left, right Value) Value {
	switch {
	case left.IsInt() && right.IsInt():
		return IntValue(left.IntVal() + right.IntVal())
	case left.IsString() && right.IsString():
		return StringValue(left.StringVal() + right.StringVal())
	case left.IsInt() && right.IsString():
		return StringValue(strconv.FormatInt(left.IntVal(), 10) + right.StringVal())
	case left.IsString() && right.IsInt():
		return StringValue(left.StringVal() + strconv.FormatInt(right.IntVal(), 10))
	}
	i.report(ErrTypeMismatch, b, "operator '+' not supported for %s and %s", left.Type, right.Type)
	return EmptyValue
}

func (i *Interpreter) evalUnaryExpr(u *UnaryExpr, env *Environment) Value {
	operand := i.Evaluate(u.Right, env)
	if operand.IsEmpty() {
		return EmptyValue
	}
	if u.Operator != decl.OpMinus {
		panic(fmt.Errorf("unsupported unary operator: %s", u.Operator))
	}
	if !operand.IsInt() {
		i.report(ErrTypeMismatch, u, "cannot negate a %s value", operand.Type)
		return EmptyValue
	}
	return IntValue(-operand.IntVal())
}
