package decl

import (
	"fmt"
)

// Expr represents an expression node (evaluates to a Value).
type Expr interface {
	Node
	exprNode() // Marker method for expressions
}

type ExprBase struct {
	NodeInfo
}

func (me *ExprBase) exprNode() {}

var (
	_ Expr = (*LiteralExpr)(nil)
	_ Expr = (*IdentifierExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
)

// Operators understood by BinaryExpr and UnaryExpr
const (
	OpPlus   = "+"
	OpMinus  = "-"
	OpTimes  = "*"
	OpDivide = "/"
	OpMod    = "%"
)

// precedence of binary operators, higher binds tighter
func precedence(op string) int {
	switch op {
	case OpPlus, OpMinus:
		return 1
	case OpTimes, OpDivide, OpMod:
		return 2
	}
	return 0
}

// --- Expressions ---

// LiteralExpr represents literal values
type LiteralExpr struct {
	ExprBase
	Value Value
}

func (l *LiteralExpr) String() string { return l.Value.Literal() }
func (l *LiteralExpr) PrettyPrint(cp CodePrinter) {
	cp.Print(l.String())
}

// IdentifierExpr refers to a loop variable.
type IdentifierExpr struct {
	ExprBase
	Name string
}

func (i *IdentifierExpr) String() string { return i.Name }
func (i *IdentifierExpr) PrettyPrint(cp CodePrinter) {
	cp.Print(i.Name)
}

// BinaryExpr represents `left operator right`
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator string // "+", "-", "*", "/", "%"
	Right    Expr
}

func (b *BinaryExpr) String() string {
	leftStr := "nil"
	if b.Left != nil {
		leftStr = b.Left.String()
	}
	rightStr := "nil"
	if b.Right != nil {
		rightStr = b.Right.String()
	}
	return fmt.Sprintf("(%s %s %s)", leftStr, b.Operator, rightStr)
}

// PrettyPrint emits source form, parenthesizing only where precedence
// or left associativity requires it.
func (b *BinaryExpr) PrettyPrint(cp CodePrinter) {
	prec := precedence(b.Operator)
	printOperand(cp, b.Left, prec, false)
	cp.Printf(" %s ", b.Operator)
	printOperand(cp, b.Right, prec, true)
}

func printOperand(cp CodePrinter, e Expr, parentPrec int, isRight bool) {
	child, ok := e.(*BinaryExpr)
	if !ok {
		e.PrettyPrint(cp)
		return
	}
	childPrec := precedence(child.Operator)
	if childPrec < parentPrec || (isRight && childPrec == parentPrec) {
		cp.Print("(")
		e.PrettyPrint(cp)
		cp.Print(")")
		return
	}
	e.PrettyPrint(cp)
}

// UnaryExpr represents `operator operand`
type UnaryExpr struct {
	ExprBase
	Operator string // "-"
	Right    Expr
}

func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s%s)", u.Operator, u.Right) }
func (u *UnaryExpr) PrettyPrint(cp CodePrinter) {
	cp.Print(u.Operator)
	if _, ok := u.Right.(*BinaryExpr); ok {
		cp.Print("(")
		u.Right.PrettyPrint(cp)
		cp.Print(")")
		return
	}
	u.Right.PrettyPrint(cp)
}
