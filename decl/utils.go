package decl

// Helpers to build AST nodes in code (tests and embedders that skip the
// parser).

func StrLit(val string) *LiteralExpr {
	return &LiteralExpr{Value: StringValue(val)}
}

func IntLit(val int64) *LiteralExpr {
	return &LiteralExpr{Value: IntValue(val)}
}

func Ident(name string) *IdentifierExpr {
	return &IdentifierExpr{Name: name}
}

func Binary(left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: right}
}

func Negate(e Expr) *UnaryExpr {
	return &UnaryExpr{Operator: OpMinus, Right: e}
}

// NewNodeStmt builds a node declaration; parent may be nil.
func NewNodeStmt(name, weight, parent Expr) *NodeStmt {
	return &NodeStmt{Name: name, Weight: weight, Parent: parent}
}

func NewPrintStmt(name Expr) *PrintStmt {
	return &PrintStmt{Name: name}
}

func NewForRangeStmt(varName string, start, end Expr, body ...Stmt) *ForRangeStmt {
	return &ForRangeStmt{Variable: Ident(varName), Start: start, Stop: end, Body: Sequence(body...)}
}

func NewForListStmt(varName string, items []Expr, body ...Stmt) *ForListStmt {
	return &ForListStmt{Variable: Ident(varName), Items: items, Body: Sequence(body...)}
}

// NewProgram wraps statements into a Program.
func NewProgram(stmts ...Stmt) *Program {
	return &Program{Body: Sequence(stmts...)}
}
