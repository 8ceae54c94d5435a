package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// --- Statements ---

// Stmt represents a statement node (performs an action, controls flow).
type Stmt interface {
	Node
	stmtNode() // Marker method for statements
}

type StmtBase struct {
	NodeInfo
}

func (s *StmtBase) stmtNode() {}

var (
	_ Stmt = (*CompoundStmt)(nil)
	_ Stmt = (*NodeStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*ForRangeStmt)(nil)
	_ Stmt = (*ForListStmt)(nil)
	_ Node = (*Program)(nil)
)

// CompoundStmt is a singly linked sequence of statements.  Either First or
// Rest may be nil.
type CompoundStmt struct {
	StmtBase
	First Stmt
	Rest  *CompoundStmt
}

// Sequence links stmts into a CompoundStmt chain.  Returns nil for no
// statements.
func Sequence(stmts ...Stmt) *CompoundStmt {
	var out *CompoundStmt
	for i := len(stmts) - 1; i >= 0; i-- {
		out = &CompoundStmt{First: stmts[i], Rest: out}
	}
	return out
}

// Statements flattens the chain in execution order.
func (c *CompoundStmt) Statements() (out []Stmt) {
	for curr := c; curr != nil; curr = curr.Rest {
		if curr.First != nil {
			out = append(out, curr.First)
		}
	}
	return
}

func (c *CompoundStmt) String() string {
	return strings.Join(gfn.Map(c.Statements(), func(s Stmt) string { return s.String() }), " ")
}

func (c *CompoundStmt) PrettyPrint(cp CodePrinter) {
	for _, stmt := range c.Statements() {
		stmt.PrettyPrint(cp)
		cp.Println("")
	}
}

// NodeStmt represents `node(name, weight[, parent]);`
type NodeStmt struct {
	StmtBase
	Name   Expr
	Weight Expr
	Parent Expr // Optional
}

func (n *NodeStmt) String() string {
	if n.Parent == nil {
		return fmt.Sprintf("node(%s, %s);", n.Name, n.Weight)
	}
	return fmt.Sprintf("node(%s, %s, %s);", n.Name, n.Weight, n.Parent)
}

func (n *NodeStmt) PrettyPrint(cp CodePrinter) {
	cp.Print("node(")
	n.Name.PrettyPrint(cp)
	cp.Print(", ")
	n.Weight.PrettyPrint(cp)
	if n.Parent != nil {
		cp.Print(", ")
		n.Parent.PrettyPrint(cp)
	}
	cp.Print(");")
}

// PrintStmt represents `print(name);`
type PrintStmt struct {
	StmtBase
	Name Expr
}

func (p *PrintStmt) String() string { return fmt.Sprintf("print(%s);", p.Name) }
func (p *PrintStmt) PrettyPrint(cp CodePrinter) {
	cp.Print("print(")
	p.Name.PrettyPrint(cp)
	cp.Print(");")
}

// ForRangeStmt represents `for var in start..stop { body }`.  Both bounds
// are inclusive.
type ForRangeStmt struct {
	StmtBase
	Variable *IdentifierExpr
	Start    Expr
	Stop     Expr
	Body     Stmt
}

func (f *ForRangeStmt) String() string {
	return fmt.Sprintf("for %s in %s..%s { %s }", f.Variable, f.Start, f.Stop, stmtString(f.Body))
}

func (f *ForRangeStmt) PrettyPrint(cp CodePrinter) {
	cp.Printf("for %s in ", f.Variable.Name)
	f.Start.PrettyPrint(cp)
	cp.Print("..")
	f.Stop.PrettyPrint(cp)
	printBody(cp, f.Body)
}

// ForListStmt represents `for var in [item, item, ...] { body }`
type ForListStmt struct {
	StmtBase
	Variable *IdentifierExpr
	Items    []Expr
	Body     Stmt
}

func (f *ForListStmt) String() string {
	items := gfn.Map(f.Items, func(e Expr) string { return e.String() })
	return fmt.Sprintf("for %s in [%s] { %s }", f.Variable, strings.Join(items, ", "), stmtString(f.Body))
}

func (f *ForListStmt) PrettyPrint(cp CodePrinter) {
	cp.Printf("for %s in [", f.Variable.Name)
	for i, item := range f.Items {
		if i > 0 {
			cp.Print(", ")
		}
		item.PrettyPrint(cp)
	}
	cp.Print("]")
	printBody(cp, f.Body)
}

func stmtString(s Stmt) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func printBody(cp CodePrinter, body Stmt) {
	cp.Println(" {")
	WithIndent(1, cp, func(cp CodePrinter) {
		if body == nil {
			return
		}
		if c, ok := body.(*CompoundStmt); ok {
			c.PrettyPrint(cp)
		} else {
			body.PrettyPrint(cp)
			cp.Println("")
		}
	})
	cp.Print("}")
}
