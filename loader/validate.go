package loader

import (
	"github.com/panyam/forest/decl"
)

// scope maps each loop variable in view to the loop that binds it.
type scope = decl.Env[*decl.IdentifierExpr]

// Validate statically checks a loaded program for problems that are
// certain to be reported when it runs: variables no enclosing loop binds
// and literals of the wrong kind.  Findings are stored on the file.
func (l *Loader) Validate(file *LoadedFile) bool {
	file.ClearErrors()
	v := &validator{errs: &file.ErrorCollector}
	if file.Program != nil {
		v.stmt(file.Program.Body, decl.NewEnv[*decl.IdentifierExpr](nil))
	}
	return !file.HasErrors()
}

type validator struct {
	errs *ErrorCollector
}

func (v *validator) stmt(s decl.Stmt, bound *scope) {
	switch n := s.(type) {
	case *decl.CompoundStmt:
		for _, child := range n.Statements() {
			v.stmt(child, bound)
		}
	case *decl.NodeStmt:
		v.expr(n.Name, bound)
		v.expr(n.Weight, bound)
		v.wantKind(n.Name, decl.StrType, "node name cannot be an integer")
		v.wantKind(n.Weight, decl.IntType, "node weight cannot be a string")
		if n.Parent != nil {
			v.expr(n.Parent, bound)
			v.wantKind(n.Parent, decl.StrType, "parent name cannot be an integer")
		}
	case *decl.PrintStmt:
		v.expr(n.Name, bound)
		v.wantKind(n.Name, decl.StrType, "cannot print integer value")
	case *decl.ForRangeStmt:
		v.expr(n.Start, bound)
		v.expr(n.Stop, bound)
		v.wantKind(n.Start, decl.IntType, "start and end values must be integers")
		v.wantKind(n.Stop, decl.IntType, "start and end values must be integers")
		v.stmt(n.Body, v.bind(bound, n.Variable))
	case *decl.ForListStmt:
		// items see the scope outside the loop
		for _, item := range n.Items {
			v.expr(item, bound)
			v.wantKind(item, decl.StrType, "list items must be strings")
		}
		v.stmt(n.Body, v.bind(bound, n.Variable))
	}
}

func (v *validator) expr(e decl.Expr, bound *scope) {
	switch n := e.(type) {
	case *decl.IdentifierExpr:
		if !bound.Has(n.Name) {
			v.errs.Errorf(n.Pos(), "variable '%s' is not bound by any enclosing loop", n.Name)
		}
	case *decl.BinaryExpr:
		v.expr(n.Left, bound)
		v.expr(n.Right, bound)
	case *decl.UnaryExpr:
		v.expr(n.Right, bound)
	}
}

// bind opens the scope of a loop body.
func (v *validator) bind(outer *scope, variable *decl.IdentifierExpr) *scope {
	inner := outer.Push()
	inner.Set(variable.Name, variable)
	return inner
}

// wantKind flags a literal whose type can never be accepted.
func (v *validator) wantKind(e decl.Expr, want *decl.Type, msg string) {
	lit, ok := e.(*decl.LiteralExpr)
	if ok && !lit.Value.Type.Equals(want) {
		v.errs.Errorf(lit.Pos(), "%s", msg)
	}
}
