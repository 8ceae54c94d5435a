package runtime

import (
	"fmt"
)

// Execute runs a statement for its effects on env and the output stream.
// Problems are reported and skip the rest of the offending statement (or
// list item); they never stop the enclosing sequence.
func (i *Interpreter) Execute(stmt Stmt, env *Environment) {
	if _, isCompound := stmt.(*CompoundStmt); !isCompound && stmt != nil && i.Tracer != nil {
		i.Tracer.Enter(stmt)
		defer i.Tracer.Exit()
	}
	switch n := stmt.(type) {
	case *CompoundStmt:
		i.execCompoundStmt(n, env)
	case *NodeStmt:
		i.execNodeStmt(n, env)
	case *PrintStmt:
		i.execPrintStmt(n, env)
	case *ForRangeStmt:
		i.execForRangeStmt(n, env)
	case *ForListStmt:
		i.execForListStmt(n, env)
	case nil:
	default:
		panic(fmt.Errorf("Execute not implemented for node type %T", stmt))
	}
}

func (i *Interpreter) execCompoundStmt(c *CompoundStmt, env *Environment) {
	for curr := c; curr != nil; curr = curr.Rest {
		if curr.First != nil {
			i.Execute(curr.First, env)
		}
	}
}

func (i *Interpreter) execNodeStmt(n *NodeStmt, env *Environment) {
	nameVal := i.Evaluate(n.Name, env)
	if nameVal.IsEmpty() {
		return
	}
	name, err := nameVal.GetString()
	if err != nil {
		i.report(ErrTypeMismatch, n.Name, "node name cannot be an integer")
		return
	}

	weightVal := i.Evaluate(n.Weight, env)
	if weightVal.IsEmpty() {
		return
	}
	weight, err := weightVal.GetInt()
	if err != nil {
		i.report(ErrTypeMismatch, n.Weight, "node weight cannot be a string")
		return
	}

	parentName := ""
	hasParent := n.Parent != nil
	if hasParent {
		parentVal := i.Evaluate(n.Parent, env)
		if parentVal.IsEmpty() {
			return
		}
		if parentName, err = parentVal.GetString(); err != nil {
			i.report(ErrTypeMismatch, n.Parent, "parent name cannot be an integer")
			return
		}
	}

	id, err := env.Trees.Declare(name, weight)
	if err != nil {
		i.report(ErrDuplicateNode, n, "node '%s' already exists", name)
		return
	}
	Debug("declared node %q (weight %d)", name, weight)

	if hasParent {
		if err := env.Trees.AttachChild(parentName, id); err != nil {
			i.report(ErrParentNotFound, n.Parent, "parent node '%s' not found", parentName)
			return
		}
		Debug("attached %q to %q", name, parentName)
	}
}

func (i *Interpreter) execPrintStmt(p *PrintStmt, env *Environment) {
	nameVal := i.Evaluate(p.Name, env)
	if nameVal.IsEmpty() {
		return
	}
	name, err := nameVal.GetString()
	if err != nil {
		i.report(ErrTypeMismatch, p.Name, "cannot print integer value")
		return
	}
	node, ok := env.Trees.Lookup(name)
	if !ok {
		i.report(ErrNodeNotFound, p.Name, "tree node '%s' not found", name)
		return
	}
	i.Reporter.Emit(env.Trees.Render(node.ID))
}

func (i *Interpreter) execForRangeStmt(f *ForRangeStmt, env *Environment) {
	startVal := i.Evaluate(f.Start, env)
	endVal := i.Evaluate(f.Stop, env)
	if startVal.IsEmpty() || endVal.IsEmpty() {
		return
	}
	start, startErr := startVal.GetInt()
	end, endErr := endVal.GetInt()
	if startErr != nil || endErr != nil {
		i.report(ErrLoopBoundType, f, "start and end values must be integers")
		return
	}

	loopEnv := env.Loop()
	Debug("for %s in %d..%d", f.Variable.Name, start, end)
	for v := start; v <= end; v++ {
		loopEnv.Vars.Set(f.Variable.Name, IntValue(v))
		i.traceIteration(f.Variable.Name, IntValue(v))
		i.Execute(f.Body, loopEnv)
		if v == end {
			// avoid wrapping past the largest int64
			break
		}
	}
}

// execForListStmt evaluates every item against the variable table as it
// was before the loop started, so items never see the loop variable.
func (i *Interpreter) execForListStmt(f *ForListStmt, env *Environment) {
	loopEnv := env.Loop()
	Debug("for %s in %d items", f.Variable.Name, len(f.Items))
	for _, item := range f.Items {
		itemVal := i.Evaluate(item, env)
		if itemVal.IsEmpty() {
			continue
		}
		if !itemVal.IsString() {
			i.report(ErrLoopBoundType, item, "list items must be strings")
			continue
		}
		loopEnv.Vars.Set(f.Variable.Name, itemVal)
		i.traceIteration(f.Variable.Name, itemVal)
		i.Execute(f.Body, loopEnv)
	}
}

func (i *Interpreter) traceIteration(variable string, value Value) {
	if i.Tracer != nil {
		i.Tracer.Iterate(variable, value)
	}
}
