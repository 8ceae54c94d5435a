package runtime

import (
	"fmt"

	"github.com/panyam/forest/decl"
)

// Environment pairs the two namespaces a program runs against: the tree
// registry, which lives for the whole run, and the variable table holding
// loop bound scalars.  The namespaces never overlap.
type Environment struct {
	Trees *Registry
	Vars  *Env[Value]
}

// NewEnvironment creates an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{
		Trees: NewRegistry(),
		Vars:  decl.NewEnv[Value](nil),
	}
}

// Loop returns the environment for a loop body: the same registry and a
// private copy of the variable table.  Bindings made in the copy are
// dropped with it.
func (e *Environment) Loop() *Environment {
	return &Environment{
		Trees: e.Trees,
		Vars:  e.Vars.Clone(),
	}
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment{trees: %d, vars: %v}", e.Trees.Len(), e.Vars.Keys())
}
