package decl

import (
	"fmt"
	"sort"
)

// References to values
type Ref[T any] struct {
	Value T
}

// Env[T] holds the values bound to identifiers.  Lookups fall back to the
// 'outer' environment when a name is not bound locally.
type Env[T any] struct {
	store map[string]*Ref[T]
	outer *Env[T]
}

// NewEnv[T] creates a new environment nested within an outer one.
// If outer is nil then returns a fresh top-level environment.
func NewEnv[T any](outer *Env[T]) *Env[T] {
	s := make(map[string]*Ref[T])
	return &Env[T]{store: s, outer: outer}
}

// GetRef retrieves the reference bound to a name. It checks the current
// environment first, then recursively checks outer environments.
func (e *Env[T]) GetRef(name string) *Ref[T] {
	ref, ok := e.store[name]
	if (!ok || ref == nil) && e.outer != nil {
		ref = e.outer.GetRef(name)
	}
	return ref
}

func (e *Env[T]) Get(name string) (out T, found bool) {
	ref := e.GetRef(name)
	if ref != nil {
		out = ref.Value
		found = true
	}
	return
}

func (e *Env[T]) Has(name string) bool {
	return e.GetRef(name) != nil
}

// Set binds a value in the *current* environment.  Outer environments are
// never modified.
func (e *Env[T]) Set(key string, value T) {
	e.store[key] = &Ref[T]{Value: value}
}

// Push creates an enclosed environment whose lookups fall through to e.
func (e *Env[T]) Push() *Env[T] {
	return NewEnv(e)
}

// Clone returns a flat, independent copy of every binding visible from e.
// Writes to the clone never reach e.
func (e *Env[T]) Clone() *Env[T] {
	out := NewEnv[T](nil)
	for k, v := range e.All() {
		out.Set(k, v)
	}
	return out
}

// String representation for debugging
func (e *Env[T]) String() string {
	return fmt.Sprintf("Env{store: %v, outer: %v}", e.Keys(), e.outer != nil)
}

// Keys returns all keys in this environment (not including outer
// environments) in sorted order.
func (e *Env[T]) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every visible binding, inner bindings shadowing outer ones.
func (e *Env[T]) All() map[string]T {
	result := make(map[string]T)
	if e.outer != nil {
		for k, v := range e.outer.All() {
			result[k] = v
		}
	}
	for k, ref := range e.store {
		if ref != nil {
			result[k] = ref.Value
		}
	}
	return result
}
