// Package env holds the scoped bindings from identifiers to types used while
// checking. Scopes are pushed and popped strictly in stack order and only ever
// through WithBindings, so a scope can never outlive the call that pushed it.
package env

import (
	"github.com/tanema/tylang/src/types"
)

type (
	// Binding pairs an identifier with its type.
	Binding struct {
		Name string
		Type types.Type
	}
	// Env is a stack of scopes. The zero value is an empty environment.
	Env struct {
		scopes [][]Binding
	}
)

// Empty creates an environment with no scopes.
func Empty() *Env {
	return &Env{scopes: [][]Binding{}}
}

// Bind is shorthand for building a Binding.
func Bind(name string, typ types.Type) Binding {
	return Binding{Name: name, Type: typ}
}

// Lookup finds the most recently pushed binding for name.
func (e *Env) Lookup(name string) (types.Type, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		scope := e.scopes[i]
		for j := len(scope) - 1; j >= 0; j-- {
			if scope[j].Name == name {
				return scope[j].Type, true
			}
		}
	}
	return nil, false
}

// Depth is the number of scopes currently pushed.
func (e *Env) Depth() int {
	return len(e.scopes)
}

// WithBindings pushes bindings as a single scope, calls body, and removes the
// scope again however body exits. Later entries in bindings shadow earlier
// ones with the same name.
func (e *Env) WithBindings(bindings []Binding, body func(*Env) (types.Type, error)) (types.Type, error) {
	depth := len(e.scopes)
	e.scopes = append(e.scopes, bindings)
	defer func() { e.scopes = e.scopes[:depth] }()
	return body(e)
}
