package types

import (
	"fmt"
)

type (
	// Type is the interface for all type definitions. The set of implementations
	// is closed to this package.
	Type interface {
		fmt.Stringer
		isType()
	}
	// Simple describes a builtin, non function type.
	Simple struct{ Name string }
	// Arrow describes a function from Arg to Ret.
	Arrow struct {
		Arg Type
		Ret Type
	}
)

const (
	// NameInt is a label for the int type.
	NameInt = "int"
	// NameBool is a label for the bool type.
	NameBool = "bool"
)

var (
	// Int is a type int to match against.
	Int = &Simple{Name: NameInt}
	// Bool is a type bool to match against.
	Bool = &Simple{Name: NameBool}
	// DefaultDefns is a collection of types that can be named in annotations.
	DefaultDefns = map[string]Type{
		NameInt:  Int,
		NameBool: Bool,
	}
)

// NewArrow creates the function type arg -> ret.
func NewArrow(arg, ret Type) *Arrow {
	return &Arrow{Arg: arg, Ret: ret}
}

// Resolve looks up a named type, returning false if the name is not a type.
func Resolve(name string) (Type, bool) {
	defn, ok := DefaultDefns[name]
	return defn, ok
}

func (t *Simple) isType()        {}
func (t *Simple) String() string { return t.Name }

func (t *Arrow) isType() {}

// String renders the arrow right associatively, so only an arrow in argument
// position needs parentheses.
func (t *Arrow) String() string {
	if _, isArrow := t.Arg.(*Arrow); isArrow {
		return fmt.Sprintf("(%s) -> %s", t.Arg, t.Ret)
	}
	return fmt.Sprintf("%s -> %s", t.Arg, t.Ret)
}

// Equal compares two types structurally.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch ta := a.(type) {
	case *Simple:
		other, isSimple := b.(*Simple)
		return isSimple && ta.Name == other.Name
	case *Arrow:
		other, isArrow := b.(*Arrow)
		return isArrow && Equal(ta.Arg, other.Arg) && Equal(ta.Ret, other.Ret)
	default:
		return false
	}
}
