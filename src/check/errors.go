package check

import (
	"fmt"

	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/types"
)

type (
	// ErrorKind enumerates every way a check can fail.
	ErrorKind int
	// TypeError is the single terminal failure of a check. Only the fields
	// relevant to Kind are set.
	TypeError struct {
		Kind ErrorKind
		// Ident is the unbound identifier.
		Ident string
		// Expected and Actual are the mismatched types.
		Expected types.Type
		Actual   types.Type
		// Then and Else are the types of the arms of an if.
		Then types.Type
		Else types.Type
		// Expr is the offending sub-expression, the one named in the message
		// for TypeMismatch and NotAFunction.
		Expr ast.Expr
		// Names is the letrec group containing a duplicate.
		Names []string
	}
)

const (
	// UnboundVariable is a reference to an identifier with no binding.
	UnboundVariable ErrorKind = iota
	// TypeMismatch is an expression whose type differs from the one required.
	TypeMismatch
	// ArmMismatch is an if whose arms have different types.
	ArmMismatch
	// NotAFunction is an application of something that is not a function.
	NotAFunction
	// DuplicateDefinition is a letrec that defines a name more than once.
	DuplicateDefinition
)

func (kind ErrorKind) String() string {
	switch kind {
	case UnboundVariable:
		return "unbound variable"
	case TypeMismatch:
		return "type mismatch"
	case ArmMismatch:
		return "arm mismatch"
	case NotAFunction:
		return "not a function"
	case DuplicateDefinition:
		return "duplicate definition"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
}

func (err *TypeError) Error() string {
	switch err.Kind {
	case UnboundVariable:
		return fmt.Sprintf("Unbound variable: %v", err.Ident)
	case TypeMismatch:
		return fmt.Sprintf("Expected %v, got %v in %v", err.Expected, err.Actual, err.Expr)
	case ArmMismatch:
		return fmt.Sprintf("Arms of an if have different types: %v %v", err.Then, err.Else)
	case NotAFunction:
		return fmt.Sprintf("Not a function %v", err.Expr)
	case DuplicateDefinition:
		return fmt.Sprintf("Duplicate definitions in letrec: %v", err.Names)
	default:
		return err.Kind.String()
	}
}

func unboundErr(ex *ast.Var) error {
	return &TypeError{Kind: UnboundVariable, Ident: ex.Name, Expr: ex}
}

func mismatchErr(expected, actual types.Type, expr ast.Expr) error {
	return &TypeError{Kind: TypeMismatch, Expected: expected, Actual: actual, Expr: expr}
}

func armErr(then, els types.Type, ex *ast.If) error {
	return &TypeError{Kind: ArmMismatch, Then: then, Else: els, Expr: ex}
}

func notFnErr(expr ast.Expr) error {
	return &TypeError{Kind: NotAFunction, Expr: expr}
}

func duplicateErr(ex *ast.LetRec) error {
	return &TypeError{Kind: DuplicateDefinition, Names: ex.Names(), Expr: ex}
}
