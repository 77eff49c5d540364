// Package check is the type checker. It walks an expression tree once,
// consulting and extending an environment of bindings, and returns the type
// of the whole expression or the first error found.
package check

import (
	"fmt"

	"github.com/ahrtr/gocontainer/set"
	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/env"
	"github.com/tanema/tylang/src/types"
)

// Check checks expr in an empty environment.
func Check(expr ast.Expr) (types.Type, error) {
	return CheckIn(env.Empty(), expr)
}

// CheckIn checks expr against the bindings already in e. e is left exactly as
// it was found.
func CheckIn(e *env.Env, expr ast.Expr) (types.Type, error) {
	switch ex := expr.(type) {
	case *ast.Var:
		return checkVar(e, ex)
	case *ast.Number:
		return types.Int, nil
	case *ast.Bool:
		return types.Bool, nil
	case *ast.ArithBinOp:
		return checkArith(e, ex)
	case *ast.CmpBinOp:
		return checkCmp(e, ex)
	case *ast.If:
		return checkIf(e, ex)
	case *ast.Fun:
		return checkFun(e, ex)
	case *ast.LetFun:
		return checkLetFun(e, ex)
	case *ast.LetRec:
		return checkLetRec(e, ex)
	case *ast.Apply:
		return checkApply(e, ex)
	default:
		panic(fmt.Sprintf("unsupported expression type: %T", expr))
	}
}

// expect checks expr and requires its type to equal want.
func expect(e *env.Env, expr ast.Expr, want types.Type) (types.Type, error) {
	typ, err := CheckIn(e, expr)
	if err != nil {
		return nil, err
	} else if !types.Equal(want, typ) {
		return nil, mismatchErr(want, typ, expr)
	}
	return want, nil
}

func checkVar(e *env.Env, ex *ast.Var) (types.Type, error) {
	typ, found := e.Lookup(ex.Name)
	if !found {
		return nil, unboundErr(ex)
	}
	return typ, nil
}

// checkArith gives every operator the same int result.
func checkArith(e *env.Env, ex *ast.ArithBinOp) (types.Type, error) {
	if _, err := expect(e, ex.Lhs, types.Int); err != nil {
		return nil, err
	} else if _, err := expect(e, ex.Rhs, types.Int); err != nil {
		return nil, err
	}
	return types.Int, nil
}

// checkCmp only accepts int operands, for == as well as < and >.
func checkCmp(e *env.Env, ex *ast.CmpBinOp) (types.Type, error) {
	if _, err := expect(e, ex.Lhs, types.Int); err != nil {
		return nil, err
	} else if _, err := expect(e, ex.Rhs, types.Int); err != nil {
		return nil, err
	}
	return types.Bool, nil
}

func checkIf(e *env.Env, ex *ast.If) (types.Type, error) {
	if _, err := expect(e, ex.Cond, types.Bool); err != nil {
		return nil, err
	}
	thenType, err := CheckIn(e, ex.Then)
	if err != nil {
		return nil, err
	}
	elseType, err := CheckIn(e, ex.Else)
	if err != nil {
		return nil, err
	}
	if !types.Equal(thenType, elseType) {
		return nil, armErr(thenType, elseType, ex)
	}
	return thenType, nil
}

// checkFun binds the argument and the function's own name together for the
// body only; the caller never sees either binding.
func checkFun(e *env.Env, fn *ast.Fun) (types.Type, error) {
	ownType := fn.Type()
	bindings := []env.Binding{
		env.Bind(fn.ArgName, fn.ArgType),
		env.Bind(fn.Name, ownType),
	}
	_, err := e.WithBindings(bindings, func(e *env.Env) (types.Type, error) {
		return expect(e, fn.Body, fn.RetType)
	})
	if err != nil {
		return nil, err
	}
	return ownType, nil
}

func checkLetFun(e *env.Env, ex *ast.LetFun) (types.Type, error) {
	funType, err := checkFun(e, ex.Fun)
	if err != nil {
		return nil, err
	}
	return e.WithBindings([]env.Binding{env.Bind(ex.Fun.Name, funType)}, func(e *env.Env) (types.Type, error) {
		return CheckIn(e, ex.Body)
	})
}

func checkLetRec(e *env.Env, ex *ast.LetRec) (types.Type, error) {
	bindings, err := recBindings(ex)
	if err != nil {
		return nil, err
	}
	return e.WithBindings(bindings, func(e *env.Env) (types.Type, error) {
		for _, fn := range ex.Funs {
			if _, err := checkFun(e, fn); err != nil {
				return nil, err
			}
		}
		return CheckIn(e, ex.Body)
	})
}

// recBindings builds the shared scope of a letrec from the function
// signatures alone. Names must be distinct.
func recBindings(ex *ast.LetRec) ([]env.Binding, error) {
	seen := set.New()
	bindings := make([]env.Binding, 0, len(ex.Funs))
	for _, fn := range ex.Funs {
		if seen.Contains(fn.Name) {
			return nil, duplicateErr(ex)
		}
		seen.Add(fn.Name)
		bindings = append(bindings, env.Bind(fn.Name, fn.Type()))
	}
	return bindings, nil
}

func checkApply(e *env.Env, ex *ast.Apply) (types.Type, error) {
	funType, err := CheckIn(e, ex.Fun)
	if err != nil {
		return nil, err
	}
	arrow, isArrow := funType.(*types.Arrow)
	if !isArrow {
		return nil, notFnErr(ex.Fun)
	}
	if _, err := expect(e, ex.Arg, arrow.Arg); err != nil {
		return nil, err
	}
	return arrow.Ret, nil
}
