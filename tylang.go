package tylang

import (
	"errors"
	"io"
	"strings"

	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/check"
	"github.com/tanema/tylang/src/lerrors"
	"github.com/tanema/tylang/src/parse"
	"github.com/tanema/tylang/src/types"
)

// String will parse and check source held in memory.
func String(src string) (types.Type, error) {
	return Check("<string>", strings.NewReader(src))
}

// Check will parse and check a source, labeling any error with filename.
func Check(filename string, src io.Reader) (types.Type, error) {
	expr, err := parse.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return CheckExpr(filename, expr)
}

// File will parse and check a source file.
func File(path string) (types.Type, error) {
	expr, err := parse.File(path)
	if err != nil {
		return nil, err
	}
	return CheckExpr(path, expr)
}

// CheckExpr checks an already parsed tree. A failure is a *lerrors.Error of
// kind TypeErr wrapping the *check.TypeError.
func CheckExpr(filename string, expr ast.Expr) (types.Type, error) {
	typ, err := check.Check(expr)
	if err != nil {
		return nil, typeErr(filename, expr, err)
	}
	return typ, nil
}

func typeErr(filename string, expr ast.Expr, err error) error {
	newErr := &lerrors.Error{
		Kind:     lerrors.TypeErr,
		Filename: filename,
		Err:      err,
	}
	var checkErr *check.TypeError
	if errors.As(err, &checkErr) && checkErr.Expr != nil {
		expr = checkErr.Expr
	}
	pos := expr.Pos()
	newErr.Line, newErr.Column = pos.Line, pos.Column
	return newErr
}
