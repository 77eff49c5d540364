// Package ast describes the expression tree handed to the checker. The set of
// expression kinds is closed: every node implements Expr through an unexported
// method so that consumers can switch over them exhaustively.
package ast

import (
	"fmt"
	"strings"

	"github.com/tanema/tylang/src/types"
)

type (
	// Expr is any node of the expression tree.
	Expr interface {
		fmt.Stringer
		Pos() LineInfo
		isExpr()
	}
	// LineInfo is the position of a node in its source, zero when the tree was
	// not produced by the parser.
	LineInfo struct {
		Line   int64
		Column int64
	}
	// ArithOp is one of the integer arithmetic operators.
	ArithOp string
	// CmpOp is one of the integer comparison operators.
	CmpOp string
	// Var is a reference to a bound identifier.
	Var struct {
		LineInfo
		Name string
	}
	// Number is an integer literal.
	Number struct {
		LineInfo
		Val int64
	}
	// Bool is a boolean literal.
	Bool struct {
		LineInfo
		Val bool
	}
	// ArithBinOp is an arithmetic operation on two integers.
	ArithBinOp struct {
		LineInfo
		Op  ArithOp
		Lhs Expr
		Rhs Expr
	}
	// CmpBinOp is a comparison between two integers.
	CmpBinOp struct {
		LineInfo
		Op  CmpOp
		Lhs Expr
		Rhs Expr
	}
	// If is a conditional expression, both arms are required.
	If struct {
		LineInfo
		Cond Expr
		Then Expr
		Else Expr
	}
	// Fun is a named single argument function with explicit annotations. The
	// name is visible inside Body so the function can call itself.
	Fun struct {
		LineInfo
		Name    string
		ArgName string
		ArgType types.Type
		RetType types.Type
		Body    Expr
	}
	// LetFun binds a single function for use in Body.
	LetFun struct {
		LineInfo
		Fun  *Fun
		Body Expr
	}
	// LetRec binds a group of mutually recursive functions for use in each
	// other's bodies and in Body.
	LetRec struct {
		LineInfo
		Funs []*Fun
		Body Expr
	}
	// Apply calls Fun with a single argument.
	Apply struct {
		LineInfo
		Fun Expr
		Arg Expr
	}
)

const (
	// Add is integer addition.
	Add ArithOp = "+"
	// Sub is integer subtraction.
	Sub ArithOp = "-"
	// Mul is integer multiplication.
	Mul ArithOp = "*"
	// Div is integer division.
	Div ArithOp = "/"

	// Eq is integer equality.
	Eq CmpOp = "=="
	// Lt is integer less than.
	Lt CmpOp = "<"
	// Gt is integer greater than.
	Gt CmpOp = ">"
)

// Pos returns the position of the node.
func (l LineInfo) Pos() LineInfo { return l }

func (l LineInfo) String() string { return fmt.Sprintf("%v:%v", l.Line, l.Column) }

func (*Var) isExpr()        {}
func (*Number) isExpr()     {}
func (*Bool) isExpr()       {}
func (*ArithBinOp) isExpr() {}
func (*CmpBinOp) isExpr()   {}
func (*If) isExpr()         {}
func (*Fun) isExpr()        {}
func (*LetFun) isExpr()     {}
func (*LetRec) isExpr()     {}
func (*Apply) isExpr()      {}

func (e *Var) String() string    { return e.Name }
func (e *Number) String() string { return fmt.Sprint(e.Val) }
func (e *Bool) String() string   { return fmt.Sprint(e.Val) }

func (e *ArithBinOp) String() string {
	return fmt.Sprintf("(%v %v %v)", e.Op, e.Lhs, e.Rhs)
}

func (e *CmpBinOp) String() string {
	return fmt.Sprintf("(%v %v %v)", e.Op, e.Lhs, e.Rhs)
}

func (e *If) String() string {
	return fmt.Sprintf("(if %v %v %v)", e.Cond, e.Then, e.Else)
}

func (e *Fun) String() string {
	return fmt.Sprintf("(λ %v (%v: %v): %v %v)", e.Name, e.ArgName, e.ArgType, e.RetType, e.Body)
}

func (e *LetFun) String() string {
	return fmt.Sprintf("(let %v %v)", e.Fun, e.Body)
}

func (e *LetRec) String() string {
	return fmt.Sprintf("(letrec [%v] %v)", fmtFuns(e.Funs), e.Body)
}

func (e *Apply) String() string {
	return fmt.Sprintf("(%v %v)", e.Fun, e.Arg)
}

// Type is the declared type of the function, derived from its signature only.
func (e *Fun) Type() *types.Arrow {
	return types.NewArrow(e.ArgType, e.RetType)
}

// Names lists the function names of the group in declaration order.
func (e *LetRec) Names() []string {
	names := make([]string, len(e.Funs))
	for i, fn := range e.Funs {
		names[i] = fn.Name
	}
	return names
}

func fmtFuns(funs []*Fun) string {
	parts := make([]string, len(funs))
	for i, fn := range funs {
		parts[i] = fn.String()
	}
	return strings.Join(parts, " ")
}
