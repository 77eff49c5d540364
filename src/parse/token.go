package parse

import (
	"fmt"

	"github.com/tanema/tylang/src/ast"
)

type (
	tokenType string
	token     struct {
		ast.LineInfo
		Kind      tokenType
		StringVal string
		IntVal    int64
	}
)

const (
	tokenAdd        tokenType = "+"
	tokenMinus      tokenType = "-"
	tokenMultiply   tokenType = "*"
	tokenDivide     tokenType = "/"
	tokenEq         tokenType = "=="
	tokenLt         tokenType = "<"
	tokenGt         tokenType = ">"
	tokenArrow      tokenType = "->"
	tokenColon      tokenType = ":"
	tokenOpenParen  tokenType = "("
	tokenCloseParen tokenType = ")"
	tokenFun        tokenType = "fun"
	tokenIs         tokenType = "is"
	tokenLet        tokenType = "let"
	tokenRec        tokenType = "rec"
	tokenAnd        tokenType = "and"
	tokenIn         tokenType = "in"
	tokenIf         tokenType = "if"
	tokenThen       tokenType = "then"
	tokenElse       tokenType = "else"
	tokenTrue       tokenType = "true"
	tokenFalse      tokenType = "false"
	tokenInteger    tokenType = "integer"
	tokenIdentifier tokenType = "identifier"
	tokenEOS        tokenType = "<EOS>"
)

var (
	keywords = map[string]tokenType{
		string(tokenFun):   tokenFun,
		string(tokenIs):    tokenIs,
		string(tokenLet):   tokenLet,
		string(tokenRec):   tokenRec,
		string(tokenAnd):   tokenAnd,
		string(tokenIn):    tokenIn,
		string(tokenIf):    tokenIf,
		string(tokenThen):  tokenThen,
		string(tokenElse):  tokenElse,
		string(tokenTrue):  tokenTrue,
		string(tokenFalse): tokenFalse,
	}
	tokenToArithOp = map[tokenType]ast.ArithOp{
		tokenAdd:      ast.Add,
		tokenMinus:    ast.Sub,
		tokenMultiply: ast.Mul,
		tokenDivide:   ast.Div,
	}
	tokenToCmpOp = map[tokenType]ast.CmpOp{
		tokenEq: ast.Eq,
		tokenLt: ast.Lt,
		tokenGt: ast.Gt,
	}
)

func (tk *token) String() string {
	switch tk.Kind {
	case tokenInteger:
		return fmt.Sprintf("i%v", tk.IntVal)
	case tokenIdentifier:
		return fmt.Sprintf("<%v>", tk.StringVal)
	default:
		return string(tk.Kind)
	}
}

// isAtomStart reports whether the token can begin an application argument.
func (tk *token) isAtomStart() bool {
	switch tk.Kind {
	case tokenInteger, tokenTrue, tokenFalse, tokenIdentifier, tokenOpenParen:
		return true
	default:
		return false
	}
}
