// Package parse turns source text into the expression tree consumed by the
// checker. It is a small recursive descent parser; the grammar is documented
// on each production below.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/lerrors"
	"github.com/tanema/tylang/src/types"
)

// Parser parses one source at a time into an expression tree.
type Parser struct {
	lex      *lexer
	filename string
}

// New creates a new parser.
func New() *Parser {
	return &Parser{}
}

// File is a helper function around Parse to open and close a file automatically.
func File(path string) (ast.Expr, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return Parse(path, src)
}

// Parse parses a whole source as a single expression.
func Parse(filename string, src io.Reader) (ast.Expr, error) {
	return New().Parse(filename, src)
}

// String parses a source held in memory.
func String(src string) (ast.Expr, error) {
	return Parse("<string>", strings.NewReader(src))
}

// Parse reads a single expression from src, which must be followed by the end
// of the input. Input that ends before the expression is complete produces an
// error for which lerrors.Incomplete is true.
func (p *Parser) Parse(filename string, src io.Reader) (ast.Expr, error) {
	p.filename = filename
	p.lex = newLexer(filename, src)
	expr, err := p.expression()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenEOS); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseErr(tk *token, err error) error {
	if err == nil {
		return nil
	}
	var langErr *lerrors.Error
	if errors.As(err, &langErr) {
		return err
	}
	newErr := &lerrors.Error{
		Kind:     lerrors.ParserErr,
		Filename: p.filename,
		Err:      err,
	}
	if tk != nil {
		newErr.Line = tk.Line
		newErr.Column = tk.Column
	}
	return newErr
}

func (p *Parser) peek() (*token, error) {
	tk, err := p.lex.Peek()
	return tk, p.parseErr(tk, err)
}

func (p *Parser) consumeToken(tt tokenType) (*token, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, p.parseErr(tk, err)
	} else if tk.Kind == tokenEOS && tt != tokenEOS {
		return nil, p.parseErr(tk, fmt.Errorf("expected %q but reached the end of input: %w", tt, io.ErrUnexpectedEOF))
	} else if tt != tk.Kind {
		return nil, p.parseErr(tk, fmt.Errorf("expected %q but consumed %q", tt, tk))
	}
	return tk, nil
}

func (p *Parser) next(tt tokenType) error {
	_, err := p.consumeToken(tt)
	return err
}

// expr -> ifexpr | fun | letexpr | cmp.
func (p *Parser) expression() (ast.Expr, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenIf:
		return p.ifexpr()
	case tokenFun:
		fn, err := p.funexpr()
		if err != nil {
			return nil, err
		}
		return fn, nil
	case tokenLet:
		return p.letexpr()
	default:
		return p.cmpexpr()
	}
}

// ifexpr -> 'if' expr 'then' expr 'else' expr.
func (p *Parser) ifexpr() (ast.Expr, error) {
	tk, err := p.consumeToken(tokenIf)
	if err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenThen); err != nil {
		return nil, err
	}
	then, err := p.expression()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenElse); err != nil {
		return nil, err
	}
	els, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.If{LineInfo: tk.LineInfo, Cond: cond, Then: then, Else: els}, nil
}

// fun -> 'fun' NAME '(' NAME ':' type ')' ':' type 'is' expr.
func (p *Parser) funexpr() (*ast.Fun, error) {
	tk, err := p.consumeToken(tokenFun)
	if err != nil {
		return nil, err
	}
	name, err := p.consumeToken(tokenIdentifier)
	if err != nil {
		return nil, err
	} else if err := p.next(tokenOpenParen); err != nil {
		return nil, err
	}
	argName, err := p.consumeToken(tokenIdentifier)
	if err != nil {
		return nil, err
	} else if err := p.next(tokenColon); err != nil {
		return nil, err
	}
	argType, err := p.typeexpr()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenCloseParen); err != nil {
		return nil, err
	} else if err := p.next(tokenColon); err != nil {
		return nil, err
	}
	retType, err := p.typeexpr()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenIs); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Fun{
		LineInfo: tk.LineInfo,
		Name:     name.StringVal,
		ArgName:  argName.StringVal,
		ArgType:  argType,
		RetType:  retType,
		Body:     body,
	}, nil
}

// letexpr -> 'let' fun 'in' expr | 'let' 'rec' fun ('and' fun)* 'in' expr.
func (p *Parser) letexpr() (ast.Expr, error) {
	tk, err := p.consumeToken(tokenLet)
	if err != nil {
		return nil, err
	}
	next, err := p.peek()
	if err != nil {
		return nil, err
	} else if next.Kind == tokenRec {
		return p.letrec(tk)
	}
	fn, err := p.funexpr()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenIn); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.LetFun{LineInfo: tk.LineInfo, Fun: fn, Body: body}, nil
}

func (p *Parser) letrec(tk *token) (ast.Expr, error) {
	if err := p.next(tokenRec); err != nil {
		return nil, err
	}
	funs := []*ast.Fun{}
	for {
		fn, err := p.funexpr()
		if err != nil {
			return nil, err
		}
		funs = append(funs, fn)
		next, err := p.peek()
		if err != nil {
			return nil, err
		} else if next.Kind != tokenAnd {
			break
		}
		if err := p.next(tokenAnd); err != nil {
			return nil, err
		}
	}
	if err := p.next(tokenIn); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.LetRec{LineInfo: tk.LineInfo, Funs: funs, Body: body}, nil
}

// cmp -> arith (('==' | '<' | '>') arith)?.
func (p *Parser) cmpexpr() (ast.Expr, error) {
	lhs, err := p.arithexpr()
	if err != nil {
		return nil, err
	}
	op, err := p.peek()
	if err != nil {
		return nil, err
	}
	cmpOp, isCmp := tokenToCmpOp[op.Kind]
	if !isCmp {
		return lhs, nil
	} else if err := p.next(op.Kind); err != nil {
		return nil, err
	}
	rhs, err := p.arithexpr()
	if err != nil {
		return nil, err
	}
	return &ast.CmpBinOp{LineInfo: op.LineInfo, Op: cmpOp, Lhs: lhs, Rhs: rhs}, nil
}

// arith -> term (('+' | '-') term)*.
func (p *Parser) arithexpr() (ast.Expr, error) {
	return p.binary(p.term, tokenAdd, tokenMinus)
}

// term -> app (('*' | '/') app)*.
func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.application, tokenMultiply, tokenDivide)
}

// binary parses a left associative chain of the given operators.
func (p *Parser) binary(operand func() (ast.Expr, error), ops ...tokenType) (ast.Expr, error) {
	desc, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, err := p.peek()
		if err != nil {
			return nil, err
		} else if !slices.Contains(ops, op.Kind) {
			return desc, nil
		} else if err := p.next(op.Kind); err != nil {
			return nil, err
		}
		rdesc, err := operand()
		if err != nil {
			return nil, err
		}
		desc = &ast.ArithBinOp{LineInfo: op.LineInfo, Op: tokenToArithOp[op.Kind], Lhs: desc, Rhs: rdesc}
	}
}

// app -> atom atom*.
func (p *Parser) application() (ast.Expr, error) {
	desc, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		tk, err := p.peek()
		if err != nil {
			return nil, err
		} else if !tk.isAtomStart() {
			return desc, nil
		}
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		desc = &ast.Apply{LineInfo: desc.Pos(), Fun: desc, Arg: arg}
	}
}

// atom -> INT | 'true' | 'false' | NAME | '(' expr ')'.
func (p *Parser) atom() (ast.Expr, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, p.parseErr(tk, err)
	}
	switch tk.Kind {
	case tokenInteger:
		return &ast.Number{LineInfo: tk.LineInfo, Val: tk.IntVal}, nil
	case tokenTrue:
		return &ast.Bool{LineInfo: tk.LineInfo, Val: true}, nil
	case tokenFalse:
		return &ast.Bool{LineInfo: tk.LineInfo, Val: false}, nil
	case tokenIdentifier:
		return &ast.Var{LineInfo: tk.LineInfo, Name: tk.StringVal}, nil
	case tokenOpenParen:
		desc, err := p.expression()
		if err != nil {
			return nil, err
		}
		return desc, p.next(tokenCloseParen)
	case tokenEOS:
		return nil, p.parseErr(tk, fmt.Errorf("expected expression but reached the end of input: %w", io.ErrUnexpectedEOF))
	default:
		return nil, p.parseErr(tk, fmt.Errorf("unexpected symbol %v", tk.Kind))
	}
}

// type -> tatom ('->' type)?.
func (p *Parser) typeexpr() (types.Type, error) {
	arg, err := p.typeatom()
	if err != nil {
		return nil, err
	}
	tk, err := p.peek()
	if err != nil {
		return nil, err
	} else if tk.Kind != tokenArrow {
		return arg, nil
	} else if err := p.next(tokenArrow); err != nil {
		return nil, err
	}
	ret, err := p.typeexpr()
	if err != nil {
		return nil, err
	}
	return types.NewArrow(arg, ret), nil
}

// tatom -> NAME | '(' type ')'.
func (p *Parser) typeatom() (types.Type, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, p.parseErr(tk, err)
	}
	switch tk.Kind {
	case tokenOpenParen:
		defn, err := p.typeexpr()
		if err != nil {
			return nil, err
		}
		return defn, p.next(tokenCloseParen)
	case tokenIdentifier:
		defn, ok := types.Resolve(tk.StringVal)
		if !ok {
			return nil, p.parseErr(tk, fmt.Errorf("unknown type %v", tk.StringVal))
		}
		return defn, nil
	case tokenEOS:
		return nil, p.parseErr(tk, fmt.Errorf("expected type but reached the end of input: %w", io.ErrUnexpectedEOF))
	default:
		return nil, p.parseErr(tk, fmt.Errorf("type declaration expected definition found %s", tk))
	}
}
