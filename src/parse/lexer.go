package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/lerrors"
)

type lexer struct {
	filename string
	rdr      *bufio.Reader
	peeked   []*token
	ast.LineInfo
}

func newLexer(filename string, src io.Reader) *lexer {
	return &lexer{
		filename: filename,
		LineInfo: ast.LineInfo{Line: 1},
		rdr:      bufio.NewReaderSize(src, 4096),
		peeked:   []*token{},
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &lerrors.Error{
		Filename: lex.filename,
		Kind:     lerrors.LexerErr,
		Line:     lex.Line,
		Column:   lex.Column,
		Err:      err,
	}
}

func (lex *lexer) peek() rune {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return rune(chs[0])
}

func (lex *lexer) next() (rune, error) {
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return ch, lex.err(err)
	}
	if ch == '\n' {
		lex.Line++
		lex.Column = 0
	} else {
		lex.Column++
	}
	return ch, nil
}

func (lex *lexer) skipWhitespace() error {
	for {
		if tk := lex.peek(); tk == ' ' || tk == '\t' || tk == '\n' || tk == '\r' {
			if _, err := lex.next(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (lex *lexer) tokenVal(tk tokenType) (*token, error) {
	return &token{Kind: tk, LineInfo: ast.LineInfo{Line: lex.Line, Column: lex.Column - int64(len(tk)) + 1}}, nil
}

func (lex *lexer) takeTokenVal(tk tokenType) (*token, error) {
	if _, err := lex.next(); err != nil {
		return nil, err
	}
	return lex.tokenVal(tk)
}

// allow for FIFO stack.
func (lex *lexer) back(tk *token) {
	lex.peeked = append(lex.peeked, tk)
}

// Peek returns the next token without consuming it. The end of the input is
// reported as a tokenEOS rather than an error.
func (lex *lexer) Peek() (*token, error) {
	if len(lex.peeked) == 0 {
		tk, err := lex.Next()
		if err != nil {
			return &token{Kind: tokenEOS, LineInfo: lex.LineInfo}, err
		}
		lex.back(tk)
	}
	return lex.peeked[len(lex.peeked)-1], nil
}

// Next consumes the next token.
func (lex *lexer) Next() (*token, error) {
	if len(lex.peeked) != 0 {
		top := lex.peeked[len(lex.peeked)-1]
		lex.peeked = lex.peeked[:len(lex.peeked)-1]
		return top, nil
	}
	for {
		if err := lex.skipWhitespace(); err != nil {
			return nil, err
		}
		ch, err := lex.next()
		if errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS, LineInfo: lex.LineInfo}, nil
		} else if err != nil {
			return nil, err
		}
		peekCh := lex.peek()
		if ch == '-' && peekCh == '-' {
			if err := lex.skipComment(); err != nil {
				return nil, err
			}
			continue
		}
		return lex.scan(ch, peekCh)
	}
}

func (lex *lexer) scan(ch, peekCh rune) (*token, error) {
	switch {
	case ch == '-' && peekCh == '>':
		return lex.takeTokenVal(tokenArrow)
	case ch == '-':
		return lex.tokenVal(tokenMinus)
	case ch == '=' && peekCh == '=':
		return lex.takeTokenVal(tokenEq)
	case ch == '+':
		return lex.tokenVal(tokenAdd)
	case ch == '*':
		return lex.tokenVal(tokenMultiply)
	case ch == '/':
		return lex.tokenVal(tokenDivide)
	case ch == '<':
		return lex.tokenVal(tokenLt)
	case ch == '>':
		return lex.tokenVal(tokenGt)
	case ch == ':':
		return lex.tokenVal(tokenColon)
	case ch == '(':
		return lex.tokenVal(tokenOpenParen)
	case ch == ')':
		return lex.tokenVal(tokenCloseParen)
	case unicode.IsDigit(ch):
		return lex.parseNumber(ch)
	case unicode.IsLetter(ch) || ch == '_':
		return lex.parseIdentifier(ch)
	}
	return nil, lex.errf("unexpected character %v", string(ch))
}

// comments run to the end of the line.
func (lex *lexer) skipComment() error {
	for {
		ch, err := lex.next()
		if errors.Is(err, io.EOF) || ch == '\n' {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (lex *lexer) parseIdentifier(start rune) (*token, error) {
	linfo := lex.LineInfo
	var ident bytes.Buffer
	if _, err := ident.WriteRune(start); err != nil {
		return nil, err
	}

	for {
		if peekCh := lex.peek(); unicode.IsLetter(peekCh) || unicode.IsDigit(peekCh) || peekCh == '_' || peekCh == '\'' {
			if ch, err := lex.next(); err != nil {
				return nil, err
			} else if _, err := ident.WriteRune(ch); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	strVal := ident.String()
	if kw, ok := keywords[strVal]; ok {
		return &token{Kind: kw, LineInfo: linfo}, nil
	}
	return &token{
		Kind:      tokenIdentifier,
		StringVal: strVal,
		LineInfo:  linfo,
	}, nil
}

func (lex *lexer) parseNumber(start rune) (*token, error) {
	linfo := lex.LineInfo
	var number bytes.Buffer
	if _, err := number.WriteRune(start); err != nil {
		return nil, lex.err(err)
	}
	for unicode.IsDigit(lex.peek()) {
		ch, err := lex.next()
		if err != nil {
			return nil, err
		}
		number.WriteRune(ch)
	}
	if peekCh := lex.peek(); unicode.IsLetter(peekCh) || peekCh == '_' {
		return nil, lex.errf("malformed number near %v", number.String()+string(peekCh))
	}
	ivalue, err := strconv.ParseInt(number.String(), 10, 64)
	if err != nil {
		return nil, lex.err(fmt.Errorf("parse int: %w", errors.Unwrap(err)))
	}
	return &token{Kind: tokenInteger, IntVal: ivalue, LineInfo: linfo}, nil
}
