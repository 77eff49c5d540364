// Package lerrors is a unified errors package for lexing, parsing and type
// checking so that they can be formatted and handled the same way by drivers.
package lerrors

import (
	"errors"
	"fmt"
	"io"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures every error that leaves the front end. It distinguishes
	// between lexer, parser and type errors and formats them accordingly.
	Error struct {
		Line     int64
		Column   int64
		Kind     ErrorKind
		Err      error
		Filename string
	}
)

const (
	// TypeErr is an error that originates from the type checker.
	TypeErr ErrorKind = iota
	// ParserErr is an error that originates from the parser.
	ParserErr
	// LexerErr is an error that originates from the lexer.
	LexerErr
)

func (err *Error) Error() string {
	switch err.Kind {
	case TypeErr:
		return fmt.Sprintf("Type Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	case ParserErr:
		return fmt.Sprintf("Parse Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	case LexerErr:
		return fmt.Sprintf("Lex Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Incomplete reports whether err was caused by the input ending early, which
// an interactive driver can fix by reading more input.
func Incomplete(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
