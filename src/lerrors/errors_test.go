package lerrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	cases := []struct {
		err      *Error
		expected string
	}{
		{&Error{Kind: TypeErr, Filename: "<string>", Line: 1, Column: 3, Err: cause}, "Type Error: <string>:1:3 boom"},
		{&Error{Kind: ParserErr, Filename: "main.ty", Line: 2, Column: 4, Err: cause}, "Parse Error: main.ty:2:4 boom"},
		{&Error{Kind: LexerErr, Filename: "main.ty", Line: 1, Column: 9, Err: cause}, "Lex Error: main.ty:1:9 boom"},
		{&Error{Kind: ErrorKind(99), Err: cause}, "boom"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.err.Error())
		assert.ErrorIs(t, tc.err, cause)
	}
}

func TestIncomplete(t *testing.T) {
	t.Parallel()
	assert.True(t, Incomplete(io.EOF))
	assert.True(t, Incomplete(&Error{Kind: ParserErr, Err: io.ErrUnexpectedEOF}))
	assert.True(t, Incomplete(fmt.Errorf("expected then: %w", io.ErrUnexpectedEOF)))
	assert.False(t, Incomplete(errors.New("nope")))
	assert.False(t, Incomplete(nil))
}
