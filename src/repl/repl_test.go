package repl

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/tylang/src/conf"
)

func session(t *testing.T, timeFormat string) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	s, err := NewSession(Config{
		TimeFormat: timeFormat,
		NoColor:    true,
		Stdout:     stdout,
		Stderr:     stderr,
		Now:        func() time.Time { return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return s, stdout, stderr
}

func TestSession_Feed(t *testing.T) {
	t.Parallel()

	t.Run("complete expression", func(t *testing.T) {
		t.Parallel()
		s, stdout, stderr := session(t, "")
		assert.Equal(t, conf.PROMPT, s.Feed("fun id (x: int): int is x"))
		assert.Equal(t, "- : int -> int\n", stdout.String())
		assert.Empty(t, stderr.String())
		assert.False(t, s.Pending())
	})

	t.Run("continuation", func(t *testing.T) {
		t.Parallel()
		s, stdout, _ := session(t, "")
		assert.Equal(t, conf.CONTPROMPT, s.Feed("let fun inc (x: int): int is x + 1"))
		assert.True(t, s.Pending())
		assert.Equal(t, conf.PROMPT, s.Feed("in inc 92"))
		assert.Equal(t, "- : int\n", stdout.String())
		assert.False(t, s.Pending())
	})

	t.Run("type error", func(t *testing.T) {
		t.Parallel()
		s, stdout, stderr := session(t, "")
		assert.Equal(t, conf.PROMPT, s.Feed("if true then 92 else false"))
		assert.Empty(t, stdout.String())
		assert.Equal(t, "Arms of an if have different types: int bool\n", stderr.String())
	})

	t.Run("parse error clears buffer", func(t *testing.T) {
		t.Parallel()
		s, _, stderr := session(t, "")
		assert.Equal(t, conf.PROMPT, s.Feed("1 )"))
		assert.Contains(t, stderr.String(), "Parse Error: <repl>:1:3")
		assert.False(t, s.Pending())
	})

	t.Run("blank lines", func(t *testing.T) {
		t.Parallel()
		s, stdout, stderr := session(t, "")
		assert.Equal(t, conf.PROMPT, s.Feed("   "))
		assert.False(t, s.Pending())
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		s, stdout, _ := session(t, "")
		assert.Equal(t, conf.CONTPROMPT, s.Feed("if true then"))
		s.Reset()
		assert.Equal(t, conf.PROMPT, s.Feed("true"))
		assert.Equal(t, "- : bool\n", stdout.String())
	})

	t.Run("timestamps", func(t *testing.T) {
		t.Parallel()
		s, stdout, stderr := session(t, "[%H:%M]")
		s.Feed("1 < 2")
		s.Feed("x")
		assert.Equal(t, "[14:30] - : bool\n", stdout.String())
		assert.Equal(t, "[14:30] Unbound variable: x\n", stderr.String())
	})
}

func TestNewSession_Defaults(t *testing.T) {
	t.Parallel()
	s, err := NewSession(Config{})
	require.NoError(t, err)
	assert.NotNil(t, s.cfg.Stdout)
	assert.NotNil(t, s.cfg.Stderr)
	assert.NotNil(t, s.cfg.Now)
}
