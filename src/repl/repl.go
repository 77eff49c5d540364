// Package repl is the interactive driver. Each complete expression typed at
// the prompt is parsed and checked on its own and its type, or the error, is
// printed back.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/lestrrat-go/strftime"
	"github.com/tanema/tylang/src/check"
	"github.com/tanema/tylang/src/conf"
	"github.com/tanema/tylang/src/lerrors"
	"github.com/tanema/tylang/src/parse"
)

type (
	// Config adjusts how the repl reads and prints.
	Config struct {
		// HistoryFile is where input history is kept, empty for none.
		HistoryFile string
		// TimeFormat is a strftime pattern; when set every result is prefixed with
		// the time it was produced.
		TimeFormat string
		// NoColor disables colored output.
		NoColor bool
		Stdout  io.Writer
		Stderr  io.Writer
		// Now is the clock used for timestamps.
		Now func() time.Time
	}
	// Session accumulates input lines until they form a complete expression.
	Session struct {
		cfg    Config
		buf    bytes.Buffer
		stamp  *strftime.Strftime
		okClr  *color.Color
		errClr *color.Color
	}
)

// DefaultConfig writes to the standard streams and keeps history in the
// user's home directory.
func DefaultConfig() Config {
	cfg := Config{Stdout: os.Stdout, Stderr: os.Stderr, Now: time.Now}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, conf.HISTORYFILE)
	}
	return cfg
}

// NewSession creates a session with an empty buffer.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Session{
		cfg:    cfg,
		okClr:  color.New(color.FgGreen),
		errClr: color.New(color.FgRed),
	}
	if cfg.NoColor {
		s.okClr.DisableColor()
		s.errClr.DisableColor()
	}
	if cfg.TimeFormat != "" {
		stamp, err := strftime.New(cfg.TimeFormat)
		if err != nil {
			return nil, fmt.Errorf("invalid time format %q: %w", cfg.TimeFormat, err)
		}
		s.stamp = stamp
	}
	return s, nil
}

// Pending reports whether an incomplete expression is buffered.
func (s *Session) Pending() bool {
	return s.buf.Len() > 0
}

// Reset drops any buffered input.
func (s *Session) Reset() {
	s.buf.Reset()
}

// Feed adds a line of input. Once the buffer holds a complete expression it is
// checked, the result printed and the buffer cleared. The returned prompt is
// the one to show for the next line.
func (s *Session) Feed(line string) string {
	if strings.TrimSpace(line) == "" && !s.Pending() {
		return conf.PROMPT
	}
	s.buf.WriteString(line)
	s.buf.WriteString("\n")

	expr, err := parse.Parse("<repl>", strings.NewReader(s.buf.String()))
	if err != nil && lerrors.Incomplete(err) {
		return conf.CONTPROMPT
	}
	s.buf.Reset()
	if err != nil {
		s.printErr(err)
		return conf.PROMPT
	}
	typ, err := check.Check(expr)
	if err != nil {
		s.printErr(err)
		return conf.PROMPT
	}
	fmt.Fprintf(s.cfg.Stdout, "%s%s\n", s.timestamp(), s.okClr.Sprintf("- : %v", typ))
	return conf.PROMPT
}

func (s *Session) printErr(err error) {
	fmt.Fprintf(s.cfg.Stderr, "%s%s\n", s.timestamp(), s.errClr.Sprint(err))
}

func (s *Session) timestamp() string {
	if s.stamp == nil {
		return ""
	}
	return s.stamp.FormatString(s.cfg.Now()) + " "
}

// Run reads lines from the terminal until ctrl-d, or ctrl-c on an empty
// buffer. ctrl-c with a pending expression discards it.
func Run(cfg Config) error {
	s, err := NewSession(cfg)
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      conf.PROMPT,
		HistoryFile: cfg.HistoryFile,
		Stdout:      s.cfg.Stdout,
		Stderr:      s.cfg.Stderr,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if s.Pending() {
					rl.SetPrompt(conf.PROMPT)
					s.Reset()
					fmt.Fprint(s.cfg.Stderr, "Press ctrl-c again to quit.\n")
					continue
				}
				return nil
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		rl.SetPrompt(s.Feed(src))
	}
}
