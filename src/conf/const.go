// Package conf contains the constants that are used across packages for
// configuring versions and the interactive driver.
package conf

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	// VERSION is the version of the tylang application.
	VERSION = "tylang 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// PROMPT is the repl prompt for a fresh expression.
	PROMPT = "> "
	// CONTPROMPT is the repl prompt while an expression is incomplete.
	CONTPROMPT = "...> "
	// HISTORYFILE is the name of the repl history file in the user's home dir.
	HISTORYFILE = ".tylang_history"
	// COPYRIGHTFORMAT is the strftime pattern for the copyright year.
	COPYRIGHTFORMAT = "Copyright (C) %Y"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", VERSION, Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return CopyrightAt(time.Now())
}

// CopyrightAt renders the copyright for the year of t.
func CopyrightAt(t time.Time) string {
	copyright, err := strftime.Format(COPYRIGHTFORMAT, t)
	if err != nil {
		return fmt.Sprintf("Copyright (C) %v", t.Year())
	}
	return copyright
}
