// Package main is the main entrypoint to the tylang type checker.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/fatih/color"
	"github.com/tanema/tylang"
	"github.com/tanema/tylang/src/ast"
	"github.com/tanema/tylang/src/conf"
	"github.com/tanema/tylang/src/parse"
	"github.com/tanema/tylang/src/repl"
)

var (
	parseOnly   bool
	showVersion bool
	executeExpr string
	interactive bool
	noColor     bool
	timeFormat  string
)

func init() {
	flag.BoolVar(&parseOnly, "p", false, "parse only, print the expression tree")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.StringVar(&executeExpr, "e", "", "check expression 'expr'")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after checking a script")
	flag.BoolVar(&noColor, "nocolor", false, "disable colored output")
	flag.StringVar(&timeFormat, "t", "", "strftime format to timestamp repl results with")
}

func main() {
	if os.Getenv("TYLANG_PROFILE") != "" {
		defer runProfiling(os.Getenv("TYLANG_PROFILE"))()
	}
	flag.Usage = printUsage
	flag.Parse()
	if noColor {
		color.NoColor = true
	}

	args := flag.Args()
	if showVersion {
		printVersion()
	}
	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		checkSrc("<stdin>", os.Stdin)
	} else if executeExpr != "" {
		checkSrc("<string>", strings.NewReader(executeExpr))
	} else if len(args) == 0 && !showVersion {
		runREPL()
	} else if len(args) > 0 {
		src, err := os.Open(args[0])
		checkErr(err)
		defer func() { _ = src.Close() }()
		checkSrc(args[0], src)
	} else if !showVersion {
		printUsage()
	}
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: tylang [options] [script]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", color.RedString("%v", err))
		os.Exit(1)
	}
}

func checkSrc(path string, src io.Reader) {
	expr, err := parse.Parse(path, src)
	checkErr(err)
	if parseOnly {
		printTree(expr)
	} else {
		typ, err := tylang.CheckExpr(path, expr)
		checkErr(err)
		fmt.Fprintln(os.Stdout, color.GreenString("%v", typ))
	}
	if interactive {
		runREPL()
	}
}

func printTree(expr ast.Expr) {
	fmt.Fprintln(os.Stdout, expr.String())
}

func runREPL() {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer.\n")
	cfg := repl.DefaultConfig()
	cfg.NoColor = noColor
	cfg.TimeFormat = timeFormat
	checkErr(repl.Run(cfg))
}

func runProfiling(filename string) func() {
	f, err := os.Create(filename)
	checkErr(err)
	checkErr(pprof.StartCPUProfile(f))
	return pprof.StopCPUProfile
}
