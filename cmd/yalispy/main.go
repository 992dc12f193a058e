package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	yalispy "github.com/cappachu/yalispy"
)

const (
	appName     = "yalispy"
	historyFile = ".yalispy_history"
	prompt      = "lisp> "
)

var banner = fmt.Sprintf("yalispy %s\nCtrl+C cancels input, Ctrl+D exits. Type quit to exit.", yalispy.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		os.Exit(cmdRepl())
	}
	switch args[0] {
	case "version":
		fmt.Println(yalispy.Version)
	case "-h", "--help", "help":
		usage()
	default:
		os.Exit(cmdRun(args[0]))
	}
}

func usage() {
	fmt.Printf(`yalispy %s

Usage:
  %s              Start the REPL.
  %s <file>       Evaluate a file of expressions, printing each result.
  %s version      Print the version.

`, yalispy.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	nodes, perr := yalispy.ParseProgram(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, red(perr.Error()))
		return 1
	}

	ip := yalispy.NewInterpreter()
	for _, n := range nodes {
		v, err := yalispy.Eval(n, ip.Global)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		fmt.Println(yalispy.FormatValue(v))
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := yalispy.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == "quit" {
			return 0
		}

		// The REPL never terminates on an evaluation error: report and loop.
		v, everr := ip.EvalPersistentSource(code)
		if everr != nil {
			fmt.Fprintln(os.Stderr, red(everr.Error()))
			continue
		}
		fmt.Println(blue(yalispy.FormatValue(v)))
		ln.AppendHistory(code)
	}
}
