package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"golox/internal"
)

// Exit codes follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitIOErr    = 74
	exitSoftware = 70
)

const prompt = "> "

type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(enabled bool) stdPrinter {
	c := color.New()
	c.SetOutput(os.Stderr)
	if !enabled {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

type mode int

const (
	modeRun mode = iota
	modeTokens
	modeTree
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := internal.ConfigFromEnv()

	fs := flag.NewFlagSet("golox", flag.ContinueOnError)
	tokens := fs.Bool("tokens", false, "print the scanned tokens instead of running")
	tree := fs.Bool("ast", false, "print the parsed tree instead of running")
	noColor := fs.Bool("no-color", !cfg.Color, "disable colored diagnostics")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: golox [flags] [script]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	cfg.Color = !*noColor

	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	m := modeRun
	if *tokens {
		m = modeTokens
	} else if *tree {
		m = modeTree
	}

	p := newStdPrinter(cfg.Color)
	ip := internal.NewInterpreter(p, internal.WithLogger(logger))

	if fs.NArg() == 1 {
		return runFile(ip, logger, fs.Arg(0), m)
	}
	return runPrompt(ip, cfg, p, m)
}

func runUnit(ip *internal.Interpreter, source string, m mode) internal.Result {
	switch m {
	case modeTokens:
		return ip.Tokens(source)
	case modeTree:
		return ip.Tree(source)
	}
	return ip.Run(source)
}

func runFile(ip *internal.Interpreter, logger logrus.FieldLogger, path string, m mode) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.WithError(err).Error("resolve script path")
		return exitIOErr
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).Error("read script")
		return exitIOErr
	}

	logger.WithField("path", absPath).Debug("run file")

	res := runUnit(ip, string(b), m)
	if res.HadError {
		return exitDataErr
	}
	if res.HadRuntimeError {
		return exitSoftware
	}
	return exitOK
}

func runPrompt(ip *internal.Interpreter, cfg internal.Config, p stdPrinter, m mode) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Println(p.color.Bold("golox REPL, Ctrl-D exits"))
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			p.Fprintln(os.Stderr, err)
			return exitIOErr
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		// Errors only abandon the current line
		runUnit(ip, line, m)
	}
}
