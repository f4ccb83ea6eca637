package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface. Println receives program output,
// Fprintln receives diagnostics addressed to w.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Result summarizes one input unit
type Result struct {
	HadError        bool
	HadRuntimeError bool
	RuntimeError    *RuntimeError
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for stage tracing
func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// Interpreter keeps a global scope alive across input units
type Interpreter struct {
	state   *interpreterState
	exec    *exec
	printer IPrinter
	logger  logrus.FieldLogger
}

// NewInterpreter creates an interpreter writing to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	i := &Interpreter{
		state:   newInterpreterState(),
		printer: p,
		logger:  defaultLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.exec = newExec(p, i.logger)
	return i
}

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// Run scans, parses and executes one input unit. Diagnostics are
// printed and the accumulator is reset before the next unit.
func (i *Interpreter) Run(source string) Result {
	i.state.reset()
	defer i.state.PrintErrors(i.printer)

	stmts, ok := i.parse(source)
	if !ok {
		return i.result()
	}

	i.logger.WithField("stage", "interpret").Debug("start")
	if err := i.exec.interpret(stmts); err != nil {
		i.state.setRuntimeError(err)
	}
	return i.result()
}

// Tokens prints every token of source, one per line
func (i *Interpreter) Tokens(source string) Result {
	i.state.reset()
	defer i.state.PrintErrors(i.printer)

	for _, tk := range i.scan(source) {
		i.printer.Println(tk.String())
	}
	return i.result()
}

// Tree prints the parenthesized form of every statement in source
func (i *Interpreter) Tree(source string) Result {
	i.state.reset()
	defer i.state.PrintErrors(i.printer)

	stmts, ok := i.parse(source)
	if !ok {
		return i.result()
	}
	for _, st := range stmts {
		i.printer.Println(printStmtTree(st))
	}
	return i.result()
}

func (i *Interpreter) scan(source string) []token {
	tokens := newLexer(source, i.state).scan()
	i.logger.WithFields(logrus.Fields{
		"stage":  "scan",
		"tokens": len(tokens),
	}).Debug("done")
	return tokens
}

func (i *Interpreter) parse(source string) ([]stmt, bool) {
	tokens := i.scan(source)
	stmts := newParser(tokens, i.state).parse()
	i.logger.WithFields(logrus.Fields{
		"stage":  "parse",
		"stmts":  len(stmts),
		"errors": len(i.state.errors),
	}).Debug("done")
	return stmts, !i.state.HadError()
}

func (i *Interpreter) result() Result {
	return Result{
		HadError:        i.state.HadError(),
		HadRuntimeError: i.state.HadRuntimeError(),
		RuntimeError:    i.state.runtimeError,
	}
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter, opts ...Option) bool {
	res := NewInterpreter(p, opts...).Run(source)
	return !res.HadError && !res.HadRuntimeError
}
