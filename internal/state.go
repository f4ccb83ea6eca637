package internal

import (
	"errors"
	"fmt"
	"os"
)

// reporter receives lexical and parse diagnostics
type reporter interface {
	report(line int, where, message string)
}

type parseError struct {
	line    int
	where   string
	message string
}

func (e parseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.message)
}

// RuntimeError is raised while evaluating a statement, it carries the
// token closest to the failure for diagnostics.
type RuntimeError struct {
	token   *token
	err     error
	message string
}

func newRuntimeError(tk *token, kind error, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{
		token:   tk,
		err:     kind,
		message: fmt.Sprintf(format, a...),
	}
}

func (e *RuntimeError) Error() string {
	return e.message
}

func (e *RuntimeError) Unwrap() error {
	return e.err
}

// Line returns the source line of the offending token
func (e *RuntimeError) Line() int {
	if e.token == nil {
		return 0
	}
	return e.token.line
}

// Report formats the error the way it is shown to users
func (e *RuntimeError) Report() string {
	return fmt.Sprintf("%s\n[line %d]", e.message, e.Line())
}

// interpreterState accumulates the diagnostics of one input unit
type interpreterState struct {
	errors       []parseError
	runtimeError *RuntimeError
}

func newInterpreterState() *interpreterState {
	return &interpreterState{errors: make([]parseError, 0)}
}

func (s *interpreterState) report(line int, where, message string) {
	s.errors = append(s.errors, parseError{
		line:    line,
		where:   where,
		message: message,
	})
}

func (s *interpreterState) setRuntimeError(err error) {
	var runErr *RuntimeError
	if errors.As(err, &runErr) {
		s.runtimeError = runErr
		return
	}
	s.runtimeError = &RuntimeError{err: err, message: err.Error()}
}

// HadError returns true if scanning or parsing reported anything
func (s *interpreterState) HadError() bool {
	return len(s.errors) != 0
}

// HadRuntimeError returns true if evaluation stopped on an error
func (s *interpreterState) HadRuntimeError() bool {
	return s.runtimeError != nil
}

// Valid returns true if the interpreter is in a valid state else false
func (s *interpreterState) Valid() bool {
	return !s.HadError() && !s.HadRuntimeError()
}

func (s *interpreterState) reset() {
	s.errors = s.errors[:0]
	s.runtimeError = nil
}

// PrintErrors prints all errors and returns true if there was any
func (s *interpreterState) PrintErrors(p IPrinter) bool {
	for _, e := range s.errors {
		p.Fprintln(os.Stderr, e.Error())
	}
	if s.runtimeError != nil {
		p.Fprintln(os.Stderr, s.runtimeError.Report())
	}
	return !s.Valid()
}

// Lexer errors
const (
	msgUnexpectedChar     = "Unexpected character."
	msgUnterminatedString = "Unterminated string."
)

// Parser errors
const (
	msgExpectedVarName      = "Expect variable name."
	msgExpectedVarSemicolon = "Expect ';' after variable declaration."
	msgExpectedIfParen      = "Expect '(' after 'if'."
	msgExpectedIfCloseParen = "Expect ')' after if condition."
	msgExpectedClosingBrace = "Expect '}' after block."
	msgExpectedValueSemi    = "Expect ';' after value."
	msgExpectedExprSemi     = "Expect ';' after expression."
	msgUnclosedParen        = "Expect ')' after expression."
	msgExpectedExpression   = "Expect expression."
	msgInvalidAssignTarget  = "Invalid assignment target."
)

// Runtime errors
var (
	// ErrTypeError is wrapped by errors caused by operands of the wrong type
	ErrTypeError = errors.New("type error")

	// ErrUndefinedVariable is wrapped by errors caused by unbound names
	ErrUndefinedVariable = errors.New("undefined variable")
)

const (
	msgOperandNumber   = "Operand must be a number."
	msgOperandsNumbers = "Operands must be numbers."
	msgOperandsPlus    = "Operands must be two numbers or two strings."
	msgUndefinedVarFmt = "Undefined variable '%s'."
)
