package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type exec struct {
	globals *env
	env     *env

	printer IPrinter
	logger  logrus.FieldLogger
}

func newExec(printer IPrinter, logger logrus.FieldLogger) *exec {
	globals := newEnv(nil)
	return &exec{
		globals: globals,
		env:     globals,
		printer: printer,
		logger:  logger,
	}
}

// interpret runs every statement in order and stops on the first runtime
// error, which is returned instead of being raised
func (e *exec) interpret(stmts []stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			e.logger.WithFields(logrus.Fields{
				"stage": "interpret",
				"line":  runErr.Line(),
			}).Debug(runErr.Error())
			err = runErr
		}
	}()
	for _, s := range stmts {
		e.execute(s)
	}
	return nil
}

func (e *exec) execute(st stmt) {
	switch st := st.(type) {
	case *exprStmt:
		e.evaluate(st.expression)
	case *printStmt:
		e.printer.Println(stringify(e.evaluate(st.expression)))
	case *varStmt:
		var val interface{}
		if st.initializer != nil {
			val = e.evaluate(st.initializer)
		}
		e.env.define(st.name.lexeme, val)
	case *ifStmt:
		if truthy(e.evaluate(st.condition)) {
			e.execute(st.thenBranch)
		} else if st.elseBranch != nil {
			e.execute(st.elseBranch)
		}
	case *blockStmt:
		e.executeBlock(st.stmts, newEnv(e.env))
	default:
		panic(fmt.Sprintf("unknown statement %T", st))
	}
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	e.logger.WithField("depth", env.depth()).Debug("enter block")
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) evaluate(ex expr) interface{} {
	switch ex := ex.(type) {
	case *literalExpr:
		return ex.value
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *unaryExpr:
		return e.unary(ex)
	case *binaryExpr:
		return e.binary(ex)
	case *variableExpr:
		value, err := e.env.get(ex.name)
		e.check(err)
		return value
	case *assignExpr:
		value := e.evaluate(ex.value)
		e.check(e.env.assign(ex.name, value))
		return value
	}
	panic(fmt.Sprintf("unknown expression %T", ex))
}

func (e *exec) unary(ex *unaryExpr) interface{} {
	value := e.evaluate(ex.right)
	switch ex.operator.token {
	case tkBang:
		return !truthy(value)
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			e.runtimeErr(ex.operator, msgOperandNumber)
		}
		return -valueNum
	}
	panic(fmt.Sprintf("unknown unary operator %s", ex.operator.token))
}

func (e *exec) binary(ex *binaryExpr) interface{} {
	left := e.evaluate(ex.left)
	right := e.evaluate(ex.right)
	switch ex.operator.token {
	case tkEqualEqual:
		return isEqual(left, right)
	case tkBangEqual:
		return !isEqual(left, right)
	case tkGreater:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum <= rightNum
	case tkPlus:
		return e.plus(ex, left, right)
	case tkMinus:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(ex, left, right)
		return leftNum * rightNum
	}
	panic(fmt.Sprintf("unknown binary operator %s", ex.operator.token))
}

func (e *exec) plus(ex *binaryExpr, left, right interface{}) interface{} {
	switch l := left.(type) {
	case float64:
		if r, ok := right.(float64); ok {
			return l + r
		}
	case string:
		if r, ok := right.(string); ok {
			return l + r
		}
	}
	e.runtimeErr(ex.operator, msgOperandsPlus)
	return nil
}

func (e *exec) getNums(ex *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		e.runtimeErr(ex.operator, msgOperandsNumbers)
	}
	rightNum, ok := right.(float64)
	if !ok {
		e.runtimeErr(ex.operator, msgOperandsNumbers)
	}
	return leftNum, rightNum
}

func (e *exec) runtimeErr(tk *token, message string) {
	panic(newRuntimeError(tk, ErrTypeError, "%s", message))
}

func (e *exec) check(err error) {
	if err != nil {
		panic(err)
	}
}
