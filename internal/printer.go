package internal

import (
	"fmt"
	"strings"
)

// printStmtTree renders a statement as a fully parenthesized tree
func printStmtTree(st stmt) string {
	switch st := st.(type) {
	case *exprStmt:
		return parenthesize(";", printExprTree(st.expression))
	case *printStmt:
		return parenthesize("print", printExprTree(st.expression))
	case *varStmt:
		if st.initializer == nil {
			return parenthesize("var", st.name.lexeme)
		}
		return parenthesize("var", st.name.lexeme, printExprTree(st.initializer))
	case *ifStmt:
		parts := []string{printExprTree(st.condition), printStmtTree(st.thenBranch)}
		if st.elseBranch != nil {
			parts = append(parts, printStmtTree(st.elseBranch))
		}
		return parenthesize("if", parts...)
	case *blockStmt:
		parts := make([]string, len(st.stmts))
		for i, s := range st.stmts {
			parts[i] = printStmtTree(s)
		}
		return parenthesize("block", parts...)
	}
	return fmt.Sprintf("<%T>", st)
}

// printExprTree renders an expression in prefix form, (+ 1 (* 2 3))
func printExprTree(ex expr) string {
	switch ex := ex.(type) {
	case *literalExpr:
		if value, isString := ex.value.(string); isString {
			return "\"" + value + "\""
		}
		return stringify(ex.value)
	case *groupingExpr:
		return parenthesize("group", printExprTree(ex.expression))
	case *unaryExpr:
		return parenthesize(ex.operator.lexeme, printExprTree(ex.right))
	case *binaryExpr:
		return parenthesize(ex.operator.lexeme, printExprTree(ex.left), printExprTree(ex.right))
	case *variableExpr:
		return ex.name.lexeme
	case *assignExpr:
		return parenthesize("=", ex.name.lexeme, printExprTree(ex.value))
	}
	return fmt.Sprintf("<%T>", ex)
}

func parenthesize(name string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + name + ")"
	}
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
