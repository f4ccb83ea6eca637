// Package internal implements the golox scanner, parser and tree-walking
// interpreter.
package internal

//go:generate go run ../cmd/astgen -out expr.go Expr
//go:generate go run ../cmd/astgen -out stmt.go Stmt
