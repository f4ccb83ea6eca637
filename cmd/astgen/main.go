package main

import (
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: keyword *token, expression expr",
		"Var: name *token, initializer expr",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"Block: stmts []stmt",
	},
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
}

func main() {
	out := flag.String("out", "", "file to write, stdout when empty")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: astgen [-out file.go] Expr|Stmt")
		os.Exit(64)
	}

	baseName := flag.Arg(0)
	types, ok := nodes[baseName]
	if !ok {
		log.Fatalf("unknown node set %q", baseName)
	}

	src, err := format.Source([]byte(generateAst(baseName, types)))
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := ioutil.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)
	out := "// Code generated by cmd/astgen; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Marker Method
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Marker Method

	return out
}
