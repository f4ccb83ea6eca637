package internal

import (
	"errors"
	"testing"
)

func nameToken(name string) *token {
	return &token{token: tkIdentifier, lexeme: name, line: 1}
}

func mustGet(t *testing.T, e *env, name string) interface{} {
	t.Helper()
	value, err := e.get(nameToken(name))
	if err != nil {
		t.Fatalf("Unexpected error getting %s: %v", name, err)
	}
	return value
}

func TestEnvDefineAndGet(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", 1.0)
	if value := mustGet(t, globals, "a"); value != 1.0 {
		t.Errorf("Expected 1, found %v", value)
	}

	// Redefinition overwrites
	globals.define("a", "one")
	if value := mustGet(t, globals, "a"); value != "one" {
		t.Errorf("Expected one, found %v", value)
	}

	// nil is a valid binding
	globals.define("b", nil)
	if value := mustGet(t, globals, "b"); value != nil {
		t.Errorf("Expected nil, found %v", value)
	}
}

func TestEnvChain(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", 1.0)
	globals.define("b", 2.0)

	inner := newEnv(globals)
	inner.define("a", 3.0)

	if value := mustGet(t, inner, "a"); value != 3.0 {
		t.Errorf("Inner binding should shadow, found %v", value)
	}
	if value := mustGet(t, inner, "b"); value != 2.0 {
		t.Errorf("Lookup should reach the enclosing scope, found %v", value)
	}
	if value := mustGet(t, globals, "a"); value != 1.0 {
		t.Errorf("Outer binding should be untouched, found %v", value)
	}

	if inner.depth() != 1 || globals.depth() != 0 {
		t.Errorf("Unexpected depths %d %d", inner.depth(), globals.depth())
	}
}

func TestEnvAssign(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", 1.0)
	middle := newEnv(globals)
	middle.define("a", 2.0)
	inner := newEnv(middle)

	// The nearest binding is overwritten
	if err := inner.assign(nameToken("a"), 5.0); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if value := mustGet(t, middle, "a"); value != 5.0 {
		t.Errorf("Expected 5, found %v", value)
	}
	if value := mustGet(t, globals, "a"); value != 1.0 {
		t.Errorf("Expected 1, found %v", value)
	}
	if _, ok := inner.values["a"]; ok {
		t.Errorf("Assignment should not create a binding")
	}
}

func TestEnvUndefined(t *testing.T) {
	globals := newEnv(nil)
	inner := newEnv(globals)

	_, err := inner.get(nameToken("missing"))
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("Expected undefined variable, found %v", err)
	}
	if err.Error() != "Undefined variable 'missing'." {
		t.Errorf("Unexpected message %s", err.Error())
	}

	err = inner.assign(nameToken("missing"), 1.0)
	var runErr *RuntimeError
	if !errors.As(err, &runErr) || runErr.Line() != 1 {
		t.Errorf("Expected runtime error at line 1, found %v", err)
	}
	if _, ok := globals.values["missing"]; ok {
		t.Errorf("Failed assignment should not create a binding")
	}
}
