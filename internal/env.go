package internal

type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) (interface{}, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

// define always binds in this scope, shadowing any outer binding
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

// assign overwrites the nearest existing binding, it never creates one
func (e *env) assign(name *token, value interface{}) error {
	for scope := e; scope != nil; scope = scope.enclosing {
		if _, ok := scope.values[name.lexeme]; ok {
			scope.values[name.lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

func (e *env) depth() int {
	depth := 0
	for scope := e.enclosing; scope != nil; scope = scope.enclosing {
		depth++
	}
	return depth
}

func undefinedVariable(name *token) *RuntimeError {
	return newRuntimeError(name, ErrUndefinedVariable, msgUndefinedVarFmt, name.lexeme)
}
