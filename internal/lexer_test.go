package internal

import (
	"reflect"
	"strconv"
	"testing"
)

func scanSource(source string) ([]token, *interpreterState) {
	state := newInterpreterState()
	return newLexer(source, state).scan(), state
}

func tokenTypes(tokens []token) []tokenType {
	types := make([]tokenType, len(tokens))
	for i, tk := range tokens {
		types[i] = tk.token
	}
	return types
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	tokens, state := scanSource(source)
	if state.HadError() {
		t.Errorf("Unexpected errors scanning %q: %v", source, state.errors)
	}
	expected = append(expected, tkEOF)
	if found := tokenTypes(tokens); !reflect.DeepEqual(found, expected) {
		t.Errorf("Scanning %q\n\texpected %v\n\tfound    %v", source, expected, found)
	}
}

func TestScanOperators(t *testing.T) {
	checkTokens(t, "(){},.-+;*/",
		tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace, tkComma,
		tkDot, tkMinus, tkPlus, tkSemicolon, tkStar, tkSlash)

	checkTokens(t, "! != = == < <= > >=",
		tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual)

	// Longest match
	checkTokens(t, "!==", tkBangEqual, tkEqual)
	checkTokens(t, "===", tkEqualEqual, tkEqual)
}

func TestScanComments(t *testing.T) {
	checkTokens(t, "// only a comment")
	checkTokens(t, "1 // comment\n2", tkNumber, tkNumber)
	checkTokens(t, "1 / 2", tkNumber, tkSlash, tkNumber)

	tokens, _ := scanSource("// comment\n1")
	if tokens[0].line != 2 {
		t.Errorf("Expected line 2, found %d", tokens[0].line)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	checkTokens(t, "and class else false for fun if nil or print return super this true var while",
		tkAnd, tkClass, tkElse, tkFalse, tkFor, tkFun, tkIf, tkNil, tkOr,
		tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile)

	checkTokens(t, "foo _bar baz9 variable printer orchid",
		tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier)

	tokens, _ := scanSource("var_1")
	if tokens[0].lexeme != "var_1" {
		t.Errorf("Expected lexeme var_1, found %s", tokens[0].lexeme)
	}
}

func TestScanNumbers(t *testing.T) {
	for _, n := range []string{"0", "1", "42", "4.0", "4.5", "3.14159", "0.1", "1234567.875"} {
		tokens, state := scanSource(n)
		if state.HadError() || tokens[0].token != tkNumber {
			t.Errorf("Expected number scanning %s", n)
			continue
		}
		expected, _ := strconv.ParseFloat(n, 64)
		if tokens[0].literal != expected {
			t.Errorf("Expected %v, found %v", expected, tokens[0].literal)
		}
		if tokens[0].lexeme != n {
			t.Errorf("Expected lexeme %s, found %s", n, tokens[0].lexeme)
		}
	}

	// A trailing dot is not a fraction
	checkTokens(t, "1.", tkNumber, tkDot)
	checkTokens(t, ".5", tkDot, tkNumber)
	checkTokens(t, "1.2.3", tkNumber, tkDot, tkNumber)
}

func TestScanStrings(t *testing.T) {
	tokens, state := scanSource(`"hello world"`)
	if state.HadError() {
		t.Fatalf("Unexpected errors: %v", state.errors)
	}
	if tokens[0].token != tkString || tokens[0].literal != "hello world" {
		t.Errorf("Unexpected token %v", tokens[0].String())
	}
	if tokens[0].lexeme != `"hello world"` {
		t.Errorf("Lexeme should keep the quotes, found %s", tokens[0].lexeme)
	}

	tokens, _ = scanSource("\"a\nb\" c")
	if tokens[0].literal != "a\nb" {
		t.Errorf("Unexpected literal %q", tokens[0].literal)
	}
	if tokens[1].line != 2 {
		t.Errorf("Newlines inside strings should count, found line %d", tokens[1].line)
	}

	checkTokens(t, `""`, tkString)
}

func TestScanErrors(t *testing.T) {
	tokens, state := scanSource(`"abc`)
	if !reflect.DeepEqual(tokenTypes(tokens), []tokenType{tkEOF}) {
		t.Errorf("Unterminated string should be discarded, found %v", tokenTypes(tokens))
	}
	if len(state.errors) != 1 || state.errors[0].Error() != "[line 1] Error: Unterminated string." {
		t.Errorf("Unexpected errors %v", state.errors)
	}

	tokens, state = scanSource("1 @ 2\n#")
	if !reflect.DeepEqual(tokenTypes(tokens), []tokenType{tkNumber, tkNumber, tkEOF}) {
		t.Errorf("Scanning should continue, found %v", tokenTypes(tokens))
	}
	if len(state.errors) != 2 {
		t.Fatalf("Expected 2 errors, found %v", state.errors)
	}
	if state.errors[1].line != 2 || state.errors[1].message != msgUnexpectedChar {
		t.Errorf("Unexpected error %v", state.errors[1])
	}
}

func TestScanEOF(t *testing.T) {
	tokens, _ := scanSource("1\n2\n")
	eof := tokens[len(tokens)-1]
	if eof.token != tkEOF || eof.lexeme != "" || eof.line != 3 {
		t.Errorf("Unexpected EOF token %+v", eof)
	}
}

func TestTokenString(t *testing.T) {
	cases := map[string]string{
		"123":   "NUMBER 123 123",
		"1.5":   "NUMBER 1.5 1.5",
		`"hi"`:  `STRING "hi" hi`,
		"print": "PRINT print null",
		"x":     "IDENTIFIER x null",
	}
	for source, expected := range cases {
		tokens, _ := scanSource(source)
		if found := tokens[0].String(); found != expected {
			t.Errorf("Expected %s, found %s", expected, found)
		}
	}
}
