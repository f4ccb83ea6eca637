package internal

// parser stores parser data
type parser struct {
	tokens  []token
	current int

	state reporter
}

func newParser(tokens []token, state reporter) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].token != tkEOF {
		tokens = append(tokens, token{token: tkEOF})
	}
	return &parser{
		tokens: tokens,
		state:  state,
	}
}

func (p *parser) parse() []stmt {
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		// A declaration that failed to parse yields no statement
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) parseStmt() (st stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, msgExpectedVarName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, msgExpectedVarSemicolon)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, msgExpectedIfParen)
	st.condition = p.expression()
	p.consume(tkRightParen, msgExpectedIfCloseParen)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, msgExpectedValueSemi)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, msgExpectedClosingBrace)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, msgExpectedExprSemi)
	return &exprStmt{expression: expr}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.equality()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		// Reported without unwinding, the statement is still usable
		p.error(equal, msgInvalidAssignTarget)
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, msgUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	panic(p.error(p.peek(), msgExpectedExpression))
}

func (p *parser) consume(tk tokenType, message string) *token {
	if p.check(tk) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error reports a diagnostic at tk and returns the value used to abort
// the current declaration
func (p *parser) error(tk *token, message string) parseError {
	where := " at '" + tk.lexeme + "'"
	if tk.token == tkEOF {
		where = " at end"
	}
	p.state.report(tk.line, where, message)
	return parseError{
		line:    tk.line,
		where:   where,
		message: message,
	}
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.check(tk) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
