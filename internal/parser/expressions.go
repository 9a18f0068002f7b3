package parser

import (
	"strconv"

	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken().Type]
	if prefix == nil {
		p.fail(p.curToken(), "UnexpectedToken: no expression starts with %s", p.curToken().Type)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}
	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken().Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken().Literal, 10, 64)
	if err != nil {
		p.fail(p.curToken(), "IntegerLiteralOutOfRange: %s", p.curToken().Lexeme)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken(), Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken(), Value: p.curToken().Literal}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{
		Token:         p.curToken(),
		Name:          p.curToken().Literal,
		IsDisregarded: isDisregarded(p.curToken().Literal),
	}
}

// parseCommaSeparatedExpressions parses "e1, e2, ..." up to (and consuming)
// the closing token.
func (p *Parser) parseCommaSeparatedExpressions(closing token.Type) []ast.Expression {
	var expressions []ast.Expression
	p.skipPeekNewlines()
	if p.peekTokenIs(closing) {
		p.nextToken()
		return expressions
	}
	for {
		p.nextToken()
		p.skipNewlines()
		expression := p.parseExpression(LOWEST)
		if expression == nil {
			return nil
		}
		expressions = append(expressions, expression)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipPeekNewlines()
	if !p.expectPeek(closing) {
		return nil
	}
	return expressions
}

func (p *Parser) parseTagLiteral() ast.Expression {
	literal := &ast.TagLiteral{Token: p.curToken(), Name: p.curToken().Literal}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		literal.Contents = p.parseCommaSeparatedExpressions(token.RPAREN)
		if p.err != nil {
			return nil
		}
	}
	return literal
}

// parseEnumLiteral parses Name.Variant or Name.Variant(e1, ...).
func (p *Parser) parseEnumLiteral() ast.Expression {
	literal := &ast.EnumLiteral{Token: p.curToken(), TypeName: p.curToken().Literal}
	if !p.expectPeek(token.DOT) {
		return nil
	}
	if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.TYPE_IDENT) {
		p.fail(p.peekToken(), "UnexpectedToken: expected enum variant name, got %s", p.peekToken().Type)
		return nil
	}
	p.nextToken()
	literal.Variant = p.curToken().Literal
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		literal.Contents = p.parseCommaSeparatedExpressions(token.RPAREN)
		if p.err != nil {
			return nil
		}
	}
	return literal
}

func (p *Parser) parseListLiteral() ast.Expression {
	literal := &ast.ListLiteral{Token: p.curToken()}
	literal.Elements = p.parseCommaSeparatedExpressions(token.RBRACKET)
	if p.err != nil {
		return nil
	}
	return literal
}

// parseRecordLiteral parses { f: e, ... } and the record assignment form
// { name | f: e, ... }.
func (p *Parser) parseRecordLiteral() ast.Expression {
	braceToken := p.curToken()
	p.skipPeekNewlines()
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.RecordLiteral{Token: braceToken}
	}
	if p.peekTokenIs(token.IDENT) {
		identToken := p.peekToken()
		// A pipe after the identifier makes this a record assignment.
		if p.pos+2 < len(p.tokens) && p.tokens[p.pos+2].Type == token.PIPE {
			p.nextToken() // the identifier
			p.nextToken() // the '|'
			assignment := &ast.RecordAssignment{
				Token: braceToken,
				Identifier: &ast.Identifier{
					Token:         identToken,
					Name:          identToken.Literal,
					IsDisregarded: isDisregarded(identToken.Literal),
				},
			}
			assignment.Fields = p.parseRecordFields()
			if assignment.Fields == nil {
				return nil
			}
			return assignment
		}
	}
	literal := &ast.RecordLiteral{Token: braceToken}
	literal.Fields = p.parseRecordFields()
	if literal.Fields == nil {
		return nil
	}
	return literal
}

// parseRecordFields parses "f1: e1, f2: e2" up to (and consuming) the
// closing brace.
func (p *Parser) parseRecordFields() []*ast.RecordField {
	var fields []*ast.RecordField
	for {
		p.skipPeekNewlines()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		field := &ast.RecordField{Token: p.curToken(), Name: p.curToken().Literal}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Value = p.parseExpression(LOWEST)
		if field.Value == nil {
			return nil
		}
		fields = append(fields, field)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	p.skipPeekNewlines()
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return fields
}

// parseGroupedOrFunction disambiguates "(expr)" from "(a, b) => body" by
// scanning ahead to the matching parenthesis.
func (p *Parser) parseGroupedOrFunction() ast.Expression {
	if p.parenStartsFunctionLiteral() {
		return p.parseFunctionLiteral()
	}
	p.nextToken()
	expression := p.parseExpression(LOWEST)
	if expression == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expression
}

func (p *Parser) parenStartsFunctionLiteral() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == token.ARROW
			}
		case token.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	function := &ast.Function{Token: p.curToken()}
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		p.skipNewlines()
		if !p.curTokenIs(token.IDENT) {
			p.fail(p.curToken(), "UnexpectedToken: expected argument name, got %s", p.curToken().Type)
			return nil
		}
		argument := &ast.FunctionArgument{
			Token: p.curToken(),
			Name: &ast.Identifier{
				Token:         p.curToken(),
				Name:          p.curToken().Literal,
				IsDisregarded: isDisregarded(p.curToken().Literal),
			},
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			argument.ArgumentType = p.parseTypeExpression()
			if argument.ArgumentType == nil {
				return nil
			}
		}
		function.Arguments = append(function.Arguments, argument)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.nextToken() // the ')'
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	function.Body = p.parseExpression(LOWEST)
	if function.Body == nil {
		return nil
	}
	return function
}

func (p *Parser) parseUnaryOperator() ast.Expression {
	operator := &ast.UnaryOperator{Token: p.curToken()}
	switch p.curToken().Type {
	case token.MINUS:
		operator.Symbol = ast.Negative
	case token.NOT:
		operator.Symbol = ast.Not
	}
	p.nextToken()
	operator.Child = p.parseExpression(PREFIX)
	if operator.Child == nil {
		return nil
	}
	return operator
}

// parseIf parses "if cond do ... [else ...] end". Each branch is a sequence
// of expressions; multi-element branches become implicit blocks.
func (p *Parser) parseIf() ast.Expression {
	expression := &ast.If{Token: p.curToken()}
	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.DO) {
		return nil
	}
	doToken := p.curToken()
	consequence := p.parseBranchContents(doToken, token.ELSE, token.END)
	if consequence == nil {
		return nil
	}
	expression.Consequence = consequence
	if p.curTokenIs(token.ELSE) {
		alternative := p.parseBranchContents(p.curToken(), token.END)
		if alternative == nil {
			return nil
		}
		expression.Alternative = alternative
	}
	if !p.curTokenIs(token.END) {
		p.fail(p.curToken(), "UnexpectedToken: expected end, got %s", p.curToken().Type)
		return nil
	}
	return expression
}

// parseBranchContents parses expressions up to one of the stop keywords,
// leaving the parser positioned on the stop token.
func (p *Parser) parseBranchContents(branchToken token.Token, stops ...token.Type) ast.Expression {
	contents := p.parseStatementSequence(stops...)
	if contents == nil {
		return nil
	}
	if len(contents) == 1 {
		return contents[0]
	}
	return &ast.Block{Token: branchToken, Contents: contents}
}

// parseBlock parses "do ... end".
func (p *Parser) parseBlock() ast.Expression {
	block := &ast.Block{Token: p.curToken()}
	block.Contents = p.parseStatementSequence(token.END)
	if block.Contents == nil {
		return nil
	}
	return block
}

// parseStatementSequence parses separator-delimited expressions (including
// declarations) until one of the stop tokens, consuming it.
func (p *Parser) parseStatementSequence(stops ...token.Type) []ast.Expression {
	var contents []ast.Expression
	for {
		p.nextToken()
		p.skipSeparators()
		if p.curTokenIs(token.EOF) {
			p.fail(p.curToken(), "UnexpectedToken: unterminated block")
			return nil
		}
		if tokenTypeIn(p.curToken().Type, stops) {
			if len(contents) == 0 {
				p.fail(p.curToken(), "UnreachableBlockFinalExpression")
				return nil
			}
			return contents
		}
		var element ast.Expression
		switch {
		case p.curTokenIs(token.TYPE_IDENT) && p.peekTokenIs(token.ASSIGN):
			if declaration := p.parseTypeDeclaration(); declaration != nil {
				element = declaration
			}
		case p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.ASSIGN) || p.peekTokenIs(token.COLON)):
			if declaration := p.parseVariableDeclaration(); declaration != nil {
				element = declaration
			}
		default:
			element = p.parseExpression(LOWEST)
		}
		if element == nil {
			return nil
		}
		contents = append(contents, element)
		if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMICOLON) &&
			!p.peekTokenIs(token.EOF) && !tokenTypeIn(p.peekToken().Type, stops) {
			p.fail(p.peekToken(), "UnexpectedToken: expected end of expression, got %s", p.peekToken().Type)
			return nil
		}
	}
}

func tokenTypeIn(tokenType token.Type, set []token.Type) bool {
	for _, candidate := range set {
		if tokenType == candidate {
			return true
		}
	}
	return false
}

func (p *Parser) parseBinaryOperator(left ast.Expression) ast.Expression {
	operatorToken := p.curToken()
	symbol := binaryOperatorSymbols[operatorToken.Type]
	precedence := precedences[operatorToken.Type]
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryOperator{Token: operatorToken, Symbol: symbol, Left: left, Right: right}
}

func (p *Parser) parseFunctionApplication(left ast.Expression) ast.Expression {
	arguments := &ast.FunctionApplicationArguments{Token: p.curToken()}
	arguments.Arguments = p.parseCommaSeparatedExpressions(token.RPAREN)
	if p.err != nil {
		return nil
	}
	return &ast.BinaryOperator{
		Token:  arguments.Token,
		Symbol: ast.FunctionApplication,
		Left:   left,
		Right:  arguments,
	}
}

func (p *Parser) parseFieldLookup(left ast.Expression) ast.Expression {
	operatorToken := p.curToken()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.BinaryOperator{
		Token:  operatorToken,
		Symbol: ast.FieldLookup,
		Left:   left,
		Right: &ast.Identifier{
			Token:         p.curToken(),
			Name:          p.curToken().Literal,
			IsDisregarded: isDisregarded(p.curToken().Literal),
		},
	}
}

func (p *Parser) parseMethodLookup(left ast.Expression) ast.Expression {
	operatorToken := p.curToken()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.BinaryOperator{
		Token:  operatorToken,
		Symbol: ast.MethodLookup,
		Left:   left,
		Right: &ast.Identifier{
			Token:         p.curToken(),
			Name:          p.curToken().Literal,
			IsDisregarded: isDisregarded(p.curToken().Literal),
		},
	}
}
