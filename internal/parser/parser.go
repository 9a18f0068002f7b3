package parser

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/lexer"
	"github.com/brio-lang/brio/internal/token"
)

// Operator precedence, lowest first.
const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	CONCAT      // ++
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **
	PREFIX      // -x, not x
	CALL        // f(x), a.b, a::b
)

var precedences = map[token.Type]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GT:       LESSGREATER,
	token.GTE:      LESSGREATER,
	token.CONCAT:   CONCAT,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.POWER:    POWER,
	token.LPAREN:   CALL,
	token.DOT:      CALL,
	token.DBLCOLON: CALL,
}

var binaryOperatorSymbols = map[token.Type]ast.BinaryOperatorSymbol{
	token.PLUS:    ast.Add,
	token.MINUS:   ast.Subtract,
	token.STAR:    ast.Multiply,
	token.SLASH:   ast.Divide,
	token.PERCENT: ast.Modulus,
	token.POWER:   ast.Power,
	token.CONCAT:  ast.Concatenate,
	token.AND:     ast.And,
	token.OR:      ast.Or,
	token.EQ:      ast.EqualTo,
	token.NOT_EQ:  ast.NotEqualTo,
	token.LT:      ast.LessThan,
	token.LTE:     ast.LessThanOrEqualTo,
	token.GT:      ast.GreaterThan,
	token.GTE:     ast.GreaterThanOrEqualTo,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a Pratt parser over the full token slice, which gives it
// arbitrary lookahead (needed to tell function literals from grouped
// expressions).
type Parser struct {
	tokens []token.Token
	pos    int
	err    *diagnostics.DiagnosticError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func New(input string) *Parser {
	p := &Parser{tokens: lexer.Tokens(input)}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.INT:        p.parseIntegerLiteral,
		token.STRING:     p.parseStringLiteral,
		token.IDENT:      p.parseIdentifier,
		token.TAG:        p.parseTagLiteral,
		token.TYPE_IDENT: p.parseEnumLiteral,
		token.LBRACKET:   p.parseListLiteral,
		token.LBRACE:     p.parseRecordLiteral,
		token.LPAREN:     p.parseGroupedOrFunction,
		token.MINUS:      p.parseUnaryOperator,
		token.NOT:        p.parseUnaryOperator,
		token.IF:         p.parseIf,
		token.DO:         p.parseBlock,
	}
	p.infixParseFns = map[token.Type]infixParseFn{
		token.LPAREN:   p.parseFunctionApplication,
		token.DOT:      p.parseFieldLookup,
		token.DBLCOLON: p.parseMethodLookup,
	}
	for tokenType := range binaryOperatorSymbols {
		p.infixParseFns[tokenType] = p.parseBinaryOperator
	}
	return p
}

func (p *Parser) curToken() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekToken() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) nextToken() {
	if p.pos+1 < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) curTokenIs(tokenType token.Type) bool {
	return p.curToken().Type == tokenType
}

func (p *Parser) peekTokenIs(tokenType token.Type) bool {
	return p.peekToken().Type == tokenType
}

func (p *Parser) peekPrecedence() int {
	if precedence, ok := precedences[p.peekToken().Type]; ok {
		return precedence
	}
	return LOWEST
}

// expectPeek advances when the next token has the wanted type and records a
// parse error otherwise.
func (p *Parser) expectPeek(tokenType token.Type) bool {
	if p.peekTokenIs(tokenType) {
		p.nextToken()
		return true
	}
	p.fail(p.peekToken(), "UnexpectedToken: expected %s, got %s", tokenType, p.peekToken().Type)
	return false
}

func (p *Parser) fail(tok token.Token, format string, args ...any) {
	if p.err == nil {
		p.err = diagnostics.Errorf(diagnostics.ErrP001, tok, format, args...)
	}
}

// skipNewlines consumes newline tokens; used inside delimited constructs
// where line breaks are insignificant.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipPeekNewlines advances past newlines sitting between the current token
// and the next significant one.
func (p *Parser) skipPeekNewlines() {
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) skipSeparators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// ParseDocument parses a whole source file, sorting top-level items into the
// document's sequences. It fails fast on the first syntax error.
func (p *Parser) ParseDocument(file string) (*ast.Document, *diagnostics.DiagnosticError) {
	document := &ast.Document{File: file}
	for {
		p.skipSeparators()
		if p.curTokenIs(token.EOF) || p.err != nil {
			break
		}
		switch {
		case p.curTokenIs(token.IMPORT):
			importStatement := p.parseImport()
			if importStatement != nil {
				document.Imports = append(document.Imports, importStatement)
			}
		case p.curTokenIs(token.EXPORT):
			p.nextToken()
			declaration := p.parseVariableDeclaration()
			if declaration != nil {
				declaration.IsExported = true
				document.VariableDeclarations = append(document.VariableDeclarations, declaration)
			}
		case p.curTokenIs(token.TYPE_IDENT) && p.peekTokenIs(token.ASSIGN):
			declaration := p.parseTypeDeclaration()
			if declaration != nil {
				document.TypeDeclarations = append(document.TypeDeclarations, declaration)
			}
		case p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.ASSIGN) || p.peekTokenIs(token.COLON)):
			declaration := p.parseVariableDeclaration()
			if declaration != nil {
				document.VariableDeclarations = append(document.VariableDeclarations, declaration)
			}
		default:
			expression := p.parseExpression(LOWEST)
			if expression != nil {
				document.Expressions = append(document.Expressions, expression)
			}
		}
		if p.err != nil {
			break
		}
		p.nextToken()
		if !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
			p.fail(p.curToken(), "UnexpectedToken: expected end of statement, got %s", p.curToken().Type)
			break
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return document, nil
}

func (p *Parser) parseImport() *ast.ImportStatement {
	statement := &ast.ImportStatement{Token: p.curToken()}
	if !p.expectPeek(token.STRING) {
		return nil
	}
	statement.Path = p.curToken().Literal
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		for !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			p.skipNewlines()
			switch p.curToken().Type {
			case token.IDENT:
				statement.Identifiers = append(statement.Identifiers, &ast.Identifier{
					Token:         p.curToken(),
					Name:          p.curToken().Literal,
					IsDisregarded: isDisregarded(p.curToken().Literal),
				})
			case token.TYPE_IDENT:
				statement.TypeNames = append(statement.TypeNames, p.curToken().Literal)
			default:
				p.fail(p.curToken(), "UnexpectedToken: expected imported name, got %s", p.curToken().Type)
				return nil
			}
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		p.nextToken() // the ')'
	}
	return statement
}

func (p *Parser) parseTypeDeclaration() *ast.TypeDeclaration {
	declaration := &ast.TypeDeclaration{Token: p.curToken(), Name: p.curToken().Literal}
	p.nextToken() // the '='
	p.nextToken()
	declaration.TypeExpression = p.parseTypeExpression()
	if declaration.TypeExpression == nil {
		return nil
	}
	return declaration
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	if !p.curTokenIs(token.IDENT) {
		p.fail(p.curToken(), "UnexpectedToken: expected identifier, got %s", p.curToken().Type)
		return nil
	}
	declaration := &ast.VariableDeclaration{
		Token: p.curToken(),
		Identifier: &ast.Identifier{
			Token:         p.curToken(),
			Name:          p.curToken().Literal,
			IsDisregarded: isDisregarded(p.curToken().Literal),
		},
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		declaration.TypeExpression = p.parseTypeExpression()
		if declaration.TypeExpression == nil {
			return nil
		}
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	declaration.Expression = p.parseExpression(LOWEST)
	if declaration.Expression == nil {
		return nil
	}
	return declaration
}

func isDisregarded(name string) bool {
	return len(name) > 0 && name[0] == '_'
}
