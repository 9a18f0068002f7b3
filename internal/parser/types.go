package parser

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/token"
)

// parseTypeExpression parses a type expression with the current token at its
// first token, leaving the parser on its last token.
func (p *Parser) parseTypeExpression() ast.TypeExpression {
	switch p.curToken().Type {
	case token.TYPE_IDENT:
		return &ast.TypeIdentifier{Token: p.curToken(), Name: p.curToken().Literal}
	case token.LBRACKET:
		return p.parseListType()
	case token.LBRACE:
		return p.parseRecordType()
	case token.TAG:
		return p.parseTagGroupType()
	case token.DOT:
		return p.parseEnumType()
	case token.LPAREN:
		return p.parseFunctionType()
	}
	p.fail(p.curToken(), "UnexpectedToken: no type expression starts with %s", p.curToken().Type)
	return nil
}

func (p *Parser) parseListType() ast.TypeExpression {
	listType := &ast.ListType{Token: p.curToken()}
	p.nextToken()
	listType.Element = p.parseTypeExpression()
	if listType.Element == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return listType
}

func (p *Parser) parseRecordType() ast.TypeExpression {
	recordType := &ast.RecordType{Token: p.curToken()}
	for {
		p.skipPeekNewlines()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		field := &ast.RecordTypeField{Token: p.curToken(), Name: p.curToken().Literal}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Value = p.parseTypeExpression()
		if field.Value == nil {
			return nil
		}
		recordType.Fields = append(recordType.Fields, field)
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
	return recordType
}

// parseTypeContents parses an optional parenthesized list of type
// expressions, as in #some(Int) or .Rgb(Int, Int, Int).
func (p *Parser) parseTypeContents() []ast.TypeExpression {
	var contents []ast.TypeExpression
	if !p.peekTokenIs(token.LPAREN) {
		return contents
	}
	p.nextToken()
	for {
		p.nextToken()
		p.skipNewlines()
		content := p.parseTypeExpression()
		if content == nil {
			return nil
		}
		contents = append(contents, content)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return contents
}

func (p *Parser) parseTagGroupType() ast.TypeExpression {
	group := &ast.TagGroupType{Token: p.curToken()}
	for {
		tag := &ast.TagType{Token: p.curToken(), Name: p.curToken().Literal}
		tag.Contents = p.parseTypeContents()
		if p.err != nil {
			return nil
		}
		group.Tags = append(group.Tags, tag)
		if !p.peekTokenIs(token.PIPE) {
			break
		}
		p.nextToken() // the '|'
		if !p.expectPeek(token.TAG) {
			return nil
		}
	}
	return group
}

func (p *Parser) parseEnumType() ast.TypeExpression {
	enum := &ast.EnumType{Token: p.curToken()}
	for {
		dotToken := p.curToken()
		if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.TYPE_IDENT) {
			p.fail(p.peekToken(), "UnexpectedToken: expected enum variant name, got %s", p.peekToken().Type)
			return nil
		}
		p.nextToken()
		variant := &ast.EnumVariantType{Token: dotToken, Name: p.curToken().Literal}
		variant.Contents = p.parseTypeContents()
		if p.err != nil {
			return nil
		}
		enum.Variants = append(enum.Variants, variant)
		if !p.peekTokenIs(token.PIPE) {
			break
		}
		p.nextToken() // the '|'
		if !p.expectPeek(token.DOT) {
			return nil
		}
	}
	return enum
}

func (p *Parser) parseFunctionType() ast.TypeExpression {
	functionType := &ast.FunctionType{Token: p.curToken()}
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		p.skipNewlines()
		argument := p.parseTypeExpression()
		if argument == nil {
			return nil
		}
		functionType.Arguments = append(functionType.Arguments, argument)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.nextToken() // the ')'
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	functionType.Return = p.parseTypeExpression()
	if functionType.Return == nil {
		return nil
	}
	return functionType
}
