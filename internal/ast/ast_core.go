package ast

import (
	"github.com/brio-lang/brio/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Expression is a Node that produces a value and therefore acquires a type id
// during checking.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// TypeExpression is a Node appearing in type position.
type TypeExpression interface {
	Node
	typeExpressionNode()
	GetToken() token.Token
}

// Document is the root node of every parsed source file. The parser sorts
// top-level items into the four sequences; order is preserved within each.
type Document struct {
	File                 string // source file path
	Imports              []*ImportStatement
	TypeDeclarations     []*TypeDeclaration
	VariableDeclarations []*VariableDeclaration
	Expressions          []Expression
}

func (d *Document) TokenLiteral() string {
	if len(d.VariableDeclarations) > 0 {
		return d.VariableDeclarations[0].TokenLiteral()
	}
	return ""
}

// ImportStatement represents an import declaration.
// import "path/to/module" (a, B)
// Imports are opaque to the checker and are passed through to the backend.
type ImportStatement struct {
	Token       token.Token // the 'import' token
	Path        string
	Identifiers []*Identifier
	TypeNames   []string
}

func (is *ImportStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *ImportStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// TypeDeclaration binds a type name to a type expression.
// Name = #red | #green
// Type declarations exist only to populate scope during checking; they are
// erased from the typed output.
type TypeDeclaration struct {
	Token          token.Token // the TYPE_IDENT token
	Name           string
	TypeExpression TypeExpression
}

func (td *TypeDeclaration) expressionNode()      {}
func (td *TypeDeclaration) TokenLiteral() string { return td.Token.Lexeme }
func (td *TypeDeclaration) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

// VariableDeclaration binds a name to an expression, optionally annotated.
// name: Type = expr
type VariableDeclaration struct {
	Token          token.Token // the identifier token
	Identifier     *Identifier
	TypeExpression TypeExpression // optional
	Expression     Expression
	IsExported     bool
}

func (vd *VariableDeclaration) expressionNode()      {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}
