package typedast

import (
	"github.com/brio-lang/brio/internal/ast"
)

// Expression is a node of the typed AST. Every variant carries the concrete
// type the checker resolved for it.
type Expression interface {
	typedExpressionNode()
	ExpressionType() ConcreteType
}

// BinaryOperatorExpression mirrors ast.BinaryOperator with resolved types.
type BinaryOperatorExpression struct {
	Type   ConcreteType
	Symbol ast.BinaryOperatorSymbol
	Left   Expression
	Right  Expression
}

func (e *BinaryOperatorExpression) typedExpressionNode()        {}
func (e *BinaryOperatorExpression) ExpressionType() ConcreteType { return e.Type }

// UnaryOperatorExpression mirrors ast.UnaryOperator.
type UnaryOperatorExpression struct {
	Type   ConcreteType
	Symbol ast.UnaryOperatorSymbol
	Child  Expression
}

func (e *UnaryOperatorExpression) typedExpressionNode()        {}
func (e *UnaryOperatorExpression) ExpressionType() ConcreteType { return e.Type }

// IdentifierExpression is a typed identifier reference.
type IdentifierExpression struct {
	Type          ConcreteType
	Name          string
	IsDisregarded bool
}

func (e *IdentifierExpression) typedExpressionNode()        {}
func (e *IdentifierExpression) ExpressionType() ConcreteType { return e.Type }

// IntegerExpression is a typed integer literal.
type IntegerExpression struct {
	Type  ConcreteType
	Value int64
}

func (e *IntegerExpression) typedExpressionNode()        {}
func (e *IntegerExpression) ExpressionType() ConcreteType { return e.Type }

// StringExpression is a typed string literal.
type StringExpression struct {
	Type  ConcreteType
	Value string
}

func (e *StringExpression) typedExpressionNode()        {}
func (e *StringExpression) ExpressionType() ConcreteType { return e.Type }

// BooleanExpression is a resolved boolean. #true and #false literals whose
// class concretised to CompilerBoolean become booleans, not tags.
type BooleanExpression struct {
	Type  ConcreteType
	Value bool
}

func (e *BooleanExpression) typedExpressionNode()        {}
func (e *BooleanExpression) ExpressionType() ConcreteType { return e.Type }

// TagExpression is a typed tag literal.
type TagExpression struct {
	Type     ConcreteType
	Name     string
	Contents []Expression
}

func (e *TagExpression) typedExpressionNode()        {}
func (e *TagExpression) ExpressionType() ConcreteType { return e.Type }

// EnumExpression is a typed enum variant literal.
type EnumExpression struct {
	Type     ConcreteType
	TypeName string
	Variant  string
	Contents []Expression
}

func (e *EnumExpression) typedExpressionNode()        {}
func (e *EnumExpression) ExpressionType() ConcreteType { return e.Type }

// ListExpression is a typed list literal.
type ListExpression struct {
	Type     ConcreteType
	Contents []Expression
}

func (e *ListExpression) typedExpressionNode()        {}
func (e *ListExpression) ExpressionType() ConcreteType { return e.Type }

// RecordExpression is a typed record literal.
type RecordExpression struct {
	Type   ConcreteType
	Fields map[string]Expression
}

func (e *RecordExpression) typedExpressionNode()        {}
func (e *RecordExpression) ExpressionType() ConcreteType { return e.Type }

// RecordAssignmentExpression is a typed record update.
type RecordAssignmentExpression struct {
	Type       ConcreteType
	Identifier *IdentifierExpression
	Contents   *RecordExpression
}

func (e *RecordAssignmentExpression) typedExpressionNode()        {}
func (e *RecordAssignmentExpression) ExpressionType() ConcreteType { return e.Type }

// BlockExpression is a typed block.
type BlockExpression struct {
	Type     ConcreteType
	Contents []Expression
}

func (e *BlockExpression) typedExpressionNode()        {}
func (e *BlockExpression) ExpressionType() ConcreteType { return e.Type }

// IfExpression is a typed conditional. Alternative may be nil.
type IfExpression struct {
	Type        ConcreteType
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (e *IfExpression) typedExpressionNode()        {}
func (e *IfExpression) ExpressionType() ConcreteType { return e.Type }

// FunctionExpression is a typed function literal.
type FunctionExpression struct {
	Type          ConcreteType
	ArgumentNames []string
	Body          Expression
}

func (e *FunctionExpression) typedExpressionNode()        {}
func (e *FunctionExpression) ExpressionType() ConcreteType { return e.Type }

// FunctionArgumentsExpression is the typed argument list of an application.
type FunctionArgumentsExpression struct {
	Arguments []Expression
}

func (e *FunctionArgumentsExpression) typedExpressionNode() {}

// ExpressionType of an argument list is not meaningful; arguments carry
// their own types.
func (e *FunctionArgumentsExpression) ExpressionType() ConcreteType {
	return Primitive{Type: CompilerBoolean}
}

// DeclarationExpression is a typed variable declaration. DeclarationType is
// the resolved type of the bound name.
type DeclarationExpression struct {
	DeclarationType ConcreteType
	Identifier      *IdentifierExpression
	Value           Expression
	IsExported      bool
}

func (e *DeclarationExpression) typedExpressionNode()        {}
func (e *DeclarationExpression) ExpressionType() ConcreteType { return e.DeclarationType }

// Document is the fully-typed output of an inference run. Type declarations
// and top-level expressions are erased; the declarations form the body.
type Document struct {
	Imports      []*ast.ImportStatement
	Declarations []*DeclarationExpression
}
