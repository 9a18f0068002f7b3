package typesystem

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/token"
)

// SourcedType pairs a type id with the source token of the expression that
// produced it, for diagnostics.
type SourcedType struct {
	ID     TypeID
	Source token.Token
}

// ConstrainedExpression is a node of the constrained AST: the input AST
// mirrored with a sourced type id on every node.
type ConstrainedExpression interface {
	constrainedNode()
	SourcedTypeID() TypeID
}

// ConstrainedBinaryOperator mirrors ast.BinaryOperator.
type ConstrainedBinaryOperator struct {
	Type   SourcedType
	Symbol ast.BinaryOperatorSymbol
	Left   ConstrainedExpression
	Right  ConstrainedExpression
}

// ConstrainedUnaryOperator mirrors ast.UnaryOperator.
type ConstrainedUnaryOperator struct {
	Type   SourcedType
	Symbol ast.UnaryOperatorSymbol
	Child  ConstrainedExpression
}

// ConstrainedIdentifier mirrors ast.Identifier.
type ConstrainedIdentifier struct {
	Type          SourcedType
	Name          string
	IsDisregarded bool
}

// ConstrainedInteger mirrors ast.IntegerLiteral.
type ConstrainedInteger struct {
	Type  SourcedType
	Value int64
}

// ConstrainedString mirrors ast.StringLiteral.
type ConstrainedString struct {
	Type  SourcedType
	Value string
}

// ConstrainedTag mirrors ast.TagLiteral.
type ConstrainedTag struct {
	Type     SourcedType
	Name     string
	Contents []ConstrainedExpression
}

// ConstrainedEnum mirrors ast.EnumLiteral.
type ConstrainedEnum struct {
	Type     SourcedType
	TypeName string
	Variant  string
	Contents []ConstrainedExpression
}

// ConstrainedList mirrors ast.ListLiteral.
type ConstrainedList struct {
	Type     SourcedType
	Contents []ConstrainedExpression
}

// ConstrainedRecord mirrors ast.RecordLiteral.
type ConstrainedRecord struct {
	Type   SourcedType
	Fields map[string]ConstrainedExpression
}

// ConstrainedRecordAssignment mirrors ast.RecordAssignment.
type ConstrainedRecordAssignment struct {
	Type       SourcedType
	Identifier *ConstrainedIdentifier
	Contents   *ConstrainedRecord
}

// ConstrainedBlock mirrors ast.Block.
type ConstrainedBlock struct {
	Type     SourcedType
	Contents []ConstrainedExpression
}

// ConstrainedIf mirrors ast.If. Alternative may be nil.
type ConstrainedIf struct {
	Type        SourcedType
	Condition   ConstrainedExpression
	Consequence ConstrainedExpression
	Alternative ConstrainedExpression
}

// ConstrainedFunction mirrors ast.Function.
type ConstrainedFunction struct {
	Type          SourcedType
	ArgumentNames []string
	Body          ConstrainedExpression
}

// ConstrainedFunctionArguments is the right child of a translated function
// application. It carries no type id of its own.
type ConstrainedFunctionArguments struct {
	Arguments []ConstrainedExpression
}

// ConstrainedDeclaration mirrors ast.VariableDeclaration. DeclarationType is
// the id of the bound name; Type is the id of the declaration expression
// itself (the no-value tag union).
type ConstrainedDeclaration struct {
	DeclarationType SourcedType
	Type            SourcedType
	Identifier      *ConstrainedIdentifier
	Value           ConstrainedExpression
	IsExported      bool
}

// ConstrainedTypeDeclaration mirrors ast.TypeDeclaration. It survives only
// until resolution, which erases it.
type ConstrainedTypeDeclaration struct {
	DeclarationType SourcedType
	Type            SourcedType
	Name            string
}

// ConstrainedDocument is the fully-constrained mirror of an ast.Document.
type ConstrainedDocument struct {
	Imports          []*ast.ImportStatement
	TypeDeclarations []*ConstrainedTypeDeclaration
	Declarations     []*ConstrainedDeclaration
	Expressions      []ConstrainedExpression
}

func (e *ConstrainedBinaryOperator) constrainedNode()    {}
func (e *ConstrainedUnaryOperator) constrainedNode()     {}
func (e *ConstrainedIdentifier) constrainedNode()        {}
func (e *ConstrainedInteger) constrainedNode()           {}
func (e *ConstrainedString) constrainedNode()            {}
func (e *ConstrainedTag) constrainedNode()               {}
func (e *ConstrainedEnum) constrainedNode()              {}
func (e *ConstrainedList) constrainedNode()              {}
func (e *ConstrainedRecord) constrainedNode()            {}
func (e *ConstrainedRecordAssignment) constrainedNode()  {}
func (e *ConstrainedBlock) constrainedNode()             {}
func (e *ConstrainedIf) constrainedNode()                {}
func (e *ConstrainedFunction) constrainedNode()          {}
func (e *ConstrainedFunctionArguments) constrainedNode() {}
func (e *ConstrainedDeclaration) constrainedNode()       {}
func (e *ConstrainedTypeDeclaration) constrainedNode()   {}

func (e *ConstrainedBinaryOperator) SourcedTypeID() TypeID   { return e.Type.ID }
func (e *ConstrainedUnaryOperator) SourcedTypeID() TypeID    { return e.Type.ID }
func (e *ConstrainedIdentifier) SourcedTypeID() TypeID       { return e.Type.ID }
func (e *ConstrainedInteger) SourcedTypeID() TypeID          { return e.Type.ID }
func (e *ConstrainedString) SourcedTypeID() TypeID           { return e.Type.ID }
func (e *ConstrainedTag) SourcedTypeID() TypeID              { return e.Type.ID }
func (e *ConstrainedEnum) SourcedTypeID() TypeID             { return e.Type.ID }
func (e *ConstrainedList) SourcedTypeID() TypeID             { return e.Type.ID }
func (e *ConstrainedRecord) SourcedTypeID() TypeID           { return e.Type.ID }
func (e *ConstrainedRecordAssignment) SourcedTypeID() TypeID { return e.Type.ID }
func (e *ConstrainedBlock) SourcedTypeID() TypeID            { return e.Type.ID }
func (e *ConstrainedIf) SourcedTypeID() TypeID               { return e.Type.ID }
func (e *ConstrainedFunction) SourcedTypeID() TypeID         { return e.Type.ID }
func (e *ConstrainedDeclaration) SourcedTypeID() TypeID      { return e.Type.ID }
func (e *ConstrainedTypeDeclaration) SourcedTypeID() TypeID  { return e.Type.ID }

// SourcedTypeID of an argument list is not meaningful; callers read the
// argument expressions directly.
func (e *ConstrainedFunctionArguments) SourcedTypeID() TypeID { return 0 }
