package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/brio-lang/brio/internal/ast"
)

func parseDocument(t *testing.T, input string) *ast.Document {
	t.Helper()
	document, err := New(input).ParseDocument("test.brio")
	require.Nil(t, err, "unexpected parse error")
	if testing.Verbose() {
		t.Logf("parsed %q:\n%# v", input, pretty.Formatter(document))
	}
	return document
}

// parseTestExpression parses a single expression by wrapping it in a
// declaration.
func parseTestExpression(t *testing.T, input string) ast.Expression {
	t.Helper()
	document := parseDocument(t, "testValue = "+input)
	require.Len(t, document.VariableDeclarations, 1)
	return document.VariableDeclarations[0].Expression
}

func expectParseError(t *testing.T, input, fragment string) {
	t.Helper()
	_, err := New(input).ParseDocument("test.brio")
	require.NotNil(t, err, "expected parse error for %q", input)
	require.Contains(t, err.Error(), fragment)
}

func TestParseIntegerDeclaration(t *testing.T) {
	document := parseDocument(t, "x = 314")
	require.Len(t, document.VariableDeclarations, 1)
	declaration := document.VariableDeclarations[0]
	require.Equal(t, "x", declaration.Identifier.Name)
	literal, ok := declaration.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(314), literal.Value)
}

func TestArithmeticPrecedence(t *testing.T) {
	expression := parseTestExpression(t, "1 + 2 * 3")
	add, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Add, add.Symbol)
	_, ok = add.Left.(*ast.IntegerLiteral)
	require.True(t, ok)
	multiply, ok := add.Right.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Multiply, multiply.Symbol)
}

func TestGroupedExpressionOverridesPrecedence(t *testing.T) {
	expression := parseTestExpression(t, "(1 + 2) * 3")
	multiply, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Multiply, multiply.Symbol)
	add, ok := multiply.Left.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Add, add.Symbol)
}

func TestComparisonBindsLooserThanArithmetic(t *testing.T) {
	expression := parseTestExpression(t, "1 + 2 < 3 * 4")
	compare, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.LessThan, compare.Symbol)
}

func TestLogicPrecedence(t *testing.T) {
	expression := parseTestExpression(t, "a == 1 and b == 2 or c == 3")
	// or binds loosest.
	or, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Or, or.Symbol)
	and, ok := or.Left.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.And, and.Symbol)
}

func TestFunctionApplication(t *testing.T) {
	expression := parseTestExpression(t, "f(1, 2)")
	application, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.FunctionApplication, application.Symbol)
	callee, ok := application.Left.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "f", callee.Name)
	arguments, ok := application.Right.(*ast.FunctionApplicationArguments)
	require.True(t, ok)
	require.Len(t, arguments.Arguments, 2)
}

func TestZeroArgumentApplication(t *testing.T) {
	expression := parseTestExpression(t, `"hi"::length()`)
	application, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.FunctionApplication, application.Symbol)
	lookup, ok := application.Left.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.MethodLookup, lookup.Symbol)
	method, ok := lookup.Right.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "length", method.Name)
	arguments, ok := application.Right.(*ast.FunctionApplicationArguments)
	require.True(t, ok)
	require.Empty(t, arguments.Arguments)
}

func TestFieldLookupChain(t *testing.T) {
	expression := parseTestExpression(t, "point.position.x")
	outer, ok := expression.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.FieldLookup, outer.Symbol)
	inner, ok := outer.Left.(*ast.BinaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.FieldLookup, inner.Symbol)
}

func TestTagLiteralWithContents(t *testing.T) {
	expression := parseTestExpression(t, "#some(1, \"x\")")
	tag, ok := expression.(*ast.TagLiteral)
	require.True(t, ok)
	require.Equal(t, "some", tag.Name)
	require.Len(t, tag.Contents, 2)
}

func TestEnumLiteral(t *testing.T) {
	expression := parseTestExpression(t, "Color.Rgb(255, 0, 0)")
	enum, ok := expression.(*ast.EnumLiteral)
	require.True(t, ok)
	require.Equal(t, "Color", enum.TypeName)
	require.Equal(t, "Rgb", enum.Variant)
	require.Len(t, enum.Contents, 3)
}

func TestListLiteral(t *testing.T) {
	expression := parseTestExpression(t, "[1, 2, 3]")
	list, ok := expression.(*ast.ListLiteral)
	require.True(t, ok)
	require.Len(t, list.Elements, 3)
}

func TestRecordLiteral(t *testing.T) {
	expression := parseTestExpression(t, "{ x: 1, y: 2 }")
	record, ok := expression.(*ast.RecordLiteral)
	require.True(t, ok)
	require.Len(t, record.Fields, 2)
	require.Equal(t, "x", record.Fields[0].Name)
}

func TestRecordAssignment(t *testing.T) {
	document := parseDocument(t, "a = { x: 1 }\nb = { a | x: 5 }")
	require.Len(t, document.VariableDeclarations, 2)
	assignment, ok := document.VariableDeclarations[1].Expression.(*ast.RecordAssignment)
	require.True(t, ok)
	require.Equal(t, "a", assignment.Identifier.Name)
	require.Len(t, assignment.Fields, 1)
}

func TestUnaryOperators(t *testing.T) {
	negative, ok := parseTestExpression(t, "-3").(*ast.UnaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Negative, negative.Symbol)

	not, ok := parseTestExpression(t, "not ok").(*ast.UnaryOperator)
	require.True(t, ok)
	require.Equal(t, ast.Not, not.Symbol)
}

func TestFunctionLiteralWithAnnotatedArguments(t *testing.T) {
	expression := parseTestExpression(t, "(a: Int, b) => a + b")
	function, ok := expression.(*ast.Function)
	require.True(t, ok)
	require.Len(t, function.Arguments, 2)
	require.Equal(t, "a", function.Arguments[0].Name.Name)
	require.NotNil(t, function.Arguments[0].ArgumentType)
	require.Nil(t, function.Arguments[1].ArgumentType)
}

func TestIfWithElse(t *testing.T) {
	expression := parseTestExpression(t, "if ok do 1 else 2 end")
	conditional, ok := expression.(*ast.If)
	require.True(t, ok)
	require.NotNil(t, conditional.Alternative)
}

func TestIfWithoutElse(t *testing.T) {
	expression := parseTestExpression(t, "if ok do 1 end")
	conditional, ok := expression.(*ast.If)
	require.True(t, ok)
	require.Nil(t, conditional.Alternative)
}

func TestIfWithMultiExpressionBranch(t *testing.T) {
	expression := parseTestExpression(t, "if ok do x = 1; x else 2 end")
	conditional, ok := expression.(*ast.If)
	require.True(t, ok)
	block, ok := conditional.Consequence.(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Contents, 2)
	_, ok = block.Contents[0].(*ast.VariableDeclaration)
	require.True(t, ok)
}

func TestBlockWithDeclarations(t *testing.T) {
	expression := parseTestExpression(t, "do n = 3; n * n end")
	block, ok := expression.(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Contents, 2)
}

func TestTypeDeclarationWithTagGroup(t *testing.T) {
	document := parseDocument(t, "Primary = #red | #green | #blue")
	require.Len(t, document.TypeDeclarations, 1)
	declaration := document.TypeDeclarations[0]
	require.Equal(t, "Primary", declaration.Name)
	group, ok := declaration.TypeExpression.(*ast.TagGroupType)
	require.True(t, ok)
	require.Len(t, group.Tags, 3)
}

func TestTypeDeclarationWithEnum(t *testing.T) {
	document := parseDocument(t, "Color = .Red | .Green | .Rgb(Int, Int, Int)")
	require.Len(t, document.TypeDeclarations, 1)
	enum, ok := document.TypeDeclarations[0].TypeExpression.(*ast.EnumType)
	require.True(t, ok)
	require.Len(t, enum.Variants, 3)
	require.Len(t, enum.Variants[2].Contents, 3)
}

func TestTypeDeclarationWithRecord(t *testing.T) {
	document := parseDocument(t, "Point = { x: Int, y: Int }")
	record, ok := document.TypeDeclarations[0].TypeExpression.(*ast.RecordType)
	require.True(t, ok)
	require.Len(t, record.Fields, 2)
}

func TestAnnotatedDeclarationWithFunctionType(t *testing.T) {
	document := parseDocument(t, "isBlue: (Primary) => #true | #false = (a: Rainbow) => a == #blue")
	require.Len(t, document.VariableDeclarations, 1)
	declaration := document.VariableDeclarations[0]
	functionType, ok := declaration.TypeExpression.(*ast.FunctionType)
	require.True(t, ok)
	require.Len(t, functionType.Arguments, 1)
	_, ok = functionType.Return.(*ast.TagGroupType)
	require.True(t, ok)
	_, ok = declaration.Expression.(*ast.Function)
	require.True(t, ok)
}

func TestListTypeAnnotation(t *testing.T) {
	document := parseDocument(t, "xs: [Int] = [1, 2]")
	listType, ok := document.VariableDeclarations[0].TypeExpression.(*ast.ListType)
	require.True(t, ok)
	_, ok = listType.Element.(*ast.TypeIdentifier)
	require.True(t, ok)
}

func TestImportStatement(t *testing.T) {
	document := parseDocument(t, `import "std/result" (ok, err, Result)`)
	require.Len(t, document.Imports, 1)
	imported := document.Imports[0]
	require.Equal(t, "std/result", imported.Path)
	require.Len(t, imported.Identifiers, 2)
	require.Equal(t, []string{"Result"}, imported.TypeNames)
}

func TestExportedDeclaration(t *testing.T) {
	document := parseDocument(t, "export main = () => 0")
	require.Len(t, document.VariableDeclarations, 1)
	require.True(t, document.VariableDeclarations[0].IsExported)
}

func TestTopLevelExpressionsAreKeptSeparately(t *testing.T) {
	document := parseDocument(t, "x = 1\nx + 1")
	require.Len(t, document.VariableDeclarations, 1)
	require.Len(t, document.Expressions, 1)
}

func TestMultilineRecordAndList(t *testing.T) {
	document := parseDocument(t, "p = {\n  x: 1,\n  y: 2\n}\nxs = [\n  1,\n  2\n]")
	require.Len(t, document.VariableDeclarations, 2)
}

func TestParseErrors(t *testing.T) {
	expectParseError(t, "x = ", "UnexpectedToken")
	expectParseError(t, "x = do 1", "unterminated block")
	expectParseError(t, "x = if ok do end", "UnreachableBlockFinalExpression")
	expectParseError(t, "x = { y: }", "UnexpectedToken")
	expectParseError(t, "x = 1 1", "expected end of statement")
	expectParseError(t, "Color = ", "UnexpectedToken")
}
