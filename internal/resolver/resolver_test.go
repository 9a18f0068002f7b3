package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brio-lang/brio/internal/analyzer"
	"github.com/brio-lang/brio/internal/parser"
	"github.com/brio-lang/brio/internal/typedast"
)

func checkSource(t *testing.T, input string) *typedast.Document {
	t.Helper()
	document, parseErr := parser.New(input).ParseDocument("test.brio")
	require.Nil(t, parseErr)
	a := analyzer.New()
	constrained, checkErr := a.TranslateDocument(document)
	require.Nil(t, checkErr)
	return ResolveDocument(a.Schema(), constrained)
}

func TestTypeDeclarationsAreErasedFromTheOutput(t *testing.T) {
	typed := checkSource(t, "Primary = #red | #green | #blue\nx = 1")
	require.Len(t, typed.Declarations, 1)
	require.Equal(t, "x", typed.Declarations[0].Identifier.Name)
}

func TestTopLevelExpressionsAreDroppedFromTheOutput(t *testing.T) {
	typed := checkSource(t, "x = 1\nx + 1")
	require.Len(t, typed.Declarations, 1)
}

func TestDeclarationsCarryConcreteTypes(t *testing.T) {
	typed := checkSource(t, `greeting = "hello" ++ " world"`)
	declaration := typed.Declarations[0]
	require.Equal(t, typedast.Primitive{Type: typedast.Str}, declaration.DeclarationType)
	value, ok := declaration.Value.(*typedast.BinaryOperatorExpression)
	require.True(t, ok)
	require.Equal(t, typedast.Primitive{Type: typedast.Str}, value.ExpressionType())
}

func TestBooleanTagsResolveToBooleanLiterals(t *testing.T) {
	typed := checkSource(t, "flag = #true")
	boolean, ok := typed.Declarations[0].Value.(*typedast.BooleanExpression)
	require.True(t, ok)
	require.True(t, boolean.Value)
	require.True(t, typedast.IsCompilerBoolean(boolean.ExpressionType()))
}

func TestNonBooleanTagsStayTags(t *testing.T) {
	typed := checkSource(t, "value = #some(3)")
	tag, ok := typed.Declarations[0].Value.(*typedast.TagExpression)
	require.True(t, ok)
	require.Equal(t, "some", tag.Name)
	require.Len(t, tag.Contents, 1)
}

func TestEveryNodeOfTheTypedTreeCarriesAType(t *testing.T) {
	typed := checkSource(t, "xs = [1, 2, 3]\nfirstSquare = (n: Int) => n * n")
	require.Len(t, typed.Declarations, 2)
	list, ok := typed.Declarations[0].Value.(*typedast.ListExpression)
	require.True(t, ok)
	require.Len(t, list.Contents, 3)
	for _, element := range list.Contents {
		require.Equal(t, typedast.Primitive{Type: typedast.Int}, element.ExpressionType())
	}
	function, ok := typed.Declarations[1].Value.(*typedast.FunctionExpression)
	require.True(t, ok)
	fnType, ok := function.ExpressionType().(*typedast.Function)
	require.True(t, ok)
	require.Equal(t, typedast.Primitive{Type: typedast.Int}, fnType.Return)
}

func TestExportFlagSurvivesResolution(t *testing.T) {
	typed := checkSource(t, "export main = () => 0")
	require.True(t, typed.Declarations[0].IsExported)
}

func TestImportsArePassedThrough(t *testing.T) {
	typed := checkSource(t, "import \"std/io\" (print)\nx = 1")
	require.Len(t, typed.Imports, 1)
	require.Equal(t, "std/io", typed.Imports[0].Path)
}

func TestIfWithoutElseResolvesToOptionTagUnion(t *testing.T) {
	typed := checkSource(t, "maybe = if #true do 1 end")
	union, ok := typed.Declarations[0].DeclarationType.(*typedast.TagUnion)
	require.True(t, ok)
	require.Contains(t, union.Tags, "none")
	require.Contains(t, union.Tags, "some")
}
