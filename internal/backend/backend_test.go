package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brio-lang/brio/internal/analyzer"
	"github.com/brio-lang/brio/internal/parser"
	"github.com/brio-lang/brio/internal/resolver"
)

func emitSource(t *testing.T, input string) string {
	t.Helper()
	document, parseErr := parser.New(input).ParseDocument("test.brio")
	require.Nil(t, parseErr)
	a := analyzer.New()
	constrained, checkErr := a.TranslateDocument(document)
	require.Nil(t, checkErr)
	return EmitDocument(resolver.ResolveDocument(a.Schema(), constrained))
}

func TestEmitIntegerDeclaration(t *testing.T) {
	js := emitSource(t, "x = 314")
	require.Equal(t, "const x = 314;\n", js)
}

func TestEmitExportedDeclaration(t *testing.T) {
	js := emitSource(t, "export answer = 42")
	require.Equal(t, "export const answer = 42;\n", js)
}

func TestArithmeticLowersToRuntimeMethods(t *testing.T) {
	js := emitSource(t, "x = 314 + 271")
	require.Equal(t, "const x = (314).add(271);\n", js)
}

func TestConcatenationLowersToPlus(t *testing.T) {
	js := emitSource(t, `s = "a" ++ "b"`)
	require.Equal(t, "const s = (\"a\" + \"b\");\n", js)
}

func TestLogicLowersToNativeOperators(t *testing.T) {
	js := emitSource(t, "b = #true and #false")
	require.Equal(t, "const b = (true && false);\n", js)
}

func TestBooleanTagsLowerToBooleans(t *testing.T) {
	js := emitSource(t, "flag = not #false")
	require.Equal(t, "const flag = (!false);\n", js)
}

func TestTagsLowerToTagObjects(t *testing.T) {
	js := emitSource(t, "v = #some(3)")
	require.Equal(t, "const v = { tag: \"some\", contents: [3] };\n", js)
}

func TestRecordsAndAssignmentsLowerToObjectLiterals(t *testing.T) {
	js := emitSource(t, "a = { y: 2, x: 1 }\nb = { a | x: 5 }")
	require.Contains(t, js, "const a = { x: 1, y: 2 };")
	require.Contains(t, js, "const b = { ...a, x: 5 };")
}

func TestFunctionsAndApplicationsLower(t *testing.T) {
	js := emitSource(t, "double = (n: Int) => n * 2\nfour = double(2)")
	require.Contains(t, js, "const double = (n) => n.multiply(2);")
	require.Contains(t, js, "const four = double(2);")
}

func TestIfLowersToConditionalExpression(t *testing.T) {
	js := emitSource(t, "x = if #true do 1 else 2 end")
	require.Equal(t, "const x = (true ? 1 : 2);\n", js)
}

func TestIfWithoutElseLowersToOption(t *testing.T) {
	js := emitSource(t, "x = if #true do 1 end")
	require.Contains(t, js, "{ tag: \"some\", contents: [1] }")
	require.Contains(t, js, "{ tag: \"none\", contents: [] }")
}

func TestBlockLowersToIIFE(t *testing.T) {
	js := emitSource(t, "x = do n = 3; n * n end")
	require.True(t, strings.HasPrefix(js, "const x = (() => {"), js)
	require.Contains(t, js, "const n = 3;")
	require.Contains(t, js, "return n.multiply(n);")
}

func TestFieldLookupLowersToPropertyAccess(t *testing.T) {
	js := emitSource(t, "p = { x: 1 }\nv = p.x")
	require.Contains(t, js, "const v = p.x;")
}

func TestMethodCallLowersToMethodCall(t *testing.T) {
	js := emitSource(t, `n = "hello"::length()`)
	require.Contains(t, js, "const n = \"hello\".length();")
}

func TestEnumLiteralLowersToTagObject(t *testing.T) {
	js := emitSource(t, "Color = .Red | .Green\nc = Color.Red")
	require.Contains(t, js, "const c = { tag: \"Red\", contents: [] };")
}
