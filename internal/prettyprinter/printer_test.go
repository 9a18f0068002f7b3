package prettyprinter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brio-lang/brio/internal/analyzer"
	"github.com/brio-lang/brio/internal/parser"
	"github.com/brio-lang/brio/internal/resolver"
)

func printSource(t *testing.T, input string) string {
	t.Helper()
	document, parseErr := parser.New(input).ParseDocument("test.brio")
	require.Nil(t, parseErr)
	a := analyzer.New()
	constrained, checkErr := a.TranslateDocument(document)
	require.Nil(t, checkErr)
	return PrintDeclarationTypes(resolver.ResolveDocument(a.Schema(), constrained))
}

func TestPrintDeclarationTypes(t *testing.T) {
	listing := printSource(t, "x = 1\ns = \"hi\"\nexport main = () => 0")
	require.Equal(t, "x: Int\ns: Str\nmain: () => Int (exported)\n", listing)
}

func TestRecordTypesPrintSortedFields(t *testing.T) {
	listing := printSource(t, "p = { y: 2, x: 1 }")
	require.Equal(t, "p: { x: Int, y: Int }\n", listing)
}
