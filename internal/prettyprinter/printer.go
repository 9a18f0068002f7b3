// Package prettyprinter renders checked documents for human consumption:
// the `brio check --types` listing and the golden-test dumps.
package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/brio-lang/brio/internal/typedast"
)

// PrintDeclarationTypes renders one "name: type" line per declaration, in
// source order. Exported declarations are marked.
func PrintDeclarationTypes(document *typedast.Document) string {
	var b strings.Builder
	for _, declaration := range document.Declarations {
		if declaration.IsExported {
			fmt.Fprintf(&b, "%s: %s (exported)\n", declaration.Identifier.Name, declaration.DeclarationType)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", declaration.Identifier.Name, declaration.DeclarationType)
		}
	}
	return b.String()
}
