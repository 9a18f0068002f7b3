package analyzer

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/token"
	"github.com/brio-lang/brio/internal/typesystem"
)

// Analyzer walks a parsed document in a single left-to-right pass, allocates
// a type id for every expression, and posts the structural constraints that
// encode the typing rules. It halts at the first error; nothing is recovered
// locally.
type Analyzer struct {
	schema *typesystem.TypeSchema
}

func New() *Analyzer {
	return &Analyzer{schema: typesystem.New()}
}

// Schema exposes the populated schema for the resolver.
func (a *Analyzer) Schema() *typesystem.TypeSchema {
	return a.schema
}

// TranslateDocument translates a whole document: type declarations first,
// then variable declarations, then top-level expressions (which are checked
// for their side effects only).
func (a *Analyzer) TranslateDocument(doc *ast.Document) (*typesystem.ConstrainedDocument, *diagnostics.DiagnosticError) {
	constrained := &typesystem.ConstrainedDocument{Imports: doc.Imports}
	for _, typeDeclaration := range doc.TypeDeclarations {
		translated, err := a.translateTypeDeclaration(typeDeclaration)
		if err != nil {
			return nil, err
		}
		constrained.TypeDeclarations = append(constrained.TypeDeclarations, translated)
	}
	for _, declaration := range doc.VariableDeclarations {
		translated, err := a.translateDeclaration(declaration)
		if err != nil {
			return nil, err
		}
		constrained.Declarations = append(constrained.Declarations, translated)
	}
	for _, expression := range doc.Expressions {
		translated, err := a.translateExpression(expression)
		if err != nil {
			return nil, err
		}
		constrained.Expressions = append(constrained.Expressions, translated)
	}
	return constrained, nil
}

// constraintError wraps a schema error with the source position of the
// expression whose constraint triggered it.
func constraintError(err error, tok token.Token) *diagnostics.DiagnosticError {
	return diagnostics.NewError(diagnostics.ErrT002, tok, err.Error())
}

func scopeError(err error, tok token.Token) *diagnostics.DiagnosticError {
	return diagnostics.NewError(diagnostics.ErrT001, tok, err.Error())
}
