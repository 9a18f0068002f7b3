// Package resolver projects a constrained AST onto concrete types. It runs
// only after a successful translation and reads the schema without mutating
// it; no constraint is added once resolution starts.
package resolver

import (
	"github.com/brio-lang/brio/internal/typedast"
	"github.com/brio-lang/brio/internal/typesystem"
)

// ResolveDocument materialises every equivalence class referenced by the
// document. Type declarations and top-level expressions are dropped from the
// output; variable declarations form the typed document's body.
func ResolveDocument(schema *typesystem.TypeSchema, document *typesystem.ConstrainedDocument) *typedast.Document {
	typed := &typedast.Document{Imports: document.Imports}
	for _, declaration := range document.Declarations {
		typed.Declarations = append(typed.Declarations, resolveDeclaration(schema, declaration))
	}
	return typed
}

func resolveType(schema *typesystem.TypeSchema, typeID typesystem.TypeID) typedast.ConcreteType {
	return schema.GetConcreteTypeFromID(typeID)
}

func resolveDeclaration(schema *typesystem.TypeSchema, declaration *typesystem.ConstrainedDeclaration) *typedast.DeclarationExpression {
	declarationType := resolveType(schema, declaration.DeclarationType.ID)
	return &typedast.DeclarationExpression{
		DeclarationType: declarationType,
		Identifier:      resolveIdentifier(schema, declaration.Identifier),
		Value:           ResolveExpression(schema, declaration.Value),
		IsExported:      declaration.IsExported,
	}
}

func resolveIdentifier(schema *typesystem.TypeSchema, identifier *typesystem.ConstrainedIdentifier) *typedast.IdentifierExpression {
	return &typedast.IdentifierExpression{
		Type:          resolveType(schema, identifier.Type.ID),
		Name:          identifier.Name,
		IsDisregarded: identifier.IsDisregarded,
	}
}

func resolveRecord(schema *typesystem.TypeSchema, record *typesystem.ConstrainedRecord) *typedast.RecordExpression {
	fields := make(map[string]typedast.Expression, len(record.Fields))
	for name, value := range record.Fields {
		fields[name] = ResolveExpression(schema, value)
	}
	return &typedast.RecordExpression{
		Type:   resolveType(schema, record.Type.ID),
		Fields: fields,
	}
}

func resolveContents(schema *typesystem.TypeSchema, contents []typesystem.ConstrainedExpression) []typedast.Expression {
	resolved := make([]typedast.Expression, 0, len(contents))
	for _, content := range contents {
		resolved = append(resolved, ResolveExpression(schema, content))
	}
	return resolved
}

// ResolveExpression replaces every sourced type id in the expression tree
// with its concrete type.
func ResolveExpression(schema *typesystem.TypeSchema, expression typesystem.ConstrainedExpression) typedast.Expression {
	switch node := expression.(type) {
	case *typesystem.ConstrainedBinaryOperator:
		return &typedast.BinaryOperatorExpression{
			Type:   resolveType(schema, node.Type.ID),
			Symbol: node.Symbol,
			Left:   ResolveExpression(schema, node.Left),
			Right:  ResolveExpression(schema, node.Right),
		}
	case *typesystem.ConstrainedUnaryOperator:
		return &typedast.UnaryOperatorExpression{
			Type:   resolveType(schema, node.Type.ID),
			Symbol: node.Symbol,
			Child:  ResolveExpression(schema, node.Child),
		}
	case *typesystem.ConstrainedIdentifier:
		return resolveIdentifier(schema, node)
	case *typesystem.ConstrainedInteger:
		return &typedast.IntegerExpression{
			Type:  resolveType(schema, node.Type.ID),
			Value: node.Value,
		}
	case *typesystem.ConstrainedString:
		return &typedast.StringExpression{
			Type:  resolveType(schema, node.Type.ID),
			Value: node.Value,
		}
	case *typesystem.ConstrainedTag:
		expressionType := resolveType(schema, node.Type.ID)
		// A tag whose class resolved to the boolean primitive is a boolean
		// literal, not a tag.
		if typedast.IsCompilerBoolean(expressionType) {
			return &typedast.BooleanExpression{
				Type:  expressionType,
				Value: node.Name == "true",
			}
		}
		return &typedast.TagExpression{
			Type:     expressionType,
			Name:     node.Name,
			Contents: resolveContents(schema, node.Contents),
		}
	case *typesystem.ConstrainedEnum:
		return &typedast.EnumExpression{
			Type:     resolveType(schema, node.Type.ID),
			TypeName: node.TypeName,
			Variant:  node.Variant,
			Contents: resolveContents(schema, node.Contents),
		}
	case *typesystem.ConstrainedList:
		return &typedast.ListExpression{
			Type:     resolveType(schema, node.Type.ID),
			Contents: resolveContents(schema, node.Contents),
		}
	case *typesystem.ConstrainedRecord:
		return resolveRecord(schema, node)
	case *typesystem.ConstrainedRecordAssignment:
		return &typedast.RecordAssignmentExpression{
			Type:       resolveType(schema, node.Type.ID),
			Identifier: resolveIdentifier(schema, node.Identifier),
			Contents:   resolveRecord(schema, node.Contents),
		}
	case *typesystem.ConstrainedBlock:
		return &typedast.BlockExpression{
			Type:     resolveType(schema, node.Type.ID),
			Contents: resolveContents(schema, node.Contents),
		}
	case *typesystem.ConstrainedIf:
		typed := &typedast.IfExpression{
			Type:        resolveType(schema, node.Type.ID),
			Condition:   ResolveExpression(schema, node.Condition),
			Consequence: ResolveExpression(schema, node.Consequence),
		}
		if node.Alternative != nil {
			typed.Alternative = ResolveExpression(schema, node.Alternative)
		}
		return typed
	case *typesystem.ConstrainedFunction:
		return &typedast.FunctionExpression{
			Type:          resolveType(schema, node.Type.ID),
			ArgumentNames: node.ArgumentNames,
			Body:          ResolveExpression(schema, node.Body),
		}
	case *typesystem.ConstrainedFunctionArguments:
		return &typedast.FunctionArgumentsExpression{
			Arguments: resolveContents(schema, node.Arguments),
		}
	case *typesystem.ConstrainedDeclaration:
		return resolveDeclaration(schema, node)
	}
	// Type declarations inside expressions resolve to nothing useful; they
	// were retained only for their scope side effects.
	return &typedast.BooleanExpression{
		Type:  typedast.Primitive{Type: typedast.CompilerBoolean},
		Value: false,
	}
}
