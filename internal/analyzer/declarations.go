package analyzer

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/typesystem"
)

func (a *Analyzer) translateDeclaration(node *ast.VariableDeclaration) (*typesystem.ConstrainedDeclaration, *diagnostics.DiagnosticError) {
	declarationTypeID := a.schema.MakeID()
	if err := a.schema.AddConstraint(declarationTypeID, constrainAtMostNoneTag()); err != nil {
		return nil, constraintError(err, node.Token)
	}

	// The name is declared before the expression is translated so that
	// recursive functions can reference themselves.
	nameTypeID := a.schema.MakeID()
	if err := a.schema.Scope.DeclareIdentifier(node.Identifier.Name, nameTypeID); err != nil {
		return nil, scopeError(err, node.Identifier.Token)
	}
	identifier, err := a.translateIdentifier(node.Identifier)
	if err != nil {
		return nil, err
	}

	value, err := a.translateDeclarationExpression(nameTypeID, node.Expression, node.TypeExpression)
	if err != nil {
		return nil, err
	}

	return &typesystem.ConstrainedDeclaration{
		DeclarationType: typesystem.SourcedType{ID: nameTypeID, Source: node.Token},
		Type:            typesystem.SourcedType{ID: declarationTypeID, Source: node.Token},
		Identifier:      identifier,
		Value:           value,
		IsExported:      node.IsExported,
	}, nil
}

// translateDeclarationExpression translates the right side of a declaration.
// When the expression is a function literal and the annotation determines its
// argument types, those types seed the argument slots while the lambda body
// is translated.
func (a *Analyzer) translateDeclarationExpression(
	nameTypeID typesystem.TypeID,
	expression ast.Expression,
	typeExpression ast.TypeExpression,
) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	if function, isFunction := expression.(*ast.Function); isFunction {
		var functionTypeID typesystem.TypeID
		haveFunctionType := false
		switch annotation := typeExpression.(type) {
		case *ast.FunctionType:
			id, err := a.translateFunctionType(annotation)
			if err != nil {
				return nil, err
			}
			functionTypeID = id
			haveFunctionType = true
		case *ast.TypeIdentifier:
			id, err := a.translateTypeIdentifier(annotation)
			if err != nil {
				return nil, err
			}
			functionTypeID = id
			haveFunctionType = true
		}
		if haveFunctionType {
			if err := a.schema.SetEqualToCanonicalType(functionTypeID, nameTypeID); err != nil {
				return nil, constraintError(err, function.Token)
			}
			return a.translateFunction(function, &functionTypeID)
		}
	}

	translated, err := a.translateExpression(expression)
	if err != nil {
		return nil, err
	}
	expressionID := translated.SourcedTypeID()

	if typeExpression != nil {
		typeExpressionID, terr := a.translateTypeExpression(typeExpression)
		if terr != nil {
			return nil, terr
		}
		if cerr := a.schema.SetEqualToCanonicalType(typeExpressionID, expressionID); cerr != nil {
			return nil, constraintError(cerr, typeExpression.GetToken())
		}
	}
	if cerr := a.schema.SetEqualToCanonicalType(expressionID, nameTypeID); cerr != nil {
		return nil, constraintError(cerr, expression.GetToken())
	}
	return translated, nil
}

func (a *Analyzer) translateFunction(node *ast.Function, declarationType *typesystem.TypeID) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	functionTypeID := a.schema.MakeID()
	a.schema.Scope.StartSubScope()

	declarationArgumentTypes := make([]*typesystem.TypeID, len(node.Arguments))
	if declarationType != nil {
		declaredTypes, ok := a.schema.GetFunctionArgumentTypes(*declarationType)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrT003, node.Token, "DeclarationTypeIsNotForAFunction")
		}
		if len(declaredTypes) != len(node.Arguments) {
			return nil, diagnostics.NewError(diagnostics.ErrT003, node.Token, "FunctionArityDoesNotMatchDeclaration")
		}
		for i := range declaredTypes {
			declarationArgumentTypes[i] = &declaredTypes[i]
		}
	}

	argumentNames := make([]string, 0, len(node.Arguments))
	argumentTypes := make([]typesystem.TypeID, 0, len(node.Arguments))
	for i, argument := range node.Arguments {
		identifierTypeID := a.schema.MakeID()
		if err := a.schema.Scope.DeclareIdentifier(argument.Name.Name, identifierTypeID); err != nil {
			return nil, scopeError(err, argument.Token)
		}
		if argument.ArgumentType != nil {
			argumentTypeID, terr := a.translateTypeExpression(argument.ArgumentType)
			if terr != nil {
				return nil, terr
			}
			if declared := declarationArgumentTypes[i]; declared != nil {
				if !a.schema.TypesAreCompatible(argumentTypeID, *declared) {
					return nil, diagnostics.NewError(diagnostics.ErrT003, argument.Token,
						"ArgumentTypeDoesNotMatchDeclaration")
				}
			}
			if cerr := a.schema.SetEqualToCanonicalType(argumentTypeID, identifierTypeID); cerr != nil {
				return nil, constraintError(cerr, argument.Token)
			}
		} else if declared := declarationArgumentTypes[i]; declared != nil {
			if cerr := a.schema.SetEqualToCanonicalType(*declared, identifierTypeID); cerr != nil {
				return nil, constraintError(cerr, argument.Token)
			}
		}
		argumentTypes = append(argumentTypes, identifierTypeID)
		argumentNames = append(argumentNames, argument.Name.Name)
	}

	body, err := a.translateExpression(node.Body)
	if err != nil {
		return nil, err
	}
	bodyID := body.SourcedTypeID()
	returnTypeID := a.schema.MakeID()
	if cerr := a.schema.SetEqualToCanonicalType(bodyID, returnTypeID); cerr != nil {
		return nil, constraintError(cerr, node.Token)
	}
	if declarationType != nil {
		if cerr := a.schema.SetEqualToFunctionResult(bodyID, *declarationType); cerr != nil {
			return nil, constraintError(cerr, node.Token)
		}
	}
	if cerr := a.schema.AddConstraint(functionTypeID, typesystem.HasFunctionShape{
		ArgumentTypes: argumentTypes,
		ReturnType:    returnTypeID,
	}); cerr != nil {
		return nil, constraintError(cerr, node.Token)
	}
	a.schema.Scope.EndSubScope()

	return &typesystem.ConstrainedFunction{
		Type:          typesystem.SourcedType{ID: functionTypeID, Source: node.Token},
		ArgumentNames: argumentNames,
		Body:          body,
	}, nil
}

func (a *Analyzer) translateTypeDeclaration(node *ast.TypeDeclaration) (*typesystem.ConstrainedTypeDeclaration, *diagnostics.DiagnosticError) {
	declarationTypeID := a.schema.MakeID()
	if err := a.schema.AddConstraint(declarationTypeID, constrainAtMostNoneTag()); err != nil {
		return nil, constraintError(err, node.Token)
	}

	nameTypeID := a.schema.MakeID()
	if err := a.schema.Scope.DeclareIdentifier(node.Name, nameTypeID); err != nil {
		return nil, scopeError(err, node.Token)
	}

	typeExpressionID, err := a.translateTypeExpression(node.TypeExpression)
	if err != nil {
		return nil, err
	}
	if cerr := a.schema.SetEqualToCanonicalType(typeExpressionID, nameTypeID); cerr != nil {
		return nil, constraintError(cerr, node.Token)
	}
	// Enums are nominal: the declared name becomes part of the type. Tag
	// groups and records stay structural.
	if _, isEnum := node.TypeExpression.(*ast.EnumType); isEnum {
		if cerr := a.schema.AddConstraint(nameTypeID, typesystem.HasName{Name: node.Name}); cerr != nil {
			return nil, constraintError(cerr, node.Token)
		}
	}

	return &typesystem.ConstrainedTypeDeclaration{
		DeclarationType: typesystem.SourcedType{ID: declarationTypeID, Source: node.Token},
		Type:            typesystem.SourcedType{ID: typeExpressionID, Source: node.Token},
		Name:            node.Name,
	}, nil
}
