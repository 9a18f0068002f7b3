package analyzer

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/typesystem"
)

// translateTypeExpression translates a type expression structurally,
// returning the id of the class carrying its constraints.
func (a *Analyzer) translateTypeExpression(expression ast.TypeExpression) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	switch node := expression.(type) {
	case *ast.TypeIdentifier:
		return a.translateTypeIdentifier(node)
	case *ast.ListType:
		return a.translateListType(node)
	case *ast.RecordType:
		return a.translateRecordType(node)
	case *ast.TagGroupType:
		return a.translateTagGroupType(node)
	case *ast.EnumType:
		return a.translateEnumType(node)
	case *ast.FunctionType:
		return a.translateFunctionType(node)
	}
	return 0, diagnostics.NewError(diagnostics.ErrT004, expression.GetToken(), "UnknownTypeExpressionVariant")
}

func (a *Analyzer) translateTypeIdentifier(node *ast.TypeIdentifier) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID, ok := a.schema.Scope.GetVariableDeclarationType(node.Name)
	if !ok {
		return 0, diagnostics.Errorf(diagnostics.ErrT001, node.Token, "TypeIdentifierNotFound: %s", node.Name)
	}
	return typeID, nil
}

func (a *Analyzer) translateListType(node *ast.ListType) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	elementTypeID, err := a.translateTypeExpression(node.Element)
	if err != nil {
		return 0, err
	}
	if cerr := a.schema.AddConstraint(typeID, typesystem.ListOfType{ElementType: elementTypeID}); cerr != nil {
		return 0, constraintError(cerr, node.Token)
	}
	return typeID, nil
}

func (a *Analyzer) translateRecordType(node *ast.RecordType) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	fields := make(map[string]typesystem.TypeID, len(node.Fields))
	for _, field := range node.Fields {
		if _, exists := fields[field.Name]; exists {
			return 0, diagnostics.Errorf(diagnostics.ErrT004, field.Token,
				"DuplicateFieldNamesInRecord: %s", field.Name)
		}
		fieldTypeID, err := a.translateTypeExpression(field.Value)
		if err != nil {
			return 0, err
		}
		fields[field.Name] = fieldTypeID
	}
	if cerr := a.schema.AddConstraint(typeID, typesystem.HasExactFields{Fields: fields}); cerr != nil {
		return 0, constraintError(cerr, node.Token)
	}
	return typeID, nil
}

func (a *Analyzer) translateTagGroupType(node *ast.TagGroupType) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	tags := make(map[string][]typesystem.TypeID, len(node.Tags))
	for _, tag := range node.Tags {
		if _, exists := tags[tag.Name]; exists {
			return 0, diagnostics.NewError(diagnostics.ErrT004, tag.Token, "DuplicateTagNamesInTagGroup")
		}
		contentTypes := make([]typesystem.TypeID, 0, len(tag.Contents))
		for _, content := range tag.Contents {
			contentTypeID, err := a.translateTypeExpression(content)
			if err != nil {
				return 0, err
			}
			contentTypes = append(contentTypes, contentTypeID)
		}
		tags[tag.Name] = contentTypes
	}
	if cerr := a.schema.AddConstraint(typeID, typesystem.TagAtMost{Tags: tags}); cerr != nil {
		return 0, constraintError(cerr, node.Token)
	}
	return typeID, nil
}

func (a *Analyzer) translateEnumType(node *ast.EnumType) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	variants := make(map[string][]typesystem.TypeID, len(node.Variants))
	for _, variant := range node.Variants {
		if _, exists := variants[variant.Name]; exists {
			return 0, diagnostics.NewError(diagnostics.ErrT004, variant.Token, "DuplicateVariantNamesInEnum")
		}
		payload := make([]typesystem.TypeID, 0, len(variant.Contents))
		for _, content := range variant.Contents {
			contentTypeID, err := a.translateTypeExpression(content)
			if err != nil {
				return 0, err
			}
			payload = append(payload, contentTypeID)
		}
		variants[variant.Name] = payload
	}
	if cerr := a.schema.AddConstraint(typeID, typesystem.EnumExact{Variants: variants}); cerr != nil {
		return 0, constraintError(cerr, node.Token)
	}
	return typeID, nil
}

func (a *Analyzer) translateFunctionType(node *ast.FunctionType) (typesystem.TypeID, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	argumentTypes := make([]typesystem.TypeID, 0, len(node.Arguments))
	for _, argument := range node.Arguments {
		argumentTypeID, err := a.translateTypeExpression(argument)
		if err != nil {
			return 0, err
		}
		argumentTypes = append(argumentTypes, argumentTypeID)
	}
	returnTypeID, err := a.translateTypeExpression(node.Return)
	if err != nil {
		return 0, err
	}
	if cerr := a.schema.AddConstraint(typeID, typesystem.HasFunctionShape{
		ArgumentTypes: argumentTypes,
		ReturnType:    returnTypeID,
	}); cerr != nil {
		return 0, constraintError(cerr, node.Token)
	}
	return typeID, nil
}
