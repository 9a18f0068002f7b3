package analyzer

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/typesystem"
)

func (a *Analyzer) translateExpression(expression ast.Expression) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	switch node := expression.(type) {
	case *ast.BinaryOperator:
		return a.translateBinaryOperator(node)
	case *ast.Block:
		return a.translateBlock(node)
	case *ast.Function:
		return a.translateFunction(node, nil)
	case *ast.FunctionApplicationArguments:
		return nil, diagnostics.NewError(diagnostics.ErrT004, node.GetToken(),
			"UnreachableFunctionApplicationArgumentExpression")
	case *ast.Identifier:
		return a.translateIdentifier(node)
	case *ast.If:
		return a.translateIf(node)
	case *ast.IntegerLiteral:
		return a.translateInteger(node)
	case *ast.ListLiteral:
		return a.translateList(node)
	case *ast.RecordLiteral:
		return a.translateRecord(node)
	case *ast.RecordAssignment:
		return a.translateRecordAssignment(node)
	case *ast.StringLiteral:
		return a.translateString(node)
	case *ast.TagLiteral:
		return a.translateTag(node)
	case *ast.EnumLiteral:
		return a.translateEnumLiteral(node)
	case *ast.UnaryOperator:
		return a.translateUnaryOperator(node)
	case *ast.VariableDeclaration:
		return a.translateDeclaration(node)
	case *ast.TypeDeclaration:
		return a.translateTypeDeclaration(node)
	}
	return nil, diagnostics.NewError(diagnostics.ErrT004, expression.GetToken(), "UnknownExpressionVariant")
}

func (a *Analyzer) translateInteger(node *ast.IntegerLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	if err := a.schema.AddConstraint(typeID, constrainEqualToNum()); err != nil {
		return nil, constraintError(err, node.Token)
	}
	return &typesystem.ConstrainedInteger{
		Type:  typesystem.SourcedType{ID: typeID, Source: node.Token},
		Value: node.Value,
	}, nil
}

func (a *Analyzer) translateString(node *ast.StringLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	if err := a.schema.AddConstraint(typeID, constrainEqualToStr()); err != nil {
		return nil, constraintError(err, node.Token)
	}
	return &typesystem.ConstrainedString{
		Type:  typesystem.SourcedType{ID: typeID, Source: node.Token},
		Value: node.Value,
	}, nil
}

func (a *Analyzer) translateIdentifier(node *ast.Identifier) (*typesystem.ConstrainedIdentifier, *diagnostics.DiagnosticError) {
	typeID, ok := a.schema.Scope.GetVariableDeclarationType(node.Name)
	if !ok {
		return nil, diagnostics.Errorf(diagnostics.ErrT001, node.Token, "IdentifierNotFound: %s", node.Name)
	}
	return &typesystem.ConstrainedIdentifier{
		Type:          typesystem.SourcedType{ID: typeID, Source: node.Token},
		Name:          node.Name,
		IsDisregarded: node.IsDisregarded,
	}, nil
}

func (a *Analyzer) translateTag(node *ast.TagLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	contents := make([]typesystem.ConstrainedExpression, 0, len(node.Contents))
	contentTypes := make([]typesystem.TypeID, 0, len(node.Contents))
	for _, content := range node.Contents {
		translated, err := a.translateExpression(content)
		if err != nil {
			return nil, err
		}
		contents = append(contents, translated)
		contentTypes = append(contentTypes, translated.SourcedTypeID())
	}
	if err := a.schema.AddConstraint(typeID, typesystem.HasTag{
		TagName:         node.Name,
		TagContentTypes: contentTypes,
	}); err != nil {
		return nil, constraintError(err, node.Token)
	}
	return &typesystem.ConstrainedTag{
		Type:     typesystem.SourcedType{ID: typeID, Source: node.Token},
		Name:     node.Name,
		Contents: contents,
	}, nil
}

func (a *Analyzer) translateEnumLiteral(node *ast.EnumLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	declaredID, ok := a.schema.Scope.GetVariableDeclarationType(node.TypeName)
	if !ok {
		return nil, diagnostics.Errorf(diagnostics.ErrT001, node.Token, "IdentifierNotFound: %s", node.TypeName)
	}
	typeID := a.schema.MakeID()
	contents := make([]typesystem.ConstrainedExpression, 0, len(node.Contents))
	contentTypes := make([]typesystem.TypeID, 0, len(node.Contents))
	for _, content := range node.Contents {
		translated, err := a.translateExpression(content)
		if err != nil {
			return nil, err
		}
		contents = append(contents, translated)
		contentTypes = append(contentTypes, translated.SourcedTypeID())
	}
	if err := a.schema.AddConstraint(typeID, typesystem.HasVariant{
		VariantName: node.Variant,
		Payload:     contentTypes,
	}); err != nil {
		return nil, constraintError(err, node.Token)
	}
	if err := a.schema.SetEqualToCanonicalType(declaredID, typeID); err != nil {
		return nil, constraintError(err, node.Token)
	}
	return &typesystem.ConstrainedEnum{
		Type:     typesystem.SourcedType{ID: typeID, Source: node.Token},
		TypeName: node.TypeName,
		Variant:  node.Variant,
		Contents: contents,
	}, nil
}

func (a *Analyzer) translateUnaryOperator(node *ast.UnaryOperator) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	var child typesystem.ConstrainedExpression
	switch node.Symbol {
	case ast.Not:
		if err := a.schema.AddConstraint(typeID, constrainAtLeastTrue()); err != nil {
			return nil, constraintError(err, node.Token)
		}
		if err := a.schema.AddConstraint(typeID, constrainAtLeastFalse()); err != nil {
			return nil, constraintError(err, node.Token)
		}
		translated, err := a.translateExpression(node.Child)
		if err != nil {
			return nil, err
		}
		if cerr := a.schema.AddConstraint(translated.SourcedTypeID(), constrainAtMostBooleanTag()); cerr != nil {
			return nil, constraintError(cerr, node.Child.GetToken())
		}
		child = translated
	case ast.Negative:
		if err := a.schema.AddConstraint(typeID, constrainEqualToNum()); err != nil {
			return nil, constraintError(err, node.Token)
		}
		translated, err := a.translateExpression(node.Child)
		if err != nil {
			return nil, err
		}
		if cerr := a.schema.AddConstraint(translated.SourcedTypeID(), constrainEqualToNum()); cerr != nil {
			return nil, constraintError(cerr, node.Child.GetToken())
		}
		child = translated
	}
	return &typesystem.ConstrainedUnaryOperator{
		Type:   typesystem.SourcedType{ID: typeID, Source: node.Token},
		Symbol: node.Symbol,
		Child:  child,
	}, nil
}

func (a *Analyzer) translateBlock(node *ast.Block) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	a.schema.Scope.StartSubScope()
	contents := make([]typesystem.ConstrainedExpression, 0, len(node.Contents))
	for _, element := range node.Contents {
		translated, err := a.translateExpression(element)
		if err != nil {
			return nil, err
		}
		contents = append(contents, translated)
	}
	if len(contents) == 0 {
		return nil, diagnostics.NewError(diagnostics.ErrT004, node.Token, "UnreachableBlockFinalExpression")
	}
	last := contents[len(contents)-1]
	if err := a.schema.SetEqualToCanonicalType(last.SourcedTypeID(), typeID); err != nil {
		return nil, constraintError(err, node.Token)
	}
	a.schema.Scope.EndSubScope()
	return &typesystem.ConstrainedBlock{
		Type:     typesystem.SourcedType{ID: typeID, Source: node.Token},
		Contents: contents,
	}, nil
}

func (a *Analyzer) translateIf(node *ast.If) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	condition, err := a.translateExpression(node.Condition)
	if err != nil {
		return nil, err
	}
	if cerr := a.schema.AddConstraint(condition.SourcedTypeID(), constrainAtMostBooleanTag()); cerr != nil {
		return nil, constraintError(cerr, node.Condition.GetToken())
	}

	a.schema.Scope.StartSubScope()
	consequence, err := a.translateExpression(node.Consequence)
	if err != nil {
		return nil, err
	}
	a.schema.Scope.EndSubScope()

	a.schema.Scope.StartSubScope()
	var alternative typesystem.ConstrainedExpression
	if node.Alternative != nil {
		if cerr := a.schema.SetEqualToCanonicalType(consequence.SourcedTypeID(), typeID); cerr != nil {
			return nil, constraintError(cerr, node.Token)
		}
		alternative, err = a.translateExpression(node.Alternative)
		if err != nil {
			return nil, err
		}
		if cerr := a.schema.SetEqualToCanonicalType(alternative.SourcedTypeID(), typeID); cerr != nil {
			return nil, constraintError(cerr, node.Alternative.GetToken())
		}
	} else {
		// No else branch: the expression is optional-valued.
		if cerr := a.schema.AddConstraint(typeID, typesystem.HasTag{TagName: "none"}); cerr != nil {
			return nil, constraintError(cerr, node.Token)
		}
		if cerr := a.schema.AddConstraint(typeID, typesystem.HasTag{
			TagName:         "some",
			TagContentTypes: []typesystem.TypeID{consequence.SourcedTypeID()},
		}); cerr != nil {
			return nil, constraintError(cerr, node.Token)
		}
	}
	a.schema.Scope.EndSubScope()

	return &typesystem.ConstrainedIf{
		Type:        typesystem.SourcedType{ID: typeID, Source: node.Token},
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}, nil
}

func (a *Analyzer) translateList(node *ast.ListLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	listTypeID := a.schema.MakeID()
	elementTypeID := a.schema.MakeID()
	if err := a.schema.AddConstraint(listTypeID, typesystem.ListOfType{ElementType: elementTypeID}); err != nil {
		return nil, constraintError(err, node.Token)
	}
	contents := make([]typesystem.ConstrainedExpression, 0, len(node.Elements))
	for _, element := range node.Elements {
		translated, err := a.translateExpression(element)
		if err != nil {
			return nil, err
		}
		if cerr := a.schema.SetEqualToCanonicalType(translated.SourcedTypeID(), elementTypeID); cerr != nil {
			return nil, constraintError(cerr, element.GetToken())
		}
		contents = append(contents, translated)
	}
	return &typesystem.ConstrainedList{
		Type:     typesystem.SourcedType{ID: listTypeID, Source: node.Token},
		Contents: contents,
	}, nil
}

func (a *Analyzer) translateRecord(node *ast.RecordLiteral) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	recordTypeID := a.schema.MakeID()
	fieldTranslations := make(map[string]typesystem.ConstrainedExpression, len(node.Fields))
	fields := make(map[string]typesystem.TypeID, len(node.Fields))
	for _, field := range node.Fields {
		if _, exists := fields[field.Name]; exists {
			return nil, diagnostics.Errorf(diagnostics.ErrT004, field.Token,
				"DuplicateFieldNamesInRecord: %s", field.Name)
		}
		fieldTypeID := a.schema.MakeID()
		fields[field.Name] = fieldTypeID
		translated, err := a.translateExpression(field.Value)
		if err != nil {
			return nil, err
		}
		if cerr := a.schema.SetEqualToCanonicalType(translated.SourcedTypeID(), fieldTypeID); cerr != nil {
			return nil, constraintError(cerr, field.Token)
		}
		fieldTranslations[field.Name] = translated
	}
	if err := a.schema.AddConstraint(recordTypeID, typesystem.HasExactFields{Fields: fields}); err != nil {
		return nil, constraintError(err, node.Token)
	}
	return &typesystem.ConstrainedRecord{
		Type:   typesystem.SourcedType{ID: recordTypeID, Source: node.Token},
		Fields: fieldTranslations,
	}, nil
}

func (a *Analyzer) translateRecordAssignment(node *ast.RecordAssignment) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	assignmentTypeID := a.schema.MakeID()
	identifier, err := a.translateIdentifier(node.Identifier)
	if err != nil {
		return nil, err
	}
	fieldTranslations := make(map[string]typesystem.ConstrainedExpression, len(node.Fields))
	for _, field := range node.Fields {
		if _, exists := fieldTranslations[field.Name]; exists {
			return nil, diagnostics.Errorf(diagnostics.ErrT004, field.Token,
				"DuplicateFieldNamesInRecord: %s", field.Name)
		}
		fieldTypeID := a.schema.MakeID()
		translated, terr := a.translateExpression(field.Value)
		if terr != nil {
			return nil, terr
		}
		if cerr := a.schema.SetEqualToCanonicalType(translated.SourcedTypeID(), fieldTypeID); cerr != nil {
			return nil, constraintError(cerr, field.Token)
		}
		fieldTranslations[field.Name] = translated
		// The original record must already contain every assigned field.
		if cerr := a.schema.AddConstraint(assignmentTypeID, typesystem.HasField{
			FieldName: field.Name,
			FieldType: fieldTypeID,
		}); cerr != nil {
			return nil, constraintError(cerr, field.Token)
		}
	}
	if cerr := a.schema.SetEqualToCanonicalType(identifier.Type.ID, assignmentTypeID); cerr != nil {
		return nil, constraintError(cerr, node.Token)
	}
	return &typesystem.ConstrainedRecordAssignment{
		Type:       typesystem.SourcedType{ID: assignmentTypeID, Source: node.Token},
		Identifier: identifier,
		Contents: &typesystem.ConstrainedRecord{
			Type:   typesystem.SourcedType{ID: assignmentTypeID, Source: node.Token},
			Fields: fieldTranslations,
		},
	}, nil
}
