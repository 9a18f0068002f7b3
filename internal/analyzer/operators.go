package analyzer

import (
	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/typesystem"
)

type binaryOperatorIDCollection struct {
	typeID       typesystem.TypeID
	leftChildID  typesystem.TypeID
	rightChildID typesystem.TypeID
}

func (a *Analyzer) translateBinaryOperator(node *ast.BinaryOperator) (typesystem.ConstrainedExpression, *diagnostics.DiagnosticError) {
	typeID := a.schema.MakeID()
	left, err := a.translateExpression(node.Left)
	if err != nil {
		return nil, err
	}

	// Field and method lookup take their right child as a bare name: the
	// identifier is not looked up in scope and gets a fresh id instead.
	lookupSymbol := node.Symbol == ast.FieldLookup || node.Symbol == ast.MethodLookup
	var right typesystem.ConstrainedExpression
	switch rightNode := node.Right.(type) {
	case *ast.FunctionApplicationArguments:
		arguments := make([]typesystem.ConstrainedExpression, 0, len(rightNode.Arguments))
		for _, argument := range rightNode.Arguments {
			translated, aerr := a.translateExpression(argument)
			if aerr != nil {
				return nil, aerr
			}
			arguments = append(arguments, translated)
		}
		right = &typesystem.ConstrainedFunctionArguments{Arguments: arguments}
	case *ast.Identifier:
		if lookupSymbol {
			right = &typesystem.ConstrainedIdentifier{
				Type:          typesystem.SourcedType{ID: a.schema.MakeID(), Source: rightNode.Token},
				Name:          rightNode.Name,
				IsDisregarded: rightNode.IsDisregarded,
			}
			break
		}
		right, err = a.translateExpression(node.Right)
		if err != nil {
			return nil, err
		}
	default:
		right, err = a.translateExpression(node.Right)
		if err != nil {
			return nil, err
		}
	}

	ids := binaryOperatorIDCollection{
		typeID:      typeID,
		leftChildID: left.SourcedTypeID(),
	}
	if _, isArguments := right.(*typesystem.ConstrainedFunctionArguments); !isArguments {
		ids.rightChildID = right.SourcedTypeID()
	}

	switch node.Symbol {
	case ast.Add, ast.Subtract, ast.Multiply, ast.Divide, ast.Modulus, ast.Power:
		err = a.addArithmeticConstraints(node, &ids)
	case ast.Concatenate:
		err = a.addConcatenateConstraints(node, &ids)
	case ast.And, ast.Or:
		err = a.addLogicConstraints(node, &ids)
	case ast.EqualTo, ast.NotEqualTo:
		err = a.addEqualityConstraints(node, &ids)
	case ast.LessThan, ast.LessThanOrEqualTo, ast.GreaterThan, ast.GreaterThanOrEqualTo:
		err = a.addComparisonConstraints(node, &ids)
	case ast.FunctionApplication:
		err = a.addFunctionApplicationConstraints(node, &ids, right)
	case ast.MethodLookup:
		err = a.addMethodLookupConstraints(node, &ids, right)
	case ast.FieldLookup:
		err = a.addFieldLookupConstraints(node, &ids, right)
	}
	if err != nil {
		return nil, err
	}

	return &typesystem.ConstrainedBinaryOperator{
		Type:   typesystem.SourcedType{ID: typeID, Source: node.Token},
		Symbol: node.Symbol,
		Left:   left,
		Right:  right,
	}, nil
}

func (a *Analyzer) addArithmeticConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection) *diagnostics.DiagnosticError {
	for _, id := range []typesystem.TypeID{ids.typeID, ids.leftChildID, ids.rightChildID} {
		if err := a.schema.AddConstraint(id, constrainEqualToNum()); err != nil {
			return constraintError(err, node.Token)
		}
	}
	return nil
}

func (a *Analyzer) addConcatenateConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection) *diagnostics.DiagnosticError {
	for _, id := range []typesystem.TypeID{ids.typeID, ids.leftChildID, ids.rightChildID} {
		if err := a.schema.AddConstraint(id, constrainEqualToStr()); err != nil {
			return constraintError(err, node.Token)
		}
	}
	return nil
}

func (a *Analyzer) addLogicConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection) *diagnostics.DiagnosticError {
	for _, id := range []typesystem.TypeID{ids.typeID, ids.leftChildID, ids.rightChildID} {
		if err := a.schema.AddConstraint(id, constrainAtMostBooleanTag()); err != nil {
			return constraintError(err, node.Token)
		}
	}
	return nil
}

func (a *Analyzer) addEqualityConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection) *diagnostics.DiagnosticError {
	if err := a.schema.AddConstraint(ids.typeID, constrainAtMostBooleanTag()); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.SetEqualToCanonicalType(ids.leftChildID, ids.rightChildID); err != nil {
		return constraintError(err, node.Token)
	}
	return nil
}

func (a *Analyzer) addComparisonConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection) *diagnostics.DiagnosticError {
	if err := a.schema.AddConstraint(ids.typeID, constrainAtLeastTrue()); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.AddConstraint(ids.typeID, constrainAtLeastFalse()); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.AddConstraint(ids.leftChildID, constrainEqualToNum()); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.AddConstraint(ids.rightChildID, constrainEqualToNum()); err != nil {
		return constraintError(err, node.Token)
	}
	return nil
}

func (a *Analyzer) addFunctionApplicationConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection, right typesystem.ConstrainedExpression) *diagnostics.DiagnosticError {
	arguments, ok := right.(*typesystem.ConstrainedFunctionArguments)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrT004, node.Token,
			"FunctionApplicationDoesNotUseFunctionArguments")
	}
	argumentTypes := make([]typesystem.TypeID, 0, len(arguments.Arguments))
	for _, argument := range arguments.Arguments {
		argumentTypes = append(argumentTypes, argument.SourcedTypeID())
	}
	if err := a.schema.AddConstraint(ids.leftChildID, typesystem.HasFunctionShape{
		ArgumentTypes: argumentTypes,
		ReturnType:    ids.typeID,
	}); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.SetEqualToFunctionResult(ids.typeID, ids.leftChildID); err != nil {
		return constraintError(err, node.Token)
	}
	return nil
}

func (a *Analyzer) addMethodLookupConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection, right typesystem.ConstrainedExpression) *diagnostics.DiagnosticError {
	identifier, ok := right.(*typesystem.ConstrainedIdentifier)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrT004, node.Token, "MethodLookupDoesNotUseIdentifier")
	}
	if err := a.schema.DeclareMethodOnType(ids.leftChildID, identifier.Name, ids.rightChildID); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.SetEqualToCanonicalType(ids.rightChildID, ids.typeID); err != nil {
		return constraintError(err, node.Token)
	}
	return nil
}

func (a *Analyzer) addFieldLookupConstraints(node *ast.BinaryOperator, ids *binaryOperatorIDCollection, right typesystem.ConstrainedExpression) *diagnostics.DiagnosticError {
	identifier, ok := right.(*typesystem.ConstrainedIdentifier)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrT004, node.Token, "FieldLookupDoesNotUseIdentifier")
	}
	if err := a.schema.SetEqualToCanonicalType(ids.rightChildID, ids.typeID); err != nil {
		return constraintError(err, node.Token)
	}
	if err := a.schema.AddConstraint(ids.leftChildID, typesystem.HasField{
		FieldName: identifier.Name,
		FieldType: ids.rightChildID,
	}); err != nil {
		return constraintError(err, node.Token)
	}
	return nil
}
