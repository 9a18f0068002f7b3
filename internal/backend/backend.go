// Package backend lowers a typed document to a JavaScript module. Numbers,
// comparisons, and collection methods dispatch through the runtime's value
// methods; logic and concatenation map to native operators.
package backend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/typedast"
)

var operatorMethods = map[ast.BinaryOperatorSymbol]string{
	ast.Add:                  "add",
	ast.Subtract:             "subtract",
	ast.Multiply:             "multiply",
	ast.Divide:               "divide",
	ast.Modulus:              "modulo",
	ast.Power:                "power",
	ast.EqualTo:              "equals",
	ast.NotEqualTo:           "notEquals",
	ast.LessThan:             "lessThan",
	ast.LessThanOrEqualTo:    "lessThanOrEquals",
	ast.GreaterThan:          "greaterThan",
	ast.GreaterThanOrEqualTo: "greaterThanOrEquals",
}

// EmitDocument prints the typed document as a JavaScript module: one const
// per declaration, exported when the declaration is.
func EmitDocument(document *typedast.Document) string {
	var b strings.Builder
	for _, declaration := range document.Declarations {
		if declaration.IsExported {
			b.WriteString("export ")
		}
		fmt.Fprintf(&b, "const %s = %s;\n", declaration.Identifier.Name, EmitExpression(declaration.Value))
	}
	return b.String()
}

func EmitExpression(expression typedast.Expression) string {
	switch node := expression.(type) {
	case *typedast.IntegerExpression:
		return fmt.Sprintf("%d", node.Value)
	case *typedast.StringExpression:
		return fmt.Sprintf("%q", node.Value)
	case *typedast.BooleanExpression:
		if node.Value {
			return "true"
		}
		return "false"
	case *typedast.IdentifierExpression:
		return node.Name
	case *typedast.TagExpression:
		return fmt.Sprintf("{ tag: %q, contents: [%s] }", node.Name, emitList(node.Contents))
	case *typedast.EnumExpression:
		return fmt.Sprintf("{ tag: %q, contents: [%s] }", node.Variant, emitList(node.Contents))
	case *typedast.ListExpression:
		return fmt.Sprintf("[%s]", emitList(node.Contents))
	case *typedast.RecordExpression:
		return emitRecordBody(node, "")
	case *typedast.RecordAssignmentExpression:
		return emitRecordBody(node.Contents, "..."+node.Identifier.Name+", ")
	case *typedast.BinaryOperatorExpression:
		return emitBinaryOperator(node)
	case *typedast.UnaryOperatorExpression:
		if node.Symbol == ast.Not {
			return fmt.Sprintf("(!%s)", EmitExpression(node.Child))
		}
		return fmt.Sprintf("(-%s)", EmitExpression(node.Child))
	case *typedast.IfExpression:
		return emitIf(node)
	case *typedast.BlockExpression:
		return emitBlock(node)
	case *typedast.FunctionExpression:
		return fmt.Sprintf("(%s) => %s", strings.Join(node.ArgumentNames, ", "), EmitExpression(node.Body))
	case *typedast.DeclarationExpression:
		return fmt.Sprintf("const %s = %s", node.Identifier.Name, EmitExpression(node.Value))
	case *typedast.FunctionArgumentsExpression:
		return emitList(node.Arguments)
	}
	return "undefined"
}

func emitList(expressions []typedast.Expression) string {
	parts := make([]string, 0, len(expressions))
	for _, expression := range expressions {
		parts = append(parts, EmitExpression(expression))
	}
	return strings.Join(parts, ", ")
}

func emitRecordBody(record *typedast.RecordExpression, prefix string) string {
	names := make([]string, 0, len(record.Fields))
	for name := range record.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, EmitExpression(record.Fields[name])))
	}
	return fmt.Sprintf("{ %s%s }", prefix, strings.Join(parts, ", "))
}

func emitBinaryOperator(node *typedast.BinaryOperatorExpression) string {
	left := EmitExpression(node.Left)
	switch node.Symbol {
	case ast.And:
		return fmt.Sprintf("(%s && %s)", left, EmitExpression(node.Right))
	case ast.Or:
		return fmt.Sprintf("(%s || %s)", left, EmitExpression(node.Right))
	case ast.Concatenate:
		return fmt.Sprintf("(%s + %s)", left, EmitExpression(node.Right))
	case ast.FieldLookup, ast.MethodLookup:
		return fmt.Sprintf("%s.%s", maybeParenthesize(left, node.Left), EmitExpression(node.Right))
	case ast.FunctionApplication:
		arguments, _ := node.Right.(*typedast.FunctionArgumentsExpression)
		return fmt.Sprintf("%s(%s)", maybeParenthesize(left, node.Left), emitList(arguments.Arguments))
	default:
		method := operatorMethods[node.Symbol]
		return fmt.Sprintf("%s.%s(%s)", maybeParenthesize(left, node.Left), method, EmitExpression(node.Right))
	}
}

// maybeParenthesize wraps literals that cannot take a property access
// directly (a bare integer would read as a float).
func maybeParenthesize(printed string, expression typedast.Expression) string {
	switch expression.(type) {
	case *typedast.IntegerExpression, *typedast.FunctionExpression:
		return "(" + printed + ")"
	}
	return printed
}

func emitIf(node *typedast.IfExpression) string {
	condition := EmitExpression(node.Condition)
	consequence := EmitExpression(node.Consequence)
	if node.Alternative != nil {
		return fmt.Sprintf("(%s ? %s : %s)", condition, consequence, EmitExpression(node.Alternative))
	}
	return fmt.Sprintf("(%s ? { tag: \"some\", contents: [%s] } : { tag: \"none\", contents: [] })",
		condition, consequence)
}

// emitBlock prints a block as an immediately-invoked arrow function so its
// declarations stay scoped and the final expression becomes the value.
func emitBlock(node *typedast.BlockExpression) string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	for i, content := range node.Contents {
		if i < len(node.Contents)-1 {
			fmt.Fprintf(&b, "%s;\n", EmitExpression(content))
			continue
		}
		// A block ending in a declaration has no value.
		if _, isDeclaration := content.(*typedast.DeclarationExpression); isDeclaration {
			fmt.Fprintf(&b, "%s;\nreturn { tag: \"none\", contents: [] };\n", EmitExpression(content))
		} else {
			fmt.Fprintf(&b, "return %s;\n", EmitExpression(content))
		}
	}
	b.WriteString("})()")
	return b.String()
}
