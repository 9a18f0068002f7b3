package typesystem

import (
	"github.com/brio-lang/brio/internal/typedast"
)

// Constraint is a single structural assertion about one type variable. The
// set of variants is closed; the schema folds constraints into per-class
// parsed constraints as they arrive.
type Constraint interface {
	constraintNode()
}

// EqualToPrimitive asserts the type is exactly the given primitive.
type EqualToPrimitive struct {
	Primitive typedast.PrimitiveType
}

// ListOfType asserts the type is a list whose element has the given id.
type ListOfType struct {
	ElementType TypeID
}

// HasTag asserts the tag union admits at least this tag.
type HasTag struct {
	TagName         string
	TagContentTypes []TypeID
}

// TagAtMost asserts the tag union admits no tags outside the given map.
type TagAtMost struct {
	Tags map[string][]TypeID
}

// HasField asserts the record carries at least this field.
type HasField struct {
	FieldName string
	FieldType TypeID
}

// HasExactFields asserts the record carries exactly these fields.
type HasExactFields struct {
	Fields map[string]TypeID
}

// HasVariant asserts the enum admits at least this variant.
type HasVariant struct {
	VariantName string
	Payload     []TypeID
}

// EnumExact asserts the enum admits exactly these variants.
type EnumExact struct {
	Variants map[string][]TypeID
}

// HasFunctionShape asserts the type is a function of this arity with the
// given argument and return ids.
type HasFunctionShape struct {
	ArgumentTypes []TypeID
	ReturnType    TypeID
}

// HasMethod asserts the type offers a method callable with the given
// signature id.
type HasMethod struct {
	MethodName string
	MethodType TypeID
}

// HasName is a nominal-name assertion attached by enum type declarations.
type HasName struct {
	Name string
}

func (EqualToPrimitive) constraintNode() {}
func (ListOfType) constraintNode()       {}
func (HasTag) constraintNode()           {}
func (TagAtMost) constraintNode()        {}
func (HasField) constraintNode()         {}
func (HasExactFields) constraintNode()   {}
func (HasVariant) constraintNode()       {}
func (EnumExact) constraintNode()        {}
func (HasFunctionShape) constraintNode() {}
func (HasMethod) constraintNode()        {}
func (HasName) constraintNode()          {}
