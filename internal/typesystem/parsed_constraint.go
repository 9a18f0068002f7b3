package typesystem

import (
	"github.com/brio-lang/brio/internal/typedast"
)

type categoryKind int

const (
	categoryUnknown categoryKind = iota
	categoryPrimitive
	categoryList
	categoryTagGroup
	categoryEnum
	categoryRecord
	categoryFunction
)

// categoryConstraints is the data-shape slot of a parsed constraint: at most
// one category is known per equivalence class, and a category may only be
// refined, never switched.
type categoryConstraints struct {
	kind categoryKind

	primitive typedast.PrimitiveType

	listElement TypeID

	// tag unions; closed means the map is the exact set of admissible tags
	tags       map[string][]TypeID
	tagsClosed bool

	// enums; exact means the map is the full variant set
	variants      map[string][]TypeID
	variantsExact bool

	// records; exact means the map is the exact field domain
	fields      map[string]TypeID
	fieldsExact bool

	functionArguments []TypeID
	functionReturn    TypeID
}

func contentsAreCompatible(schema *TypeSchema, a, b []TypeID, checked *CheckedTypes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !schema.typesAreCompatible(a[i], b[i], checked) {
			return false
		}
	}
	return true
}

// tagMapsCompatible checks every tag of sub against super: each must exist in
// super with pairwise-compatible contents. When lenient is true, tags of sub
// missing from super are permitted (open-vs-open comparison).
func tagMapsCompatible(schema *TypeSchema, sub, super map[string][]TypeID, lenient bool, checked *CheckedTypes) bool {
	for name, contents := range sub {
		superContents, ok := super[name]
		if !ok {
			if lenient {
				continue
			}
			return false
		}
		if !contentsAreCompatible(schema, contents, superContents, checked) {
			return false
		}
	}
	return true
}

func fieldMapsCompatible(schema *TypeSchema, sub, super map[string]TypeID, lenient bool, checked *CheckedTypes) bool {
	for name, fieldType := range sub {
		superType, ok := super[name]
		if !ok {
			if lenient {
				continue
			}
			return false
		}
		if !schema.typesAreCompatible(fieldType, superType, checked) {
			return false
		}
	}
	return true
}

func (c *categoryConstraints) isCompatibleWith(other *categoryConstraints, schema *TypeSchema, checked *CheckedTypes) bool {
	if c.kind == categoryUnknown || other.kind == categoryUnknown {
		return true
	}
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case categoryPrimitive:
		return c.primitive == other.primitive
	case categoryList:
		return schema.typesAreCompatible(c.listElement, other.listElement, checked)
	case categoryFunction:
		return contentsAreCompatible(schema, c.functionArguments, other.functionArguments, checked) &&
			schema.typesAreCompatible(c.functionReturn, other.functionReturn, checked)
	case categoryTagGroup:
		switch {
		case c.tagsClosed && other.tagsClosed:
			// Closed-versus-closed is directional: every tag the other side
			// admits must be admissible here. A closed subset widens safely.
			return tagMapsCompatible(schema, other.tags, c.tags, false, checked)
		case !c.tagsClosed && other.tagsClosed:
			return tagMapsCompatible(schema, c.tags, other.tags, false, checked)
		case c.tagsClosed && !other.tagsClosed:
			return tagMapsCompatible(schema, other.tags, c.tags, false, checked)
		default:
			return tagMapsCompatible(schema, other.tags, c.tags, true, checked)
		}
	case categoryEnum:
		switch {
		case c.variantsExact && other.variantsExact:
			return tagMapsCompatible(schema, other.variants, c.variants, false, checked)
		case !c.variantsExact && other.variantsExact:
			return tagMapsCompatible(schema, c.variants, other.variants, false, checked)
		case c.variantsExact && !other.variantsExact:
			return tagMapsCompatible(schema, other.variants, c.variants, false, checked)
		default:
			return tagMapsCompatible(schema, other.variants, c.variants, true, checked)
		}
	case categoryRecord:
		switch {
		case c.fieldsExact && other.fieldsExact:
			return len(c.fields) == len(other.fields) &&
				fieldMapsCompatible(schema, other.fields, c.fields, false, checked)
		case !c.fieldsExact && other.fieldsExact:
			return fieldMapsCompatible(schema, c.fields, other.fields, false, checked)
		case c.fieldsExact && !other.fieldsExact:
			return fieldMapsCompatible(schema, other.fields, c.fields, false, checked)
		default:
			return fieldMapsCompatible(schema, other.fields, c.fields, true, checked)
		}
	}
	return false
}

func canonicalizeContents(ids *CanonicalIds, contents []TypeID) []TypeID {
	out := make([]TypeID, len(contents))
	for i, id := range contents {
		out[i] = ids.GetCanonicalID(id)
	}
	return out
}

// update merges a compatible incoming category into the receiver. Closed tag
// sets shrink to their intersection, open sets grow by union, and a closed
// form arriving on an open class switches the class to closed (the more
// restrictive form wins). Primitives, lists, and functions were already
// validated equal by the compatibility check, so they need no merging.
func (c *categoryConstraints) update(other *categoryConstraints, ids *CanonicalIds) {
	switch {
	case c.kind == categoryTagGroup && other.kind == categoryTagGroup:
		switch {
		case c.tagsClosed && other.tagsClosed:
			for name := range c.tags {
				if _, ok := other.tags[name]; !ok {
					delete(c.tags, name)
				}
			}
		case !c.tagsClosed && other.tagsClosed:
			closed := make(map[string][]TypeID, len(other.tags))
			for name, contents := range other.tags {
				closed[name] = canonicalizeContents(ids, contents)
			}
			c.tags = closed
			c.tagsClosed = true
		case !c.tagsClosed && !other.tagsClosed:
			for name, contents := range other.tags {
				c.tags[name] = canonicalizeContents(ids, contents)
			}
		}
	case c.kind == categoryEnum && other.kind == categoryEnum:
		switch {
		case c.variantsExact && other.variantsExact:
			for name := range c.variants {
				if _, ok := other.variants[name]; !ok {
					delete(c.variants, name)
				}
			}
		case !c.variantsExact && other.variantsExact:
			exact := make(map[string][]TypeID, len(other.variants))
			for name, payload := range other.variants {
				exact[name] = canonicalizeContents(ids, payload)
			}
			c.variants = exact
			c.variantsExact = true
		case !c.variantsExact && !other.variantsExact:
			for name, payload := range other.variants {
				c.variants[name] = canonicalizeContents(ids, payload)
			}
		}
	case c.kind == categoryRecord && other.kind == categoryRecord:
		switch {
		case c.fieldsExact && other.fieldsExact:
			for name := range c.fields {
				if _, ok := other.fields[name]; !ok {
					delete(c.fields, name)
				}
			}
		case !c.fieldsExact && other.fieldsExact:
			exact := make(map[string]TypeID, len(other.fields))
			for name, fieldType := range other.fields {
				exact[name] = ids.GetCanonicalID(fieldType)
			}
			c.fields = exact
			c.fieldsExact = true
		case !c.fieldsExact && !other.fieldsExact:
			for name, fieldType := range other.fields {
				c.fields[name] = ids.GetCanonicalID(fieldType)
			}
		}
	}
}

func (c *categoryConstraints) getFunctionReturnType() (TypeID, bool) {
	if c.kind != categoryFunction {
		return 0, false
	}
	return c.functionReturn, true
}

func (c *categoryConstraints) getFunctionArgumentTypes() ([]TypeID, bool) {
	if c.kind != categoryFunction {
		return nil, false
	}
	return append([]TypeID(nil), c.functionArguments...), true
}

// parsedNameConstraint is the optional nominal name of a class.
type parsedNameConstraint struct {
	name    string
	hasName bool
}

func (n *parsedNameConstraint) set(name string) {
	n.name = name
	n.hasName = true
}

func (n *parsedNameConstraint) update(other parsedNameConstraint) {
	if other.hasName {
		*n = other
	}
}

func (n *parsedNameConstraint) isCompatibleWith(other *parsedNameConstraint) bool {
	if n.hasName && other.hasName {
		return n.name == other.name
	}
	return true
}

// parsedMethodsConstraint maps method names to signature ids, canonicalised
// on insertion.
type parsedMethodsConstraint map[string]TypeID

func (m parsedMethodsConstraint) add(name string, typeID TypeID, ids *CanonicalIds) {
	m[name] = ids.GetCanonicalID(typeID)
}

func (m parsedMethodsConstraint) isCompatibleWith(other parsedMethodsConstraint, schema *TypeSchema, checked *CheckedTypes) bool {
	for name, otherType := range other {
		selfType, ok := m[name]
		if !ok {
			continue
		}
		if !schema.typesAreCompatible(selfType, otherType, checked) {
			return false
		}
	}
	return true
}

// getSameMethodType returns the existing signature id for methodName when it
// is compatible with methodType, an error when incompatible, and absence
// otherwise.
func (m parsedMethodsConstraint) getSameMethodType(schema *TypeSchema, methodName string, methodType TypeID, checked *CheckedTypes) (TypeID, bool, error) {
	selfType, ok := m[methodName]
	if !ok {
		return 0, false, nil
	}
	if schema.typesAreCompatible(selfType, methodType, checked) {
		return selfType, true, nil
	}
	return 0, false, errIncompatibleMethod(methodName)
}

// ParsedConstraint is the per-class aggregate of every constraint merged so
// far: one category, an optional nominal name, and the known methods.
type ParsedConstraint struct {
	category categoryConstraints
	name     parsedNameConstraint
	methods  parsedMethodsConstraint
}

// newParsedConstraint wraps a single constraint. The schema is needed so
// primitives and lists can seed their builtin method tables.
func newParsedConstraint(typeID TypeID, constraint Constraint, schema *TypeSchema) *ParsedConstraint {
	parsed := &ParsedConstraint{methods: make(parsedMethodsConstraint)}
	switch c := constraint.(type) {
	case EqualToPrimitive:
		if c.Primitive == typedast.Str {
			for name, methodType := range schema.stringDefaultMethods() {
				parsed.methods.add(name, methodType, &schema.Types)
			}
		}
		parsed.category = categoryConstraints{kind: categoryPrimitive, primitive: c.Primitive}
	case ListOfType:
		for name, methodType := range schema.listDefaultMethods(typeID, c.ElementType) {
			parsed.methods.add(name, methodType, &schema.Types)
		}
		parsed.category = categoryConstraints{kind: categoryList, listElement: c.ElementType}
	case HasTag:
		parsed.category = categoryConstraints{
			kind: categoryTagGroup,
			tags: map[string][]TypeID{c.TagName: c.TagContentTypes},
		}
	case TagAtMost:
		tags := make(map[string][]TypeID, len(c.Tags))
		for name, contents := range c.Tags {
			tags[name] = contents
		}
		parsed.category = categoryConstraints{kind: categoryTagGroup, tags: tags, tagsClosed: true}
	case HasVariant:
		parsed.category = categoryConstraints{
			kind:     categoryEnum,
			variants: map[string][]TypeID{c.VariantName: c.Payload},
		}
	case EnumExact:
		variants := make(map[string][]TypeID, len(c.Variants))
		for name, payload := range c.Variants {
			variants[name] = payload
		}
		parsed.category = categoryConstraints{kind: categoryEnum, variants: variants, variantsExact: true}
	case HasField:
		parsed.category = categoryConstraints{
			kind:   categoryRecord,
			fields: map[string]TypeID{c.FieldName: c.FieldType},
		}
	case HasExactFields:
		fields := make(map[string]TypeID, len(c.Fields))
		for name, fieldType := range c.Fields {
			fields[name] = fieldType
		}
		parsed.category = categoryConstraints{kind: categoryRecord, fields: fields, fieldsExact: true}
	case HasFunctionShape:
		parsed.category = categoryConstraints{
			kind:              categoryFunction,
			functionArguments: append([]TypeID(nil), c.ArgumentTypes...),
			functionReturn:    c.ReturnType,
		}
	case HasMethod:
		parsed.methods.add(c.MethodName, c.MethodType, &schema.Types)
	case HasName:
		parsed.name.set(c.Name)
	}
	return parsed
}

// IsCompatibleWith reports whether other could be merged into the receiver
// without contradiction.
func (p *ParsedConstraint) IsCompatibleWith(other *ParsedConstraint, schema *TypeSchema, checked *CheckedTypes) bool {
	return p.name.isCompatibleWith(&other.name) &&
		p.methods.isCompatibleWith(other.methods, schema, checked) &&
		p.category.isCompatibleWith(&other.category, schema, checked)
}

func (p *ParsedConstraint) getFunctionReturnType() (TypeID, bool) {
	return p.category.getFunctionReturnType()
}

func (p *ParsedConstraint) getFunctionArgumentTypes() ([]TypeID, bool) {
	return p.category.getFunctionArgumentTypes()
}

// toConcreteType projects the parsed constraint into a concrete type tree.
// seen holds the canonical ids currently being concretised; re-entering one
// breaks the cycle with the compiler's bottom type.
func (p *ParsedConstraint) toConcreteType(schema *TypeSchema, seen map[TypeID]bool) typedast.ConcreteType {
	switch p.category.kind {
	case categoryUnknown:
		return typedast.Primitive{Type: typedast.CompilerBoolean}
	case categoryPrimitive:
		return typedast.Primitive{Type: p.category.primitive}
	case categoryList:
		return &typedast.List{Element: schema.getConcreteType(p.category.listElement, seen)}
	case categoryFunction:
		arguments := make([]typedast.ConcreteType, len(p.category.functionArguments))
		for i, argumentType := range p.category.functionArguments {
			arguments[i] = schema.getConcreteType(argumentType, seen)
		}
		return &typedast.Function{
			Arguments: arguments,
			Return:    schema.getConcreteType(p.category.functionReturn, seen),
		}
	case categoryRecord:
		fields := make(map[string]typedast.ConcreteType, len(p.category.fields))
		for name, fieldType := range p.category.fields {
			fields[name] = schema.getConcreteType(fieldType, seen)
		}
		return &typedast.Record{Fields: fields}
	case categoryTagGroup:
		if isBooleanTagMap(p.category.tags) {
			return typedast.Primitive{Type: typedast.CompilerBoolean}
		}
		tags := make(map[string][]typedast.ConcreteType, len(p.category.tags))
		for name, contents := range p.category.tags {
			tags[name] = concretiseContents(schema, contents, seen)
		}
		return &typedast.TagUnion{Tags: tags}
	case categoryEnum:
		variants := make(map[string][]typedast.ConcreteType, len(p.category.variants))
		for name, payload := range p.category.variants {
			variants[name] = concretiseContents(schema, payload, seen)
		}
		return &typedast.Enum{Name: p.name.name, Variants: variants}
	}
	return typedast.Primitive{Type: typedast.CompilerBoolean}
}

func concretiseContents(schema *TypeSchema, contents []TypeID, seen map[TypeID]bool) []typedast.ConcreteType {
	out := make([]typedast.ConcreteType, len(contents))
	for i, id := range contents {
		out[i] = schema.getConcreteType(id, seen)
	}
	return out
}

// isBooleanTagMap reports whether tags is {true: [], false: []} or a
// non-empty subset thereof; such unions resolve to CompilerBoolean.
func isBooleanTagMap(tags map[string][]TypeID) bool {
	if len(tags) == 0 || len(tags) > 2 {
		return false
	}
	for name, contents := range tags {
		if name != "true" && name != "false" {
			return false
		}
		if len(contents) != 0 {
			return false
		}
	}
	return true
}
