package typesystem

import (
	"github.com/brio-lang/brio/internal/typedast"
)

// TypeSchema owns the union-find of type ids, the per-class parsed
// constraints, and the lexical scope of the current translation. Parsed
// constraints are keyed by canonical id only.
type TypeSchema struct {
	Types       CanonicalIds
	constraints map[TypeID]*ParsedConstraint
	Scope       *Scope

	// ids allocated at construction: the builtin Int and Str bindings and
	// the shared () => Int signature backing every length method
	intID             TypeID
	strID             TypeID
	lengthSignatureID TypeID
}

// New returns a schema pre-populated with the builtin type bindings. Three
// ids exist from the start: Int, the shared length signature, and Str.
func New() *TypeSchema {
	schema := &TypeSchema{
		constraints: make(map[TypeID]*ParsedConstraint),
		Scope:       NewScope(),
	}
	schema.intID = schema.MakeID()
	_ = schema.AddConstraint(schema.intID, EqualToPrimitive{Primitive: typedast.Int})
	schema.lengthSignatureID = schema.MakeID()
	_ = schema.AddConstraint(schema.lengthSignatureID, HasFunctionShape{ReturnType: schema.intID})
	schema.strID = schema.MakeID()
	_ = schema.AddConstraint(schema.strID, EqualToPrimitive{Primitive: typedast.Str})
	_ = schema.Scope.DeclareIdentifier("Int", schema.intID)
	_ = schema.Scope.DeclareIdentifier("Str", schema.strID)
	return schema
}

// MakeID allocates a fresh type id.
func (s *TypeSchema) MakeID() TypeID {
	return s.Types.MakeID()
}

// GetCanonicalID resolves id to its class representative.
func (s *TypeSchema) GetCanonicalID(typeID TypeID) TypeID {
	return s.Types.GetCanonicalID(typeID)
}

// CountIDs returns the total number of allocated ids. Diagnostic only.
func (s *TypeSchema) CountIDs() int {
	return s.Types.CountIDs()
}

// CountCanonicalIDs returns the number of equivalence classes. Diagnostic
// only.
func (s *TypeSchema) CountCanonicalIDs() int {
	return s.Types.CountCanonicalIDs()
}

// stringDefaultMethods is the builtin method table every string class
// carries. The signature ids are shared across all strings.
func (s *TypeSchema) stringDefaultMethods() map[string]TypeID {
	return map[string]TypeID{"length": s.lengthSignatureID}
}

// listDefaultMethods is the builtin method table for a list class. push
// references the list's own ids, so its signature is allocated per class.
func (s *TypeSchema) listDefaultMethods(listID, elementID TypeID) map[string]TypeID {
	pushID := s.MakeID()
	_ = s.AddConstraint(pushID, HasFunctionShape{
		ArgumentTypes: []TypeID{elementID},
		ReturnType:    listID,
	})
	return map[string]TypeID{
		"length": s.lengthSignatureID,
		"push":   pushID,
	}
}

// AddConstraint folds a new constraint into the class of typeID, failing when
// it contradicts what the class already carries.
func (s *TypeSchema) AddConstraint(typeID TypeID, constraint Constraint) error {
	canonicalID := s.GetCanonicalID(typeID)
	incoming := newParsedConstraint(canonicalID, constraint, s)
	existing, ok := s.constraints[canonicalID]
	if !ok {
		s.constraints[canonicalID] = incoming
		return nil
	}
	if !existing.IsCompatibleWith(incoming, s, NewCheckedTypes()) {
		return ErrConstraintsNotCompatible
	}
	return s.mergeParsedConstraints(existing, incoming)
}

// mergeParsedConstraints merges src into dst slot by slot. Colliding method
// names union their signature classes, as do record fields both sides name;
// an Unknown category adopts the incoming one, anything else refines in place.
func (s *TypeSchema) mergeParsedConstraints(dst, src *ParsedConstraint) error {
	dst.name.update(src.name)
	for name, incomingID := range src.methods {
		if existingID, ok := dst.methods[name]; ok {
			if s.GetCanonicalID(existingID) != s.GetCanonicalID(incomingID) {
				if err := s.SetEqualToCanonicalType(existingID, incomingID); err != nil {
					return err
				}
			}
		}
		dst.methods.add(name, incomingID, &s.Types)
	}
	if dst.category.kind == categoryRecord && src.category.kind == categoryRecord {
		for name, incomingID := range src.category.fields {
			if existingID, ok := dst.category.fields[name]; ok && s.GetCanonicalID(existingID) != s.GetCanonicalID(incomingID) {
				if err := s.SetEqualToCanonicalType(existingID, incomingID); err != nil {
					return err
				}
			}
		}
	}
	if dst.category.kind == categoryUnknown {
		dst.category = src.category
	} else {
		dst.category.update(&src.category, &s.Types)
	}
	return nil
}

// SetEqualToCanonicalType unions the classes of a and b after checking they
// are compatible. The losing representative's parsed constraint is
// re-assimilated into the winner's.
func (s *TypeSchema) SetEqualToCanonicalType(a, b TypeID) error {
	if !s.typesAreCompatible(a, b, NewCheckedTypes()) {
		return ErrTypesNotCompatible
	}
	canonicalA := s.GetCanonicalID(a)
	canonicalB := s.GetCanonicalID(b)
	if canonicalA == canonicalB {
		return nil
	}
	loser := s.constraints[canonicalB]
	delete(s.constraints, canonicalB)
	s.Types.SetTypesEqual(a, b)
	if loser == nil {
		return nil
	}
	if winner, ok := s.constraints[canonicalA]; ok {
		return s.mergeParsedConstraints(winner, loser)
	}
	s.constraints[canonicalA] = loser
	return nil
}

// TypesAreCompatible reports whether the classes of a and b could be unified.
func (s *TypeSchema) TypesAreCompatible(a, b TypeID) bool {
	return s.typesAreCompatible(a, b, NewCheckedTypes())
}

func (s *TypeSchema) typesAreCompatible(a, b TypeID, checked *CheckedTypes) bool {
	canonicalA := s.GetCanonicalID(a)
	canonicalB := s.GetCanonicalID(b)
	if canonicalA == canonicalB {
		return true
	}
	// Re-entering a pair mid-check means the types are structurally
	// infinite; treat the cycle as compatible.
	if checked.Contains(canonicalA, canonicalB) {
		return true
	}
	checked.Add(canonicalA, canonicalB)
	constraintA, okA := s.constraints[canonicalA]
	constraintB, okB := s.constraints[canonicalB]
	if !okA || !okB {
		return true
	}
	return constraintA.IsCompatibleWith(constraintB, s, checked)
}

// GetFunctionArgumentTypes reads the function slot of the class of typeID.
func (s *TypeSchema) GetFunctionArgumentTypes(typeID TypeID) ([]TypeID, bool) {
	parsed, ok := s.constraints[s.GetCanonicalID(typeID)]
	if !ok {
		return nil, false
	}
	return parsed.getFunctionArgumentTypes()
}

// GetFunctionResultType reads the recorded return id of the class of typeID.
func (s *TypeSchema) GetFunctionResultType(typeID TypeID) (TypeID, bool) {
	parsed, ok := s.constraints[s.GetCanonicalID(typeID)]
	if !ok {
		return 0, false
	}
	return parsed.getFunctionReturnType()
}

// SetEqualToFunctionResult unions resultID with the return id recorded in the
// function slot of functionID.
func (s *TypeSchema) SetEqualToFunctionResult(resultID, functionID TypeID) error {
	returnType, ok := s.GetFunctionResultType(functionID)
	if !ok {
		return ErrNotAFunction
	}
	return s.SetEqualToCanonicalType(resultID, returnType)
}

// DeclareMethodOnType records that the class of typeID offers methodName with
// the given signature. When the class already knows a compatible method of
// that name, the two signatures are unified instead.
func (s *TypeSchema) DeclareMethodOnType(typeID TypeID, methodName string, signatureID TypeID) error {
	if parsed, ok := s.constraints[s.GetCanonicalID(typeID)]; ok {
		existingID, found, err := parsed.methods.getSameMethodType(s, methodName, signatureID, NewCheckedTypes())
		if err != nil {
			return err
		}
		if found {
			return s.SetEqualToCanonicalType(existingID, signatureID)
		}
	}
	return s.AddConstraint(typeID, HasMethod{MethodName: methodName, MethodType: signatureID})
}

// GetConcreteTypeFromID projects the class of typeID to a concrete type. A
// class with no parsed constraint resolves to CompilerBoolean, the
// placeholder for classes nothing ever constrained.
func (s *TypeSchema) GetConcreteTypeFromID(typeID TypeID) typedast.ConcreteType {
	return s.getConcreteType(typeID, make(map[TypeID]bool))
}

func (s *TypeSchema) getConcreteType(typeID TypeID, seen map[TypeID]bool) typedast.ConcreteType {
	canonicalID := s.GetCanonicalID(typeID)
	if seen[canonicalID] {
		return typedast.Primitive{Type: typedast.CompilerBoolean}
	}
	parsed, ok := s.constraints[canonicalID]
	if !ok {
		return typedast.Primitive{Type: typedast.CompilerBoolean}
	}
	seen[canonicalID] = true
	concrete := parsed.toConcreteType(s, seen)
	delete(seen, canonicalID)
	return concrete
}
