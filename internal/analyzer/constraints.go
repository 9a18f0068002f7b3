package analyzer

import (
	"github.com/brio-lang/brio/internal/typedast"
	"github.com/brio-lang/brio/internal/typesystem"
)

// Constraint shorthands for the shapes the translator emits repeatedly.

func constrainEqualToNum() typesystem.Constraint {
	return typesystem.EqualToPrimitive{Primitive: typedast.Int}
}

func constrainEqualToStr() typesystem.Constraint {
	return typesystem.EqualToPrimitive{Primitive: typedast.Str}
}

func constrainAtLeastTrue() typesystem.Constraint {
	return typesystem.HasTag{TagName: "true"}
}

func constrainAtLeastFalse() typesystem.Constraint {
	return typesystem.HasTag{TagName: "false"}
}

func constrainAtMostBooleanTag() typesystem.Constraint {
	return typesystem.TagAtMost{Tags: map[string][]typesystem.TypeID{
		"true":  {},
		"false": {},
	}}
}

// constrainAtMostNoneTag is the type of declaration expressions: they produce
// no value.
func constrainAtMostNoneTag() typesystem.Constraint {
	return typesystem.TagAtMost{Tags: map[string][]typesystem.TypeID{
		"none": {},
	}}
}
