package typesystem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/brio-lang/brio/internal/typedast"
)

func booleanTagMap() map[string][]TypeID {
	return map[string][]TypeID{"true": nil, "false": nil}
}

//
// compatibility
//

func TestOpenTagIsCompatibleWithClosedSuperset(t *testing.T) {
	schema := New()
	open := schema.MakeID()
	closed := schema.MakeID()
	require.NoError(t, schema.AddConstraint(open, HasTag{TagName: "true"}))
	require.NoError(t, schema.AddConstraint(closed, TagAtMost{Tags: booleanTagMap()}))
	require.True(t, schema.TypesAreCompatible(open, closed))
	require.True(t, schema.TypesAreCompatible(closed, open))
}

func TestOpenTagIsNotCompatibleWithClosedGroupMissingIt(t *testing.T) {
	schema := New()
	open := schema.MakeID()
	closed := schema.MakeID()
	require.NoError(t, schema.AddConstraint(open, HasTag{TagName: "purple"}))
	require.NoError(t, schema.AddConstraint(closed, TagAtMost{Tags: booleanTagMap()}))
	require.False(t, schema.TypesAreCompatible(open, closed))
}

func TestClosedTagGroupsWithEqualDomainsAreCompatible(t *testing.T) {
	schema := New()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, TagAtMost{Tags: booleanTagMap()}))
	require.NoError(t, schema.AddConstraint(b, TagAtMost{Tags: booleanTagMap()}))
	require.True(t, schema.TypesAreCompatible(a, b))
}

func TestClosedTagGroupsWithDifferentDomainsAreNotCompatible(t *testing.T) {
	schema := New()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, TagAtMost{Tags: booleanTagMap()}))
	require.NoError(t, schema.AddConstraint(b, TagAtMost{Tags: map[string][]TypeID{
		"true": nil, "false": nil, "maybe": nil,
	}}))
	require.False(t, schema.TypesAreCompatible(a, b))
}

func TestTagContentsMustMatchPairwise(t *testing.T) {
	schema := New()
	intContent := schema.MakeID()
	strContent := schema.MakeID()
	require.NoError(t, schema.AddConstraint(intContent, EqualToPrimitive{Primitive: typedast.Int}))
	require.NoError(t, schema.AddConstraint(strContent, EqualToPrimitive{Primitive: typedast.Str}))

	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, HasTag{TagName: "some", TagContentTypes: []TypeID{intContent}}))
	require.NoError(t, schema.AddConstraint(b, HasTag{TagName: "some", TagContentTypes: []TypeID{strContent}}))
	require.False(t, schema.TypesAreCompatible(a, b))
}

func TestOpenTagGroupsWithDisjointTagsAreCompatible(t *testing.T) {
	schema := New()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, HasTag{TagName: "red"}))
	require.NoError(t, schema.AddConstraint(b, HasTag{TagName: "green"}))
	require.True(t, schema.TypesAreCompatible(a, b))
}

func TestExactRecordsRequireEqualDomains(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, HasExactFields{Fields: map[string]TypeID{"x": x}}))
	require.NoError(t, schema.AddConstraint(b, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	require.False(t, schema.TypesAreCompatible(a, b))
}

func TestOpenRecordIsCompatibleWithExactSuperset(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	open := schema.MakeID()
	exact := schema.MakeID()
	require.NoError(t, schema.AddConstraint(open, HasField{FieldName: "x", FieldType: x}))
	require.NoError(t, schema.AddConstraint(exact, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	require.True(t, schema.TypesAreCompatible(open, exact))
}

func TestOpenRecordWithUnknownFieldIsNotCompatibleWithExact(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	open := schema.MakeID()
	exact := schema.MakeID()
	require.NoError(t, schema.AddConstraint(open, HasField{FieldName: "z", FieldType: x}))
	require.NoError(t, schema.AddConstraint(exact, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	require.False(t, schema.TypesAreCompatible(open, exact))
}

func TestFunctionsRequireEqualArity(t *testing.T) {
	schema := New()
	arg := schema.MakeID()
	ret := schema.MakeID()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, HasFunctionShape{ArgumentTypes: []TypeID{arg}, ReturnType: ret}))
	require.NoError(t, schema.AddConstraint(b, HasFunctionShape{ArgumentTypes: []TypeID{arg, arg}, ReturnType: ret}))
	require.False(t, schema.TypesAreCompatible(a, b))
}

func TestListsOfIncompatibleElementsAreNotCompatible(t *testing.T) {
	schema := New()
	intElem := schema.MakeID()
	strElem := schema.MakeID()
	require.NoError(t, schema.AddConstraint(intElem, EqualToPrimitive{Primitive: typedast.Int}))
	require.NoError(t, schema.AddConstraint(strElem, EqualToPrimitive{Primitive: typedast.Str}))
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, ListOfType{ElementType: intElem}))
	require.NoError(t, schema.AddConstraint(b, ListOfType{ElementType: strElem}))
	require.False(t, schema.TypesAreCompatible(a, b))
}

//
// update rules
//

func TestClosedTagIntersectionShrinksTheDomain(t *testing.T) {
	schema := New()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, TagAtMost{Tags: map[string][]TypeID{
		"red": nil, "green": nil, "blue": nil,
	}}))
	require.NoError(t, schema.AddConstraint(id, TagAtMost{Tags: map[string][]TypeID{
		"red": nil, "blue": nil,
	}}))
	union, ok := schema.GetConcreteTypeFromID(id).(*typedast.TagUnion)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"red", "blue"}, tagNames(union))
}

func TestOpenTagUnionGrowsTheDomain(t *testing.T) {
	schema := New()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, HasTag{TagName: "red"}))
	require.NoError(t, schema.AddConstraint(id, HasTag{TagName: "green"}))
	union, ok := schema.GetConcreteTypeFromID(id).(*typedast.TagUnion)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"red", "green"}, tagNames(union))
}

func TestClosedConstraintNarrowsAnOpenTagGroup(t *testing.T) {
	schema := New()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, HasTag{TagName: "true"}))
	require.NoError(t, schema.AddConstraint(id, TagAtMost{Tags: booleanTagMap()}))
	// The class is now closed over {true, false}; a tag outside it is
	// rejected.
	err := schema.AddConstraint(id, HasTag{TagName: "maybe"})
	require.ErrorIs(t, err, ErrConstraintsNotCompatible)
}

func TestExactRecordRejectsDivergentExactConstraint(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	err := schema.AddConstraint(id, HasExactFields{Fields: map[string]TypeID{"y": x, "z": x}})
	require.ErrorIs(t, err, ErrConstraintsNotCompatible)
}

func TestExactRecordAcceptsMatchingExactConstraint(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	require.NoError(t, schema.AddConstraint(id, HasExactFields{Fields: map[string]TypeID{"x": x, "y": x}}))
	record, ok := schema.GetConcreteTypeFromID(id).(*typedast.Record)
	require.True(t, ok)
	require.Len(t, record.Fields, 2)
}

func TestOpenRecordUnionGrowsTheDomain(t *testing.T) {
	schema := New()
	x := schema.MakeID()
	id := schema.MakeID()
	require.NoError(t, schema.AddConstraint(id, HasField{FieldName: "x", FieldType: x}))
	require.NoError(t, schema.AddConstraint(id, HasField{FieldName: "y", FieldType: x}))
	record, ok := schema.GetConcreteTypeFromID(id).(*typedast.Record)
	require.True(t, ok)
	require.Len(t, record.Fields, 2)
}

//
// concretion
//

func TestUnconstrainedClassResolvesToCompilerBoolean(t *testing.T) {
	schema := New()
	id := schema.MakeID()
	require.Equal(t, typedast.Primitive{Type: typedast.CompilerBoolean}, schema.GetConcreteTypeFromID(id))
}

func TestBooleanTagUnionResolvesToCompilerBoolean(t *testing.T) {
	schema := New()

	full := schema.MakeID()
	require.NoError(t, schema.AddConstraint(full, TagAtMost{Tags: booleanTagMap()}))
	require.True(t, typedast.IsCompilerBoolean(schema.GetConcreteTypeFromID(full)))

	trueOnly := schema.MakeID()
	require.NoError(t, schema.AddConstraint(trueOnly, HasTag{TagName: "true"}))
	require.True(t, typedast.IsCompilerBoolean(schema.GetConcreteTypeFromID(trueOnly)))

	falseOnly := schema.MakeID()
	require.NoError(t, schema.AddConstraint(falseOnly, HasTag{TagName: "false"}))
	require.True(t, typedast.IsCompilerBoolean(schema.GetConcreteTypeFromID(falseOnly)))
}

func TestNonBooleanTagUnionDoesNotResolveToCompilerBoolean(t *testing.T) {
	schema := New()

	payload := schema.MakeID()
	withContents := schema.MakeID()
	require.NoError(t, schema.AddConstraint(withContents, HasTag{
		TagName:         "true",
		TagContentTypes: []TypeID{payload},
	}))
	require.False(t, typedast.IsCompilerBoolean(schema.GetConcreteTypeFromID(withContents)))

	otherName := schema.MakeID()
	require.NoError(t, schema.AddConstraint(otherName, HasTag{TagName: "yes"}))
	require.False(t, typedast.IsCompilerBoolean(schema.GetConcreteTypeFromID(otherName)))
}

func TestListConcretion(t *testing.T) {
	schema := New()
	element := schema.MakeID()
	list := schema.MakeID()
	require.NoError(t, schema.AddConstraint(element, EqualToPrimitive{Primitive: typedast.Int}))
	require.NoError(t, schema.AddConstraint(list, ListOfType{ElementType: element}))

	want := &typedast.List{Element: typedast.Primitive{Type: typedast.Int}}
	if diff := cmp.Diff(want, schema.GetConcreteTypeFromID(list)); diff != "" {
		t.Errorf("concrete list mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctionConcretion(t *testing.T) {
	schema := New()
	arg := schema.MakeID()
	ret := schema.MakeID()
	fn := schema.MakeID()
	require.NoError(t, schema.AddConstraint(arg, EqualToPrimitive{Primitive: typedast.Str}))
	require.NoError(t, schema.AddConstraint(ret, EqualToPrimitive{Primitive: typedast.Int}))
	require.NoError(t, schema.AddConstraint(fn, HasFunctionShape{
		ArgumentTypes: []TypeID{arg},
		ReturnType:    ret,
	}))

	want := &typedast.Function{
		Arguments: []typedast.ConcreteType{typedast.Primitive{Type: typedast.Str}},
		Return:    typedast.Primitive{Type: typedast.Int},
	}
	if diff := cmp.Diff(want, schema.GetConcreteTypeFromID(fn)); diff != "" {
		t.Errorf("concrete function mismatch (-want +got):\n%s", diff)
	}
}

func TestSelfReferentialTypeConcretises(t *testing.T) {
	schema := New()
	// node = { next: node } — a structurally infinite record.
	node := schema.MakeID()
	require.NoError(t, schema.AddConstraint(node, HasField{FieldName: "next", FieldType: node}))
	record, ok := schema.GetConcreteTypeFromID(node).(*typedast.Record)
	require.True(t, ok)
	// The recursive edge is cut with the placeholder primitive.
	require.Equal(t, typedast.Primitive{Type: typedast.CompilerBoolean}, record.Fields["next"])
}

func TestSelfReferentialTypesCompareCompatible(t *testing.T) {
	schema := New()
	a := schema.MakeID()
	b := schema.MakeID()
	require.NoError(t, schema.AddConstraint(a, HasField{FieldName: "next", FieldType: a}))
	require.NoError(t, schema.AddConstraint(b, HasField{FieldName: "next", FieldType: b}))
	require.True(t, schema.TypesAreCompatible(a, b))
}

func tagNames(union *typedast.TagUnion) []string {
	names := make([]string, 0, len(union.Tags))
	for name := range union.Tags {
		names = append(names, name)
	}
	return names
}
