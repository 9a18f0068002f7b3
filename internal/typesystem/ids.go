package typesystem

// TypeID is an opaque dense integer identifying a type variable. IDs are
// allocated monotonically by the schema and never reused.
type TypeID int

// CanonicalIds is a union-find over type ids. The slice is indexed by id;
// each entry holds the id's parent, and roots are their own parent.
type CanonicalIds struct {
	parents []TypeID
}

// MakeID returns a fresh id whose parent is itself.
func (c *CanonicalIds) MakeID() TypeID {
	id := TypeID(len(c.parents))
	c.parents = append(c.parents, id)
	return id
}

// GetCanonicalID walks parent links to the representative, compressing the
// path it traverses.
func (c *CanonicalIds) GetCanonicalID(typeID TypeID) TypeID {
	root := typeID
	for c.parents[root] != root {
		root = c.parents[root]
	}
	for c.parents[typeID] != typeID {
		next := c.parents[typeID]
		c.parents[typeID] = root
		typeID = next
	}
	return root
}

// SetTypesEqual unions the classes of a and b. The canonical id of a wins;
// callers must not rely on which side wins.
func (c *CanonicalIds) SetTypesEqual(a, b TypeID) {
	canonicalA := c.GetCanonicalID(a)
	canonicalB := c.GetCanonicalID(b)
	c.parents[canonicalB] = canonicalA
	c.parents[a] = canonicalA
	c.parents[b] = canonicalA
}

// CountIDs returns the total number of allocated ids.
func (c *CanonicalIds) CountIDs() int {
	return len(c.parents)
}

// CountCanonicalIDs returns the number of equivalence classes.
func (c *CanonicalIds) CountCanonicalIDs() int {
	count := 0
	for index, parent := range c.parents {
		if TypeID(index) == parent {
			count++
		}
	}
	return count
}
