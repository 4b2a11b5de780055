package ir

import "slices"

// SetField sets field to v in an object node. An existing field keeps its
// position; a new field is appended, preserving insertion order.
func (y *Node) SetField(field string, v *Node) {
	v.Parent = y
	v.ParentField = field
	if i := y.IndexOf(field); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// SetIndex replaces the element at i in an array node. The index must be in
// bounds; bounds policy belongs to the caller.
func (y *Node) SetIndex(i int, v *Node) {
	v.Parent = y
	v.ParentIndex = i
	y.Values[i] = v
}

// Append adds v at the end of an array node.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// DeleteField removes field from an object node, reporting whether it was
// present. Later fields shift down one position.
func (y *Node) DeleteField(field string) bool {
	i := y.IndexOf(field)
	if i == -1 {
		return false
	}
	y.Values[i].Parent = nil
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	return true
}

// DeleteIndex removes the element at i from an array node. The index must be
// in bounds.
func (y *Node) DeleteIndex(i int) {
	y.Values[i].Parent = nil
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
}

// ReplaceWith overwrites y's content with v's, keeping y's position in its
// parent. References to y held elsewhere observe the new content.
func (y *Node) ReplaceWith(v *Node) {
	parent, pi, pf := y.Parent, y.ParentIndex, y.ParentField
	v.CloneTo(y)
	y.Parent = parent
	y.ParentIndex = pi
	y.ParentField = pf
}
