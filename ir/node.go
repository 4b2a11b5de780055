package ir

import (
	"maps"
	"slices"
)

// Node is a tagged union over the shapes of a JSON-like document: null,
// bool, number, string, opaque leaf, array, object. The Type tag decides
// which payload fields are meaningful.
//
// For ObjectType, Fields[i] is the key for the value at Values[i]; keys are
// unique and field order is insertion order. For ArrayType, Values holds the
// elements in index order. All other types are leaves.
//
// Nodes keep parent backreferences (Parent, ParentIndex, ParentField) so any
// node can report its position in the tree; mutators in this package keep
// them consistent.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Opaque  any
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromOpaque wraps an external value the tree does not interpret.
func FromOpaque(v any) *Node {
	return &Node{
		Type:   OpaqueType,
		Opaque: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// FromMap builds an object node from a Go map. Go maps have no order, so
// fields are sorted by key for determinism.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		v := m[key]
		v.Parent = res
		v.ParentIndex = len(res.Values)
		v.ParentField = key
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, v)
	}
	return res
}

func FromSlice(elts []*Node) *Node {
	res := NewArray()
	res.Values = make([]*Node, len(elts))
	for i, v := range elts {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// IndexOf returns the field position of field in an object node, or -1.
func (y *Node) IndexOf(field string) int {
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Get returns the value of field in an object node, or nil if absent or if
// y is not an object.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	if i := y.IndexOf(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) Clone() *Node {
	return y.CloneTo(&Node{})
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstV := &Node{}
		yv.CloneTo(dstV)
		dstV.Parent = dst
		dst.Values[i] = dstV
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = nil
	dst.Float64 = nil
	if y.Int64 != nil {
		v := *y.Int64
		dst.Int64 = &v
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Opaque = y.Opaque
	return dst
}

// Visit walks the subtree rooted at y, calling f pre- and post-order. A
// false pre-order return skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
