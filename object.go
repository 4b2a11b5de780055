// Package pathobj provides path-addressed access into trees of JSON-like
// values: string-keyed objects, integer-indexed arrays, and scalars.
//
// A single compound key, either a dot-separated string ("address.city",
// "scores.0"), a non-negative integer, or a []string of segments,
// addresses a value at any depth for reading, writing, or deleting,
// without the caller walking intermediate containers:
//
//	o := pathobj.New(map[string]any{
//	    "name":    "John",
//	    "address": map[string]any{"city": "New York"},
//	    "scores":  []any{85, 90, 78},
//	})
//	city, _ := o.Get("address.city") // "New York"
//	_ = o.Set("scores.0", 95)
//	_ = o.Delete("address.city")
//
// Whether a digit segment is an array index or an object key is decided by
// the node it resolves against, never by the segment's shape.
//
// Missing paths follow the Object's policy: by default reads fail with
// ErrKeyNotFound or ErrIndexOutOfRange; with RaiseOnMissing(false) they
// yield a nil absent outcome instead; with a DefaultFactory the missing
// path is created on read, intermediate containers shaped by the next
// segment. Writes always create missing intermediate objects.
package pathobj

import (
	"slices"
	"strconv"

	"github.com/pathobj/pathobj/encode"
	"github.com/pathobj/pathobj/ir"
	"github.com/pathobj/pathobj/keypath"
)

// Object is a view over a document tree exposing compound-key operations.
//
// The view produced by New owns its tree; views returned from Get share the
// tree and the owning view's policy, so mutations through either are
// visible through both. Objects are not safe for concurrent use.
type Object struct {
	node           *ir.Node
	raiseOnMissing bool
	defaultFactory func() any
}

type Option func(*Object)

// RaiseOnMissing sets whether reads of missing paths fail (the default) or
// yield a nil absent outcome.
func RaiseOnMissing(v bool) Option {
	return func(o *Object) { o.raiseOnMissing = v }
}

// DefaultFactory installs a producer of default values: reads of missing
// paths create the path and place the factory's value at its end.
func DefaultFactory(f func() any) Option {
	return func(o *Object) { o.defaultFactory = f }
}

// New builds an Object over data. A nil data starts an empty object tree. A
// *Object shares its tree and inherits its policy (options still override).
// Anything else is converted with ir.FromAny: plain maps and slices become
// containers, scalars and unknown Go values become leaves.
func New(data any, opts ...Option) *Object {
	o := &Object{raiseOnMissing: true}
	switch x := data.(type) {
	case nil:
		o.node = ir.NewObject()
	case *Object:
		o.node = x.node
		o.raiseOnMissing = x.raiseOnMissing
		o.defaultFactory = x.defaultFactory
	default:
		o.node = ir.FromAny(data)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Node returns the underlying tree node. The node is shared, not copied.
func (o *Object) Node() *ir.Node {
	return o.node
}

// wrap makes a child view sharing o's policy.
func (o *Object) wrap(node *ir.Node) *Object {
	return &Object{
		node:           node,
		raiseOnMissing: o.raiseOnMissing,
		defaultFactory: o.defaultFactory,
	}
}

func (o *Object) factory() func() *ir.Node {
	if o.defaultFactory == nil {
		return nil
	}
	return func() *ir.Node { return toNode(o.defaultFactory()) }
}

func toNode(v any) *ir.Node {
	if x, ok := v.(*Object); ok {
		return x.node
	}
	return ir.FromAny(v)
}

// Get resolves key and returns the value at its end. Containers come back
// wrapped in a child *Object for chained access; scalars come back as plain
// Go values. A missing path fails per the Object's policy, or returns
// (nil, nil) when raising is off and no factory is set.
func (o *Object) Get(key any) (any, error) {
	segs, err := keypath.Segments(key)
	if err != nil {
		return nil, err
	}
	node, found, err := readWalk(o.node, segs, o.factory(), o.raiseOnMissing)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if node.Type.IsLeaf() {
		return ir.ToAny(node), nil
	}
	return o.wrap(node), nil
}

// Set writes value at key, creating missing intermediate objects
// unconditionally. Assigning to an array index that does not exist fails
// with ErrIndexOutOfRange; arrays never grow through Set.
func (o *Object) Set(key, value any) error {
	segs, err := keypath.Segments(key)
	if err != nil {
		return err
	}
	container, last, err := mutateWalk(o.node, segs, true)
	if err != nil {
		return err
	}
	switch container.Type {
	case ir.ArrayType:
		idx, ok := keypath.Index(last)
		if !ok {
			return invalidIndexErr(last, container.Path())
		}
		if idx >= len(container.Values) {
			return &IndexError{Index: idx, Len: len(container.Values), Path: container.Path()}
		}
		container.SetIndex(idx, toNode(value))
	case ir.ObjectType:
		container.SetField(last, toNode(value))
	default:
		return descendErr(last, container.Type, container.Path())
	}
	return nil
}

// Delete removes the value at key. Resolution is side-effect-free: a
// missing intermediate or final step fails with ErrKeyNotFound or
// ErrIndexOutOfRange, whatever the raise policy, and never creates
// containers along the way.
func (o *Object) Delete(key any) error {
	segs, err := keypath.Segments(key)
	if err != nil {
		return err
	}
	container, last, err := mutateWalk(o.node, segs, false)
	if err != nil {
		return err
	}
	switch container.Type {
	case ir.ArrayType:
		idx, ok := keypath.Index(last)
		if !ok {
			return invalidIndexErr(last, container.Path())
		}
		if idx >= len(container.Values) {
			return &IndexError{Index: idx, Len: len(container.Values), Path: container.Path()}
		}
		container.DeleteIndex(idx)
	case ir.ObjectType:
		if !container.DeleteField(last) {
			return &KeyError{Key: last, Path: container.Path()}
		}
	default:
		return descendErr(last, container.Type, container.Path())
	}
	return nil
}

// Contains reports whether key resolves in the tree. It never raises and
// never auto-vivifies, even when a DefaultFactory is set; use Get when
// creation on a missing path is wanted. Unsupported key shapes report
// false.
func (o *Object) Contains(key any) bool {
	segs, err := keypath.Segments(key)
	if err != nil {
		return false
	}
	_, found, err := readWalk(o.node, segs, nil, false)
	return err == nil && found
}

// Len returns the number of top-level fields or elements, 0 for leaves.
func (o *Object) Len() int {
	if o.node.Type.IsLeaf() {
		return 0
	}
	return len(o.node.Values)
}

// Keys returns the top-level object keys in insertion order, or array
// indices as decimal strings; nil for leaves.
func (o *Object) Keys() []string {
	switch o.node.Type {
	case ir.ObjectType:
		return slices.Clone(o.node.Fields)
	case ir.ArrayType:
		keys := make([]string, len(o.node.Values))
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	default:
		return nil
	}
}

// Equal reports deep equality between o's tree and other, which may be
// another *Object, a plain container, or a scalar. Object fields compare as
// key sets; numbers compare numerically whatever their representation.
func (o *Object) Equal(other any) bool {
	return ir.Compare(o.node, toNode(other)) == 0
}

// ToPlain materializes the tree into plain Go containers: map[string]any
// for objects, []any for arrays, scalars as themselves.
func (o *Object) ToPlain() any {
	return ir.ToAny(o.node)
}

func (o *Object) String() string {
	return encode.MustString(o.node)
}
