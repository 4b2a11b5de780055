// Package ir defines the node tree underlying path-addressed documents.
//
// A document is a tree of Node values, each tagged with a Type: null, bool,
// number, string, opaque leaf, array, or object. Objects keep their fields
// in insertion order with unique string keys; arrays are integer-indexed
// from 0. Every traversal in this module dispatches on the Type tag rather
// than probing Go's container types at runtime.
//
// Use the constructor functions to build nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromAny and ToAny convert between node trees and plain Go containers
// (map[string]any, []any, scalars). Go values the tree has no
// interpretation for travel through as opaque leaves and come back from
// ToAny unchanged.
//
// Nodes maintain parent backreferences; Path() reports a node's position
// in JSONPath-like form ("$.a.b[0]"), which the rest of the module uses to
// qualify errors. The package mutators (SetField, Append, SetIndex,
// DeleteField, DeleteIndex, ReplaceWith) keep the backreferences
// consistent, so callers should prefer them over editing Fields and Values
// directly.
//
// Node trees are not safe for concurrent use. A tree has one logical owner;
// if it is shared across goroutines, access must be serialized externally.
package ir
