package pathobj

import (
	"github.com/pathobj/pathobj/debug"
	"github.com/pathobj/pathobj/ir"
	"github.com/pathobj/pathobj/keypath"
)

// readWalk resolves segments against root for a read. Digit segments act as
// indices against arrays and as literal keys against objects; the node's
// type decides, never the segment's shape.
//
// When a segment cannot be resolved, the factory governs what happens: if
// present, the missing step is created, the factory value itself at the
// final segment, otherwise an empty container shaped by the following
// segment (array when it is numeric, object when not). Without a factory
// the walk fails with a typed error when raise is set, and otherwise
// reports a non-raising absent outcome (found == false, err == nil).
func readWalk(root *ir.Node, segs []string, factory func() *ir.Node, raise bool) (node *ir.Node, found bool, err error) {
	cur := root
	for i, seg := range segs {
		if debug.Walk() {
			debug.Logf("walk %s: segment %q of %v\n", cur.Path(), seg, segs)
		}
		switch cur.Type {
		case ir.ArrayType:
			idx, ok := keypath.Index(seg)
			if !ok {
				if raise {
					return nil, false, invalidIndexErr(seg, cur.Path())
				}
				return nil, false, nil
			}
			if idx < len(cur.Values) {
				cur = cur.Values[idx]
				continue
			}
			if factory != nil {
				elt := vivified(segs, i, factory)
				cur.Append(elt)
				cur = elt
				continue
			}
			if raise {
				return nil, false, &IndexError{Index: idx, Len: len(cur.Values), Path: cur.Path()}
			}
			return nil, false, nil
		case ir.ObjectType:
			if v := cur.Get(seg); v != nil {
				cur = v
				continue
			}
			if factory != nil {
				elt := vivified(segs, i, factory)
				cur.SetField(seg, elt)
				cur = elt
				continue
			}
			if raise {
				return nil, false, &KeyError{Key: seg, Path: cur.Path()}
			}
			return nil, false, nil
		default:
			if raise {
				return nil, false, descendErr(seg, cur.Type, cur.Path())
			}
			return nil, false, nil
		}
	}
	return cur, true, nil
}

// vivified produces the node a default-aware read creates for the missing
// segment at position i.
func vivified(segs []string, i int, factory func() *ir.Node) *ir.Node {
	if i == len(segs)-1 {
		return factory()
	}
	if _, ok := keypath.Index(segs[i+1]); ok {
		return ir.NewArray()
	}
	return ir.NewObject()
}

// mutateWalk resolves all segments but the last, returning the container
// the final segment addresses within, plus that segment. With create set
// (writes), missing object keys grow empty object intermediates
// unconditionally; arrays are never extended and a missing index fails.
// Without create (deletes), resolution never mutates the tree.
func mutateWalk(root *ir.Node, segs []string, create bool) (*ir.Node, string, error) {
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		switch cur.Type {
		case ir.ArrayType:
			idx, ok := keypath.Index(seg)
			if !ok {
				return nil, "", invalidIndexErr(seg, cur.Path())
			}
			if idx >= len(cur.Values) {
				return nil, "", &IndexError{Index: idx, Len: len(cur.Values), Path: cur.Path()}
			}
			cur = cur.Values[idx]
		case ir.ObjectType:
			if v := cur.Get(seg); v != nil {
				cur = v
				continue
			}
			if !create {
				return nil, "", &KeyError{Key: seg, Path: cur.Path()}
			}
			m := ir.NewObject()
			cur.SetField(seg, m)
			cur = m
		default:
			return nil, "", descendErr(seg, cur.Type, cur.Path())
		}
	}
	return cur, segs[len(segs)-1], nil
}
