package ir

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different types order by type rank
// (Null < Bool < Number < String < Opaque < Array < Object). Numbers compare
// by numeric value whatever their representation, so FromInt(1) equals
// FromFloat(1). Objects compare by sorted key set and then by the values
// under those keys; insertion order does not affect the result.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case OpaqueType:
		return compareOpaque(a, b)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	af, aok := floatValue(a)
	bf, bok := floatValue(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	// string-form number fallback
	if !aok && !bok {
		return strings.Compare(a.String, b.String)
	}
	if !aok {
		return 1
	}
	return -1
}

func floatValue(y *Node) (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	f, err := strconv.ParseFloat(y.String, 64)
	return f, err == nil
}

// compareOpaque has no natural order over external values; equal means
// deeply equal, otherwise order by printed form to keep Compare total.
func compareOpaque(a, b *Node) int {
	if reflect.DeepEqual(a.Opaque, b.Opaque) {
		return 0
	}
	c := strings.Compare(fmt.Sprint(a.Opaque), fmt.Sprint(b.Opaque))
	if c != 0 {
		return c
	}
	return 1
}

func compareArrays(a, b *Node) int {
	if c := cmp.Compare(len(a.Values), len(b.Values)); c != 0 {
		return c
	}
	for i := range a.Values {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
		return c
	}
	aKeys := slices.Sorted(slices.Values(a.Fields))
	bKeys := slices.Sorted(slices.Values(b.Fields))
	for i, k := range aKeys {
		if c := strings.Compare(k, bKeys[i]); c != 0 {
			return c
		}
	}
	for _, k := range aKeys {
		if c := Compare(a.Get(k), b.Get(k)); c != 0 {
			return c
		}
	}
	return 0
}
