package ir

import (
	"encoding/json"
	"reflect"
)

// FromAny deep-converts a plain Go value into a Node tree.
//
// Maps with string keys become objects, slices and arrays become arrays,
// and the JSON scalar kinds map onto their node types. A *Node passes
// through by reference, so trees built from existing nodes share structure
// rather than copy it. Values of any other kind become opaque leaves, left
// uninterpreted.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case *Node:
		return x
	case bool:
		return FromBool(x)
	case string:
		return FromString(x)
	case int:
		return FromInt(int64(x))
	case int8:
		return FromInt(int64(x))
	case int16:
		return FromInt(int64(x))
	case int32:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint:
		return FromInt(int64(x))
	case uint8:
		return FromInt(int64(x))
	case uint16:
		return FromInt(int64(x))
	case uint32:
		return FromInt(int64(x))
	case uint64:
		return FromInt(int64(x))
	case float32:
		return FromFloat(float64(x))
	case float64:
		return FromFloat(x)
	case json.Number:
		return fromNumber(x)
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, v := range x {
			m[k] = FromAny(v)
		}
		return FromMap(m)
	case []any:
		res := NewArray()
		for _, elt := range x {
			res.Append(FromAny(elt))
		}
		return res
	}
	return fromReflect(v)
}

func fromNumber(n json.Number) *Node {
	if i, err := n.Int64(); err == nil {
		return FromInt(i)
	}
	if f, err := n.Float64(); err == nil {
		return FromFloat(f)
	}
	return FromString(n.String())
}

// fromReflect covers container kinds beyond the literal map[string]any and
// []any shapes, e.g. map[string]string or []int. Anything else is opaque.
func fromReflect(v any) *Node {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return FromOpaque(v)
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = FromAny(iter.Value().Interface())
		}
		return FromMap(m)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte is a scalar, not a sequence of numbers.
			return FromOpaque(v)
		}
		res := NewArray()
		for i := range rv.Len() {
			res.Append(FromAny(rv.Index(i).Interface()))
		}
		return res
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromOpaque(v)
	default:
		return FromOpaque(v)
	}
}

// ToAny deep-converts a Node tree back into plain Go containers and
// scalars: map[string]any for objects, []any for arrays. Opaque leaves come
// back unchanged. ToAny is idempotent under FromAny: converting the result
// again yields an equal value.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.String
	case BoolType:
		return y.Bool
	case OpaqueType:
		return y.Opaque
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
