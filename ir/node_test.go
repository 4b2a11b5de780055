package ir

import (
	"reflect"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		typ  Type
	}{
		{"string", FromString("x"), StringType},
		{"int", FromInt(1), NumberType},
		{"float", FromFloat(1.5), NumberType},
		{"bool", FromBool(true), BoolType},
		{"null", Null(), NullType},
		{"opaque", FromOpaque(struct{ X int }{1}), OpaqueType},
		{"object", NewObject(), ObjectType},
		{"array", NewArray(), ArrayType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Type != tt.typ {
				t.Errorf("got type %s, want %s", tt.node.Type, tt.typ)
			}
		})
	}
}

func TestFromMapOrder(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(obj.Fields, want) {
		t.Errorf("fields = %v, want %v", obj.Fields, want)
	}
	for i, v := range obj.Values {
		if v.Parent != obj || v.ParentIndex != i || v.ParentField != obj.Fields[i] {
			t.Errorf("value %d has bad backrefs", i)
		}
	}
}

func TestSetFieldKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.SetField("a", FromInt(1))
	obj.SetField("b", FromInt(2))
	obj.SetField("a", FromInt(10))
	if !reflect.DeepEqual(obj.Fields, []string{"a", "b"}) {
		t.Errorf("fields = %v", obj.Fields)
	}
	if got := obj.Get("a"); got == nil || *got.Int64 != 10 {
		t.Errorf("a = %v", got)
	}
}

func TestSetFieldAppendsNew(t *testing.T) {
	obj := NewObject()
	obj.SetField("z", FromInt(1))
	obj.SetField("a", FromInt(2))
	if !reflect.DeepEqual(obj.Fields, []string{"z", "a"}) {
		t.Errorf("insertion order not kept: %v", obj.Fields)
	}
}

func TestDeleteField(t *testing.T) {
	obj := NewObject()
	obj.SetField("a", FromInt(1))
	obj.SetField("b", FromInt(2))
	obj.SetField("c", FromInt(3))
	if !obj.DeleteField("b") {
		t.Fatal("DeleteField(b) = false")
	}
	if obj.DeleteField("b") {
		t.Fatal("second DeleteField(b) = true")
	}
	if !reflect.DeepEqual(obj.Fields, []string{"a", "c"}) {
		t.Errorf("fields = %v", obj.Fields)
	}
	if obj.Values[1].ParentIndex != 1 || obj.Values[1].ParentField != "c" {
		t.Errorf("backrefs not reindexed after delete")
	}
}

func TestDeleteIndex(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	arr.DeleteIndex(0)
	if len(arr.Values) != 2 {
		t.Fatalf("len = %d", len(arr.Values))
	}
	if *arr.Values[0].Int64 != 2 || arr.Values[0].ParentIndex != 0 {
		t.Errorf("elements not shifted: %v", arr.Values[0])
	}
}

func TestAppend(t *testing.T) {
	arr := NewArray()
	arr.Append(FromString("x"))
	arr.Append(FromString("y"))
	if len(arr.Values) != 2 || arr.Values[1].ParentIndex != 1 {
		t.Errorf("append backrefs wrong")
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		node func() *Node
		want string
	}{
		{
			name: "root",
			node: func() *Node { return NewObject() },
			want: "$",
		},
		{
			name: "object field",
			node: func() *Node {
				obj := NewObject()
				obj.SetField("a", FromInt(1))
				return obj.Get("a")
			},
			want: "$.a",
		},
		{
			name: "nested array element",
			node: func() *Node {
				obj := NewObject()
				arr := FromSlice([]*Node{FromInt(1), FromInt(2)})
				obj.SetField("xs", arr)
				return arr.Values[1]
			},
			want: "$.xs[1]",
		},
		{
			name: "field needing quotes",
			node: func() *Node {
				obj := NewObject()
				obj.SetField("a.b", FromInt(1))
				return obj.Values[0]
			},
			want: "$.'a.b'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node().Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1)}),
	})
	cp := obj.Clone()
	cp.Get("a").Append(FromInt(2))
	if len(obj.Get("a").Values) != 1 {
		t.Error("clone shares array storage with original")
	}
	if Compare(cp.Get("a").Values[0], obj.Get("a").Values[0]) != 0 {
		t.Error("clone changed element values")
	}
}

func TestReplaceWith(t *testing.T) {
	obj := NewObject()
	inner := NewObject()
	inner.SetField("x", FromInt(1))
	obj.SetField("inner", inner)

	repl := FromSlice([]*Node{FromString("a")})
	inner.ReplaceWith(repl)

	got := obj.Get("inner")
	if got != inner {
		t.Fatal("replacement changed node identity")
	}
	if got.Type != ArrayType || len(got.Values) != 1 {
		t.Errorf("replacement content not applied: %v", got)
	}
	if got.Parent != obj || got.ParentField != "inner" {
		t.Errorf("replacement lost position")
	}
	if got.Values[0].Parent != got {
		t.Errorf("replacement children not reparented")
	}
}

func TestVisit(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1), FromInt(2)}),
		"b": FromString("x"),
	})
	pre := 0
	if err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return true, nil
	}); err != nil {
		t.Fatal(err)
	}
	// root, a, two ints, b
	if pre != 5 {
		t.Errorf("pre-order visits = %d, want 5", pre)
	}
}
