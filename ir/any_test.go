package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAnyToAnyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "scalars normalize to int64",
			in:   map[string]any{"n": 30},
			want: map[string]any{"n": int64(30)},
		},
		{
			name: "nested containers",
			in: map[string]any{
				"address": map[string]any{"city": "New York"},
				"scores":  []any{int64(85), int64(90)},
			},
			want: map[string]any{
				"address": map[string]any{"city": "New York"},
				"scores":  []any{int64(85), int64(90)},
			},
		},
		{
			name: "typed map and slice",
			in:   map[string]any{"m": map[string]string{"a": "b"}, "xs": []int{1, 2}},
			want: map[string]any{"m": map[string]any{"a": "b"}, "xs": []any{int64(1), int64(2)}},
		},
		{
			name: "null and bool and float",
			in:   []any{nil, true, 1.5},
			want: []any{nil, true, 1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAny(FromAny(tt.in))
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestToAnyIdempotent(t *testing.T) {
	in := map[string]any{
		"a": []any{1, map[string]any{"b": "c"}},
		"d": 2.5,
	}
	once := ToAny(FromAny(in))
	twice := ToAny(FromAny(once))
	if d := cmp.Diff(once, twice); d != "" {
		t.Errorf("materialization not idempotent (-once +twice):\n%s", d)
	}
}

type external struct {
	ID int
}

func TestOpaquePassThrough(t *testing.T) {
	ext := external{ID: 7}
	node := FromAny(map[string]any{"ext": ext})
	got := node.Get("ext")
	if got.Type != OpaqueType {
		t.Fatalf("type = %s, want Opaque", got.Type)
	}
	plain := ToAny(node).(map[string]any)
	if plain["ext"] != ext {
		t.Errorf("opaque value changed through materialization: %v", plain["ext"])
	}
}

func TestFromAnyBytesOpaque(t *testing.T) {
	node := FromAny([]byte("raw"))
	if node.Type != OpaqueType {
		t.Errorf("[]byte should stay a leaf, got %s", node.Type)
	}
}

func TestFromAnySharesNodes(t *testing.T) {
	shared := FromInt(1)
	node := FromAny(shared)
	if node != shared {
		t.Error("FromAny copied a *Node instead of sharing it")
	}
}
