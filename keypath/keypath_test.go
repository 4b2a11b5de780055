package keypath

import (
	"errors"
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		key  any
		want []string
	}{
		{
			name: "single field",
			key:  "name",
			want: []string{"name"},
		},
		{
			name: "dotted string",
			key:  "foo.bar.baz",
			want: []string{"foo", "bar", "baz"},
		},
		{
			name: "digit segments stay strings",
			key:  "scores.0",
			want: []string{"scores", "0"},
		},
		{
			name: "empty string is one empty segment",
			key:  "",
			want: []string{""},
		},
		{
			name: "int",
			key:  42,
			want: []string{"42"},
		},
		{
			name: "int64",
			key:  int64(7),
			want: []string{"7"},
		},
		{
			name: "uint8",
			key:  uint8(3),
			want: []string{"3"},
		},
		{
			name: "segment slice verbatim",
			key:  []string{"a", "b.c", "0"},
			want: []string{"a", "b.c", "0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segments(tt.key)
			if err != nil {
				t.Fatalf("Segments(%v): %v", tt.key, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSegmentsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		key  any
	}{
		{"struct", struct{}{}},
		{"nil", nil},
		{"float", 3.5},
		{"negative int", -1},
		{"empty slice", []string{}},
		{"int slice", []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Segments(tt.key)
			if !errors.Is(err, ErrUnsupportedKey) {
				t.Errorf("Segments(%v) err = %v, want ErrUnsupportedKey", tt.key, err)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		seg   string
		want  int
		index bool
	}{
		{"0", 0, true},
		{"17", 17, true},
		{"007", 7, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1x", 0, false},
		{"name", 0, false},
		{" 1", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.seg, func(t *testing.T) {
			got, ok := Index(tt.seg)
			if ok != tt.index || got != tt.want {
				t.Errorf("Index(%q) = (%d, %v), want (%d, %v)", tt.seg, got, ok, tt.want, tt.index)
			}
		})
	}
}
