package pathobj

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSON(t *testing.T) {
	o, err := FromJSON([]byte(`{"a": 1, "b": [true, null, 2.5], "c": {"d": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": int64(1),
		"b": []any{true, nil, 2.5},
		"c": map[string]any{"d": "x"},
	}
	if diff := cmp.Diff(want, o.ToPlain()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if v, err := o.Get("b.2"); err != nil || v != 2.5 {
		t.Errorf("Get(b.2) = (%v, %v)", v, err)
	}
}

func TestFromJSONBigInt(t *testing.T) {
	// past float64's exact integer range, the value must survive intact
	o, err := FromJSON([]byte(`{"n": 9007199254740993}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := o.Get("n"); v != int64(9007199254740993) {
		t.Errorf("Get(n) = %v (%T)", v, v)
	}
}

func TestFromJSONInvalid(t *testing.T) {
	if _, err := FromJSON([]byte(`{`)); err == nil {
		t.Error("no error for truncated input")
	}
}

func TestFromJSONOptions(t *testing.T) {
	o, err := FromJSON([]byte(`{}`), RaiseOnMissing(false))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := o.Get("missing"); v != nil || err != nil {
		t.Errorf("option not applied: (%v, %v)", v, err)
	}
}

func TestFromYAML(t *testing.T) {
	doc := []byte(`
name: John
address:
  city: New York
scores: [85, 90, 78]
`)
	o, err := FromYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if v, err := o.Get("address.city"); err != nil || v != "New York" {
		t.Errorf("Get = (%v, %v)", v, err)
	}
	if !o.Contains("scores.2") {
		t.Error("scores.2 missing")
	}
	if o.Len() != 3 {
		t.Errorf("Len = %d", o.Len())
	}

	if _, err := FromYAML([]byte("a: [1, 2")); err == nil {
		t.Error("no error for bad YAML")
	}
}

func TestUnsupportedKeyFromLoadedDoc(t *testing.T) {
	o, err := FromJSON([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Get(3.14); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("err = %v", err)
	}
}
