package pathobj

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	a := New(sampleDoc())
	b := New(sampleDoc())
	out := Diff(a, b)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if !strings.HasPrefix(line, " ") {
			t.Errorf("equal docs produced non-context line %q", line)
		}
	}
}

func TestDiffChanged(t *testing.T) {
	a := New(sampleDoc())
	b := New(sampleDoc())
	if err := b.Set("name", "Jane"); err != nil {
		t.Fatal(err)
	}
	out := Diff(a, b)
	if !strings.Contains(out, "-  \"name\": \"John\"") {
		t.Errorf("missing deletion line in:\n%s", out)
	}
	if !strings.Contains(out, "+  \"name\": \"Jane\"") {
		t.Errorf("missing insertion line in:\n%s", out)
	}
	if !strings.Contains(out, " {") {
		t.Errorf("missing context line in:\n%s", out)
	}
}

func TestDiffAddedKey(t *testing.T) {
	a := New(sampleDoc())
	b := New(sampleDoc())
	if err := b.Set("address.zip", "10001"); err != nil {
		t.Fatal(err)
	}
	out := Diff(a, b)
	if !strings.Contains(out, "+") || !strings.Contains(out, "10001") {
		t.Errorf("added key not reported:\n%s", out)
	}
	if strings.Contains(out, "-  \"name\"") {
		t.Errorf("unrelated line reported as removed:\n%s", out)
	}
}
