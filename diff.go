package pathobj

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pathobj/pathobj/debug"
	"github.com/pathobj/pathobj/encode"
)

// Diff returns a line-based textual diff between the encoded forms of a
// and b. Unchanged lines are prefixed with a space, lines only in a with
// "-", lines only in b with "+". Equal documents produce all-context
// output.
func Diff(a, b *Object) string {
	at := encode.MustString(a.node) + "\n"
	bt := encode.MustString(b.node) + "\n"
	if debug.Diff() {
		debug.Logf("diffing:\n%s----\n%s", at, bt)
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	sb := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
