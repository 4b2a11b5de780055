package pathobj

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/pathobj/pathobj/debug"
	"github.com/pathobj/pathobj/ir"
)

// Patch applies an RFC 6902 JSON Patch to the document. The tree is
// replaced in place, so child views sharing the root observe the result.
// Opaque leaves must be JSON-marshalable for patching to work.
func (o *Object) Patch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	d, err := json.Marshal(ir.ToAny(o.node))
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patching %s with %s\n", d, patch)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return err
	}
	return o.reload(out)
}

// MergePatch applies an RFC 7386 merge patch to the document.
func (o *Object) MergePatch(doc []byte) error {
	d, err := json.Marshal(ir.ToAny(o.node))
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(d, doc)
	if err != nil {
		return err
	}
	return o.reload(out)
}

func (o *Object) reload(d []byte) error {
	v, err := decodeJSON(d)
	if err != nil {
		return err
	}
	o.node.ReplaceWith(ir.FromAny(v))
	return nil
}
