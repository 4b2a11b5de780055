// Package keypath normalizes compound keys into path segments.
//
// A compound key addresses a value at depth in a document tree and takes
// one of three shapes: a non-negative integer, a dot-separated string, or
// an explicit []string of segments. Splitting is purely lexical; whether a
// segment acts as an object field or an array index is decided later by the
// node it is resolved against.
package keypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedKey reports a compound key whose shape is not one of
// integer, string, or []string.
var ErrUnsupportedKey = errors.New("unsupported key kind")

// Segments splits a compound key into its ordered path segments.
//
//   - integer kinds become a single segment, e.g. 42 is ["42"]; negative
//     values are not addressable and are rejected
//   - strings split on "."; a literal dot inside a field name cannot be
//     escaped and always separates segments
//   - []string is used verbatim; must be non-empty
//
// The result is always non-empty on success. Note that splitting "" yields
// [""], a single empty segment, mirroring strings.Split.
func Segments(key any) ([]string, error) {
	switch k := key.(type) {
	case string:
		return strings.Split(k, "."), nil
	case []string:
		if len(k) == 0 {
			return nil, fmt.Errorf("%w: empty segment sequence", ErrUnsupportedKey)
		}
		return k, nil
	case int:
		return intSegment(int64(k))
	case int8:
		return intSegment(int64(k))
	case int16:
		return intSegment(int64(k))
	case int32:
		return intSegment(int64(k))
	case int64:
		return intSegment(k)
	case uint:
		return intSegment(int64(k))
	case uint8:
		return intSegment(int64(k))
	case uint16:
		return intSegment(int64(k))
	case uint32:
		return intSegment(int64(k))
	case uint64:
		return intSegment(int64(k))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}

func intSegment(k int64) ([]string, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative index %d", ErrUnsupportedKey, k)
	}
	return []string{strconv.FormatInt(k, 10)}, nil
}

// Index reports whether a segment is an array index candidate, and its
// value if so. Digit-only segments qualify; anything else, including
// segments with a sign or leading space, does not.
func Index(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}
