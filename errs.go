package pathobj

import (
	"errors"
	"fmt"

	"github.com/pathobj/pathobj/keypath"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidIndex    = errors.New("invalid index")

	// ErrUnsupportedKey re-exports the splitter's sentinel so callers can
	// match every error kind from one package.
	ErrUnsupportedKey = keypath.ErrUnsupportedKey
)

// KeyError reports an object field missing during resolution. Path locates
// the object that was missing the key.
type KeyError struct {
	Key  string
	Path string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q not found at %s", e.Key, e.Path)
}

func (e *KeyError) Unwrap() error { return ErrKeyNotFound }

// IndexError reports an array index out of bounds during resolution,
// exposing the offending index and the array length.
type IndexError struct {
	Index int
	Len   int
	Path  string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for list of length %d at %s", e.Index, e.Len, e.Path)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func invalidIndexErr(seg string, at string) error {
	return fmt.Errorf("%w: %q is not a list index at %s", ErrInvalidIndex, seg, at)
}

func descendErr(seg string, t fmt.Stringer, at string) error {
	return fmt.Errorf("%w: cannot descend into %s at %s looking for %q", ErrKeyNotFound, t, at, seg)
}
