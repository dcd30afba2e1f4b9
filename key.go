package pico

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key is a 64-bit fingerprint used to address sources.
type Key uint64

// ParamId is a 64-bit fingerprint of a single parameter value.
type ParamId uint64

// DerivedNodeId fingerprints (function-identity, ordered ParamIds). Two
// calls producing equal DerivedNodeIds are treated as semantically
// interchangeable: the second is always a cache probe, never a fresh call.
type DerivedNodeId uint64

// fingerprint hashes an arbitrary, possibly-heterogeneous sequence of parts
// into a 64-bit value using xxhash. It is used for Key, ParamId and
// DerivedNodeId alike. Each part is written with its dynamic type name and a
// '|' terminator, so parts of different types (e.g. a string function name
// vs. a ParamId argument, as in computeDerivedNodeID below) never read alike.
func fingerprint(parts ...any) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		fmt.Fprintf(d, "%T:%#v|", p, p)
	}
	return d.Sum64()
}

// newKey fingerprints a source's declared key field into a Key.
func newKey(v any) Key {
	return Key(fingerprint(v))
}

// NewKey is newKey exported for host code implementing Source: a SourceKey
// method typically just fingerprints one identifying field via NewKey.
func NewKey(v any) Key {
	return newKey(v)
}

// newParamID fingerprints a single memoized-function argument.
func newParamID(v any) ParamId {
	return ParamId(fingerprint(v))
}

// computeDerivedNodeID fingerprints a function identity together with its
// ordered, already-interned parameter ids.
func computeDerivedNodeID(fnName string, paramIDs []ParamId) DerivedNodeId {
	parts := make([]any, 0, len(paramIDs)+1)
	parts = append(parts, fnName)
	for _, p := range paramIDs {
		parts = append(parts, p)
	}
	return DerivedNodeId(fingerprint(parts...))
}
