package pico

import "reflect"

// DynEq is a type-erased equality capability. The derived-node table stores
// heterogeneous output values (one node's output might be a string, another
// an AST, another an int); DynEq lets the engine compare two such values for
// the early-cutoff test without knowing either's concrete type ahead of
// time.
//
// A DynEq always boxes its payload behind a pointer (via newDynEq), so that
// the address returned by dynEqValue is stable across repeated lookups —
// this is what lets MemoRef.Lookup hand out the same *T every time without
// re-boxing or copying.
type DynEq struct {
	typ reflect.Type
	ptr any
}

// newDynEq boxes v, allocating exactly once.
func newDynEq[T any](v T) DynEq {
	p := new(T)
	*p = v
	return DynEq{typ: reflect.TypeOf(p), ptr: p}
}

// Equal reports whether d and o box equal values of the same concrete type.
// A zero-value DynEq (no payload boxed yet) is never equal to anything,
// including another zero value, so a freshly created node is always treated
// as "changed" against it.
func (d DynEq) Equal(o DynEq) bool {
	if d.typ == nil || o.typ == nil || d.typ != o.typ {
		return false
	}
	dv := reflect.ValueOf(d.ptr).Elem().Interface()
	ov := reflect.ValueOf(o.ptr).Elem().Interface()
	return reflect.DeepEqual(dv, ov)
}

// dynEqValue recovers the boxed *T. Panics if d was not boxed from a T —
// callers control this entirely (the query registration helpers only ever
// read back the type they boxed), so this is a programmer-error path, not a
// user-facing one.
func dynEqValue[T any](d DynEq) *T {
	return d.ptr.(*T)
}
