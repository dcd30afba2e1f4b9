package pico

import "reflect"

// fieldPointer takes the address of struct field fieldIndex inside s
// directly, via reflection, without ever calling .Interface() on the field
// itself (which would copy it) — only on the *pointer* to the field, which
// is cheap regardless of F's size. This is the mechanism Split2/Split3/
// TryOk rely on to avoid cloning.
func fieldPointer[S any, F any](s *S, fieldIndex int) any {
	v := reflect.ValueOf(s).Elem()
	return v.Field(fieldIndex).Addr().Interface().(*F)
}

// memoRefKind discriminates what storage a MemoRef actually points into.
type memoRefKind uint8

const (
	// refKindDerived points at a slot in the current generation's derived
	// node arena, addressed by DerivedNodeId.
	refKindDerived memoRefKind = iota
	// refKindIntern points at a slot in the intern cache.
	refKindIntern
	// refKindProjected is a raw pointer obtained via split()/TryOk(): it
	// bypasses arena lookups entirely, pointing directly at a field inside
	// an already-stored value.
	refKindProjected
)

// MemoRef is a borrow-safe handle into a cached value: conceptually
// (*Database, *DerivedNode, phantom T). Lookup is
// guaranteed by convention (not the Go type system, which has no borrow
// checker) to only be called while db is not being mutated; the engine
// never itself mutates a Database from within a probe, so this holds for
// any caller that does not call SetSource/RemoveSource/CollectGarbage while
// holding a MemoRef across the call. The arena coordinates are an
// Index[T], which is what makes a handle minted before a sweep detectably
// stale rather than a silent read of the wrong slot.
type MemoRef[T any] struct {
	db   *Database
	kind memoRefKind
	idx  Index[T]
	id   DerivedNodeId
	ptr  any // only set when kind == refKindProjected; a literal *T
}

// nodeID reports the DerivedNodeId backing this handle. Only meaningful for
// refKindDerived handles; used by Retain.
func (m MemoRef[T]) nodeID() DerivedNodeId { return m.id }

// Lookup returns the current value, panicking with StaleIndexError if the
// handle's generation is no longer current (i.e. a GC sweep happened since
// it was minted). Projected handles (from Split2/Split3/TryOk) carry no
// generation and are returned without this check.
func (m MemoRef[T]) Lookup(db *Database) *T {
	switch m.kind {
	case refKindProjected:
		return m.ptr.(*T)
	case refKindIntern:
		if m.idx.GenID() != db.interns.genID {
			db.logger.WithField("gen", m.idx.GenID()).Error("stale handle lookup")
			panic(newStaleIndex(m.idx.GenID()))
		}
		return dynEqValue[T](*db.interns.arena.Get(m.idx.Slot()))
	default:
		if m.idx.GenID() != db.gen.id {
			db.logger.WithField("gen", m.idx.GenID()).Error("stale handle lookup")
			panic(newStaleIndex(m.idx.GenID()))
		}
		node := db.gen.derivedNodes.Get(m.idx.Slot())
		return dynEqValue[T](node.value)
	}
}

// Split2 projects a two-field struct-valued MemoRef into per-field handles
// without cloning either field: it takes the address of each field directly
// inside the struct's storage, which is stable for as long as the backing
// generation is current.
func Split2[S any, A any, B any](m MemoRef[S]) (MemoRef[A], MemoRef[B]) {
	s := m.Lookup(m.db)
	return projectField[S, A](m, s, 0), projectField[S, B](m, s, 1)
}

// Split3 is Split2's three-field counterpart.
func Split3[S any, A any, B any, C any](m MemoRef[S]) (MemoRef[A], MemoRef[B], MemoRef[C]) {
	s := m.Lookup(m.db)
	return projectField[S, A](m, s, 0), projectField[S, B](m, s, 1), projectField[S, C](m, s, 2)
}

func projectField[S any, F any](m MemoRef[S], s *S, fieldIndex int) MemoRef[F] {
	ptr := fieldPointer[S, F](s, fieldIndex)
	return MemoRef[F]{db: m.db, kind: refKindProjected, ptr: ptr}
}

// FallibleResult is the boxed shape a query registered via Fallible1/
// Fallible2 produces: the engine treats it as an ordinary value for
// DynEq/early-cutoff purposes rather than special-casing the error arm.
type FallibleResult[T any] struct {
	Value T
	Err   error
}

// TryOk projects into the Ok arm of a fallible memo's result without
// cloning either arm: on success it returns a handle pointing directly at
// the Value field inside the already-stored FallibleResult; on failure it
// returns the zero MemoRef and the stored error.
func TryOk[T any](m MemoRef[FallibleResult[T]]) (MemoRef[T], error) {
	s := m.Lookup(m.db)
	if s.Err != nil {
		return MemoRef[T]{}, s.Err
	}
	ptr := fieldPointer[FallibleResult[T], T](s, 0)
	return MemoRef[T]{db: m.db, kind: refKindProjected, ptr: ptr}, nil
}
