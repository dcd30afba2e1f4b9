// Code in this file follows the same generated-shim shape the engine's
// memoized-function attribute would expand to if Go had one: one Query/
// Fallible type per arity, each a thin wrapper that fingerprints its
// arguments, probes the derived-node table, and returns a MemoRef.
//
//go:generate true

package pico

// Query0 registers a zero-argument memoized function: name must be unique
// among all registrations sharing a Database (it is part of the
// DerivedNodeId fingerprint).
type Query0[R any] struct {
	name string
	f    func(*Database) R
}

func NewQuery0[R any](name string, f func(*Database) R) *Query0[R] {
	return &Query0[R]{name: name, f: f}
}

func (q *Query0[R]) Call(db *Database) MemoRef[R] {
	id := computeDerivedNodeID(q.name, nil)
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db))
	})
	return MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
}

// Query1 registers a one-argument memoized function.
type Query1[D1 any, R any] struct {
	name string
	f    func(*Database, D1) R
}

func NewQuery1[D1 any, R any](name string, f func(*Database, D1) R) *Query1[D1, R] {
	return &Query1[D1, R]{name: name, f: f}
}

func (q *Query1[D1, R]) Call(db *Database, a1 D1) MemoRef[R] {
	p1 := db.internParam(a1)
	id := computeDerivedNodeID(q.name, []ParamId{p1})
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db, a1))
	})
	return MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
}

// Query2 registers a two-argument memoized function.
type Query2[D1 any, D2 any, R any] struct {
	name string
	f    func(*Database, D1, D2) R
}

func NewQuery2[D1 any, D2 any, R any](name string, f func(*Database, D1, D2) R) *Query2[D1, D2, R] {
	return &Query2[D1, D2, R]{name: name, f: f}
}

func (q *Query2[D1, D2, R]) Call(db *Database, a1 D1, a2 D2) MemoRef[R] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2})
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db, a1, a2))
	})
	return MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
}

// Query3 registers a three-argument memoized function.
type Query3[D1 any, D2 any, D3 any, R any] struct {
	name string
	f    func(*Database, D1, D2, D3) R
}

func NewQuery3[D1 any, D2 any, D3 any, R any](name string, f func(*Database, D1, D2, D3) R) *Query3[D1, D2, D3, R] {
	return &Query3[D1, D2, D3, R]{name: name, f: f}
}

func (q *Query3[D1, D2, D3, R]) Call(db *Database, a1 D1, a2 D2, a3 D3) MemoRef[R] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	p3 := db.internParam(a3)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2, p3})
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db, a1, a2, a3))
	})
	return MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
}

// Query4 registers a four-argument memoized function.
type Query4[D1 any, D2 any, D3 any, D4 any, R any] struct {
	name string
	f    func(*Database, D1, D2, D3, D4) R
}

func NewQuery4[D1 any, D2 any, D3 any, D4 any, R any](name string, f func(*Database, D1, D2, D3, D4) R) *Query4[D1, D2, D3, D4, R] {
	return &Query4[D1, D2, D3, D4, R]{name: name, f: f}
}

func (q *Query4[D1, D2, D3, D4, R]) Call(db *Database, a1 D1, a2 D2, a3 D3, a4 D4) MemoRef[R] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	p3 := db.internParam(a3)
	p4 := db.internParam(a4)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2, p3, p4})
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db, a1, a2, a3, a4))
	})
	return MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
}

// Raw0 registers a zero-argument memoized function whose result is returned
// by value rather than wrapped in a MemoRef, for outputs that must never
// leak a reference into the cache.
type Raw0[R comparable] struct {
	name string
	f    func(*Database) R
}

func NewRaw0[R comparable](name string, f func(*Database) R) *Raw0[R] {
	return &Raw0[R]{name: name, f: f}
}

func (q *Raw0[R]) Call(db *Database) R {
	id := computeDerivedNodeID(q.name, nil)
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db))
	})
	ref := MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
	return *ref.Lookup(db)
}

// Raw1 is Raw0's one-argument counterpart.
type Raw1[D1 any, R comparable] struct {
	name string
	f    func(*Database, D1) R
}

func NewRaw1[D1 any, R comparable](name string, f func(*Database, D1) R) *Raw1[D1, R] {
	return &Raw1[D1, R]{name: name, f: f}
}

func (q *Raw1[D1, R]) Call(db *Database, a1 D1) R {
	p1 := db.internParam(a1)
	id := computeDerivedNodeID(q.name, []ParamId{p1})
	genID, slot := db.probeNode(id, func() DynEq {
		return newDynEq(q.f(db, a1))
	})
	ref := MemoRef[R]{db: db, kind: refKindDerived, idx: Index[R]{genID: genID, slot: slot}, id: id}
	return *ref.Lookup(db)
}

// Fallible0 registers a zero-argument fallible memoized function: its
// (R, error) result is folded into a FallibleResult[R] and cached/compared
// like any other value.
type Fallible0[R any] struct {
	name string
	f    func(*Database) (R, error)
}

func NewFallible0[R any](name string, f func(*Database) (R, error)) *Fallible0[R] {
	return &Fallible0[R]{name: name, f: f}
}

func (q *Fallible0[R]) Call(db *Database) MemoRef[FallibleResult[R]] {
	id := computeDerivedNodeID(q.name, nil)
	genID, slot := db.probeNode(id, func() DynEq {
		v, err := q.f(db)
		return newDynEq(FallibleResult[R]{Value: v, Err: err})
	})
	return MemoRef[FallibleResult[R]]{db: db, kind: refKindDerived, idx: Index[FallibleResult[R]]{genID: genID, slot: slot}, id: id}
}

// Fallible1 registers a one-argument fallible memoized function: its
// (R, error) result is folded into a FallibleResult[R] and cached/compared
// like any other value.
type Fallible1[D1 any, R any] struct {
	name string
	f    func(*Database, D1) (R, error)
}

func NewFallible1[D1 any, R any](name string, f func(*Database, D1) (R, error)) *Fallible1[D1, R] {
	return &Fallible1[D1, R]{name: name, f: f}
}

func (q *Fallible1[D1, R]) Call(db *Database, a1 D1) MemoRef[FallibleResult[R]] {
	p1 := db.internParam(a1)
	id := computeDerivedNodeID(q.name, []ParamId{p1})
	genID, slot := db.probeNode(id, func() DynEq {
		v, err := q.f(db, a1)
		return newDynEq(FallibleResult[R]{Value: v, Err: err})
	})
	return MemoRef[FallibleResult[R]]{db: db, kind: refKindDerived, idx: Index[FallibleResult[R]]{genID: genID, slot: slot}, id: id}
}

// Fallible2 is Fallible1's two-argument counterpart.
type Fallible2[D1 any, D2 any, R any] struct {
	name string
	f    func(*Database, D1, D2) (R, error)
}

func NewFallible2[D1 any, D2 any, R any](name string, f func(*Database, D1, D2) (R, error)) *Fallible2[D1, D2, R] {
	return &Fallible2[D1, D2, R]{name: name, f: f}
}

func (q *Fallible2[D1, D2, R]) Call(db *Database, a1 D1, a2 D2) MemoRef[FallibleResult[R]] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2})
	genID, slot := db.probeNode(id, func() DynEq {
		v, err := q.f(db, a1, a2)
		return newDynEq(FallibleResult[R]{Value: v, Err: err})
	})
	return MemoRef[FallibleResult[R]]{db: db, kind: refKindDerived, idx: Index[FallibleResult[R]]{genID: genID, slot: slot}, id: id}
}

// Fallible3 is Fallible1's three-argument counterpart.
type Fallible3[D1 any, D2 any, D3 any, R any] struct {
	name string
	f    func(*Database, D1, D2, D3) (R, error)
}

func NewFallible3[D1 any, D2 any, D3 any, R any](name string, f func(*Database, D1, D2, D3) (R, error)) *Fallible3[D1, D2, D3, R] {
	return &Fallible3[D1, D2, D3, R]{name: name, f: f}
}

func (q *Fallible3[D1, D2, D3, R]) Call(db *Database, a1 D1, a2 D2, a3 D3) MemoRef[FallibleResult[R]] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	p3 := db.internParam(a3)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2, p3})
	genID, slot := db.probeNode(id, func() DynEq {
		v, err := q.f(db, a1, a2, a3)
		return newDynEq(FallibleResult[R]{Value: v, Err: err})
	})
	return MemoRef[FallibleResult[R]]{db: db, kind: refKindDerived, idx: Index[FallibleResult[R]]{genID: genID, slot: slot}, id: id}
}

// Fallible4 is Fallible1's four-argument counterpart.
type Fallible4[D1 any, D2 any, D3 any, D4 any, R any] struct {
	name string
	f    func(*Database, D1, D2, D3, D4) (R, error)
}

func NewFallible4[D1 any, D2 any, D3 any, D4 any, R any](name string, f func(*Database, D1, D2, D3, D4) (R, error)) *Fallible4[D1, D2, D3, D4, R] {
	return &Fallible4[D1, D2, D3, D4, R]{name: name, f: f}
}

func (q *Fallible4[D1, D2, D3, D4, R]) Call(db *Database, a1 D1, a2 D2, a3 D3, a4 D4) MemoRef[FallibleResult[R]] {
	p1 := db.internParam(a1)
	p2 := db.internParam(a2)
	p3 := db.internParam(a3)
	p4 := db.internParam(a4)
	id := computeDerivedNodeID(q.name, []ParamId{p1, p2, p3, p4})
	genID, slot := db.probeNode(id, func() DynEq {
		v, err := q.f(db, a1, a2, a3, a4)
		return newDynEq(FallibleResult[R]{Value: v, Err: err})
	})
	return MemoRef[FallibleResult[R]]{db: db, kind: refKindDerived, idx: Index[FallibleResult[R]]{genID: genID, slot: slot}, id: id}
}
