package pico

// internCache is the dedicated structure backing InternValue/InternRef:
// values are deduplicated by DynEq equality rather than by
// (function, params) identity, which is what makes it suitable for sharing
// large repeated structures (e.g. type descriptors) across unrelated call
// sites. It lives alongside, not inside, a Generation and is never touched
// by CollectGarbage: interned values are typically small, shared constants
// (type descriptors, canonical literals) rather than per-probe results, so
// unlike the derived-node table they are retained for the database's whole
// lifetime instead of being swept.
type internCache struct {
	genID   uint64
	arena   *Arena[DynEq]
	buckets map[uint64][]int
}

func newInternCache() *internCache {
	return &internCache{
		arena:   NewArena[DynEq](),
		buckets: make(map[uint64][]int),
	}
}

// intern stores boxed (v boxed under its concrete type by the caller, so a
// later Lookup reads back the same *T) unless an equal value is already
// present, and returns the slot.
func (c *internCache) intern(v any, boxed DynEq) int {
	fp := fingerprint(v)
	for _, idx := range c.buckets[fp] {
		if c.arena.Get(idx).Equal(boxed) {
			return idx
		}
	}
	idx := c.arena.Push(boxed)
	c.buckets[fp] = append(c.buckets[fp], idx)
	return idx
}

// InternValue installs v in the database's intern cache, returning a stable
// handle keyed by DynEq equality: a later InternValue of an equal value
// returns a handle into the same slot rather than allocating a new one.
func InternValue[T any](db *Database, v T) MemoRef[T] {
	idx := db.interns.intern(v, newDynEq(v))
	return MemoRef[T]{db: db, kind: refKindIntern, idx: Index[T]{genID: db.interns.genID, slot: idx}}
}

// InternRef interns *v by value. A subsequent InternRef of a value already
// interned (including one obtained via a prior InternValue's Lookup) must
// land in the existing slot; since interning keys purely on DynEq equality
// of the dereferenced value, this holds regardless of whether the pointer
// itself was freshly allocated.
func InternRef[T any](db *Database, v *T) MemoRef[T] {
	return InternValue(db, *v)
}
