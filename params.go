package pico

// internParam fingerprints v into a ParamId and interns its type-erased
// payload into the current generation's param arena, so multiple call
// sites with equal parameters share one slot. The slot's
// payload is kept alive for as long as the generation lives, which is what
// lets a later re-execution compare a fresh argument to the one a stale
// derived node was built from, if ever needed for diagnostics.
func (db *Database) internParam(v any) ParamId {
	id := newParamID(v)
	if _, ok := db.gen.paramIndex[id]; !ok {
		idx := db.gen.params.Push(paramSlot{id: id, value: newDynEq(v)})
		db.gen.paramIndex[id] = idx
	}
	return id
}
