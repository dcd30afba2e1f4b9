package pico

// Generation is a pair of arenas (params, derived nodes) held inside the
// database. The engine may have multiple live generations
// in the sense that stale handles from a previous one still exist in
// caller code; only one is ever current. A garbage-collection sweep
// allocates a new Generation and migrates survivors into it.
type Generation struct {
	id           uint64
	params       *Arena[paramSlot]
	derivedNodes *Arena[DerivedNode]

	// paramIndex and nodeIndex are scoped lookup tables from content-hash
	// identity to arena slot; they are rebuilt fresh for each generation.
	paramIndex map[ParamId]int
	nodeIndex  map[DerivedNodeId]int
}

// paramSlot is one interned parameter value.
type paramSlot struct {
	id    ParamId
	value DynEq
}

func newGeneration(id uint64) *Generation {
	return &Generation{
		id:           id,
		params:       NewArena[paramSlot](),
		derivedNodes: NewArena[DerivedNode](),
		paramIndex:   make(map[ParamId]int),
		nodeIndex:    make(map[DerivedNodeId]int),
	}
}
