package pico

// RetainedHandle is a typed GC-root controller: it pairs a DerivedNodeId
// with a Database and offers the small lifecycle an application needs
// around a query it wants to survive collection indefinitely (a "pinned"
// computation), without the caller having to juggle raw DerivedNodeIds.
type RetainedHandle[T any] struct {
	db  *Database
	id  DerivedNodeId
	get func() MemoRef[T]
}

// Retain registers ref's backing node as a GC root and returns a handle
// that can later Get the current value or Release the root.
func Retain[T any](db *Database, ref MemoRef[T], reget func() MemoRef[T]) *RetainedHandle[T] {
	id := ref.nodeID()
	db.Retain(id)
	return &RetainedHandle[T]{db: db, id: id, get: reget}
}

// Get re-probes the underlying query (which re-validates or re-executes as
// needed) and returns its current value.
func (h *RetainedHandle[T]) Get() *T {
	ref := h.get()
	return ref.Lookup(h.db)
}

// Release unregisters the GC root. The node may still survive a subsequent
// sweep via the LRU policy, but is no longer guaranteed to.
func (h *RetainedHandle[T]) Release() {
	h.db.Release(h.id)
}

// ID exposes the underlying DerivedNodeId, e.g. for diagnostics.
func (h *RetainedHandle[T]) ID() DerivedNodeId { return h.id }
