package pico

// arenaBlockSize is the number of elements per arena block. Blocks are
// allocated at full capacity up front so that a pointer handed out by Get
// never moves, even as later Push calls grow the arena.
const arenaBlockSize = 256

// Arena is an append-only bump store. Addresses handed out by Get remain
// valid for the lifetime of the arena: growth never reallocates or moves
// existing elements, because each block is grown to its capacity exactly
// once and subsequent blocks are independent slices.
type Arena[T any] struct {
	blocks [][]T
	length int
}

// NewArena constructs an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Push appends v and returns its stable slot index within the arena.
func (a *Arena[T]) Push(v T) int {
	blockIdx := a.length / arenaBlockSize
	for blockIdx >= len(a.blocks) {
		a.blocks = append(a.blocks, make([]T, 0, arenaBlockSize))
	}
	a.blocks[blockIdx] = append(a.blocks[blockIdx], v)
	idx := a.length
	a.length++
	return idx
}

// Get returns a stable pointer to the element at idx. The pointer remains
// valid across further Push calls on the same arena.
func (a *Arena[T]) Get(idx int) *T {
	return &a.blocks[idx/arenaBlockSize][idx%arenaBlockSize]
}

// Len reports how many elements have been pushed.
func (a *Arena[T]) Len() int {
	return a.length
}

// Index is a handle into an Arena that additionally records the generation
// it was minted from, so that a handle surviving a garbage-collection sweep
// (which allocates a fresh Generation) can be detected as stale rather than
// silently dereferencing the wrong slot. MemoRef carries one as its arena
// coordinates; Lookup checks GenID against the current generation before
// touching Slot.
type Index[T any] struct {
	genID uint64
	slot  int
}

// Slot exposes the raw arena slot, for callers that have already matched
// GenID against the owning generation.
func (i Index[T]) Slot() int { return i.slot }

// GenID reports the generation this index was minted against.
func (i Index[T]) GenID() uint64 { return i.genID }
