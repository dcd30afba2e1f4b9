package pico

// depTargetKind discriminates a Dependency's target: an external source or
// another derived node.
type depTargetKind uint8

const (
	depTargetSource depTargetKind = iota
	depTargetDerived
)

// Dependency is a single edge recorded while a memoized function executes:
// either a read of a source (by Key) or a nested memoized call (by
// DerivedNodeId), stamped with the epoch at which it was observed. Reading
// the same target twice in one execution appends two Dependency records;
// the list is never deduplicated, and re-validation tolerates the
// duplicates trivially since each is checked independently.
type Dependency struct {
	Kind         depTargetKind
	SourceKey    Key
	DerivedID    DerivedNodeId
	TimeVerified Epoch
}

// dependencyStack is the per-database stack of in-flight dependency
// collectors, one frame per nested memoized call currently executing.
// Because the engine is single-threaded cooperative, one stack per Database
// suffices; there is no per-goroutine indirection.
type dependencyStack struct {
	frames [][]Dependency
	pool   *framePool
}

// push opens a new frame for a memoized call about to execute, drawing its
// backing slice from the pool when one is attached.
func (s *dependencyStack) push() {
	var frame []Dependency
	if s.pool != nil {
		frame = s.pool.get()
	}
	s.frames = append(s.frames, frame)
}

// pop closes the current frame and returns its recorded dependencies. On a
// normal return the caller (executeTracked) keeps the slice and stores it on
// the node; on a panic the caller discards it and hands it back to the pool
// via framePool.put instead.
func (s *dependencyStack) pop() []Dependency {
	n := len(s.frames) - 1
	if n < 0 {
		panic(newDependencyStackUnderflow())
	}
	top := s.frames[n]
	s.frames = s.frames[:n]
	return top
}

// record appends dep to the top frame. push_checked semantics: outside any
// memoized call (empty stack, e.g. a bare Get from the caller's own code)
// this is a silent no-op, so pure reads outside a memoized context do not
// allocate a frame they'll never pop.
func (s *dependencyStack) record(dep Dependency) {
	n := len(s.frames) - 1
	if n < 0 {
		return
	}
	s.frames[n] = append(s.frames[n], dep)
}

// depth reports how many nested memoized calls are currently executing.
func (s *dependencyStack) depth() int {
	return len(s.frames)
}
