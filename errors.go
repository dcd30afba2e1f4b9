package pico

import (
	"fmt"

	"github.com/pkg/errors"
)

// Programmer errors. These are never returned; they are always raised via
// panic, wrapped with a stack trace so the causing probe is recoverable
// from a crash report. They indicate a bug in the caller, not a domain
// condition, and the engine never attempts to recover from them internally.

// CyclicDependencyError reports that a probe re-entered a node still marked
// in-progress, i.e. the dependency graph is not in fact acyclic.
type CyclicDependencyError struct {
	ID DerivedNodeId
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("pico: cyclic dependency detected at derived node %#x", uint64(e.ID))
}

func newCyclicDependency(id DerivedNodeId) error {
	return errors.WithStack(&CyclicDependencyError{ID: id})
}

// UnknownSourceError reports a Get against a Key that was never Set, or was
// Removed and not replaced.
type UnknownSourceError struct {
	Key Key
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("pico: unknown source %#x", uint64(e.Key))
}

func newUnknownSource(key Key) error {
	return errors.WithStack(&UnknownSourceError{Key: key})
}

// StaleIndexError reports that a handle (Index or MemoRef) was used after
// the generation it was minted from was swapped out by garbage collection.
type StaleIndexError struct {
	GenID uint64
}

func (e *StaleIndexError) Error() string {
	return fmt.Sprintf("pico: stale handle from generation %d used after garbage collection", e.GenID)
}

func newStaleIndex(genID uint64) error {
	return errors.WithStack(&StaleIndexError{GenID: genID})
}

// DependencyStackUnderflowError reports a pop() on an empty dependency
// stack, which can only happen if probe/executeTracked bookkeeping is
// unbalanced.
type DependencyStackUnderflowError struct{}

func (e *DependencyStackUnderflowError) Error() string {
	return "pico: dependency stack underflow"
}

func newDependencyStackUnderflow() error {
	return errors.WithStack(&DependencyStackUnderflowError{})
}
