// Package pico is an incremental computation engine: it memoizes pure
// functions over a versioned database of source inputs and re-executes a
// computation only when one of its transitive dependencies has changed.
//
// # Overview
//
// Pico organizes code around three core concepts:
//
//  1. Sources: externally-supplied inputs keyed by a stable Key
//  2. Queries: memoized functions whose reads are tracked as dependencies
//  3. The Database: the epoch clock, memo cache and garbage collector
//
// # Basic Usage
//
// Declare a source type and register a query over it:
//
//	type File struct {
//	    Path     string
//	    Contents string
//	}
//
//	func (f File) SourceKey() pico.Key {
//	    return pico.NewKey(f.Path)
//	}
//
//	lineCount := pico.NewQuery1[pico.SourceId[File], int](
//	    "lineCount",
//	    func(db *pico.Database, id pico.SourceId[File]) int {
//	        return strings.Count(pico.GetSource(db, id).Contents, "\n")
//	    },
//	)
//
// Feed it inputs and probe:
//
//	db, _ := pico.NewDatabase()
//	id := pico.SetSource(db, File{Path: "a.txt", Contents: "one\ntwo\n"})
//	ref := lineCount.Call(db, id)
//	n := *ref.Lookup(db)
//
// A second Call with the same arguments is a cache probe, not a fresh
// execution. After a SetSource the next probe re-validates the cached node
// dependency by dependency, re-executing only what actually needs to run;
// a re-execution whose output equals the cached value stops invalidation
// from propagating further downstream (early cutoff).
//
// # Memory
//
// Derived nodes live in append-only arenas grouped into a Generation.
// Retain pins a node (and its transitive dependencies) across
// CollectGarbage sweeps; everything else survives on recency alone. A
// sweep swaps in a fresh Generation, so MemoRef handles minted before it
// fail detectably instead of reading reclaimed slots; field projections from
// Split2/Split3/TryOk are not checked this way.
//
// # Concurrency
//
// The engine is single-threaded cooperative: probes run on the caller's
// goroutine to completion, and mutation (SetSource, RemoveSource,
// CollectGarbage) must not overlap with reads. There is no internal
// locking.
package pico
