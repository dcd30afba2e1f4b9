package pico

import "sort"

// RetainedQuery is an application-registered GC root: a derived node that
// must survive collection until explicitly released.
type RetainedQuery struct {
	ID             DerivedNodeId
	RetentionEpoch Epoch
}

// GCStats summarizes one sweep, logged at Info level.
type GCStats struct {
	Before    int
	Survived  int
	Reclaimed int
}

// Retain registers id as a GC root. It survives collection (along with its
// full transitive dependency chain) until Release is called.
func (db *Database) Retain(id DerivedNodeId) {
	db.retained[id] = db.epoch
}

// Release removes id from the retained set. It may still survive a
// subsequent sweep if it is reachable from another root or is within the
// LRU window, but is no longer guaranteed to.
func (db *Database) Release(id DerivedNodeId) {
	delete(db.retained, id)
}

// IsRetained reports whether id is currently a GC root.
func (db *Database) IsRetained(id DerivedNodeId) bool {
	_, ok := db.retained[id]
	return ok
}

// CollectGarbage runs one sweep:
//
//  1. Reachable set = transitive closure of the retained roots, union the
//     nodes the configured LRU cache still holds (it evicts least-recently
//     touched entries on its own as the cache fills, so "whatever golang-lru
//     still has" already implements "top-K most-recently-accessed"), union
//     anything touched within MinRetainedEpochs of the current epoch.
//  2. Allocate a new Generation and copy survivors into it, preserving
//     updatedEpoch/verifiedEpoch verbatim (the GC invariant: a retained node
//     re-probed after GC must not appear to have changed).
//  3. Swap the new generation in. Because dependency edges are addressed by
//     content-hash DerivedNodeId rather than raw arena slot, no dependency
//     list needs rewriting during the copy — only the slot lookup table
//     (nodeIndex) is rebuilt.
func (db *Database) CollectGarbage() GCStats {
	before := db.gen.derivedNodes.Len()

	roots := make([]DerivedNodeId, 0, len(db.retained))
	for id := range db.retained {
		roots = append(roots, id)
	}
	reachable := db.reachableFrom(roots)

	// MinRetainedEpochs == 0 disables the recency window entirely; without
	// that, a database whose sources never changed (epoch still at its
	// starting value) would see every node as "recently touched" and the
	// sweep would reclaim nothing.
	protectSince := db.epoch + 1
	if db.config.MinRetainedEpochs > 0 {
		protectSince = firstEpoch
		if db.epoch > db.config.MinRetainedEpochs {
			protectSince = db.epoch - db.config.MinRetainedEpochs
		}
	}

	for id, idx := range db.gen.nodeIndex {
		if reachable[id] {
			continue
		}
		if _, inLRU := db.lru.Peek(id); inLRU {
			reachable[id] = true
			continue
		}
		node := db.gen.derivedNodes.Get(idx)
		if node.lastAccessEpoch >= protectSince {
			reachable[id] = true
		}
	}

	order := db.topoOrderSurvivors(reachable)

	newGen := newGeneration(db.nextGen)
	db.nextGen++

	survivingLRU := make([]DerivedNodeId, 0, len(order))
	for _, id := range order {
		oldIdx := db.gen.nodeIndex[id]
		node := *db.gen.derivedNodes.Get(oldIdx)
		newIdx := newGen.derivedNodes.Push(node)
		newGen.nodeIndex[id] = newIdx
		if _, ok := db.lru.Peek(id); ok {
			survivingLRU = append(survivingLRU, id)
		}
	}

	db.gen = newGen
	db.lru.Purge()
	for _, id := range survivingLRU {
		db.lru.Add(id, struct{}{})
	}

	db.gcSweeps++
	stats := GCStats{Before: before, Survived: len(order), Reclaimed: before - len(order)}
	db.logger.WithFields(logFields{
		"before":    stats.Before,
		"survived":  stats.Survived,
		"reclaimed": stats.Reclaimed,
		"gen":       db.gen.id,
	}).Info("garbage collection sweep")
	return stats
}

// topoOrderSurvivors returns the surviving node ids in an order where every
// node appears after everything it depends on, so that copying them in
// sequence into the new generation never needs a forward reference. A
// recursive depth-first post-order walk suffices since the dependency graph
// is acyclic by construction.
func (db *Database) topoOrderSurvivors(reachable map[DerivedNodeId]bool) []DerivedNodeId {
	visited := make(map[DerivedNodeId]bool, len(reachable))
	order := make([]DerivedNodeId, 0, len(reachable))

	ids := make([]DerivedNodeId, 0, len(reachable))
	for id := range reachable {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var visit func(id DerivedNodeId)
	visit = func(id DerivedNodeId) {
		if visited[id] {
			return
		}
		visited[id] = true
		idx, ok := db.gen.nodeIndex[id]
		if !ok {
			return
		}
		node := db.gen.derivedNodes.Get(idx)
		for _, dep := range node.dependencies {
			if dep.Kind == depTargetDerived && reachable[dep.DerivedID] {
				visit(dep.DerivedID)
			}
		}
		order = append(order, id)
	}
	for _, id := range ids {
		visit(id)
	}
	return order
}
