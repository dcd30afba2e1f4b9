package pico

// DerivedNode is one memoized function call's cache entry. Invariant
// maintained throughout: updatedEpoch <= verifiedEpoch <= current epoch.
type DerivedNode struct {
	id    DerivedNodeId
	value DynEq

	dependencies []Dependency

	verifiedEpoch   Epoch
	updatedEpoch    Epoch
	lastAccessEpoch Epoch

	inProgress bool
	validating bool

	// execute re-runs the memoized function body and returns its new,
	// boxed value. It is stashed on the node (rather than threaded through
	// every revalidation call) because re-validation of a *dependency* only
	// has the dependency's DerivedNodeId to go on, not the original typed
	// call site that produced it.
	execute func() DynEq
}

// probeNode is the single entry point every generated Query/Fallible
// wrapper calls: look up an existing node and bring it up to date, or
// create and execute one for the first time.
func (db *Database) probeNode(id DerivedNodeId, exec func() DynEq) (genID uint64, slot int) {
	if idx, ok := db.gen.nodeIndex[id]; ok {
		node := db.gen.derivedNodes.Get(idx)
		if node.inProgress {
			db.logger.WithField("node", id).Error("cyclic dependency")
			panic(newCyclicDependency(id))
		}
		node.execute = exec
		db.ensureValid(id, node)
		db.depStack.record(Dependency{Kind: depTargetDerived, DerivedID: id, TimeVerified: node.verifiedEpoch})
		db.touch(id, node)

		// Re-validation may have re-executed dependencies that created new
		// nodes, so the high-water check applies here too; the node itself
		// was just touched and is always in the LRU window, so it survives
		// any sweep this triggers.
		db.maybeCollect()
		if finalIdx, ok := db.gen.nodeIndex[id]; ok {
			return db.gen.id, finalIdx
		}
		return db.probeNode(id, exec)
	}

	idx := db.gen.derivedNodes.Push(DerivedNode{id: id, execute: exec})
	node := db.gen.derivedNodes.Get(idx)
	db.gen.nodeIndex[id] = idx

	val := db.executeTracked(id, node)
	node.value = val
	node.updatedEpoch = db.epoch
	node.verifiedEpoch = db.epoch
	node.lastAccessEpoch = db.epoch

	db.logger.WithField("node", id).Debug("probe: first execution")
	db.depStack.record(Dependency{Kind: depTargetDerived, DerivedID: id, TimeVerified: db.epoch})
	db.touch(id, node)

	db.maybeCollect()
	// maybeCollect may have swapped in a new generation; re-resolve this
	// node's coordinates in it rather than handing back a slot from an
	// arena that is no longer current.
	if finalIdx, ok := db.gen.nodeIndex[id]; ok {
		return db.gen.id, finalIdx
	}
	return db.probeNode(id, exec)
}

// ensureValid brings node up to date as of the current epoch, either by
// confirming every dependency is clean (re-validation) or by re-executing
// and applying early cutoff. It recurses into dependency derived nodes via
// the same function, which is how re-validation propagates recursively
// through the dependency graph.
func (db *Database) ensureValid(id DerivedNodeId, node *DerivedNode) {
	if node.verifiedEpoch == db.epoch {
		return
	}
	if node.validating {
		db.logger.WithField("node", id).Error("cyclic dependency during re-validation")
		panic(newCyclicDependency(id))
	}

	node.validating = true
	// Reset via defer, not straight-line code: a dependency's re-execution
	// can panic out of dependenciesClean, and a node left marked validating
	// would report a phantom cycle on the next probe.
	defer func() { node.validating = false }()
	clean := db.dependenciesClean(node)

	if clean {
		node.verifiedEpoch = db.epoch
		db.touch(id, node)
		db.logger.WithField("node", id).Debug("probe: clean re-validation")
		return
	}

	old := node.value
	newVal := db.executeTracked(id, node)
	if old.Equal(newVal) {
		node.verifiedEpoch = db.epoch
		db.logger.WithField("node", id).Debug("probe: re-executed, early cutoff")
	} else {
		node.value = newVal
		node.updatedEpoch = db.epoch
		node.verifiedEpoch = db.epoch
		db.logger.WithField("node", id).Debug("probe: re-executed, value changed")
	}
	// Touch, not a bare lastAccessEpoch write: a node reached only as some
	// other node's dependency never passes through probeNode, and the sweep
	// reads LRU membership as the recency signal, so the two must never
	// diverge.
	db.touch(id, node)
}

// dependenciesClean reports whether every recorded dependency of node is
// still clean as of db.epoch.
func (db *Database) dependenciesClean(node *DerivedNode) bool {
	for _, dep := range node.dependencies {
		switch dep.Kind {
		case depTargetSource:
			birth, ok := db.sourceBirthEpoch(dep.SourceKey)
			if !ok || birth > dep.TimeVerified {
				return false
			}
		case depTargetDerived:
			depIdx, ok := db.gen.nodeIndex[dep.DerivedID]
			if !ok {
				return false
			}
			depNode := db.gen.derivedNodes.Get(depIdx)
			if depNode.inProgress {
				db.logger.WithField("node", dep.DerivedID).Error("cyclic dependency during re-validation")
				panic(newCyclicDependency(dep.DerivedID))
			}
			db.ensureValid(dep.DerivedID, depNode)
			if depNode.updatedEpoch > dep.TimeVerified {
				return false
			}
		}
	}
	return true
}

// executeTracked runs node.execute with a fresh dependency frame,
// marks node in-progress for the duration (enabling cycle detection), and
// poisons the node (removes it from the generation's index entirely) if
// exec panics: a panic during re-execution must never leave a
// partially-updated node behind.
func (db *Database) executeTracked(id DerivedNodeId, node *DerivedNode) (result DynEq) {
	node.inProgress = true
	db.depStack.push()

	defer func() {
		if r := recover(); r != nil {
			discarded := db.depStack.pop()
			db.frames.put(discarded)
			delete(db.gen.nodeIndex, id)
			db.logger.WithField("node", id).Error("execution panicked, node poisoned")
			panic(r)
		}
	}()

	result = node.execute()
	deps := db.depStack.pop()
	node.dependencies = deps
	node.inProgress = false
	return result
}

// touch records recency for the GC's LRU policy.
func (db *Database) touch(id DerivedNodeId, node *DerivedNode) {
	node.lastAccessEpoch = db.epoch
	db.lru.Add(id, struct{}{})
}
