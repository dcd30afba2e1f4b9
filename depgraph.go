package pico

// reachableFrom computes the transitive closure of derived-node dependency
// edges starting at roots, using an explicit stack rather than recursion so
// that pathologically deep dependency chains don't blow the Go stack. This
// is the forward direction (a node to what it depends on), which is what
// the garbage collector needs to preserve a retained node's entire input
// chain.
func (db *Database) reachableFrom(roots []DerivedNodeId) map[DerivedNodeId]bool {
	reachable := make(map[DerivedNodeId]bool, len(roots))
	stack := append([]DerivedNodeId(nil), roots...)

	for len(stack) > 0 {
		n := len(stack) - 1
		id := stack[n]
		stack = stack[:n]

		if reachable[id] {
			continue
		}
		reachable[id] = true

		idx, ok := db.gen.nodeIndex[id]
		if !ok {
			continue
		}
		node := db.gen.derivedNodes.Get(idx)
		for _, dep := range node.dependencies {
			if dep.Kind == depTargetDerived && !reachable[dep.DerivedID] {
				stack = append(stack, dep.DerivedID)
			}
		}
	}
	return reachable
}

// dependentGraph builds the reverse adjacency map (provider -> the derived
// nodes that read it) by scanning every live node's dependency list once.
// Dependencies are only ever stored on the consumer side, so this inversion
// is how a debugging tool answers "who depends on this node" without the
// engine maintaining back-pointers during normal operation.
// DependentGraph exposes the reverse adjacency map for diagnostics tools
// such as extensions.GraphDebug.
func (db *Database) DependentGraph() map[DerivedNodeId][]DerivedNodeId {
	return db.dependentGraph()
}

func (db *Database) dependentGraph() map[DerivedNodeId][]DerivedNodeId {
	graph := make(map[DerivedNodeId][]DerivedNodeId)
	for id, idx := range db.gen.nodeIndex {
		node := db.gen.derivedNodes.Get(idx)
		if _, ok := graph[id]; !ok {
			graph[id] = nil
		}
		for _, dep := range node.dependencies {
			if dep.Kind == depTargetDerived {
				graph[dep.DerivedID] = append(graph[dep.DerivedID], id)
			}
		}
	}
	return graph
}
