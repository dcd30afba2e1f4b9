package pico

import "testing"

func TestDependentGraphReverseAdjacency(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	root := NewQuery0[int]("dg-root", func(db *Database) int { return 1 })
	leaf1 := NewQuery0[int]("dg-leaf1", func(db *Database) int {
		return root.Call(db).mustLookup(db) + 1
	})
	leaf2 := NewQuery0[int]("dg-leaf2", func(db *Database) int {
		return root.Call(db).mustLookup(db) + 2
	})

	rootID := root.Call(db).nodeID()
	leaf1ID := leaf1.Call(db).nodeID()
	leaf2ID := leaf2.Call(db).nodeID()

	graph := db.DependentGraph()
	dependents := graph[rootID]
	if len(dependents) != 2 {
		t.Fatalf("dependents of root = %v, want 2 entries", dependents)
	}
	seen := map[DerivedNodeId]bool{dependents[0]: true, dependents[1]: true}
	if !seen[leaf1ID] || !seen[leaf2ID] {
		t.Fatalf("dependents of root = %v, want leaf1 and leaf2", dependents)
	}
}

func TestReachableFromTransitiveClosure(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	base := NewQuery0[int]("rf-base", func(db *Database) int { return 1 })
	mid := NewQuery0[int]("rf-mid", func(db *Database) int {
		return base.Call(db).mustLookup(db) + 1
	})
	top := NewQuery0[int]("rf-top", func(db *Database) int {
		return mid.Call(db).mustLookup(db) + 1
	})

	topRef := top.Call(db)
	baseID := base.Call(db).nodeID()
	midID := mid.Call(db).nodeID()

	reachable := db.reachableFrom([]DerivedNodeId{topRef.nodeID()})
	if !reachable[topRef.nodeID()] || !reachable[midID] || !reachable[baseID] {
		t.Fatalf("reachableFrom did not include the whole chain: %v", reachable)
	}
}
