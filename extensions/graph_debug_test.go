package extensions

import (
	"strings"
	"testing"

	"github.com/picolang/pico"
)

func TestGraphDebugRendersDependents(t *testing.T) {
	db, err := pico.NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	root := pico.NewQuery0[int]("gd-root", func(db *pico.Database) int { return 1 })
	dependent := pico.NewQuery0[int]("gd-dependent", func(db *pico.Database) int {
		r := root.Call(db)
		return *r.Lookup(db) + 1
	})

	rootRef := root.Call(db)
	dependent.Call(db)

	// Retain gives us an exported handle to the root's DerivedNodeId without
	// reaching into unexported fields from outside the package.
	handle := pico.Retain(db, rootRef, func() pico.MemoRef[int] { return root.Call(db) })

	debug := NewGraphDebug(db)
	out := debug.Render(handle.ID())
	if !strings.Contains(out, "Detailed view:") {
		t.Fatalf("Render output missing detailed view section:\n%s", out)
	}
}

func TestGraphDebugEmptyGraph(t *testing.T) {
	db, err := pico.NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	debug := NewGraphDebug(db)
	out := debug.Render(pico.DerivedNodeId(0))
	if !strings.Contains(out, "empty") {
		t.Fatalf("expected an empty-graph message, got:\n%s", out)
	}
}
