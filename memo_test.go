package pico

import "testing"

type pair struct {
	A string
	B int
}

func TestSplit2NoClone(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	makePair := NewQuery0[pair]("makePair", func(db *Database) pair {
		return pair{A: "hello", B: 42}
	})

	ref := makePair.Call(db)
	first, second := Split2[pair, string, int](ref)

	if got := *first.Lookup(db); got != "hello" {
		t.Fatalf("first = %q, want hello", got)
	}
	if got := *second.Lookup(db); got != 42 {
		t.Fatalf("second = %d, want 42", got)
	}

	// Projected handles must point directly at the fields stored inside the
	// cached value, which is only possible if split() never copied the
	// payload out; their address must also be stable across calls.
	if first.Lookup(db) != &ref.Lookup(db).A {
		t.Fatalf("first does not point at the A field inside the cached pair")
	}
	if first.Lookup(db) != first.Lookup(db) {
		t.Fatalf("first.Lookup address not stable across calls")
	}
}

func TestTryOk(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	ok := NewFallible1[bool, string]("fallibleOk", func(db *Database, shouldFail bool) (string, error) {
		if shouldFail {
			return "", &UnknownSourceError{}
		}
		return "value", nil
	})

	good := ok.Call(db, false)
	val, err := TryOk(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *val.Lookup(db); got != "value" {
		t.Fatalf("value = %q, want value", got)
	}

	bad := ok.Call(db, true)
	if _, err := TryOk(bad); err == nil {
		t.Fatalf("expected an error from the Err arm")
	}
}

func TestInternIdempotence(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	m1 := InternValue(db, "foo")
	m2 := InternRef(db, m1.Lookup(db))

	if m1.idx.Slot() != m2.idx.Slot() {
		t.Fatalf("InternRef of an already-interned value landed in a different slot: %d vs %d", m1.idx.Slot(), m2.idx.Slot())
	}

	m3 := InternValue(db, "bar")
	if m1.idx.Slot() == m3.idx.Slot() {
		t.Fatalf("two distinct values interned into the same slot")
	}
}

func TestReferenceStability(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	q := NewQuery0[string]("const", func(db *Database) string { return "stable" })
	ref := q.Call(db)

	p1 := ref.Lookup(db)
	p2 := ref.Lookup(db)
	if p1 != p2 {
		t.Fatalf("Lookup returned different addresses across calls")
	}
}
