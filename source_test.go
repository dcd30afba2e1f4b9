package pico

import (
	"errors"
	"testing"
)

func TestSetSourceUnchangedValueDoesNotBumpBirthEpoch(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	k := SetSource(db, strSource{Key: "k", Value: "same"})
	epochAfterFirst := db.Epoch()
	birthAfterFirst, _ := db.sourceBirthEpoch(k.Key())

	// Re-Set with byte-identical content: the epoch always advances (the
	// source was touched), but birthEpoch must not, since nothing a reader
	// observes actually changed.
	k = SetSource(db, strSource{Key: "k", Value: "same"})
	if db.Epoch() != epochAfterFirst+1 {
		t.Fatalf("epoch did not advance on re-Set")
	}
	birthAfterSecond, _ := db.sourceBirthEpoch(k.Key())
	if birthAfterSecond != birthAfterFirst {
		t.Fatalf("birthEpoch changed on an unchanged re-Set: %d -> %d", birthAfterFirst, birthAfterSecond)
	}
}

func TestGetSourceUnknownPanics(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	id := NewSourceId[strSource](strSource{Key: "never-set"})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected GetSource on an unset key to panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected the panic value to be an error, got %T: %v", r, r)
		}
		var unkErr *UnknownSourceError
		if !errors.As(err, &unkErr) {
			t.Fatalf("expected an *UnknownSourceError in the chain, got %T: %v", r, r)
		}
	}()
	GetSource(db, id)
}

func TestReaderNotReExecutedWhenSourceValueUnchanged(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	executions := 0
	reader := NewQuery1[SourceId[strSource], int]("reader", func(db *Database, id SourceId[strSource]) int {
		executions++
		return len(GetSource(db, id).Value)
	})

	k := SetSource(db, strSource{Key: "k", Value: "abc"})
	reader.Call(db, k)
	if executions != 1 {
		t.Fatalf("executions = %d, want 1", executions)
	}

	k = SetSource(db, strSource{Key: "k", Value: "abc"})
	reader.Call(db, k)
	if executions != 1 {
		t.Fatalf("executions after an unchanged re-Set = %d, want 1", executions)
	}
}
