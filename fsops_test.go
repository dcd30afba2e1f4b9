package pico

import (
	"bytes"
	"testing"
)

func TestFileSystemOperationHoldsContentHandle(t *testing.T) {
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	content := NewQuery0[FileContent]("generated-file", func(db *Database) FileContent {
		return FileContent{Bytes: []byte("hello")}
	})

	op := FileSystemOperation{Kind: WriteFile, Path: "out.txt", Content: content.Call(db)}
	got := op.Content.mustLookup(db)
	if !bytes.Equal(got.Bytes, []byte("hello")) {
		t.Fatalf("content = %q, want hello", got.Bytes)
	}
}
