package pico

// FileSystemOperation is the value type a surrounding compiler queues to
// describe filesystem effects it wants applied once a pass completes,
// referencing memoized file contents by handle rather than embedding them
// directly. The engine itself never performs any of these operations — no
// filesystem writer ships in this module; FileSystemOperation exists purely
// so that memoized functions have a value type to produce.
type FileSystemOperation struct {
	Kind    FileSystemOperationKind
	Path    string
	Content MemoRef[FileContent]
}

// FileSystemOperationKind enumerates the filesystem effect kinds a pass can
// queue.
type FileSystemOperationKind int

const (
	CreateDirectory FileSystemOperationKind = iota
	DeleteDirectory
	WriteFile
	DeleteFile
)

// FileContent is the payload a WriteFile operation's Content handle points
// at: raw bytes plus whatever encoding a memoized function chose to stamp
// on it.
type FileContent struct {
	Bytes []byte
}
