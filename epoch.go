package pico

// Epoch is the engine's monotonic logical clock. It is advanced once for
// every mutation of the source registry (Set, Remove) and never decreases.
// An Epoch of zero never appears on a live object: the clock starts at 1.
type Epoch uint64

// firstEpoch is the value a freshly created Database starts at.
const firstEpoch Epoch = 1
