package pico

// Source is implemented by types usable as externally-supplied inputs. The
// key identifies the logical source slot: two Source values with equal
// keys are the same logical source, and a later Set replaces rather than
// duplicates the earlier one. Conventionally the key is derived from a
// single "identity" field of the struct (the source's declared #[key]
// field, in the original attribute-based design); here it is just whatever
// SourceKey chooses to hash.
type Source interface {
	SourceKey() Key
}

// SourceId is a typed handle to a source registry entry: the Key plus a
// phantom type parameter so that Get is statically tied to the value type
// that was Set under that key.
type SourceId[V any] struct {
	key Key
}

// Key exposes the underlying fingerprint, e.g. for logging or for building
// a Dependency record manually.
func (id SourceId[V]) Key() Key { return id.key }

// NewSourceId builds a lookup handle for a source without touching the
// registry, e.g. to probe whether a value with this key is currently set.
func NewSourceId[V Source](v V) SourceId[V] {
	return SourceId[V]{key: v.SourceKey()}
}

// sourceEntry is the registry's stored state for one Key.
type sourceEntry struct {
	value      any
	dyn        DynEq
	birthEpoch Epoch
}

// SetSource inserts or replaces the source keyed by value.SourceKey(),
// always bumping the database epoch. birthEpoch is advanced to the new
// epoch only when the value actually differs (under DynEq) from whatever
// was there before; an unchanged re-Set still bumps the epoch (the source
// "touched") but leaves birthEpoch alone, which is exactly what lets
// dependants of this source see it as clean on their next re-validation.
func SetSource[V Source](db *Database, value V) SourceId[V] {
	key := value.SourceKey()
	newDyn := newDynEq(value)

	db.epoch++
	entry, existed := db.sources[key]
	if !existed || !entry.dyn.Equal(newDyn) {
		db.sources[key] = &sourceEntry{value: value, dyn: newDyn, birthEpoch: db.epoch}
		db.logger.WithFields(logFields{"key": key, "epoch": db.epoch, "changed": true}).Debug("source set")
	} else {
		entry.value = value
		db.logger.WithFields(logFields{"key": key, "epoch": db.epoch, "changed": false}).Debug("source set")
	}
	return SourceId[V]{key: key}
}

// GetSource looks up a source by handle, recording a Dependency on it if
// called from inside a memoized function. Panics with UnknownSourceError if
// the key was never Set, or has since been Removed.
func GetSource[V any](db *Database, id SourceId[V]) V {
	entry, ok := db.sources[id.key]
	if !ok {
		db.logger.WithField("key", id.key).Error("get on unknown source")
		panic(newUnknownSource(id.key))
	}
	db.depStack.record(Dependency{Kind: depTargetSource, SourceKey: id.key, TimeVerified: db.epoch})
	return entry.value.(V)
}

// RemoveSource deletes the entry and bumps the epoch. Any derived node that
// read it is forced to discover the removal (and re-execute) at its next
// probe, via the re-validation "birth_epoch lookup fails" path.
func RemoveSource[V any](db *Database, id SourceId[V]) {
	db.epoch++
	delete(db.sources, id.key)
	db.logger.WithFields(logFields{"key": id.key, "epoch": db.epoch}).Debug("source removed")
}

// sourceBirthEpoch reports the birth epoch of a still-present source, used
// by the re-validation protocol. ok is false if the source is gone.
func (db *Database) sourceBirthEpoch(key Key) (Epoch, bool) {
	entry, ok := db.sources[key]
	if !ok {
		return 0, false
	}
	return entry.birthEpoch, true
}

// logFields is a small alias so call sites read naturally; logrus.Fields is
// just map[string]any.
type logFields = map[string]any
