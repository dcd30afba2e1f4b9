package pico

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/picolang/pico/pkg/meta"
	"github.com/sirupsen/logrus"
)

// Database is the engine: the current epoch, the source registry, the
// current Generation, the dependency-tracking stack, the retained-query
// set and its LRU companion, and configuration. It is not safe for
// concurrent mutation: the engine is single-threaded cooperative; callers
// wanting shared reads across goroutines must serialize writers themselves.
type Database struct {
	epoch Epoch

	sources map[Key]*sourceEntry
	gen     *Generation
	nextGen uint64

	depStack dependencyStack
	frames   *framePool

	retained map[DerivedNodeId]Epoch
	lru      *lru.Cache[DerivedNodeId, struct{}]
	interns  *internCache

	config *Config
	logger *logrus.Logger

	gcSweeps int

	// tags carries free-form diagnostic metadata about the database itself
	// (not any one node) — e.g. a host compiler stamping which config file
	// produced this instance.
	tags map[string]any
}

// NewDatabase constructs an empty Database ready to accept sources and
// memoized probes.
func NewDatabase(opts ...Option) (*Database, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[DerivedNodeId, struct{}](cfg.MaxNodes)
	if err != nil {
		return nil, err
	}

	db := &Database{
		epoch:    firstEpoch,
		sources:  make(map[Key]*sourceEntry),
		gen:      newGeneration(0),
		nextGen:  1,
		frames:   newFramePool(),
		retained: make(map[DerivedNodeId]Epoch),
		lru:      cache,
		interns:  newInternCache(),
		config:   cfg,
		logger:   cfg.Logger,
		tags:     make(map[string]any),
	}
	db.depStack.pool = db.frames
	return db, nil
}

// Tag attaches a diagnostic value under key, e.g. "config.path" or
// "run.started_at".
func (db *Database) Tag(key string, value any) {
	meta.Set(db.tags, key, value)
}

// GetTag retrieves a previously attached diagnostic value.
func GetTag[T any](db *Database, key string) (T, error) {
	return meta.Get[T](db.tags, key)
}

// Epoch reports the current logical time.
func (db *Database) Epoch() Epoch { return db.epoch }

// GenID reports the current generation's identity, for comparison against
// a held Index or MemoRef.
func (db *Database) GenID() uint64 { return db.gen.id }

// NodeCount reports the number of live derived nodes in the current
// generation.
func (db *Database) NodeCount() int { return db.gen.derivedNodes.Len() }

// GCSweeps reports how many garbage-collection sweeps have run.
func (db *Database) GCSweeps() int { return db.gcSweeps }

// maybeCollect triggers a GC sweep if the live node count has crossed the
// configured high-water mark. Called at the end of
// every probe, new node or existing. Sweeps are deferred while any memoized call is
// still executing: a mid-execution sweep would migrate the in-flight node
// before its value and dependency list are written, leaving the surviving
// copy half-built. The deferral is bounded — the top-level probe that
// started the in-flight chain runs maybeCollect again once the stack
// unwinds to empty.
func (db *Database) maybeCollect() {
	if db.depStack.depth() > 0 {
		return
	}
	if db.gen.derivedNodes.Len() > db.config.MaxNodes {
		db.CollectGarbage()
	}
}
