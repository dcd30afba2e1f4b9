package pico

import "time"

// PassStatus records the outcome of one Pass run.
type PassStatus int

const (
	PassOK PassStatus = iota
	PassPanicked
)

// PassTrace records when a Pass ran and how it finished, for diagnostics: a
// host compiler composing several passes together still wants to know which
// ones actually re-ran on a given invocation and how long they took, even
// though each pass is itself just a memoized function underneath.
type PassTrace struct {
	Name      string
	Start     time.Time
	End       time.Time
	Status    PassStatus
	Recovered any
}

// Pass names a composition of one or more memoized calls so that a host
// program can run it and inspect a trace afterward, without the engine
// itself caring about pass composition (the engine only ever sees
// individual probes).
type Pass[R any] struct {
	name string
	run  func(*Database) R
}

// NewPass names run, e.g. a function that chains several Query.Call
// invocations together and returns a final artifact.
func NewPass[R any](name string, run func(*Database) R) *Pass[R] {
	return &Pass[R]{name: name, run: run}
}

// Run executes the pass and returns its result and trace. On a panic it
// logs the pass name and panic value at Error and re-panics with the same
// value; passes never swallow programmer errors, and in that case no trace
// is returned to the caller.
func (p *Pass[R]) Run(db *Database) (result R, trace PassTrace) {
	trace.Name = p.name
	trace.Start = time.Now()
	defer func() {
		trace.End = time.Now()
		if r := recover(); r != nil {
			trace.Status = PassPanicked
			trace.Recovered = r
			db.logger.WithFields(logFields{"pass": p.name, "panic": r}).Error("pass panicked")
			panic(r)
		}
	}()
	result = p.run(db)
	trace.Status = PassOK
	db.logger.WithFields(logFields{"pass": p.name, "duration": time.Since(trace.Start)}).Debug("pass completed")
	return result, trace
}
