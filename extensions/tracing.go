// Package extensions holds optional, database-agnostic diagnostic hooks
// for pico. They are plain helpers rather than a registered middleware
// chain — the engine itself has no extension point in its probe path, so
// these are meant to be called by the host program around its own probes.
package extensions

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Tracer times a named probe and logs its outcome through logrus, the way
// a host program instruments calls into the engine from the outside.
type Tracer struct {
	logger *logrus.Logger
}

// NewTracer builds a Tracer. A nil logger falls back to logrus's standard
// logger.
func NewTracer(logger *logrus.Logger) *Tracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Tracer{logger: logger}
}

// Trace runs fn, logging its name and duration, and its error if any. It is
// meant to wrap a single Query.Call/Fallible.Call from the outside.
func (t *Tracer) Trace(name string, fn func() error) error {
	start := time.Now()
	t.logger.WithField("probe", name).Debug("probe starting")
	err := fn()
	duration := time.Since(start)
	fields := logrus.Fields{"probe": name, "duration": duration}
	if err != nil {
		fields["error"] = err.Error()
		t.logger.WithFields(fields).Warn("probe failed")
	} else {
		t.logger.WithFields(fields).Debug("probe completed")
	}
	return err
}
