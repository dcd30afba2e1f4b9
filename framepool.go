package pico

import "sync"

// framePool reuses dependency-stack frame slices across probes, avoiding an
// allocation on every memoized call for the common case of a small, bounded
// number of dependencies.
type framePool struct {
	pool sync.Pool
}

func newFramePool() *framePool {
	return &framePool{
		pool: sync.Pool{
			New: func() any {
				s := make([]Dependency, 0, 8)
				return &s
			},
		},
	}
}

func (p *framePool) get() []Dependency {
	s := p.pool.Get().(*[]Dependency)
	return (*s)[:0]
}

func (p *framePool) put(s []Dependency) {
	s = s[:0]
	p.pool.Put(&s)
}
