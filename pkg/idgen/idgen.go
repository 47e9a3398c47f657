// Package idgen issues timestamp-equivalent integer ids (Unix milliseconds).
//
// Ids are strictly increasing for the life of a Generator: when the clock has not moved
// past the last issued id, the next id is last+1. A batch of n ids is a contiguous range
// base, base+1, ..., base+n-1, so the index offset of a batch never collides with an
// earlier batch even when both were requested within the same millisecond.
package idgen

import (
	"sync"
	"time"
)

type Clock func() time.Time

type Generator struct {
	mu   sync.Mutex
	now  Clock
	last int64
}

func New() *Generator {
	return NewWithClock(time.Now)
}

func NewWithClock(now Clock) *Generator {
	return &Generator{now: now}
}

// Observe makes the generator skip every id up to and including id.
// Seeded records are observed at startup.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// Next issues a single id.
func (g *Generator) Next() int64 {
	return g.Reserve(1)
}

// Reserve issues n consecutive ids and returns the first. n < 1 reserves nothing and
// returns the next id that would be issued.
func (g *Generator) Reserve(n int) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := g.now().UnixMilli()
	if base <= g.last {
		base = g.last + 1
	}
	if n < 1 {
		return base
	}
	g.last = base + int64(n) - 1
	return base
}
