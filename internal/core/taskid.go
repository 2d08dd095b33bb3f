package core

import (
	"sync"
	"time"
)

// TaskIDGenerator defines the interface for producing unique task ids.
type TaskIDGenerator interface {
	// NextID returns a new id, strictly greater than every id previously
	// returned or passed to Seed.
	NextID() int64
	// Seed records last as already taken so later ids are issued after it.
	Seed(last int64)
}

// clockIDGenerator issues ids derived from the current time in milliseconds.
// Two ids requested within the same millisecond would collide, so the
// generator falls back to last+1 whenever the clock has not moved past it.
type clockIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDGenerator creates a TaskIDGenerator based on wall-clock
// milliseconds since the Unix epoch. A nil now uses time.Now.
func NewClockIDGenerator(now func() time.Time) TaskIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &clockIDGenerator{now: now}
}

func (g *clockIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func (g *clockIDGenerator) Seed(last int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if last > g.last {
		g.last = last
	}
}

// sequentialIDGenerator issues consecutive integers.
type sequentialIDGenerator struct {
	mu   sync.Mutex
	next int64
}

// NewSequentialIDGenerator creates a TaskIDGenerator whose first id is start
// (or 1 when start < 1).
func NewSequentialIDGenerator(start int64) TaskIDGenerator {
	if start < 1 {
		start = 1
	}
	return &sequentialIDGenerator{next: start}
}

func (g *sequentialIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}

func (g *sequentialIDGenerator) Seed(last int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if last >= g.next {
		g.next = last + 1
	}
}
