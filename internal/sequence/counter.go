package sequence

import (
	"sync"
	"time"
)

// Counter is the in-memory allocator used by the memory storage driver. It
// gives the same uniqueness and ordering guarantees as the database-backed
// allocator within a single process.
type Counter struct {
	mu   sync.Mutex
	last map[string]int64
}

// NewCounter constructs a Counter.
func NewCounter() *Counter {
	return &Counter{last: make(map[string]int64)}
}

// Next allocates the next code for the class at the given time.
func (c *Counter) Next(class Class, at time.Time) string {
	scope := ScopeFor(class, at)
	c.mu.Lock()
	defer c.mu.Unlock()
	key := string(class) + ":" + scope
	c.last[key]++
	return Format(class, scope, c.last[key])
}

// Seed raises a scope's counter to at least the value encoded in latestCode.
func (c *Counter) Seed(class Class, scope, latestCode string) {
	seed := SeedValue(class, scope, latestCode)
	c.mu.Lock()
	defer c.mu.Unlock()
	key := string(class) + ":" + scope
	if seed > c.last[key] {
		c.last[key] = seed
	}
}
