package testutil

import "sync"

// Counter wraps a two-argument function and records every call.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Counter struct {
	mu    sync.Mutex
	calls int64
	seen  map[[2]int32]int
}

// NewCounter creates a counter with no recorded calls.
func NewCounter() *Counter {
	return &Counter{seen: make(map[[2]int32]int)}
}

// Wrap returns f instrumented to record its inputs on c.
func (c *Counter) Wrap(f func(a, b int32) int32) func(a, b int32) int32 {
	return func(a, b int32) int32 {
		c.mu.Lock()
		c.calls++
		c.seen[[2]int32{a, b}]++
		c.mu.Unlock()
		return f(a, b)
	}
}

// Calls returns the number of calls so far.
func (c *Counter) Calls() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Seen returns how many times (a, b) was passed.
func (c *Counter) Seen(a, b int32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen[[2]int32{a, b}]
}

// Reset clears all recorded calls.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
	c.seen = make(map[[2]int32]int)
}
