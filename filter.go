package rendercache

import (
	"context"
	"sync"
)

// Filter is one output transform in a render pipeline. It receives the output
// so far and returns the (possibly rewritten) output. Filters run in
// registration order.
type Filter func(ctx context.Context, id DocID, out []byte) []byte

type chainEntry struct {
	id int
	fn Filter
}

// FilterChain is the pluggable post-processing chain a host renderer applies
// to its output. The engine taps it with a scoped capture filter; hosts may
// register their own transforms alongside.
//
// Safe for concurrent use. The host render pipeline itself is assumed
// single-threaded per request.
type FilterChain struct {
	mu      sync.RWMutex
	next    int
	entries []chainEntry
}

// Append registers fn at the end of the chain and returns a remove func.
// Remove is idempotent and safe to call from a defer on any exit path.
func (c *FilterChain) Append(fn Filter) (remove func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.entries = append(c.entries, chainEntry{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			for i, e := range c.entries {
				if e.id == id {
					c.entries = append(c.entries[:i], c.entries[i+1:]...)
					break
				}
			}
			c.mu.Unlock()
		})
	}
}

// Apply runs out through every registered filter in order.
func (c *FilterChain) Apply(ctx context.Context, id DocID, out []byte) []byte {
	c.mu.RLock()
	fns := make([]Filter, len(c.entries))
	for i, e := range c.entries {
		fns[i] = e.fn
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		out = fn(ctx, id, out)
	}
	return out
}

// Len returns the number of registered filters.
func (c *FilterChain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
