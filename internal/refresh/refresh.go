// Package refresh serializes fetch-then-compute cycles for a screen
// snapshot. Starting a new cycle cancels the previous in-flight one
// and invalidates its commit, so a superseded fetch can never
// overwrite newer state no matter which response arrives last.
package refresh

import (
	"context"
	"sync"
)

// Coordinator tracks the latest fetch cycle. The zero value is ready
// to use. Safe for concurrent use.
type Coordinator struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin starts a new cycle, cancelling any in-flight one. The returned
// context is cancelled when a later cycle begins or the parent is
// done; the generation token must be passed back to Commit.
func (c *Coordinator) Begin(parent context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.gen++
	c.cancel = cancel
	return ctx, c.gen
}

// Commit runs apply only if gen still identifies the latest cycle,
// and reports whether it did. A cycle that was superseded while its
// fetch was in flight commits nothing.
func (c *Coordinator) Commit(gen uint64, apply func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	apply()
	return true
}

// Stop cancels the current cycle without starting a new one.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}
