package game

import (
	"context"
	"sync"
	"time"
)

// collector tracks one round's expected human submissions and gates the
// round loop on either completion or the turn deadline.
type collector struct {
	mu       sync.Mutex
	expected int
	received int
	done     chan struct{}
}

// newCollector fixes the expected count at construction. A round with no
// human non-judge players completes immediately.
func newCollector(expected int) *collector {
	c := &collector{
		expected: expected,
		done:     make(chan struct{}),
	}
	if expected <= 0 {
		close(c.done)
	}
	return c
}

// record counts one finalized human choice, releasing the wait when the
// expected count is reached
func (c *collector) record() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.received++
	if c.received == c.expected {
		close(c.done)
	}
}

// wait blocks until every expected submission arrived or the deadline
// elapsed, whichever happens first. It returns true when all submissions
// arrived in time.
func (c *collector) wait(ctx context.Context, deadline time.Duration) bool {
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case <-c.done:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}
