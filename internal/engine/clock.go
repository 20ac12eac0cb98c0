// Package engine runs a game headlessly at a fixed frame rate.
// It owns the parts of the frame loop around Game.Step: polling input,
// observing quit, honouring terminal holds and throttling.
package engine

import (
	"context"
	"time"
)

// Clock abstracts time so the loop can run against the wall clock or a
// virtual one.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock is the wall clock.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// Sleep implements Clock.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// VirtualClock advances instantly when slept on. It is not safe for
// concurrent use.
type VirtualClock struct {
	now   time.Time
	Slept time.Duration // Total time slept
	Naps  int           // Number of Sleep calls with d > 0
}

// NewVirtualClock creates a virtual clock starting at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now implements Clock.
func (c *VirtualClock) Now() time.Time { return c.now }

// Sleep implements Clock.
func (c *VirtualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.now = c.now.Add(d)
		c.Slept += d
		c.Naps++
	}
	return nil
}

// Advance moves the clock forward without counting as sleep, simulating
// time spent working.
func (c *VirtualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
