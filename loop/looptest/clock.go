// Package looptest provides a manually driven loop.Scheduler for tests.
package looptest

import (
	"sort"
	"time"

	"github.com/ericyan/omniplayer/loop"
)

// Clock is a deterministic loop.Scheduler. Nothing runs until the test
// calls Flush or Advance.
type Clock struct {
	now    time.Duration
	seq    int
	queue  []func()
	timers []*timer
}

type timer struct {
	c     *Clock
	at    time.Duration
	seq   int
	delay time.Duration
	fn    func()
	live  bool
}

func (t *timer) Stop() bool {
	if !t.live {
		return false
	}
	t.live = false
	t.c.remove(t)

	return true
}

// New returns a clock at time zero.
func New() *Clock {
	return new(Clock)
}

// Post implements loop.Scheduler.
func (c *Clock) Post(fn func()) {
	c.queue = append(c.queue, fn)
}

// AfterFunc implements loop.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) loop.Timer {
	c.seq++
	t := &timer{c: c, at: c.now + d, seq: c.seq, delay: d, fn: fn, live: true}
	c.timers = append(c.timers, t)
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at == c.timers[j].at {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at < c.timers[j].at
	})

	return t
}

func (c *Clock) remove(t *timer) {
	for i, v := range c.timers {
		if v == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Flush runs posted tasks, including the ones they post, until the queue
// is empty. It returns the number of tasks run.
func (c *Clock) Flush() int {
	n := 0
	for len(c.queue) > 0 {
		fn := c.queue[0]
		c.queue = c.queue[1:]
		fn()
		n++
	}

	return n
}

// Advance moves the clock forward by d, firing due timers in order and
// flushing the queue after each one.
func (c *Clock) Advance(d time.Duration) {
	c.Flush()

	target := c.now + d
	for len(c.timers) > 0 && c.timers[0].at <= target {
		t := c.timers[0]
		c.timers = c.timers[1:]
		c.now = t.at
		t.live = false
		t.fn()
		c.Flush()
	}
	c.now = target
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Delays returns the durations live timers were scheduled with, in firing
// order.
func (c *Clock) Delays() []time.Duration {
	delays := make([]time.Duration, len(c.timers))
	for i, t := range c.timers {
		delays[i] = t.delay
	}

	return delays
}

// Queued returns the number of tasks waiting for Flush.
func (c *Clock) Queued() int {
	return len(c.queue)
}
