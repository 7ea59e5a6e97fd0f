package tracker

import (
	"time"

	"github.com/ericyan/omniplayer/loop"
)

// DebounceDelay is how long media must stall before it counts as
// buffering.
const DebounceDelay = 500 * time.Millisecond

// BufferingState is the state of a Buffering tracker.
type BufferingState uint

// Buffering tracker states.
const (
	Idle BufferingState = iota
	Debouncing
	Stalled
)

// String returns the string representation of the state.
func (s BufferingState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case Stalled:
		return "buffering"
	default:
		return "unknown"
	}
}

// Buffering detects stalls that last longer than DebounceDelay.
type Buffering struct {
	sched loop.Scheduler
	delay time.Duration

	// OnChange is called when the buffering indicator turns on or off.
	OnChange func(buffering bool)

	state BufferingState
	timer loop.Timer
}

// NewBuffering returns an idle tracker.
func NewBuffering(sched loop.Scheduler) *Buffering {
	return &Buffering{sched: sched, delay: DebounceDelay}
}

// State returns the current state.
func (b *Buffering) State() BufferingState {
	return b.state
}

// Buffering reports whether the loading indicator should be shown.
func (b *Buffering) Buffering() bool {
	return b.state == Stalled
}

// Waiting records that media stalled. Only the first stall of a cycle
// starts the debounce timer.
func (b *Buffering) Waiting() {
	if b.state != Idle {
		return
	}
	b.state = Debouncing

	var t loop.Timer
	t = b.sched.AfterFunc(b.delay, func() {
		if b.timer != t {
			return
		}
		b.timer = nil
		b.state = Stalled

		if b.OnChange != nil {
			b.OnChange(true)
		}
	})
	b.timer = t
}

// Resolve records that media is playing again, or a seek completed. The
// tracker returns to idle whatever its previous state.
func (b *Buffering) Resolve() {
	b.Stop()

	was := b.state
	b.state = Idle

	if was == Stalled && b.OnChange != nil {
		b.OnChange(false)
	}
}

// Stop cancels the debounce timer without changing the indicator.
func (b *Buffering) Stop() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
