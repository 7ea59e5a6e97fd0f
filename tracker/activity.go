// Package tracker derives UI state from playback events and timers.
package tracker

import (
	"time"

	"github.com/ericyan/omniplayer/loop"
)

// DefaultInactive is the inactivity timeout used when none is configured.
const DefaultInactive = 3000 * time.Millisecond

// Activity tracks whether the user is considered active.
//
// It starts active. Arm schedules the inactivity timer; when the timer
// expires OnExpire is called, and a following Blur turns the tracker
// inactive only if the media is playing at that moment. Focus makes it
// active again and re-arms.
type Activity struct {
	sched   loop.Scheduler
	timeout time.Duration
	playing func() bool

	// OnExpire is called when the inactivity timer fires.
	OnExpire func()
	// OnChange is called when the active state flips.
	OnChange func(active bool)

	active bool
	timer  loop.Timer
}

// NewActivity returns an active tracker. playing reports whether media is
// currently playing, i.e. neither paused nor ended.
func NewActivity(sched loop.Scheduler, timeout time.Duration, playing func() bool) *Activity {
	if timeout <= 0 {
		timeout = DefaultInactive
	}

	return &Activity{
		sched:   sched,
		timeout: timeout,
		playing: playing,
		active:  true,
	}
}

// Active reports whether the user is considered active.
func (a *Activity) Active() bool {
	return a.active
}

// Timeout returns the inactivity timeout.
func (a *Activity) Timeout() time.Duration {
	return a.timeout
}

// Armed reports whether the inactivity timer is live.
func (a *Activity) Armed() bool {
	return a.timer != nil
}

// Arm cancels any live inactivity timer and starts a new one.
func (a *Activity) Arm() {
	a.Stop()

	var t loop.Timer
	t = a.sched.AfterFunc(a.timeout, func() {
		if a.timer == t {
			a.timer = nil
		}
		if a.OnExpire != nil {
			a.OnExpire()
		}
	})
	a.timer = t
}

// Focus marks the user active and re-arms the timer.
func (a *Activity) Focus() {
	a.set(true)
	a.Arm()
}

// Blur marks the user inactive if media is playing. It returns whether
// the state changed to inactive.
func (a *Activity) Blur() bool {
	if !a.playing() || !a.active {
		return false
	}
	a.set(false)

	return true
}

// Stop cancels the inactivity timer.
func (a *Activity) Stop() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Activity) set(active bool) {
	if a.active == active {
		return
	}
	a.active = active

	if a.OnChange != nil {
		a.OnChange(active)
	}
}
