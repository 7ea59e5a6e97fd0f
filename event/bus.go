// Package event provides the publish/subscribe primitive players and their
// plugins communicate through.
package event

import (
	"sync"
)

// Name identifies an event on the bus.
type Name string

// Events emitted by the player itself.
const (
	Ready    Name = "ready"
	Complete Name = "complete"
	Error    Name = "error"
	Destroy  Name = "destroy"
	Focus    Name = "focus"
	Blur     Name = "blur"
)

// Events forwarded from the media surface.
const (
	Play       Name = "play"
	Pause      Name = "pause"
	Playing    Name = "playing"
	Waiting    Name = "waiting"
	Seeking    Name = "seeking"
	Seeked     Name = "seeked"
	Ended      Name = "ended"
	LoadedData Name = "loadeddata"
)

// Event is a single notification with an optional payload.
type Event struct {
	Name    Name
	Payload interface{}
}

// Handler receives events it subscribed to.
type Handler func(Event)

type subscription struct {
	id   uint64
	fn   Handler
	once bool
}

// Bus dispatches events synchronously to subscribers in the order they
// subscribed.
//
// A handler may subscribe or unsubscribe while an event is being
// dispatched; the change takes effect from the next Emit.
type Bus struct {
	mu     sync.Mutex
	lastID uint64
	subs   map[Name][]*subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Name][]*subscription)}
}

func (b *Bus) add(name Name, fn Handler, once bool) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastID++
	b.subs[name] = append(b.subs[name], &subscription{b.lastID, fn, once})

	return b.lastID
}

// On subscribes fn to name. It returns an ID for Off.
func (b *Bus) On(name Name, fn Handler) uint64 {
	return b.add(name, fn, false)
}

// Once subscribes fn to the next occurrence of name only.
func (b *Bus) Once(name Name, fn Handler) uint64 {
	return b.add(name, fn, true)
}

// Off removes the subscription with the given ID. It returns false if
// there is no such subscription.
func (b *Bus) Off(name Name, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[name]
	for i, sub := range subs {
		if sub.id == id {
			b.subs[name] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}

	return false
}

// Emit calls every subscriber of name with the payload and returns the
// number of handlers called.
func (b *Bus) Emit(name Name, payload interface{}) int {
	b.mu.Lock()
	subs := b.subs[name]
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)

	kept := subs[:0:0]
	for _, sub := range subs {
		if !sub.once {
			kept = append(kept, sub)
		}
	}
	b.subs[name] = kept
	b.mu.Unlock()

	ev := Event{name, payload}
	for _, sub := range snapshot {
		sub.fn(ev)
	}

	return len(snapshot)
}

// Count returns the number of subscribers of name.
func (b *Bus) Count(name Name) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs[name])
}
