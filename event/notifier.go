package event

import "sync"

// Notifier is a goroutine-safe list of handlers, for media surfaces that
// deliver events from their own goroutines.
type Notifier struct {
	mu       sync.Mutex
	lastID   uint64
	handlers map[uint64]Handler
	order    []uint64
}

// Notify registers h and returns a function that removes it.
func (n *Notifier) Notify(h Handler) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.handlers == nil {
		n.handlers = make(map[uint64]Handler)
	}
	n.lastID++
	id := n.lastID
	n.handlers[id] = h
	n.order = append(n.order, id)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.handlers, id)
		for i, v := range n.order {
			if v == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Send delivers an event to every registered handler.
func (n *Notifier) Send(name Name, payload interface{}) {
	n.mu.Lock()
	hs := make([]Handler, 0, len(n.order))
	for _, id := range n.order {
		hs = append(hs, n.handlers[id])
	}
	n.mu.Unlock()

	ev := Event{name, payload}
	for _, h := range hs {
		h(ev)
	}
}
