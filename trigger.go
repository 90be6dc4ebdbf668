package formvalidation

import (
	"slices"
	"sync"
)

// Trigger is a fire-and-forget "validate now" signal shared by any number
// of fields, typically fired by a submit button. Subscribers are invoked
// inline by Fire and must not block; fields schedule their validation and
// return immediately.
type Trigger struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]func()
}

// NewTrigger creates a trigger with no subscribers.
func NewTrigger() *Trigger {
	return &Trigger{subs: make(map[uint64]func())}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is a no-op.
func (t *Trigger) Subscribe(fn func()) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Fire invokes every subscriber in subscription order.
func (t *Trigger) Fire() {
	t.mu.Lock()
	ids := make([]uint64, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	subs := make([]func(), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, t.subs[id])
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Len returns the number of subscribers.
func (t *Trigger) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
