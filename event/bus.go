// Package event implements the synchronous publish/subscribe bus scenes use to talk to each other
//
// Dispatch discipline: Publish snapshots the subscriber list before invoking handlers,
// so handlers may subscribe or cancel during dispatch; changes apply from the next Publish.
// The bus is not safe for concurrent use, it lives on the game thread.
package event

import (
	"go.uber.org/zap"
)

type subscriber struct {
	id uint64
	fn func(Message)
}

// Bus maps message kinds to ordered handler lists
type Bus struct {
	subscribers map[Kind][]subscriber
	nextID      uint64
	log         *zap.Logger
}

// NewBus creates an empty bus, log may be nil
func NewBus(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{
		subscribers: make(map[Kind][]subscriber),
		log:         log,
	}
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	bus  *Bus
	kind Kind
	id   uint64
}

// Subscribe registers fn for the message type M, inferred from the handler signature
func Subscribe[M Message](b *Bus, fn func(M)) *Subscription {
	var zero M
	kind := zero.Kind()

	b.nextID++
	sub := subscriber{
		id: b.nextID,
		fn: func(m Message) { fn(m.(M)) },
	}
	b.subscribers[kind] = append(b.subscribers[kind], sub)

	return &Subscription{bus: b, kind: kind, id: sub.id}
}

// Publish synchronously invokes every handler registered for the message kind in registration order
// Publishing a kind nobody subscribed to is a no-op
func Publish[M Message](b *Bus, msg M) {
	subs := b.subscribers[msg.Kind()]
	if len(subs) == 0 {
		return
	}

	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)

	b.log.Debug("publish", zap.Stringer("kind", msg.Kind()), zap.Int("subscribers", len(snapshot)))
	for _, s := range snapshot {
		s.fn(msg)
	}
}

// Count returns the number of handlers registered for kind
func (b *Bus) Count(kind Kind) int {
	return len(b.subscribers[kind])
}

// Cancel removes the handler, cancelling twice is a no-op
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	subs := s.bus.subscribers[s.kind]
	for i, sub := range subs {
		if sub.id == s.id {
			// Fresh slice so snapshots held by an in-flight Publish stay intact
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			s.bus.subscribers[s.kind] = next
			break
		}
	}
	s.bus = nil
}
