// Package notify delivers rule-change events to in-process consumers.
//
// It replaces a shared mutable flag with per-subscriber queues: every
// subscriber gets its own copy of each published event and drains its
// queue independently, so an event is consumed exactly once per
// consumer. Cross-restart signaling stays on the persisted flag in the
// store; this broker only covers consumers alive in the same process.
package notify

import "sync"

// Topic published when the category rule set changes.
const TopicRulesChanged = "rules-changed"

// Event is a notification delivered to every subscriber.
type Event struct {
	Topic string
}

// Broker fans events out to per-subscriber queues.
type Broker struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// Subscription is one consumer's private event queue.
type Subscription struct {
	broker *Broker
	mu     sync.Mutex
	queue  []Event
}

// NewBroker creates a Broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new consumer. Events published before Subscribe
// are not delivered.
func (b *Broker) Subscribe() *Subscription {
	sub := &Subscription{broker: b}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Publish appends e to every subscriber's queue.
func (b *Broker) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		sub.mu.Lock()
		sub.queue = append(sub.queue, e)
		sub.mu.Unlock()
	}
}

// Drain returns and clears this subscriber's pending events.
func (s *Subscription) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.queue
	s.queue = nil
	return events
}

// Close unregisters the subscription; further events are not delivered.
func (s *Subscription) Close() {
	s.broker.mu.Lock()
	delete(s.broker.subs, s)
	s.broker.mu.Unlock()
}
