// Package watch delivers table-change notifications to subscribers so
// observable queries can push fresh snapshots instead of polling.
package watch

import "sync"

// Topic identifies a table whose contents subscribers observe.
type Topic string

// Topics.
const (
	Categories Topic = "categories"
	Sizes      Topic = "sizes"
	Items      Topic = "items"
)

// Bus fans change notifications out to subscribers. Notifications
// coalesce: a subscriber that has not drained a pending signal gets no
// second one, and re-queries once for both changes.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic]map[int]chan struct{}
	next int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]chan struct{})}
}

// Subscribe registers interest in a topic. The returned channel
// carries one signal per pending change; cancel unregisters and must
// be called exactly once.
func (b *Bus) Subscribe(topic Topic) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan struct{})
	}

	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[topic][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
	return ch, cancel
}

// Notify signals every subscriber of the given topics. Never blocks:
// a full subscriber channel already has a pending signal.
func (b *Bus) Notify(topics ...Topic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, topic := range topics {
		for _, ch := range b.subs[topic] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}
