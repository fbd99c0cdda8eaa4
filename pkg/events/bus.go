package events

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-subscriber channel capacity.
const DefaultBufferSize = 256

// Bus is the in-process fan-out. Subscribers register by event-type
// prefix; publishing never blocks the producer — when a subscriber's
// buffer is full the oldest buffered event is dropped with a warning.
//
// Events published from a single goroutine are delivered to each
// subscriber in publish order (channel FIFO).
type Bus struct {
	mu         sync.RWMutex
	subs       map[string]*Subscription
	bufferSize int
	closed     bool
}

// Subscription is one subscriber's bounded mailbox.
type Subscription struct {
	name    string
	prefix  string
	ch      chan Event
	dropped atomic.Int64
}

// C returns the receive channel. It is closed when the bus shuts down or
// the subscription is cancelled.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Dropped returns how many events were discarded due to backpressure.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// NewBus creates a bus with the given per-subscriber buffer size
// (DefaultBufferSize if size <= 0).
func NewBus(size int) *Bus {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Bus{
		subs:       make(map[string]*Subscription),
		bufferSize: size,
	}
}

// Subscribe registers a named subscriber for all events whose type starts
// with prefix. An empty prefix matches everything. Re-subscribing under
// the same name replaces the previous subscription.
func (b *Bus) Subscribe(name, prefix string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subs[name]; ok {
		close(old.ch)
	}
	sub := &Subscription{
		name:   name,
		prefix: prefix,
		ch:     make(chan Event, b.bufferSize),
	}
	if !b.closed {
		b.subs[name] = sub
	} else {
		close(sub.ch)
	}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[name]; ok {
		delete(b.subs, name)
		close(sub.ch)
	}
}

// Publish fans the event out to every matching subscriber. Best-effort:
// a full mailbox sheds its oldest event rather than blocking the producer.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for _, sub := range b.subs {
		if !strings.HasPrefix(evt.Type, sub.prefix) {
			continue
		}
		select {
		case sub.ch <- evt:
			continue
		default:
		}
		// Mailbox full: drop the oldest event to make room. The durable
		// Event row remains the source of truth for anything shed here.
		select {
		case old := <-sub.ch:
			sub.dropped.Add(1)
			slog.Warn("Event bus subscriber lagging, dropped oldest event",
				"subscriber", sub.name,
				"dropped_type", old.Type,
				"total_dropped", sub.dropped.Load())
		default:
		}
		select {
		case sub.ch <- evt:
		default:
			sub.dropped.Add(1)
		}
	}
}

// Close shuts the bus down: all subscriber channels are closed and
// further publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for name, sub := range b.subs {
		delete(b.subs, name)
		close(sub.ch)
	}
}
