package events

import (
	"log/slog"
	"sync"

	"attestry/pkg/domain"
)

// Log is the in-memory append-only event log with fan-out subscriptions.
// Appends assign sequence numbers under the log's lock, so the sequence order
// matches ledger transaction order as long as callers append inside their own
// critical section.
type Log struct {
	mu      sync.RWMutex
	events  []Event
	nextSeq uint64

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
	buffer  int
	logger  *slog.Logger
}

// Option configures the Log.
type Option func(*Log)

// WithSubscriberBuffer sets the per-subscriber channel buffer size.
func WithSubscriberBuffer(size int) Option {
	return func(l *Log) {
		if size > 0 {
			l.buffer = size
		}
	}
}

// WithLogger sets a logger for dropped-delivery reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// NewLog creates an empty event log. Sequence numbers start at 1.
func NewLog(opts ...Option) *Log {
	l := &Log{
		subs:   make(map[int]chan Event),
		buffer: 64,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records the event, assigns its sequence number, and fans it out to
// subscribers. Delivery to a subscriber is non-blocking; a slow subscriber
// misses events rather than stalling the ledger, and can re-read the log.
func (l *Log) Append(event Event) Event {
	l.mu.Lock()
	l.nextSeq++
	event.Sequence = l.nextSeq
	l.events = append(l.events, event)
	l.mu.Unlock()

	l.subMu.Lock()
	for id, ch := range l.subs {
		select {
		case ch <- event:
		default:
			if l.logger != nil {
				l.logger.Warn("event subscriber buffer full, delivery skipped",
					"subscriber", id,
					"sequence", event.Sequence,
					"kind", event.Kind,
				)
			}
		}
	}
	l.subMu.Unlock()

	return event
}

// List returns all events in append order.
func (l *Log) List() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Event{}, l.events...)
}

// ListByAddress returns events that concern the given address, in append order.
func (l *Log) ListByAddress(addr domain.Address) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Event
	for _, e := range l.events {
		if e.Concerns(addr) {
			out = append(out, e)
		}
	}
	return out
}

// Since returns events with a sequence strictly greater than seq.
func (l *Log) Since(seq uint64) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i, e := range l.events {
		if e.Sequence > seq {
			return append([]Event{}, l.events[i:]...)
		}
	}
	return nil
}

// Len returns the number of events appended so far.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. The channel is closed on cancel.
func (l *Log) Subscribe() (<-chan Event, func()) {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	id := l.nextSub
	l.nextSub++
	ch := make(chan Event, l.buffer)
	l.subs[id] = ch

	cancel := func() {
		l.subMu.Lock()
		defer l.subMu.Unlock()
		if sub, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
