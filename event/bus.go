// Package event provides the synchronous publish/subscribe hub used for
// cross-system communication.
//
// Delivery model:
//   - Emit runs every listener of the event type on the caller's goroutine
//   - Listeners run in subscription order, against a snapshot taken before dispatch
//   - A failing listener (error or panic) never stops its siblings
//   - All failures of one emission are reported once as a SystemError event
//   - Emissions that reached a listener are kept in a bounded history ring
package event

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"
)

// Listener handles one event; a returned error is isolated and reported
type Listener func(ev Event) error

// Subscription is a registered listener
type Subscription struct {
	ID           string
	EventType    string
	Listener     Listener
	SubscribedAt int64 // Unix epoch milliseconds
	seq          uint64
}

// Stats summarizes the bus for introspection
type Stats struct {
	TotalSubscriptions int
	EventTypes         int
	HistorySize        int
	MaxHistorySize     int
}

// EventBus dispatches events synchronously to subscribers keyed by event type
// Not safe for concurrent use
type EventBus struct {
	buckets        map[string][]*Subscription
	history        *historyRing
	counter        uint64
	maxHistorySize int
	errorLogging   bool
	logger         *slog.Logger
	now            func() time.Time
}

// NewEventBus creates a bus with default history size 1000 and error logging enabled
func NewEventBus(opts ...Option) *EventBus {
	b := &EventBus{
		buckets:        make(map[string][]*Subscription),
		maxHistorySize: DefaultMaxHistorySize,
		errorLogging:   true,
		logger:         slog.Default(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.history = newHistoryRing(b.maxHistorySize)
	return b
}

// Subscribe registers a listener and returns its subscription id
func (b *EventBus) Subscribe(eventType string, listener Listener) string {
	b.counter++
	sub := &Subscription{
		ID:           "subscription_" + strconv.FormatUint(b.counter, 10),
		EventType:    eventType,
		Listener:     listener,
		SubscribedAt: b.now().UnixMilli(),
		seq:          b.counter,
	}
	b.buckets[eventType] = append(b.buckets[eventType], sub)
	return sub.ID
}

// SubscribeTyped registers a listener that receives the payload as T
// Events carrying another payload type are reported as listener errors
func SubscribeTyped[T any](b *EventBus, eventType string, fn func(ev Event, payload T) error) string {
	return b.Subscribe(eventType, func(ev Event) error {
		payload, ok := PayloadAs[T](ev)
		if !ok {
			var zero T
			return fmt.Errorf("%s: unexpected payload %T, want %T", ev.Type, ev.Data, zero)
		}
		return fn(ev, payload)
	})
}

// Unsubscribe removes a subscription; empty buckets are pruned
// Returns false if the id is unknown
func (b *EventBus) Unsubscribe(id string) bool {
	for eventType, subs := range b.buckets {
		idx := slices.IndexFunc(subs, func(s *Subscription) bool { return s.ID == id })
		if idx < 0 {
			continue
		}
		// Fresh slice so in-flight dispatch snapshots stay intact
		remaining := slices.Delete(slices.Clone(subs), idx, idx+1)
		if len(remaining) == 0 {
			delete(b.buckets, eventType)
		} else {
			b.buckets[eventType] = remaining
		}
		return true
	}
	return false
}

// UnsubscribeAll drops every subscription of a type and returns how many were removed
func (b *EventBus) UnsubscribeAll(eventType string) int {
	subs, ok := b.buckets[eventType]
	if !ok {
		return 0
	}
	delete(b.buckets, eventType)
	return len(subs)
}

// Emit dispatches ev to every current subscriber of ev.Type
// Events without subscribers are dropped without a history entry
func (b *EventBus) Emit(ev Event) {
	subs, ok := b.buckets[ev.Type]
	if !ok || len(subs) == 0 {
		return
	}

	// Snapshot: listeners may subscribe or unsubscribe during dispatch
	snapshot := slices.Clone(subs)
	listenerCount := len(snapshot)

	var errs []error
	for _, sub := range snapshot {
		if err := invoke(sub.Listener, ev); err != nil {
			errs = append(errs, err)
			if b.errorLogging {
				b.logger.Error("event listener failed",
					"event", ev.Type,
					"subscription", sub.ID,
					"error", err)
			}
		}
	}

	b.history.push(HistoryEntry{
		Event:         ev,
		ListenerCount: listenerCount,
		ProcessedAt:   b.now().UnixMilli(),
	})

	if len(errs) > 0 {
		b.reportErrors(ev, errs, listenerCount)
	}
}

// EmitEvent stamps the current time and emits
func (b *EventBus) EmitEvent(eventType string, data any) {
	b.Emit(Event{
		Type:      eventType,
		Data:      data,
		Timestamp: b.now().UnixMilli(),
	})
}

// reportErrors delivers one SystemError event, best effort
// Failures in SystemError listeners are swallowed; no history entry is recorded
func (b *EventBus) reportErrors(original Event, errs []error, listenerCount int) {
	subs, ok := b.buckets[SystemError]
	if !ok {
		return
	}
	errEvent := Event{
		Type: SystemError,
		Data: SystemErrorPayload{
			OriginalEvent: original,
			Errors:        errs,
			ListenerCount: listenerCount,
		},
		Timestamp: b.now().UnixMilli(),
	}
	for _, sub := range slices.Clone(subs) {
		_ = invoke(sub.Listener, errEvent)
	}
}

// invoke runs a listener inside a failure boundary
func invoke(listener Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("listener panic: %w", rerr)
				return
			}
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return listener(ev)
}

// ListenerCount returns the number of subscribers for a type
func (b *EventBus) ListenerCount(eventType string) int {
	return len(b.buckets[eventType])
}

// SubscribedEventTypes returns every type with at least one subscriber, sorted
func (b *EventBus) SubscribedEventTypes() []string {
	types := make([]string, 0, len(b.buckets))
	for t := range b.buckets {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// AllSubscriptions returns copies of every subscription in subscription order
func (b *EventBus) AllSubscriptions() []Subscription {
	result := make([]Subscription, 0)
	for _, subs := range b.buckets {
		for _, s := range subs {
			result = append(result, *s)
		}
	}
	slices.SortFunc(result, func(a, c Subscription) int {
		switch {
		case a.seq < c.seq:
			return -1
		case a.seq > c.seq:
			return 1
		}
		return 0
	})
	return result
}

// EventHistory returns recorded emissions, most recent first
// limit <= 0 returns the whole history
func (b *EventBus) EventHistory(limit int) []HistoryEntry {
	return b.history.newestFirst(limit)
}

// Stats returns subscription and history counters
func (b *EventBus) Stats() Stats {
	total := 0
	for _, subs := range b.buckets {
		total += len(subs)
	}
	return Stats{
		TotalSubscriptions: total,
		EventTypes:         len(b.buckets),
		HistorySize:        b.history.len(),
		MaxHistorySize:     b.history.capacity(),
	}
}

// Clear drops subscriptions and history and restarts subscription ids
func (b *EventBus) Clear() {
	b.buckets = make(map[string][]*Subscription)
	b.history.reset()
	b.counter = 0
}
