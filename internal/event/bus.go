package event

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sadvi2004/CodeForge/internal/event/topic"
)

// Bus errors.
var (
	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("nil handler")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// HandlerFunc handles a published event. The argument is the Event[T]
// value that was published.
type HandlerFunc func(ev any) error

// Subscription identifies a registered handler.
type Subscription struct {
	id      string
	pattern topic.Topic
}

// ID returns the unique subscription identifier.
func (s Subscription) ID() string { return s.id }

// Topic returns the subscribed topic pattern.
func (s Subscription) Topic() topic.Topic { return s.pattern }

type subscriber struct {
	Subscription
	fn HandlerFunc
}

// Bus delivers events synchronously to subscribers in subscription order.
// A Bus is not safe for concurrent use.
type Bus struct {
	subs []subscriber

	// publishing tracks nested Publish calls so that unsubscribing from
	// inside a handler does not disturb the delivery loop.
	publishing int
	removed    map[string]bool

	published uint64
	delivered uint64
	failed    uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{removed: make(map[string]bool)}
}

// SubscribeFunc registers fn for every event whose topic matches pattern.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}
	sub := Subscription{id: uuid.NewString(), pattern: pattern}
	b.subs = append(b.subs, subscriber{Subscription: sub, fn: fn})
	return sub, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub Subscription) error {
	for i, s := range b.subs {
		if s.id != sub.id {
			continue
		}
		if b.publishing > 0 {
			b.removed[sub.id] = true
			return nil
		}
		b.subs = append(b.subs[:i], b.subs[i+1:]...)
		return nil
	}
	return ErrSubscriptionNotFound
}

// Publish delivers ev to all matching subscribers before returning.
// Every handler runs even if an earlier one fails; handler errors are joined.
func (b *Bus) Publish(ev Typed) error {
	b.published++
	b.publishing++
	defer b.endPublish()

	// Handlers added during delivery see the next event, not this one.
	subs := b.subs
	var errs []error
	for _, s := range subs {
		if b.removed[s.id] || !ev.Topic().Matches(s.pattern) {
			continue
		}
		b.delivered++
		if err := s.fn(ev); err != nil {
			b.failed++
			errs = append(errs, fmt.Errorf("%s: %w", ev.Topic(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) endPublish() {
	b.publishing--
	if b.publishing > 0 || len(b.removed) == 0 {
		return
	}
	kept := b.subs[:0]
	for _, s := range b.subs {
		if !b.removed[s.id] {
			kept = append(kept, s)
		}
	}
	b.subs = kept
	b.removed = make(map[string]bool)
}

// Stats contains bus counters.
type Stats struct {
	Subscriptions   int
	EventsPublished uint64
	EventsDelivered uint64
	HandlerErrors   uint64
}

// Stats returns the current counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Subscriptions:   len(b.subs),
		EventsPublished: b.published,
		EventsDelivered: b.delivered,
		HandlerErrors:   b.failed,
	}
}

// Publisher is the publishing side of a Bus.
type Publisher interface {
	Publish(ev Typed) error
}
