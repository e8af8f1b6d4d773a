// Package event provides a synchronous publish/subscribe bus.
//
// Events are typed values wrapped in Event[T] with a topic and metadata.
// Publish delivers to every matching subscriber on the caller's goroutine
// before it returns, so an editor that publishes "buffer.changed" knows
// every consumer (preview, status line) has seen the change when the call
// completes. There are no worker goroutines and no queues.
//
// Basic usage:
//
//	bus := event.NewBus()
//	sub := bus.SubscribeFunc(events.TopicBufferChanged, func(ev any) error {
//	    e := ev.(event.Event[events.BufferChanged])
//	    // ...
//	    return nil
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(event.NewEvent(events.TopicBufferChanged, payload, "engine"))
package event
