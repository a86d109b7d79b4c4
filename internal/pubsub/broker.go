package pubsub

import (
	"context"
	"sync"
)

const (
	// subBufferSize is the buffer size of the channel for each subscription.
	subBufferSize = 1024
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker allows clients to publish events and subscribe to events
type Broker[T any] struct {
	subs map[chan Event[T]]struct{} // subscriptions
	mu   sync.Mutex                 // sync access to map
	done bool                       // true when broker has shutdown

	logger Logger
}

func NewBroker[T any](logger Logger) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		logger: logger,
	}
}

// Subscribe subscribes the caller to a stream of events. The subscription is
// closed when the context is canceled or the broker shuts down.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan Event[T], subBufferSize)
	if b.done {
		close(sub)
		return sub
	}
	b.subs[sub] = struct{}{}

	// when the context is canceled remove the subscriber
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish an event to subscribers.
func (b *Broker[T]) Publish(t EventType, payload T) {
	var fullSubscribers []chan Event[T]

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- Event[T]{Type: t, Payload: payload}:
			continue
		default:
			// could not publish event to subscriber because their buffer is
			// full, so add them to a list for action below
			fullSubscribers = append(fullSubscribers, sub)
		}
	}
	b.mu.Unlock()

	// forceably unsubscribe full subscribers and leave it to them to
	// re-subscribe
	for _, sub := range fullSubscribers {
		b.logger.Error("unsubscribing full subscriber", "queue_length", subBufferSize)
		b.unsubscribe(sub)
	}
}

// Shutdown closes all subscriptions. Subsequent subscriptions are closed
// immediately.
func (b *Broker[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		close(sub)
		delete(b.subs, sub)
	}
	b.done = true
}

func (b *Broker[T]) unsubscribe(sub chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
