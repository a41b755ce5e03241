// Package state provides observable holders for presenter state.
//
// A Store keeps the latest value and fans it out to subscribers. Subscribers
// that fall behind only ever see the most recent value. Events is a buffered
// single-consumer queue for one-shot signals such as navigation.
package state

import (
	"context"
	"sync"
)

// Store holds a value of type T and notifies subscribers on change.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[uint64]chan T
	nextID uint64
}

// NewStore creates a store holding initial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  make(map[uint64]chan T),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.broadcastLocked()
}

// Update applies fn to the current value atomically and returns the result.
func (s *Store[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = fn(s.value)
	s.broadcastLocked()

	return s.value
}

// Subscribe returns a channel that receives the current value immediately and
// every later value. The channel is closed once ctx is done.
func (s *Store[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.value
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *Store[T]) broadcastLocked() {
	for _, ch := range s.subs {
		replaceLatest(ch, s.value)
	}
}

// replaceLatest never blocks: a pending stale value is dropped for the new one.
func replaceLatest[T any](ch chan T, value T) {
	select {
	case ch <- value:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- value:
	default:
	}
}

const defaultEventBuffer = 16

// Events is a buffered queue of one-shot signals with a single consumer.
type Events[T any] struct {
	ch chan T
}

// NewEvents creates an event queue.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{ch: make(chan T, defaultEventBuffer)}
}

// Emit queues event. When the buffer is full the oldest event is discarded.
func (e *Events[T]) Emit(event T) {
	for {
		select {
		case e.ch <- event:
			return
		default:
		}

		select {
		case <-e.ch:
		default:
		}
	}
}

// C returns the receive side of the queue.
func (e *Events[T]) C() <-chan T {
	return e.ch
}
