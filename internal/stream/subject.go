// Package stream provides hot event sources that feed the view-model.
package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
)

type subscriber[T any] struct {
	ch   chan T
	done <-chan struct{}
}

// Subject multicasts published values to its current subscribers.
// Values published before a subscription are not replayed to it.
type Subject[T any] struct {
	mu        sync.RWMutex
	subs      map[*subscriber[T]]struct{}
	completed bool
	closed    chan struct{}
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		subs:   make(map[*subscriber[T]]struct{}),
		closed: make(chan struct{}),
	}
}

// Subscribe - registers a new subscriber. The channel is unbuffered and closed
// when ctx is done or the subject completes.
func (that *Subject[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{
		ch:   make(chan T),
		done: ctx.Done(),
	}

	that.mu.Lock()
	if that.completed {
		that.mu.Unlock()
		close(sub.ch)

		return sub.ch
	}
	that.subs[sub] = struct{}{}
	that.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			that.unsubscribe(sub)
		case <-that.closed:
		}
	}()

	return sub.ch
}

// Publish - delivers value to every subscriber and returns once each of them
// has received it or detached.
func (that *Subject[T]) Publish(ctx context.Context, value T) error {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.completed {
		return apperror.ErrStreamCompleted
	}

	for sub := range that.subs {
		select {
		case sub.ch <- value:
		case <-sub.done:
		case <-ctx.Done():
			return fmt.Errorf("publish interrupted: %w", ctx.Err())
		}
	}

	return nil
}

// Complete - closes every subscription. Later publishes fail with ErrStreamCompleted.
func (that *Subject[T]) Complete() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.completed {
		return
	}

	that.completed = true
	close(that.closed)
	for sub := range that.subs {
		close(sub.ch)
		delete(that.subs, sub)
	}
}

// Subscribers - returns the number of attached subscribers.
func (that *Subject[T]) Subscribers() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.subs)
}

func (that *Subject[T]) unsubscribe(sub *subscriber[T]) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// already closed by Complete
	if _, ok := that.subs[sub]; !ok {
		return
	}

	delete(that.subs, sub)
	close(sub.ch)
}
