// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package channel

import (
	"fmt"
	"iter"
	"sync"

	"github.com/Azure/iot-operations-sdks/go/channel/internal"
)

// Channel is a concurrency-safe generic bounded FIFO with blocking send and
// receive and an explicit close. Unlike a native Go channel, sending on a
// closed Channel returns an error instead of panicking, and closing it more
// than once is a no-op.
//
// A Channel must not be copied after first use; share the pointer returned
// by New between producers and consumers.
type Channel[T any] struct {
	mu             sync.Mutex
	spaceAvailable sync.Cond
	itemAvailable  sync.Cond

	buffer *internal.Ring[T]
	closed bool

	log logger
}

// New creates an empty, open channel holding at most capacity values. The
// capacity must be positive.
func New[T any](capacity int, opts ...Option) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, &Error{
			Message: fmt.Sprintf(
				"channel capacity must be positive, got %d",
				capacity,
			),
			Kind:          InvalidCapacity,
			PropertyName:  "capacity",
			PropertyValue: capacity,
		}
	}

	var o Options
	o.Apply(opts)

	c := &Channel[T]{
		buffer: internal.NewRing[T](capacity),
		log:    newLogger(&o),
	}
	c.spaceAvailable.L = &c.mu
	c.itemAvailable.L = &c.mu
	return c, nil
}

// Send appends value to the channel, blocking while the channel is full. It
// returns an error of kind ClosedChannel if the channel is closed before the
// value is enqueued, in which case the value is discarded.
func (c *Channel[T]) Send(value T) error {
	if err := c.send(value); err != nil {
		c.log.rejected(err)
		return err
	}
	return nil
}

func (c *Channel[T]) send(value T) *Error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buffer.IsFull() && !c.closed {
		c.spaceAvailable.Wait()
	}

	// Space may have been freed by a receiver draining after close.
	if c.closed {
		return &Error{
			Message: "send on closed channel",
			Kind:    ClosedChannel,
		}
	}

	c.buffer.Push(value)
	c.itemAvailable.Signal()
	return nil
}

// Receive removes and returns the value at the head of the channel, blocking
// while the channel is empty and open. Values buffered before Close are still
// delivered; once the channel is closed and drained, Receive returns the zero
// value and false without blocking.
func (c *Channel[T]) Receive() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buffer.IsEmpty() && !c.closed {
		c.itemAvailable.Wait()
	}

	value, ok := c.buffer.Pop()
	if ok {
		c.spaceAvailable.Signal()
	}
	return value, ok
}

// Close marks the channel as closed and wakes every blocked sender and
// receiver. Buffered values are kept for subsequent receives. Calling Close
// more than once has no further effect.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.closed = true
	pending := c.buffer.Len()
	c.spaceAvailable.Broadcast()
	c.itemAvailable.Broadcast()
	c.mu.Unlock()

	c.log.closed(pending)
}

// All returns an iterator over received values. It stops once the channel is
// closed and drained, or when the loop body breaks.
func (c *Channel[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := c.Receive()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Len returns the number of values currently buffered.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buffer.Len()
}

// Cap returns the capacity the channel was created with.
func (c *Channel[T]) Cap() int {
	return c.buffer.Cap()
}

// Closed returns whether Close has been called.
func (c *Channel[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}
