// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package internal

// Ring is a generic fixed-size circular buffer. It is not safe for concurrent
// use; callers are expected to guard it with their own lock.
type Ring[T any] struct {
	items []T
	size  int
	enter int // Points to the next position for entering
	leave int // Points to the next item that is leaving
}

// NewRing creates a new Ring holding at most capacity items.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, capacity)}
}

// Len returns the number of items in the ring.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the maximum number of items the ring can hold.
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// IsEmpty returns whether the ring is empty.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// IsFull returns whether the ring is full.
func (r *Ring[T]) IsFull() bool {
	return r.size == len(r.items)
}

// Push adds an item to the end of the ring. It returns false without
// modifying the ring if the ring is full.
func (r *Ring[T]) Push(value T) bool {
	if r.IsFull() {
		return false
	}

	r.items[r.enter] = value
	r.enter = r.move(r.enter)
	r.size++
	return true
}

// Pop removes and returns the item from the front of the ring.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	item := r.items[r.leave]
	// Drop the reference so delivered values can be collected.
	r.items[r.leave] = zero
	r.leave = r.move(r.leave)
	r.size--
	return item, true
}

// move increments the index circularly.
func (r *Ring[T]) move(index int) int {
	return (index + 1) % len(r.items)
}
