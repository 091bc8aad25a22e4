// Package bvec provides a fixed-capacity vector with an allocation-free
// mutation path.
package bvec

import (
	"fmt"
	"iter"
	"slices"
)

// Vec is a fixed-capacity vector. Its backing array is allocated once by
// [New] and is never grown; every mutation is allocation-free. Capacity full
// and capacity empty are ordinary, branchable outcomes, not errors.
//
// A Vec is not thread-safe and each instance is owned by a single goroutine.
//
// The zero value is a valid vector of capacity 0.
type Vec[T any] struct {
	// Slots [length, cap) always hold the zero value of T, so popped
	// elements don't pin heap objects.
	data   []T
	length int
}

// New returns an empty vector that can hold up to capacity elements.
// A capacity of 0 is legal and yields a vector that rejects every push.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return &Vec[T]{
		data: make([]T, capacity),
	}
}

// Len returns the number of elements currently in the vector.
func (v *Vec[T]) Len() int {
	return v.length
}

// Cap returns the fixed capacity of the vector.
func (v *Vec[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the vector contains no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.length == 0
}

// IsFull reports whether the vector has reached its capacity.
func (v *Vec[T]) IsFull() bool {
	return v.length == len(v.data)
}

// TryPush appends value and reports whether it fit. When the vector is full
// it returns false and the vector is unchanged.
func (v *Vec[T]) TryPush(value T) bool {
	if v.length == len(v.data) {
		return false
	}
	v.data[v.length] = value
	v.length++
	return true
}

// Push appends value. It panics if the vector is full; callers that want to
// branch on a full vector use [Vec.TryPush].
func (v *Vec[T]) Push(value T) {
	if !v.TryPush(value) {
		panic("vec is full")
	}
}

// Pop removes and returns the most recently pushed element. It returns the
// zero value and false if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	value := v.data[v.length]
	v.data[v.length] = zero
	return value, true
}

// MustPop removes and returns the most recently pushed element. It panics if
// the vector is empty; callers that want to branch on emptiness use [Vec.Pop].
func (v *Vec[T]) MustPop() T {
	value, ok := v.Pop()
	if !ok {
		panic("vec is empty")
	}
	return value
}

// Get returns the element at index i, or the zero value and false if i is
// outside [0, Len).
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// Set replaces the element at index i and reports whether i was occupied.
// When i is outside [0, Len) the vector is unchanged.
func (v *Vec[T]) Set(i int, value T) bool {
	if i < 0 || i >= v.length {
		return false
	}
	v.data[i] = value
	return true
}

// Clear removes all elements.
func (v *Vec[T]) Clear() {
	clear(v.data[:v.length])
	v.length = 0
}

// Truncate keeps the first n elements and removes the rest. It is a no-op
// when n >= Len and panics when n is negative.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panic("n can't be < 0")
	}
	if n >= v.length {
		return
	}
	clear(v.data[n:v.length])
	v.length = n
}

// Iter returns a sequence of the elements in insertion order. The sequence is
// restartable; mutating the vector during iteration invalidates it.
func (v *Vec[T]) Iter() iter.Seq[T] {
	return slices.Values(v.data[:v.length])
}

// String renders the elements in insertion order.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.data[:v.length])
}
