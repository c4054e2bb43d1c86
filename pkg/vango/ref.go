package vango

import "sync"

// Ref points at the node an element was last rendered as, so a component
// can find its own element in the current tree. Safe for concurrent use.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRef returns a Ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// Current returns the held value.
func (r *Ref[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// Set replaces the held value. The renderer calls it for elements
// carrying the ref.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	r.value = value
	r.mu.Unlock()
}

// Clear resets the ref to the zero value.
func (r *Ref[T]) Clear() {
	var zero T
	r.Set(zero)
}
