package vango

import (
	"reflect"
	"sync"
)

// Signal holds a piece of component state.
//
// Hosts subscribe to learn that a re-render is due. Subscribers run
// synchronously, in subscription order, outside the value lock, and only
// when a write actually changed the value.
type Signal[T any] struct {
	mu    sync.RWMutex
	value T
	equal func(T, T) bool

	subMu   sync.Mutex
	subs    []subscriber
	nextSub uint64
}

type subscriber struct {
	key uint64
	fn  func()
}

// NewSignal returns a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// WithEquals replaces the change test used by Set and Update.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and notifies subscribers if it differs from the old one.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update replaces the value with fn(old) under the write lock.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.same(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription and may be called more than once.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	s.nextSub++
	key := s.nextSub
	s.subs = append(s.subs, subscriber{key: key, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.key == key {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Signal[T]) notify() {
	s.subMu.Lock()
	subs := s.subs
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

func (s *Signal[T]) same(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}
