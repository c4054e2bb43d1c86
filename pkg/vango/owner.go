package vango

import "sync"

// Owner scopes the resources a component acquires while mounted, such as
// document listeners. Dispose releases them in reverse order, once.
type Owner struct {
	id uint64

	mu       sync.Mutex
	cleanups []func()
	disposed bool
}

// NewOwner creates an empty scope.
func NewOwner() *Owner {
	return &Owner{id: nextID()}
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 { return o.id }

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

// OnCleanup registers fn to run on Dispose. On a disposed Owner fn runs
// immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

// Dispose runs the registered cleanups, last registered first.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
