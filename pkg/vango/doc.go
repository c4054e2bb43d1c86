// Package vango provides the reactive primitives dropdown components are
// built on: Signal for state, Ref for element references, and Owner for
// resources whose lifetime is bounded by a mount.
//
// Signals notify subscribers synchronously on change:
//
//	open := vango.NewSignal(false)
//	stop := open.Subscribe(func() { dirty = true })
//	defer stop()
//	open.Set(true)
//
// Owners scope cleanup:
//
//	owner := vango.NewOwner()
//	owner.OnCleanup(doc.OnPointerDown(handler))
//	...
//	owner.Dispose() // releases the listener exactly once
package vango
