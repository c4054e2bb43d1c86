package vango

import "testing"

func TestOwnerDispose(t *testing.T) {
	t.Run("runs cleanups in reverse order once", func(t *testing.T) {
		o := NewOwner()
		var order []int
		o.OnCleanup(func() { order = append(order, 1) })
		o.OnCleanup(func() { order = append(order, 2) })

		o.Dispose()
		o.Dispose()

		if len(order) != 2 || order[0] != 2 || order[1] != 1 {
			t.Errorf("order = %v, want [2 1]", order)
		}
		if !o.IsDisposed() {
			t.Error("IsDisposed() = false after Dispose")
		}
	})

	t.Run("cleanup after dispose runs immediately", func(t *testing.T) {
		o := NewOwner()
		o.Dispose()

		ran := false
		o.OnCleanup(func() { ran = true })
		if !ran {
			t.Error("cleanup registered after Dispose did not run")
		}
	})

	t.Run("nil cleanup is ignored", func(t *testing.T) {
		o := NewOwner()
		o.OnCleanup(nil)
		o.Dispose()
	})
}

func TestOwnerIDsAreUnique(t *testing.T) {
	a, b := NewOwner(), NewOwner()
	if a.ID() == b.ID() {
		t.Errorf("IDs collide: %d", a.ID())
	}
}

func TestRef(t *testing.T) {
	r := NewRef[*int](nil)
	if r.Current() != nil {
		t.Error("new ref should be empty")
	}

	v := 3
	r.Set(&v)
	if r.Current() != &v {
		t.Error("Set did not store the value")
	}

	r.Clear()
	if r.Current() != nil {
		t.Error("Clear did not reset the ref")
	}
}
