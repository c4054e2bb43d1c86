package live

import (
	"testing"
	"time"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

func emptyPage() *Page {
	return NewPage(func(*Page) vdom.Component {
		return vdom.Func(func() *vdom.VNode { return vdom.Div() })
	})
}

func TestRegistry_AcquireOnce(t *testing.T) {
	r := NewRegistry(time.Minute, nil)
	p := emptyPage()
	r.Add(p)

	if got, ok := r.Acquire(p.ID()); !ok || got != p {
		t.Fatal("first Acquire should return the page")
	}
	if _, ok := r.Acquire(p.ID()); ok {
		t.Error("second Acquire should fail")
	}
	if _, ok := r.Acquire("missing"); ok {
		t.Error("unknown ID should fail")
	}

	r.Release(p.ID())
	if !p.Closed() {
		t.Error("Release should close the page")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute, nil)
	r.now = func() time.Time { return now }

	stale := emptyPage()
	claimed := emptyPage()
	r.Add(stale)
	r.Add(claimed)
	r.Acquire(claimed.ID())

	now = now.Add(30 * time.Second)
	fresh := emptyPage()
	r.Add(fresh)

	now = now.Add(45 * time.Second)
	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep closed %d pages, want 1", n)
	}
	if !stale.Closed() {
		t.Error("stale page should be closed")
	}
	if claimed.Closed() || fresh.Closed() {
		t.Error("connected and fresh pages should survive")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}

	r.CloseAll()
	if !claimed.Closed() || !fresh.Closed() || r.Len() != 0 {
		t.Error("CloseAll should close everything")
	}
}
