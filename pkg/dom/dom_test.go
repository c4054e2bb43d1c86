package dom

import (
	"testing"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

func TestRect(t *testing.T) {
	r := Rect{Top: 10, Left: 5, Width: 100, Height: 30}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %v, want 40", r.Bottom())
	}
	if r.Right() != 105 {
		t.Errorf("Right() = %v, want 105", r.Right())
	}
}

func TestStaticLocator(t *testing.T) {
	l := NewStaticLocator(Geometry{Bounds: Rect{Top: 1}})

	if _, ok := l.Locate(nil); ok {
		t.Error("nil node must not be located")
	}

	l.Move(Geometry{Bounds: Rect{Top: 2}, ScrollY: 3})
	g, ok := l.Locate(vdom.Div())
	if !ok || g.Bounds.Top != 2 || g.ScrollY != 3 {
		t.Errorf("Locate() = %+v, %v", g, ok)
	}
}

func TestListeners(t *testing.T) {
	var l Listeners
	var got []int

	release1 := l.OnPointerDown(func(PointerEvent) { got = append(got, 1) })
	l.OnPointerDown(func(PointerEvent) { got = append(got, 2) })
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	l.DispatchPointerDown(PointerEvent{})
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("dispatch order = %v", got)
	}

	release1()
	release1()
	if l.Len() != 1 {
		t.Errorf("Len() = %d after release, want 1", l.Len())
	}

	got = nil
	l.DispatchPointerDown(PointerEvent{})
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("after release got %v", got)
	}
}
