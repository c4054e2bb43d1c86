package dom

import (
	"sync"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

// Rect is an element's bounding box in viewport coordinates,
// as reported by getBoundingClientRect.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Geometry is an element's bounding box plus the document scroll offset
// at the time it was measured.
type Geometry struct {
	Bounds  Rect    `json:"bounds"`
	ScrollX float64 `json:"scrollX"`
	ScrollY float64 `json:"scrollY"`
}

// Locator reports the current geometry of a rendered element.
// ok is false when the element is unknown or has not been measured.
type Locator interface {
	Locate(node *vdom.VNode) (g Geometry, ok bool)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(node *vdom.VNode) (Geometry, bool)

// Locate implements Locator.
func (f LocatorFunc) Locate(node *vdom.VNode) (Geometry, bool) { return f(node) }

// StaticLocator reports the same geometry for every element.
// It stands in for a rendering surface in tests.
type StaticLocator struct {
	mu sync.Mutex
	g  Geometry
}

// NewStaticLocator returns a locator reporting g.
func NewStaticLocator(g Geometry) *StaticLocator {
	return &StaticLocator{g: g}
}

// Move changes the reported geometry, as a scroll or resize would.
func (l *StaticLocator) Move(g Geometry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g = g
}

// Locate implements Locator.
func (l *StaticLocator) Locate(node *vdom.VNode) (Geometry, bool) {
	if node == nil {
		return Geometry{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g, true
}

// PointerEvent is a pointer-down anywhere in the document.
// Target is the element the pointer landed on, or nil when it landed on
// no rendered element (page background, browser chrome).
type PointerEvent struct {
	Target *vdom.VNode
}

// Document is the surrounding page a component is mounted into.
type Document interface {
	// OnPointerDown registers a document-level pointer-down listener.
	// The returned function removes it.
	OnPointerDown(fn func(PointerEvent)) (release func())
}

// Listeners is a set of document-level listeners. It implements Document
// and is embedded by hosts.
type Listeners struct {
	mu   sync.Mutex
	next uint64
	fns  map[uint64]func(PointerEvent)
}

// OnPointerDown implements Document.
func (l *Listeners) OnPointerDown(fn func(PointerEvent)) func() {
	l.mu.Lock()
	if l.fns == nil {
		l.fns = make(map[uint64]func(PointerEvent))
	}
	l.next++
	key := l.next
	l.fns[key] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, key)
			l.mu.Unlock()
		})
	}
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// DispatchPointerDown calls every listener with ev, in registration order.
func (l *Listeners) DispatchPointerDown(ev PointerEvent) {
	l.mu.Lock()
	fns := make([]func(PointerEvent), 0, len(l.fns))
	for k := uint64(1); k <= l.next; k++ {
		if fn, ok := l.fns[k]; ok {
			fns = append(fns, fn)
		}
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
