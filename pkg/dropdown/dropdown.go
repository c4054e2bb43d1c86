package dropdown

import (
	"sync"

	"github.com/vango-dev/dropdown/pkg/dom"
	"github.com/vango-dev/dropdown/pkg/vango"
	"github.com/vango-dev/dropdown/pkg/vdom"
)

// Position places the open list relative to the document.
// Measured is false until the trigger has been located once.
type Position struct {
	Top      float64
	Left     float64
	Width    float64
	Measured bool
}

// positionFrom places the list directly under the trigger.
func positionFrom(g dom.Geometry) Position {
	return Position{
		Top:      g.Bounds.Bottom() + g.ScrollY,
		Left:     g.Bounds.Left + g.ScrollX,
		Width:    g.Bounds.Width,
		Measured: true,
	}
}

// Dropdown is a searchable single- or multi-select widget.
//
// State lives in signals; every operation runs synchronously and is safe to
// call from event handlers. Render produces the current tree. Mount and
// Unmount bound the document listener used for outside-click dismissal.
type Dropdown struct {
	cfg Config

	selection *vango.Signal[Selection]
	search    *vango.Signal[string]
	open      *vango.Signal[bool]
	position  *vango.Signal[Position]

	// trigger and list are the elements rendered last; list is nil while
	// the list is closed.
	trigger *vango.Ref[*vdom.VNode]
	list    *vango.Ref[*vdom.VNode]

	mu    sync.Mutex
	owner *vango.Owner
}

// New creates a Dropdown.
func New(cfg Config) *Dropdown {
	cfg = cfg.withDefaults()
	return &Dropdown{
		cfg:       cfg,
		selection: vango.NewSignal(Empty(cfg.Multiple)),
		search:    vango.NewSignal(""),
		open:      vango.NewSignal(false),
		position:  vango.NewSignal(Position{}),
		trigger:   vango.NewRef[*vdom.VNode](nil),
		list:      vango.NewRef[*vdom.VNode](nil),
	}
}

// Config returns the widget configuration.
func (d *Dropdown) Config() Config { return d.cfg }

// IsOpen reports whether the list is open.
func (d *Dropdown) IsOpen() bool { return d.open.Get() }

// Selection returns the current selection.
func (d *Dropdown) Selection() Selection { return d.selection.Get() }

// Search returns the current search term.
func (d *Dropdown) Search() string { return d.search.Get() }

// Position returns where the list was last placed.
func (d *Dropdown) Position() Position { return d.position.Get() }

// Toggle opens a closed list and closes an open one. Opening re-measures
// the trigger, so the list follows it after scrolling or resizing.
func (d *Dropdown) Toggle() {
	if d.open.Get() {
		d.Close()
		return
	}
	d.reposition()
	d.open.Set(true)
}

// Close closes the list. Closing a closed list does nothing.
func (d *Dropdown) Close() {
	d.open.Set(false)
}

func (d *Dropdown) reposition() {
	if d.cfg.Locator == nil {
		return
	}
	if g, ok := d.cfg.Locator.Locate(d.trigger.Current()); ok {
		d.position.Set(positionFrom(g))
	}
}

// Select chooses o. In single mode o replaces the selection and the list
// closes. In multiple mode o is added, or removed if already selected, and
// the list stays open. OnChange is called either way.
func (d *Dropdown) Select(o Option) {
	var next Selection
	if d.cfg.Multiple {
		next = d.selection.Get().toggle(o, d.cfg.Equal)
	} else {
		next = Single(o)
	}
	d.selection.Set(next)
	if !d.cfg.Multiple {
		d.Close()
	}
	d.notify(next)
}

// Remove drops o from a multiple selection, as the chip close icon does.
// The open state is left alone. Single-mode widgets ignore Remove.
func (d *Dropdown) Remove(o Option) {
	if !d.cfg.Multiple {
		return
	}
	cur := d.selection.Get()
	if !cur.Contains(o, d.cfg.Equal) {
		return
	}
	next := cur.remove(o, d.cfg.Equal)
	d.selection.Set(next)
	d.notify(next)
}

// SetSearch updates the search term.
func (d *Dropdown) SetSearch(term string) {
	d.search.Set(term)
}

// Filtered returns the options matching the current search term.
func (d *Dropdown) Filtered() []Option {
	return Filter(d.cfg.Options, d.search.Get())
}

// IsSelected reports whether o is part of the current selection.
func (d *Dropdown) IsSelected(o Option) bool {
	return d.selection.Get().Contains(o, d.cfg.Equal)
}

// Highlight splits label around the current search term. Without
// Outlined, or with an empty term, the label is returned whole.
func (d *Dropdown) Highlight(label string) []Segment {
	if !d.cfg.Outlined {
		return []Segment{{Text: label}}
	}
	return Highlight(label, d.search.Get())
}

func (d *Dropdown) notify(s Selection) {
	if d.cfg.OnChange != nil {
		d.cfg.OnChange(s)
	}
}

// Mount attaches the widget to doc: a single document pointer-down listener
// closes the list when the pointer lands outside both the trigger and the
// list. Mounting a mounted widget does nothing.
func (d *Dropdown) Mount(doc dom.Document) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.owner != nil {
		return
	}
	owner := vango.NewOwner()
	if doc != nil {
		owner.OnCleanup(doc.OnPointerDown(d.handlePointerDown))
	}
	d.owner = owner
}

// Unmount releases everything acquired by Mount.
func (d *Dropdown) Unmount() {
	d.mu.Lock()
	owner := d.owner
	d.owner = nil
	d.mu.Unlock()

	if owner != nil {
		owner.Dispose()
	}
}

// Mounted reports whether the widget is mounted.
func (d *Dropdown) Mounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.owner != nil
}

// Subscribe calls fn after any state change. The returned function
// removes the subscription.
func (d *Dropdown) Subscribe(fn func()) (unsubscribe func()) {
	stops := []func(){
		d.selection.Subscribe(fn),
		d.search.Subscribe(fn),
		d.open.Subscribe(fn),
		d.position.Subscribe(fn),
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

func (d *Dropdown) handlePointerDown(ev dom.PointerEvent) {
	if !d.open.Get() {
		return
	}
	if vdom.Contains(d.trigger.Current(), ev.Target) || vdom.Contains(d.list.Current(), ev.Target) {
		return
	}
	d.Close()
}
