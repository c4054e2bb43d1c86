package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/vango-dev/dropdown/pkg/dom"
	"github.com/vango-dev/dropdown/pkg/render"
	"github.com/vango-dev/dropdown/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vango-dev/dropdown/pkg/live"

// Dispatch errors.
var (
	ErrUnknownTarget  = errors.New("live: unknown target")
	ErrNoHandler      = errors.New("live: no handler")
	ErrUnknownMessage = errors.New("live: unknown message type")
	ErrPageClosed     = errors.New("live: page closed")
)

// Mounter is implemented by components that attach listeners to the
// document they are rendered into.
type Mounter interface {
	Mount(doc dom.Document)
	Unmount()
}

// Subscriber is implemented by components whose state changes require a
// re-render.
type Subscriber interface {
	Subscribe(fn func()) (unsubscribe func())
}

// BuildFunc creates the root component of a page. Components that need the
// page as their document or locator receive it here and call Attach.
type BuildFunc func(p *Page) vdom.Component

// Page is one live rendering of a component tree.
//
// A Page is the document its components are mounted into: it implements
// dom.Document through the embedded listener set and dom.Locator through
// geometry reported by the client. Event dispatch and rendering are
// serialised by the page mutex.
type Page struct {
	dom.Listeners

	id       string
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	renderer *render.Renderer

	mu       sync.Mutex
	root     vdom.Component
	tree     *vdom.VNode
	hids     map[string]*vdom.VNode
	renders  uint64
	cleanups []func()
	closed   bool

	geoMu    sync.RWMutex
	geometry map[string]dom.Geometry

	dirty atomic.Bool
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithID sets the page ID. A random UUID is used otherwise.
func WithID(id string) PageOption {
	return func(p *Page) { p.id = id }
}

// WithLogger sets the page logger.
func WithLogger(logger *slog.Logger) PageOption {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records page activity in m.
func WithMetrics(m *Metrics) PageOption {
	return func(p *Page) { p.metrics = m }
}

// WithTracer sets the tracer used for event spans.
func WithTracer(t trace.Tracer) PageOption {
	return func(p *Page) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithRenderer sets the renderer configuration used by HTML.
func WithRenderer(cfg render.RendererConfig) PageOption {
	return func(p *Page) { p.renderer = render.NewRenderer(cfg) }
}

// NewPage creates a page whose root component is returned by build.
func NewPage(build BuildFunc, opts ...PageOption) *Page {
	p := &Page{
		id:       uuid.NewString(),
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		renderer: render.NewRenderer(render.RendererConfig{}),
		geometry: make(map[string]dom.Geometry),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("page", p.id)
	p.dirty.Store(true)
	p.root = build(p)
	p.metrics.pageOpened()
	return p
}

// ID returns the page ID.
func (p *Page) ID() string { return p.id }

// Attach mounts c into the page when it is a Mounter and re-renders the
// page whenever it changes when it is a Subscriber. Both are undone by Close.
func (p *Page) Attach(c any) {
	var cleanups []func()
	if m, ok := c.(Mounter); ok {
		m.Mount(p)
		cleanups = append(cleanups, m.Unmount)
	}
	if s, ok := c.(Subscriber); ok {
		cleanups = append(cleanups, s.Subscribe(p.invalidate))
	}

	p.mu.Lock()
	closed := p.closed
	if !closed {
		p.cleanups = append(p.cleanups, cleanups...)
	}
	p.mu.Unlock()

	if closed {
		runReverse(cleanups)
	}
}

func (p *Page) invalidate() { p.dirty.Store(true) }

// Dirty reports whether state changed since the last render.
func (p *Page) Dirty() bool { return p.dirty.Load() }

// Renders returns how many times the page has been rendered.
func (p *Page) Renders() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renders
}

// Locate implements dom.Locator with the geometry last reported for the
// node's HID.
func (p *Page) Locate(node *vdom.VNode) (dom.Geometry, bool) {
	if node == nil || node.HID == "" {
		return dom.Geometry{}, false
	}
	p.geoMu.RLock()
	defer p.geoMu.RUnlock()
	g, ok := p.geometry[node.HID]
	return g, ok
}

// Measure records the geometry of the element with the given HID.
// Measurements are discarded on the next render since HIDs are reassigned.
func (p *Page) Measure(hid string, g dom.Geometry) {
	p.geoMu.Lock()
	defer p.geoMu.Unlock()
	p.geometry[hid] = g
}

// Render renders the root component, resolves portals and assigns HIDs.
// The returned tree must not be modified.
func (p *Page) Render() *vdom.VNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderLocked()
}

func (p *Page) renderLocked() *vdom.VNode {
	var tree *vdom.VNode
	if p.root != nil {
		tree = p.root.Render()
	}
	render.Prepare(tree, vdom.NewHIDGenerator())

	p.tree = tree
	p.hids = vdom.CollectHIDs(tree)
	p.renders++
	p.dirty.Store(false)

	p.geoMu.Lock()
	clear(p.geometry)
	p.geoMu.Unlock()

	p.metrics.recordRender()
	return tree
}

// Tree returns the last rendered tree, rendering first if needed.
func (p *Page) Tree() *vdom.VNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tree == nil {
		return p.renderLocked()
	}
	return p.tree
}

// HTML renders the page and returns its markup. A panic in the root
// component is returned as an error.
func (p *Page) HTML() (string, error) {
	var tree *vdom.VNode
	if err := p.safely("render", func() { tree = p.Render() }); err != nil {
		return "", err
	}
	return p.renderer.RenderToString(tree)
}

// Node returns the element with the given HID in the last rendered tree.
func (p *Page) Node(hid string) *vdom.VNode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hids[hid]
}

// Dispatch delivers a client message to the page.
//
// Event messages invoke the handler bound to the target element. Pointer-down
// messages are delivered to the document listeners; a missing or unknown HID
// is a pointer-down outside every rendered element. Geometry carried by the
// message is recorded for the target first, so handlers can locate it.
func (p *Page) Dispatch(ctx context.Context, msg Message) (err error) {
	name := msg.Type
	if msg.Type == MessageEvent {
		name = msg.Event
	}

	_, span := p.tracer.Start(ctx, "live."+name, trace.WithAttributes(
		attribute.String("live.page", p.id),
		attribute.String("live.message", msg.Type),
		attribute.String("live.hid", msg.HID),
	))
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		p.metrics.observeEvent(name, err, time.Since(start))
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPageClosed
	}
	if p.tree == nil {
		if err := p.safely("render", func() { p.renderLocked() }); err != nil {
			return err
		}
	}
	if msg.Geometry != nil && msg.HID != "" {
		p.Measure(msg.HID, *msg.Geometry)
	}

	switch msg.Type {
	case MessagePointerDown:
		var target *vdom.VNode
		if msg.HID != "" {
			target = p.hids[msg.HID]
		}
		return p.safely("handler", func() {
			p.DispatchPointerDown(dom.PointerEvent{Target: target})
		})

	case MessageEvent:
		node := p.hids[msg.HID]
		if node == nil {
			return fmt.Errorf("%w %q", ErrUnknownTarget, msg.HID)
		}
		h, ok := node.Handler(msg.Event)
		if !ok {
			return fmt.Errorf("%w for %q on %s", ErrNoHandler, msg.Event, msg.HID)
		}
		switch fn := h.(type) {
		case func():
			return p.safely("handler", fn)
		case func(string):
			return p.safely("handler", func() { fn(msg.Value) })
		default:
			return fmt.Errorf("%w for %q on %s: unsupported handler %T", ErrNoHandler, msg.Event, msg.HID, h)
		}

	default:
		return fmt.Errorf("%w %q", ErrUnknownMessage, msg.Type)
	}
}

// safely runs fn, turning a panic into an error. what names the code
// being run in logs and in the error.
func (p *Page) safely(what string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(what+" panic", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("live: %s panic: %v", what, r)
		}
	}()
	fn()
	return nil
}

// Close unmounts attached components and drops subscriptions.
// Closing a closed page does nothing.
func (p *Page) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	cleanups := p.cleanups
	p.cleanups = nil
	p.mu.Unlock()

	runReverse(cleanups)
	p.metrics.pageClosed()
	p.logger.Debug("page closed")
}

// Closed reports whether Close has been called.
func (p *Page) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func runReverse(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
