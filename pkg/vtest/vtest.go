package vtest

import (
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/dropdown/pkg/dom"
	"github.com/vango-dev/dropdown/pkg/live"
	"github.com/vango-dev/dropdown/pkg/render"
	"github.com/vango-dev/dropdown/pkg/vdom"
)

// Harness hosts a component on a live page and drives it the way the thin
// client would: pointer-down and click messages addressed by HID.
type Harness struct {
	t    testing.TB
	page *live.Page
}

// Option configures a Harness.
type Option func(*options)

type options struct {
	layout func(content *vdom.VNode) *vdom.VNode
}

// WithLayout wraps the component's tree, e.g. to provide a portal target.
func WithLayout(layout func(content *vdom.VNode) *vdom.VNode) Option {
	return func(o *options) { o.layout = layout }
}

// Mount hosts c on a new page. c is attached to the page, so a component
// with Mount/Unmount is mounted into the page's document and one with
// Subscribe triggers re-renders. The page is closed when the test ends.
//
// Example:
//
//	d := dropdown.New(cfg)
//	h := vtest.Mount(t, d)
//	h.Click(h.Query("data-dropdown", "trigger"))
func Mount(t testing.TB, c vdom.Component, opts ...Option) *Harness {
	t.Helper()
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return MountPage(t, func(p *live.Page) vdom.Component {
		p.Attach(c)
		if o.layout == nil {
			return c
		}
		return vdom.Func(func() *vdom.VNode { return o.layout(c.Render()) })
	})
}

// MountPage hosts the component returned by build. Use it when the
// component needs the page itself, e.g. as its dom.Locator.
func MountPage(t testing.TB, build live.BuildFunc) *Harness {
	t.Helper()
	page := live.NewPage(build, live.WithID("test"))
	t.Cleanup(page.Close)
	page.Render()
	return &Harness{t: t, page: page}
}

// Page returns the hosting page.
func (h *Harness) Page() *live.Page { return h.page }

// Tree returns the current tree, re-rendering when state changed.
func (h *Harness) Tree() *vdom.VNode {
	if h.page.Dirty() {
		return h.page.Render()
	}
	return h.page.Tree()
}

// HTML returns the markup of the current tree.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(h.Tree())
	if err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return html
}

// Query returns the first element whose attribute attr equals value, or nil.
func (h *Harness) Query(attr, value string) *vdom.VNode {
	return vdom.Find(h.Tree(), func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Attr(attr) == value
	})
}

// QueryAll returns every element whose attribute attr equals value.
func (h *Harness) QueryAll(attr, value string) []*vdom.VNode {
	var out []*vdom.VNode
	vdom.Walk(h.Tree(), func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.Attr(attr) == value {
			out = append(out, n)
		}
		return true
	})
	return out
}

// MustQuery is Query failing the test when nothing matches.
func (h *Harness) MustQuery(attr, value string) *vdom.VNode {
	h.t.Helper()
	n := h.Query(attr, value)
	if n == nil {
		h.t.Fatalf("no element with %s=%q in:\n%s", attr, value, truncate(h.HTML(), 500))
	}
	return n
}

// Click presses the pointer on node and clicks it, as a browser does.
func (h *Harness) Click(node *vdom.VNode) {
	h.t.Helper()
	h.ClickAt(node, nil)
}

// ClickAt is Click reporting g as the node's geometry.
func (h *Harness) ClickAt(node *vdom.VNode, g *dom.Geometry) {
	h.t.Helper()
	h.PointerDown(node)
	h.send(live.Message{Type: live.MessageEvent, HID: hid(h.t, node), Event: "click", Geometry: g})
}

// ClickOutside presses the pointer outside every rendered element.
func (h *Harness) ClickOutside() {
	h.t.Helper()
	h.send(live.Message{Type: live.MessagePointerDown})
}

// PointerDown presses the pointer on node without clicking.
func (h *Harness) PointerDown(node *vdom.VNode) {
	h.t.Helper()
	h.send(live.Message{Type: live.MessagePointerDown, HID: hid(h.t, node)})
}

// Input types value into node.
func (h *Harness) Input(node *vdom.VNode, value string) {
	h.t.Helper()
	h.send(live.Message{Type: live.MessageEvent, HID: hid(h.t, node), Event: "input", Value: value})
}

// Dispatch sends msg to the page and re-renders on change.
func (h *Harness) Dispatch(msg live.Message) error {
	err := h.page.Dispatch(context.Background(), msg)
	if h.page.Dirty() {
		h.page.Render()
	}
	return err
}

func (h *Harness) send(msg live.Message) {
	h.t.Helper()
	if err := h.Dispatch(msg); err != nil {
		h.t.Fatalf("dispatch %s %s on %s: %v", msg.Type, msg.Event, msg.HID, err)
	}
}

// Listeners returns the number of document listeners on the page.
func (h *Harness) Listeners() int { return h.page.Len() }

func hid(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	if node == nil {
		t.Fatal("nil node")
	}
	if node.HID == "" {
		t.Fatalf("<%s> has no HID; query it from the current tree", node.Tag)
	}
	return node.HID
}

// TextContent returns the concatenated text below node.
func TextContent(node *vdom.VNode) string {
	var b strings.Builder
	vdom.Walk(node, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(d.Render())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, d.Render(), "No results found")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, d.Render(), "aria-expanded", "true")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
