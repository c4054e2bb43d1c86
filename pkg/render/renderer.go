package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents nested block elements. Output is larger and meant
	// for reading, not serving.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Default two
	// spaces.
	Indent string
}

// Renderer writes VNode trees as HTML.
//
// It does not assign hydration IDs; elements that already carry one get a
// data-hid attribute. Run Prepare first for trees that handle events.
type Renderer struct {
	config RendererConfig
}

// NewRenderer returns a renderer using config.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Prepare resolves portals and assigns hydration IDs in place, in that
// order, so moved nodes are numbered where they end up.
func Prepare(root *vdom.VNode, gen *vdom.HIDGenerator) {
	vdom.ResolvePortals(root)
	vdom.AssignHIDs(root, gen)
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w}
	r.node(hw, node, 0)
	return hw.err
}

// htmlWriter remembers the first write error and turns later writes into
// no-ops, so rendering code can write unconditionally.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) printf(format string, args ...any) {
	if hw.err == nil {
		_, hw.err = fmt.Fprintf(hw.w, format, args...)
	}
}

func (hw *htmlWriter) fail(err error) {
	if hw.err == nil {
		hw.err = err
	}
}

func (r *Renderer) node(hw *htmlWriter, n *vdom.VNode, depth int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		r.element(hw, n, depth)
	case vdom.KindText:
		hw.str(escapeHTML(n.Text))
	case vdom.KindRaw:
		hw.str(n.Text)
	case vdom.KindFragment, vdom.KindPortal:
		// An unresolved portal renders in place.
		for _, c := range n.Children {
			r.node(hw, c, depth)
		}
	default:
		hw.fail(fmt.Errorf("render: unknown node kind %d", n.Kind))
	}
}

func (r *Renderer) element(hw *htmlWriter, n *vdom.VNode, depth int) {
	if depth > 0 {
		r.indent(hw, depth)
	}
	hw.str("<" + n.Tag)
	r.attributes(hw, n)
	if n.HID != "" {
		hw.printf(` data-hid="%s"`, escapeAttr(n.HID))
	}
	hw.str(">")

	if isVoidElement(n.Tag) {
		r.newline(hw)
		return
	}

	block := len(n.Children) > 0 && !isInlineElement(n.Tag)
	if block {
		r.newline(hw)
	}
	for _, c := range n.Children {
		r.node(hw, c, depth+1)
	}
	if block {
		r.indent(hw, depth)
	}
	hw.str("</" + n.Tag + ">")
	r.newline(hw)
}

// attributes writes props in key order. Handlers become data-on-<event>
// markers for the client, written after the plain attributes. Keys
// starting with "_" and the reconciliation key are internal.
func (r *Renderer) attributes(hw *htmlWriter, n *vdom.VNode) {
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var events []string
	for _, k := range keys {
		v := n.Props[k]
		switch {
		case strings.HasPrefix(k, "_") || k == "key":
		case strings.HasPrefix(k, "on") && isEventHandler(v):
			events = append(events, strings.ToLower(k[2:]))
		case isBooleanAttr(k) && isBool(v):
			if v.(bool) {
				hw.str(" " + k)
			}
		default:
			if s := attrToString(v); s != "" {
				hw.printf(` %s="%s"`, k, escapeAttr(s))
			}
		}
	}
	for _, e := range events {
		hw.printf(` data-on-%s="true"`, e)
	}
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// isEventHandler reports whether v is a handler the live host can call.
func isEventHandler(v any) bool {
	switch v.(type) {
	case func(), func(string):
		return true
	}
	return false
}

func attrToString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

func (r *Renderer) newline(hw *htmlWriter) {
	if r.config.Pretty {
		hw.str("\n")
	}
}

func (r *Renderer) indent(hw *htmlWriter, depth int) {
	if r.config.Pretty {
		hw.str(strings.Repeat(r.config.Indent, depth))
	}
}
