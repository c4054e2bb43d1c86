package vdom

// VKind tells what a VNode is.
type VKind uint8

const (
	KindElement VKind = iota
	KindText
	KindFragment
	KindRaw    // HTML written unescaped
	KindPortal // children belong to the element whose id is Text
)

// VNode is a node of a virtual DOM tree.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string

	// Text is the content of text and raw nodes and the target id of a
	// portal.
	Text string

	// HID is the hydration ID assigned before rendering.
	HID string
}

// Props holds an element's attributes and event handlers. Handlers are
// stored under "on" + event name.
type Props map[string]any

// Handler returns the handler for event ("click", "input").
func (v *VNode) Handler(event string) (any, bool) {
	if v == nil {
		return nil, false
	}
	h, ok := v.Props["on"+event]
	return h, ok && h != nil
}

// Attr returns a string attribute, or "" when it is absent or not a
// string.
func (v *VNode) Attr(key string) string {
	if v == nil {
		return ""
	}
	s, _ := v.Props[key].(string)
	return s
}

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds a func() or func(string) to an event. Event carries
// the "on" prefix.
type EventHandler struct {
	Event   string
	Handler any
}

// Component is anything that renders to a VNode.
type Component interface {
	Render() *VNode
}

type funcComponent func() *VNode

func (f funcComponent) Render() *VNode { return f() }

// Func adapts a render function to Component.
func Func(render func() *VNode) Component { return funcComponent(render) }
