package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// RefSetter receives the element a Ref attribute is attached to.
// vango.Ref[*vdom.VNode] satisfies it.
type RefSetter interface {
	Set(*VNode)
}

// Ref binds the element being created to r. The binding happens at
// construction time, so after each render r holds the latest element.
func Ref(r RefSetter) Attr { return attr("_ref", r) }

// createElement builds an element from its arguments. Attrs, []Attr and
// EventHandlers become props; everything else is treated as a child.
func createElement(tag string, args []any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag, Props: make(Props)}

	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.applyAttr(v)
		case []Attr:
			for _, a := range v {
				node.applyAttr(a)
			}
		case EventHandler:
			if v.Handler != nil {
				node.Props[v.Event] = v.Handler
			}
		default:
			node.Children = appendChild(node.Children, arg)
		}
	}

	if r, ok := node.Props["_ref"].(RefSetter); ok && r != nil {
		r.Set(node)
	}
	return node
}

// appendChild appends arg to children when it is a node, a node slice, a
// string or a Component. Nil nodes and other values are dropped.
func appendChild(children []*VNode, arg any) []*VNode {
	switch v := arg.(type) {
	case *VNode:
		if v != nil {
			children = append(children, v)
		}
	case []*VNode:
		for _, c := range v {
			if c != nil {
				children = append(children, c)
			}
		}
	case string:
		children = append(children, Text(v))
	case Component:
		if out := v.Render(); out != nil {
			children = append(children, out)
		}
	}
	return children
}

func (v *VNode) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// Layout and text

func Main(args ...any) *VNode { return createElement("main", args) }
func H1(args ...any) *VNode   { return createElement("h1", args) }
func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func A(args ...any) *VNode    { return createElement("a", args) }

// Controls and media

func Label(args ...any) *VNode  { return createElement("label", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Img(args ...any) *VNode    { return createElement("img", args) }
