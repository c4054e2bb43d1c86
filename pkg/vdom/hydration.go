package vdom

import (
	"strconv"
	"sync/atomic"
)

// HIDGenerator hands out hydration IDs "h1", "h2", ... Safe for
// concurrent use.
type HIDGenerator struct {
	n atomic.Uint32
}

// NewHIDGenerator returns a generator starting at h1.
func NewHIDGenerator() *HIDGenerator { return &HIDGenerator{} }

// Next returns the next ID.
func (g *HIDGenerator) Next() string {
	return "h" + strconv.FormatUint(uint64(g.n.Add(1)), 10)
}

// AssignHIDs numbers every element of the tree in document order. All
// elements get one, not only those with handlers, so a document-level
// pointer event can be traced to the node it landed on.
func AssignHIDs(root *VNode, gen *HIDGenerator) {
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement {
			n.HID = gen.Next()
		}
		return true
	})
}

// CollectHIDs indexes the tree's nodes by HID.
func CollectHIDs(root *VNode) map[string]*VNode {
	byHID := make(map[string]*VNode)
	Walk(root, func(n *VNode) bool {
		if n.HID != "" {
			byHID[n.HID] = n
		}
		return true
	})
	return byHID
}

// Walk visits root and its descendants depth-first. When fn returns false
// the children of that node are skipped.
func Walk(root *VNode, fn func(*VNode) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, c := range root.Children {
		Walk(c, fn)
	}
}

// Find returns the first node in document order for which match is true.
func Find(root *VNode, match func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found == nil && match(n) {
			found = n
		}
		return found == nil
	})
	return found
}

// FindByID returns the first element whose id attribute is id.
func FindByID(root *VNode, id string) *VNode {
	if id == "" {
		return nil
	}
	return Find(root, func(n *VNode) bool {
		return n.Kind == KindElement && n.Attr("id") == id
	})
}

// Contains reports whether target is root itself or lies beneath it.
// Nodes are compared by identity.
func Contains(root, target *VNode) bool {
	if target == nil {
		return false
	}
	return Find(root, func(n *VNode) bool { return n == target }) != nil
}
