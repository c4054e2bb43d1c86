package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode { return &VNode{Kind: KindText, Text: content} }

// Raw creates a node rendered without escaping. Never pass user input.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		node.Children = appendChild(node.Children, c)
	}
	return node
}

// If returns node when cond holds and nil otherwise. node is built either
// way; use When to defer construction.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}

// When returns fn() when cond holds and nil otherwise.
func When(cond bool, fn func() *VNode) *VNode {
	if !cond {
		return nil
	}
	return fn()
}

// Range maps items to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Key sets the element key. Keys are never rendered.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}
