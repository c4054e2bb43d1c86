package vdom

// Portal renders children into the element whose id is target instead of
// in place. If no such element exists when the tree is resolved, the
// children stay where the portal is.
func Portal(target string, children ...any) *VNode {
	node := Fragment(children...)
	node.Kind = KindPortal
	node.Text = target
	return node
}

// ResolvePortals moves the children of every portal in the tree into its
// target element and returns the number of portals that were redirected.
// Unresolved portals become plain fragments. The tree is modified in place
// and must be resolved before HIDs are assigned.
func ResolvePortals(root *VNode) int {
	var portals []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindPortal {
			portals = append(portals, n)
		}
		return true
	})

	moved := 0
	for _, p := range portals {
		target := findTarget(root, p.Text)
		if target == nil || Contains(p, target) {
			p.Kind = KindFragment
			continue
		}
		target.Children = append(target.Children, p.Children...)
		p.Children = nil
		p.Kind = KindFragment
		moved++
	}
	return moved
}

// findTarget finds an element by id without descending into other portals'
// content, so content cannot be redirected into itself.
func findTarget(root *VNode, id string) *VNode {
	if id == "" {
		return nil
	}
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindPortal {
			return false
		}
		if n.Kind == KindElement && n.Attr("id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}
