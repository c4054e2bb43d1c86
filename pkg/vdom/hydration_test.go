package vdom

import "testing"

func TestHIDGenerator(t *testing.T) {
	gen := NewHIDGenerator()

	if h := gen.Next(); h != "h1" {
		t.Errorf("First HID = %v, want h1", h)
	}
	if h := gen.Next(); h != "h2" {
		t.Errorf("Second HID = %v, want h2", h)
	}
}

func TestAssignHIDs(t *testing.T) {
	tree := Div(
		Span(Text("Title")),
		Fragment(Div(OnClick(func() {}))),
	)

	AssignHIDs(tree, NewHIDGenerator())

	if tree.HID != "h1" {
		t.Errorf("root HID = %q, want h1", tree.HID)
	}
	if tree.Children[0].HID != "h2" {
		t.Errorf("span HID = %q, want h2", tree.Children[0].HID)
	}
	if tree.Children[0].Children[0].HID != "" {
		t.Error("text nodes must not receive HIDs")
	}
	inner := tree.Children[1].Children[0]
	if inner.HID != "h3" {
		t.Errorf("fragment child HID = %q, want h3", inner.HID)
	}

	byHID := CollectHIDs(tree)
	if len(byHID) != 3 {
		t.Errorf("CollectHIDs len = %d, want 3", len(byHID))
	}
	if byHID["h3"] != inner {
		t.Error("CollectHIDs did not index the fragment child")
	}
}

func TestContains(t *testing.T) {
	leaf := Span()
	sub := Div(leaf)
	root := Div(sub, Div())

	tests := []struct {
		name         string
		root, target *VNode
		want         bool
	}{
		{"self", sub, sub, true},
		{"descendant", root, leaf, true},
		{"sibling", root.Children[1], leaf, false},
		{"nil target", root, nil, false},
		{"nil root", nil, leaf, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.root, tt.target); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	target := Div(ID("sdd-1"))
	tree := Div(Span(ID("other")), target)

	if got := FindByID(tree, "sdd-1"); got != target {
		t.Error("FindByID did not find the target")
	}
	if got := FindByID(tree, "missing"); got != nil {
		t.Error("FindByID should return nil for missing ids")
	}
}
