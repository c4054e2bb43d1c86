// Package vtest provides testing helpers for components.
//
// The vtest package hosts a component on a live page with a synthetic
// document, so tests drive it through the same HID-addressed messages the
// thin client sends and assert on the rendered output.
//
// # Quick Start
//
//	func TestDropdown_Select(t *testing.T) {
//	    d := dropdown.New(cfg)
//	    h := vtest.Mount(t, d)
//
//	    h.Click(h.MustQuery("data-dropdown", "trigger"))
//	    h.Click(h.MustQuery("data-dropdown", "option"))
//
//	    vtest.ExpectContains(t, h.Tree(), "Option 1")
//	}
//
// # Outside Clicks
//
// Click presses the pointer before clicking, like a browser, so
// document-level pointer-down listeners see every click. ClickOutside
// presses the pointer on no rendered element:
//
//	h.ClickOutside()
//
// # Layouts
//
// WithLayout wraps the component's tree, for instance to provide the
// element a portal renders into:
//
//	h := vtest.Mount(t, d, vtest.WithLayout(func(c *vdom.VNode) *vdom.VNode {
//	    return vdom.Div(c, vdom.Div(vdom.ID("overlay")))
//	}))
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, h.Tree(), "No results found")
//	vtest.ExpectNotContains(t, h.Tree(), `data-dropdown="list"`)
package vtest
