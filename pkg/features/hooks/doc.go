// Package hooks attaches client-side behavior to server-rendered elements.
//
// A hook is a v-hook attribute of the form "Name:{json config}" that the thin
// client interprets. State stays on the server; the hook only decides which
// browser events are reported back.
//
// Usage:
//
//	Div(
//	    standard.Dropdown(standard.DropdownConfig{CloseOnOutside: true}),
//	    ...
//	)
package hooks
