// Package vdom provides the virtual DOM used by dropdown components.
//
// Components render VNode trees on the server. Event handlers are plain Go
// closures stored in element props; the live host assigns hydration IDs
// (HIDs) to elements so that browser events can be routed back to them.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Span(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Refs
//
// Ref binds an element to a RefSetter at construction time, letting a
// component locate the element it rendered last (for containment checks
// and geometry lookups).
//
// # Portals
//
// Portal marks content that should be rendered into another element,
// identified by id. ResolvePortals performs the move and falls back to
// in-place rendering when the target does not exist.
package vdom
