// Package render provides server-side rendering of VNode trees to HTML.
//
// It handles text and attribute escaping, void and boolean attributes,
// hydration IDs (data-hid) and event markers (data-on-click, ...) that the
// thin client uses to route browser events back to Go handlers.
//
//	root := widget.Render()
//	render.Prepare(root, vdom.NewHIDGenerator())
//	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(root)
//
// RenderPage wraps a body in a complete document and injects the client
// script when a live session is attached.
package render
