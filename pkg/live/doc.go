// Package live hosts components as live pages.
//
// A Page renders a component tree, assigns hydration IDs and dispatches
// client events to the handlers bound in the tree. It is also the document
// the components are mounted into: pointer-down events reported by the
// client reach document listeners, and geometry reported with each event
// backs dom.Locator.
//
// Server serves pages over HTTP, the thin client script, and one websocket
// per page carrying JSON messages:
//
//	client: {"type":"event","hid":"h3","event":"click","geometry":{...}}
//	client: {"type":"pointerdown","hid":"h7"}
//	server: {"type":"html","html":"..."}
//	server: {"type":"error","message":"..."}
//
// After every message that changed state the server sends the re-rendered
// page markup.
package live
