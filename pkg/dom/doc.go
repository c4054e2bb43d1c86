// Package dom abstracts the parts of the browser document a server-side
// component depends on: element geometry (Locator) and document-level
// pointer events (Document). The live host implements both from data the
// thin client reports; tests use StaticLocator and Listeners directly.
package dom
