package render

import (
	"io"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

// ClientScript is where the live host serves the thin client.
const ClientScript = "/_dropdown/client.js"

// PageData describes a complete HTML document.
type PageData struct {
	// Body is rendered inside <div id="app">, the element the thin client
	// replaces on every update.
	Body *vdom.VNode

	Title string

	// Lang is the html lang attribute. Default "en".
	Lang string

	StyleSheets []string

	// SessionID names the live page the client connects to. Without one
	// the client script is left out and the page is static.
	SessionID string
}

// RenderPage writes page as a full HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	hw := &htmlWriter{w: w}
	hw.printf("<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang))
	hw.str("  <meta charset=\"utf-8\">\n")
	hw.str("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		hw.printf("  <title>%s</title>\n", escapeHTML(page.Title))
	}
	for _, href := range page.StyleSheets {
		hw.printf("  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href))
	}
	hw.str("</head>\n")

	hw.printf("<body>\n<div id=\"app\" data-session=\"%s\">", escapeAttr(page.SessionID))
	r.node(hw, page.Body, 0)
	hw.str("</div>\n")
	if page.SessionID != "" {
		hw.printf("<script src=\"%s\" defer></script>\n", ClientScript)
	}
	hw.str("</body>\n</html>\n")
	return hw.err
}
