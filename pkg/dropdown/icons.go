package dropdown

import "net/url"

// Icons are inline SVG data URIs so the widget needs no static assets.
var (
	closeIcon     = svgURI(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M18 6 6 18M6 6l12 12"/></svg>`)
	searchIcon    = svgURI(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="11" cy="11" r="7"/><path d="m21 21-4.3-4.3"/></svg>`)
	arrowDownIcon = svgURI(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="m6 9 6 6 6-6"/></svg>`)
)

func svgURI(svg string) string {
	return "data:image/svg+xml," + url.PathEscape(svg)
}
