package vdom

import (
	"sort"
	"strings"
)

func attr(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Attribute constructors. Values are rendered as written; bools render as
// "true" or "false".
func ID(id string) Attr               { return attr("id", id) }
func Data(key, value string) Attr     { return attr("data-"+key, value) }
func Role(role string) Attr           { return attr("role", role) }
func Href(url string) Attr            { return attr("href", url) }
func Src(url string) Attr             { return attr("src", url) }
func Alt(text string) Attr            { return attr("alt", text) }
func Type(t string) Attr              { return attr("type", t) }
func Value(v string) Attr             { return attr("value", v) }
func Placeholder(text string) Attr    { return attr("placeholder", text) }
func Autocomplete(mode string) Attr   { return attr("autocomplete", mode) }
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }
func AriaHasPopup(kind string) Attr   { return attr("aria-haspopup", kind) }

// Class sets the class attribute from the non-empty classes given.
func Class(classes ...string) Attr    { return attr("class", CN(classes...)) }

// CN joins class names with single spaces, skipping blank ones.
func CN(classes ...string) string {
	var b strings.Builder
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}

// Styles renders props as an inline style. Keys are sorted and empty
// values dropped, so equal maps always produce equal markup.
func Styles(props map[string]string) Attr {
	keys := make([]string, 0, len(props))
	for k, v := range props {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + props[k])
	}
	return attr("style", b.String())
}
