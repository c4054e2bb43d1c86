package dropdown

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/dropdown/pkg/features/hooks/standard"
	. "github.com/vango-dev/dropdown/pkg/vdom"
)

// ZIndex keeps the open list above surrounding content.
const ZIndex = 1000

// Render renders the trigger and, when open, the option list. With an ID
// the list is wrapped in a portal targeting that element.
func (d *Dropdown) Render() *VNode {
	list := d.renderList()
	if list != nil && d.cfg.ID != "" {
		list = Portal(d.cfg.ID, list)
	}

	return Div(
		Class("relative w-full", d.cfg.Class),
		Data("dropdown", "root"),
		d.renderTrigger(),
		list,
	)
}

func (d *Dropdown) renderTrigger() *VNode {
	return Div(
		Ref(d.trigger),
		Class("p-2 border rounded-lg bg-white cursor-pointer flex justify-between items-center"),
		Data("dropdown", "trigger"),
		AriaHasPopup("listbox"),
		AriaExpanded(d.open.Get()),
		OnClick(d.Toggle),
		Div(Class("flex gap-2"), d.renderSummary()),
		Img(Src(arrowDownIcon), Alt("arrow-down"), Class("w-4 mr-2")),
	)
}

// renderSummary shows chips, the selected label, or the placeholder.
func (d *Dropdown) renderSummary() *VNode {
	sel := d.selection.Get()

	if d.cfg.Multiple {
		if sel.IsEmpty() {
			return Span(Class("p-2"), Data("dropdown", "placeholder"), Text(d.cfg.Placeholder))
		}
		return Fragment(Range(sel.Options(), func(o Option, i int) *VNode {
			return d.renderChip(o, i)
		}))
	}

	if o, ok := sel.Option(); ok {
		return Span(Class("p-2"), Data("dropdown", "value"), Text(o.Label))
	}
	return Span(Class("p-2"), Data("dropdown", "placeholder"), Text(d.cfg.Placeholder))
}

func (d *Dropdown) renderChip(o Option, i int) *VNode {
	return Span(
		Key(fmt.Sprintf("chip-%d-%s", i, o.key())),
		Class("flex justify-between gap-2 rounded-xl bg-gray-200 px-2 py-1"),
		Data("dropdown", "chip"),
		Text(o.Label),
		Img(
			Src(closeIcon),
			Alt("close"),
			Class("w-4"),
			Data("dropdown", "chip-close"),
			OnClick(func() { d.Remove(o) }),
		),
	)
}

func (d *Dropdown) renderList() *VNode {
	if !d.open.Get() {
		d.list.Clear()
		return nil
	}

	filtered := d.Filtered()
	var rows []*VNode
	if len(filtered) == 0 {
		rows = []*VNode{Div(Class("p-2 text-gray-500"), Data("dropdown", "empty"), Text(d.cfg.NoResultsText))}
	} else {
		rows = Range(filtered, d.renderOption)
	}

	return Div(
		Ref(d.list),
		Class("absolute w-full bg-white border rounded-lg shadow-lg max-h-60 overflow-auto"),
		Role("listbox"),
		Data("dropdown", "list"),
		Styles(d.listStyle()),
		standard.Dropdown(standard.DropdownConfig{CloseOnOutside: true}),
		When(d.cfg.WithSearch, d.renderSearch),
		rows,
	)
}

func (d *Dropdown) listStyle() map[string]string {
	pos := d.position.Get()
	width := "auto"
	if pos.Measured {
		width = px(pos.Width)
	}
	return map[string]string{
		"position": "absolute",
		"top":      px(pos.Top),
		"left":     px(pos.Left),
		"width":    width,
		"z-index":  strconv.Itoa(ZIndex),
	}
}

func (d *Dropdown) renderSearch() *VNode {
	return Div(
		Class("flex gap-2 p-2"),
		Img(Src(searchIcon), Alt("search"), Class("w-5")),
		Input(
			Type("text"),
			Class("w-full p-2 border-b outline-none focus:border-blue-500 focus:ring-1 focus:ring-blue-500"),
			Data("dropdown", "search"),
			Placeholder(d.cfg.SearchPlaceholder),
			Autocomplete("off"),
			Value(d.search.Get()),
			OnInput(d.SetSearch),
		),
	)
}

func (d *Dropdown) renderOption(o Option, i int) *VNode {
	selected := d.IsSelected(o)
	class := "p-2 cursor-pointer hover:bg-gray-100"
	if selected {
		class = CN(class, "bg-blue-100")
	}

	return Div(
		Key(fmt.Sprintf("opt-%d-%s", i, o.key())),
		Class(class),
		Role("option"),
		AriaSelected(selected),
		Data("dropdown", "option"),
		OnClick(func() { d.Select(o) }),
		Range(d.Highlight(o.Label), func(s Segment, _ int) *VNode {
			if s.Match {
				return Span(Class("bg-blue-300"), Data("dropdown", "match"), Text(s.Text))
			}
			return Text(s.Text)
		}),
	)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
