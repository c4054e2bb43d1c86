package stories

import (
	"log/slog"

	"github.com/vango-dev/dropdown/internal/errors"
	"github.com/vango-dev/dropdown/pkg/dom"
	"github.com/vango-dev/dropdown/pkg/dropdown"
	"github.com/vango-dev/dropdown/pkg/live"
	"github.com/vango-dev/dropdown/pkg/render"
	. "github.com/vango-dev/dropdown/pkg/vdom"
)

// Host is what a story page needs from the process serving it.
type Host struct {
	Logger  *slog.Logger
	Metrics *live.Metrics
}

// Mount builds the page of s on p: the dropdown is attached to p, which
// also locates its trigger.
func (c *Catalogue) Mount(p *live.Page, s Story, h Host) Component {
	d := c.widget(s, p, h)
	p.Attach(d)
	return Func(func() *VNode { return c.layout(s, d) })
}

// Render renders s to HTML without a live page. The list is closed.
func (c *Catalogue) Render(s Story, pretty bool) (string, error) {
	d := c.widget(s, nil, Host{})
	root := c.layout(s, d)
	render.Prepare(root, NewHIDGenerator())
	html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(root)
	if err != nil {
		return "", errors.New("E302").
			WithDetail("Story " + s.Name + " failed to render").
			Wrap(err)
	}
	return html, nil
}

func (c *Catalogue) widget(s Story, locator dom.Locator, h Host) *dropdown.Dropdown {
	cfg := c.Config(s)
	if locator != nil {
		cfg.Locator = locator
	}
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := s.Name
	cfg.OnChange = func(sel dropdown.Selection) {
		h.Metrics.RecordSelection(name)
		logger.Debug("selection changed", "story", name, "selection", sel.String())
	}
	return dropdown.New(cfg)
}

func (c *Catalogue) layout(s Story, d *dropdown.Dropdown) *VNode {
	return Div(Class("p-4"), Data("story", s.Name),
		Div(Class("flex items-center gap-2"),
			Label(Class("min-w-32"), c.Label),
			d,
		),
		If(s.Args.ID != "", Div(ID(s.Args.ID))),
	)
}

// Index lists the stories with links to their pages.
func (c *Catalogue) Index(prefix string) *VNode {
	return Main(Class("p-4"),
		H1(Class("text-xl mb-2"), c.Title),
		Ul(Range(c.Stories, func(s Story, _ int) *VNode {
			return Li(
				A(Href(prefix+"/"+s.Name), s.Name),
				If(s.Description != "", Span(Class("text-gray-500 ml-2"), s.Description)),
			)
		})),
	)
}
