package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"empty div", vdom.Div(), "<div></div>"},
		{"text is escaped", vdom.Span(vdom.Text(`<b>"x"</b>`)), "<span>&lt;b&gt;&quot;x&quot;&lt;/b&gt;</span>"},
		{"attributes are sorted", vdom.Div(vdom.ID("a"), vdom.Class("c")), `<div class="c" id="a"></div>`},
		{"void element", vdom.Img(vdom.Src("x.svg"), vdom.Alt("x")), `<img alt="x" src="x.svg">`},
		{"boolean attribute", vdom.Input(vdom.Attr{Key: "disabled", Value: true}), "<input disabled>"},
		{"false boolean omitted", vdom.Input(vdom.Attr{Key: "disabled", Value: false}), "<input>"},
		{"raw html", vdom.Div(vdom.Raw("<i>x</i>")), "<div><i>x</i></div>"},
		{"fragment", vdom.Fragment(vdom.Span(), vdom.Span()), "<span></span><span></span>"},
		{"unresolved portal renders inline", vdom.Div(vdom.Portal("nowhere", vdom.Span())), "<div><span></span></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEventMarkers(t *testing.T) {
	node := vdom.Div(
		vdom.OnClick(func() {}),
		vdom.OnInput(func(string) {}),
	)
	Prepare(node, vdom.NewHIDGenerator())

	html := renderString(t, node)
	for _, want := range []string{`data-hid="h1"`, `data-on-click="true"`, `data-on-input="true"`} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %s in %s", want, html)
		}
	}
	if strings.Contains(html, "onclick=") {
		t.Errorf("handlers must not be rendered as attributes: %s", html)
	}
}

func TestRenderSkipsInternalProps(t *testing.T) {
	ref := &captureRef{}
	html := renderString(t, vdom.Div(vdom.Ref(ref), vdom.Key("k")))
	if html != "<div></div>" {
		t.Errorf("got %q", html)
	}
}

type captureRef struct{ node *vdom.VNode }

func (c *captureRef) Set(n *vdom.VNode) { c.node = n }

func TestPrepareResolvesPortals(t *testing.T) {
	root := vdom.Div(
		vdom.Div(vdom.Portal("overlay", vdom.Span(vdom.Text("list")))),
		vdom.Div(vdom.ID("overlay")),
	)
	Prepare(root, vdom.NewHIDGenerator())

	html := renderString(t, root)
	if !strings.Contains(html, `id="overlay" data-hid="h3"><span data-hid="h4">list</span>`) {
		t.Errorf("portal content not rendered into target: %s", html)
	}
}

func TestPrettyRender(t *testing.T) {
	node := vdom.Div(vdom.Div(vdom.Text("x")))
	html, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "\n  <div>") {
		t.Errorf("expected indented child, got %q", html)
	}
}

func TestRenderPage(t *testing.T) {
	var sb strings.Builder
	err := NewRenderer(RendererConfig{}).RenderPage(&sb, PageData{
		Title:     "Dropdown <demo>",
		Body:      vdom.Div(vdom.Text("hello")),
		SessionID: "abc",
	})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Dropdown &lt;demo&gt;</title>",
		`<div id="app" data-session="abc"><div>hello</div></div>`,
		`<script src="/_dropdown/client.js" defer></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageWithoutSession(t *testing.T) {
	var sb strings.Builder
	if err := NewRenderer(RendererConfig{}).RenderPage(&sb, PageData{Body: vdom.Div()}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "client.js") {
		t.Error("client script must not be injected without a session")
	}
}
