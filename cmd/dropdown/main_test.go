package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/dropdown/internal/config"
	"github.com/vango-dev/dropdown/internal/errors"
	"github.com/vango-dev/dropdown/internal/stories"
	"github.com/vango-dev/dropdown/pkg/live"
)

func init() {
	errors.DisableColors()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestStoriesListCmd(t *testing.T) {
	out, err := execute(t, "stories", "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Default", "Multiple", "Outlined", "NoSearch", "Empty"} {
		if !strings.Contains(out, name) {
			t.Errorf("stories list missing %s:\n%s", name, out)
		}
	}
}

func TestStoriesRenderCmd(t *testing.T) {
	out, err := execute(t, "stories", "render", "multiple", "--pretty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `data-story="Multiple"`) || !strings.Contains(out, "Pick some options") {
		t.Errorf("render output:\n%s", out)
	}

	tests := []struct {
		args []string
		code string
	}{
		{[]string{"stories", "render"}, "E303"},
		{[]string{"stories", "render", "a", "b"}, "E303"},
		{[]string{"stories", "render", "Nope"}, "E200"},
	}
	for _, tt := range tests {
		if _, err := execute(t, tt.args...); !errors.HasCode(err, tt.code) {
			t.Errorf("%v: error = %v, want %s", tt.args, err, tt.code)
		}
	}
}

func TestExplainCmd(t *testing.T) {
	out, err := execute(t, "explain")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"E100", "E203", "E303"} {
		if !strings.Contains(out, want) {
			t.Errorf("explain missing %s:\n%s", want, out)
		}
	}

	out, err = execute(t, "explain", "e102")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "E102 Invalid port (config)") || !strings.Contains(out, "between 1 and 65535") {
		t.Errorf("explain e102:\n%s", out)
	}

	if _, err := execute(t, "explain", "E999"); !errors.HasCode(err, "E303") {
		t.Errorf("unknown code error = %v, want E303", err)
	}
}

var (
	sessionRE = regexp.MustCompile(`data-session="([^"]+)"`)
	triggerRE = regexp.MustCompile(`data-dropdown="trigger"[^>]*data-hid="([^"]+)"`)
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := stories.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	srv, err := newServer(config.New(), cat, nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestServer_Routes(t *testing.T) {
	ts := testServer(t)

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "<title>" + appTitle + "</title>"},
		{"/stories", http.StatusOK, `href="/stories/NoSearch"`},
		{"/stories/Default", http.StatusOK, `id="sdd-1"`},
		{"/stories/outlined", http.StatusOK, `data-story="Outlined"`},
		{"/stories/Nope", http.StatusNotFound, ""},
		{live.MetricsPath, http.StatusOK, "go_goroutines"},
		{live.HealthPath, http.StatusOK, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, ts.URL+tt.path)
			if status != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestServer_OpenOverWebsocket(t *testing.T) {
	ts := testServer(t)

	_, body := get(t, ts.URL+"/")
	session := sessionRE.FindStringSubmatch(body)
	trigger := triggerRE.FindStringSubmatch(body)
	if session == nil || trigger == nil {
		t.Fatalf("page lacks session or trigger:\n%s", body)
	}

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + live.LivePath + "?session=" + session[1]
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	if err := conn.WriteJSON(live.Message{Type: live.MessageEvent, HID: trigger[1], Event: "click"}); err != nil {
		t.Fatal(err)
	}
	var reply live.Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Type != live.MessageHTML {
		t.Fatalf("reply = %+v, want html", reply)
	}
	for _, want := range []string{"Option with icon", "Long Long Long Long Long Option 6", "Search..."} {
		if !strings.Contains(reply.HTML, want) {
			t.Errorf("open list missing %q", want)
		}
	}
}
