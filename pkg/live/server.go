package live

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	clientdist "github.com/vango-dev/dropdown/client/dist"
	"github.com/vango-dev/dropdown/pkg/render"
	"github.com/vango-dev/dropdown/pkg/vdom"
)

// Routes served by every Server.
const (
	ClientPath  = render.ClientScript
	LivePath    = "/live"
	MetricsPath = "/metrics"
	HealthPath  = "/healthz"
)

// ErrNotFound is returned by a Handler when the requested page does not exist.
var ErrNotFound = errors.New("live: page not found")

// Handler builds the root component of a page for a request.
type Handler func(r *http.Request, p *Page) (vdom.Component, error)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Addr is the listen address, e.g. "localhost:3000".
	Addr string

	// StyleSheets are linked from every page.
	StyleSheets []string

	// PageTTL is how long a rendered page waits for its client.
	PageTTL time.Duration

	// SweepInterval is how often expired pages are collected.
	// Default: half of PageTTL.
	SweepInterval time.Duration

	// ReadLimit caps the size of a client message in bytes.
	ReadLimit int64

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// DevMode disables client caching and the websocket origin check.
	DevMode bool
}

// DefaultServerConfig returns a config listening on localhost:3000.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            "localhost:3000",
		PageTTL:         DefaultPageTTL,
		ReadLimit:       64 * 1024,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves live pages over HTTP and their events over websockets.
type Server struct {
	config    ServerConfig
	router    chi.Router
	registry  *Registry
	renderer  *render.Renderer
	upgrader  websocket.Upgrader
	logger    *slog.Logger
	metrics   *Metrics
	gatherer  prometheus.Gatherer
	clientTag string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the server logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithServerMetrics records page activity in m and serves g at MetricsPath.
func WithServerMetrics(m *Metrics, g prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// NewServer creates a server with the built-in routes mounted. Pages are
// added with Page.
func NewServer(config ServerConfig, opts ...ServerOption) *Server {
	defaults := DefaultServerConfig()
	if config.PageTTL <= 0 {
		config.PageTTL = defaults.PageTTL
	}
	if config.ReadLimit <= 0 {
		config.ReadLimit = defaults.ReadLimit
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	s := &Server{
		config:   config,
		router:   chi.NewRouter(),
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry = NewRegistry(config.PageTTL, s.logger)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
	}
	if config.DevMode {
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	sum := sha256.Sum256(clientdist.DropdownJS)
	s.clientTag = fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Get(ClientPath, s.serveClient)
	s.router.Head(ClientPath, s.serveClient)
	s.router.Get(LivePath, s.serveLive)
	s.router.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle(MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return s
}

// Page serves the page built by h at pattern. The pattern uses chi syntax,
// e.g. "/stories/{name}".
func (s *Server) Page(pattern, title string, h Handler) {
	s.router.Get(pattern, s.servePage(title, h))
}

// Registry returns the registry of served pages.
func (s *Server) Registry() *Registry { return s.registry }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.registry.Run(sweepCtx, s.config.SweepInterval)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("live: shutdown: %w", err)
	}
	return nil
}

func (s *Server) servePage(title string, h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buildErr error
		page := NewPage(func(p *Page) vdom.Component {
			c, err := h(r, p)
			buildErr = err
			return c
		}, WithLogger(s.logger), WithMetrics(s.metrics))

		if buildErr != nil {
			page.Close()
			if errors.Is(buildErr, ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			s.logger.Error("page build error", "path", r.URL.Path, "error", buildErr)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		body := page.Render()
		s.registry.Add(page)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.renderer.RenderPage(w, render.PageData{
			Body:        body,
			Title:       title,
			StyleSheets: s.config.StyleSheets,
			SessionID:   page.ID(),
		})
		if err != nil {
			s.logger.Error("page render error", "path", r.URL.Path, "error", err)
			s.registry.Release(page.ID())
		}
	}
}

func (s *Server) serveLive(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	page, ok := s.registry.Acquire(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	defer s.registry.Release(id)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "session", id, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.ReadLimit)

	s.logger.Debug("client connected", "session", id)
	if err := page.Serve(r.Context(), conn); err != nil {
		s.logger.Debug("connection ended", "session", id, "error", err)
	}
}

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", s.clientTag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if s.config.DevMode {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if etagMatches(r.Header.Get("If-None-Match"), s.clientTag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(clientdist.DropdownJS)
}

func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, part := range strings.Split(header, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == etag || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
