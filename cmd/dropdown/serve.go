package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/dropdown/internal/config"
	"github.com/vango-dev/dropdown/internal/errors"
	"github.com/vango-dev/dropdown/internal/stories"
	"github.com/vango-dev/dropdown/pkg/live"
	"github.com/vango-dev/dropdown/pkg/vdom"
)

const appTitle = "Searchable Dropdown"

func serveCmd() *cobra.Command {
	var (
		dir  string
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

Configuration is read from dropdown.json and .env in the config
directory; flags override both.

Routes:
  /                  demo page
  /stories           story index
  /stories/{name}    story page
  /metrics           Prometheus metrics

Examples:
  dropdown serve
  dropdown serve --port=8080
  dropdown serve --config=./deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, dir, port, host)
		},
	}

	cmd.Flags().StringVarP(&dir, "config", "c", ".", "Directory holding dropdown.json and .env")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from dropdown.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from dropdown.json)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, dir string, port int, host string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Port = port
	}
	if host != "" {
		cfg.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := stories.Embedded()
	if err != nil {
		return err
	}

	srv, err := newServer(cfg, cat, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printBanner(w)
	success(w, "Serving %s", cfg.URL())
	info(w, "Stories:  %s/stories", cfg.URL())
	info(w, "Metrics:  %s%s", cfg.URL(), live.MetricsPath)
	if cfg.DevMode {
		warn(w, "Dev mode: client caching and origin checks are off")
	}

	if err := srv.Run(ctx); err != nil {
		if stderrors.Is(err, syscall.EADDRINUSE) {
			return errors.New("E301").
				WithDetail(cfg.Address() + " is already in use").
				WithSuggestion("Pick another port with --port").
				Wrap(err)
		}
		return errors.New("E300").Wrap(err)
	}
	return nil
}

// newServer mounts the demo page and the story pages on a live server
// whose metrics are registered in reg.
func newServer(cfg *config.Config, cat *stories.Catalogue, logger *slog.Logger, reg *prometheus.Registry) (*live.Server, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := live.NewMetrics(live.WithRegistry(reg))
	host := stories.Host{Logger: logger, Metrics: metrics}

	srv := live.NewServer(live.ServerConfig{
		Addr:        cfg.Address(),
		StyleSheets: cfg.StyleSheets,
		PageTTL:     ttl,
		DevMode:     cfg.DevMode,
	}, live.WithServerLogger(logger), live.WithServerMetrics(metrics, reg))

	srv.Page("/", appTitle, func(r *http.Request, p *live.Page) (vdom.Component, error) {
		return cat.Mount(p, cat.App(), host), nil
	})
	srv.Page("/stories", cat.Title, func(r *http.Request, p *live.Page) (vdom.Component, error) {
		return vdom.Func(func() *vdom.VNode { return cat.Index("/stories") }), nil
	})
	srv.Page("/stories/{name}", cat.Title, func(r *http.Request, p *live.Page) (vdom.Component, error) {
		s, err := cat.Lookup(chi.URLParam(r, "name"))
		if err != nil {
			return nil, live.ErrNotFound
		}
		return cat.Mount(p, s, host), nil
	})
	return srv, nil
}
