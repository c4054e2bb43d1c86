package live

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultPageTTL is how long a rendered page waits for its client to
// connect before it is closed.
const DefaultPageTTL = 2 * time.Minute

// Registry holds the pages served over HTTP until their live connection
// ends. A page is served to at most one connection.
type Registry struct {
	mu     sync.Mutex
	pages  map[string]*entry
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

type entry struct {
	page      *Page
	created   time.Time
	connected bool
}

// NewRegistry creates a registry whose unclaimed pages expire after ttl.
func NewRegistry(ttl time.Duration, logger *slog.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		pages:  make(map[string]*entry),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Add registers p under its ID.
func (r *Registry) Add(p *Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[p.ID()] = &entry{page: p, created: r.now()}
}

// Acquire claims the page for a connection. ok is false when the page is
// unknown, expired or already connected.
func (r *Registry) Acquire(id string) (p *Page, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.pages[id]
	if !ok || e.connected {
		return nil, false
	}
	e.connected = true
	return e.page, true
}

// Release removes the page and closes it.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	e, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()

	if ok {
		e.page.Close()
	}
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep closes pages whose client never connected within the TTL and
// returns how many were closed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Page
	for id, e := range r.pages {
		if !e.connected && e.created.Before(cutoff) {
			expired = append(expired, e.page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.Close()
	}
	if len(expired) > 0 {
		r.logger.Debug("expired pages closed", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every page.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// CloseAll closes and removes every page.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range pages {
		e.page.Close()
	}
}
