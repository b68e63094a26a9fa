package preview

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/el-go/el/pkg/publish"
	"github.com/el-go/el/pkg/render"
)

// Server serves a site over HTTP with a live-reload script injected
// into every page.
type Server struct {
	hub    *Hub
	logger *slog.Logger

	mu    sync.RWMutex
	site  *publish.Site
	extra map[string]http.Handler
}

// NewServer creates a preview server for the given site.
func NewServer(site *publish.Site) *Server {
	return &Server{
		hub:    NewHub(),
		logger: slog.Default().With("component", "preview"),
		site:   site,
	}
}

// Handle mounts an extra handler, such as a metrics endpoint, next to
// the served pages. Must be called before Handler or ListenAndServe.
func (s *Server) Handle(pattern string, h http.Handler) {
	if s.extra == nil {
		s.extra = make(map[string]http.Handler)
	}
	s.extra[pattern] = h
}

// SetSite swaps the served site and tells connected browsers to reload.
func (s *Server) SetSite(site *publish.Site) {
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()

	s.hub.NotifyReload()
}

// NotifyReload tells connected browsers to reload without swapping the
// site. Useful when page functions read mutable state.
func (s *Server) NotifyReload() {
	s.hub.NotifyReload()
}

// Handler returns the HTTP handler serving the site and the reload
// endpoint. Additional middleware can be applied on top.
func (s *Server) Handler(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Get(reloadPath, s.hub.HandleWebSocket)
	for pattern, h := range s.extra {
		r.Handle(pattern, h)
	}
	r.NotFound(s.servePage)
	return r
}

// ListenAndServe serves the site on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, middlewares ...func(http.Handler) http.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(middlewares...),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("preview server listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errc
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	site := s.site
	s.mu.RUnlock()

	doc, ok := site.Page(r.URL.Path)
	if !ok {
		s.logger.Info("page not found", "path", r.URL.Path)
		http.NotFound(w, r)
		return
	}

	html, err := render.DocumentString(doc)
	if err != nil {
		s.logger.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, injectScript(html)); err != nil {
		s.logger.Error("write failed", "path", r.URL.Path, "error", err)
	}
}

// injectScript inserts the reload client script before the closing body
// tag, or appends it when the page has no body.
func injectScript(html string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + clientScript + html[i:]
	}
	return html + clientScript
}
