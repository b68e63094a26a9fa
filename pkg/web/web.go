// Package web serves rendered documents over HTTP.
//
// It adapts the renderer to net/http: a PageFunc produces a
// dom.Document per request, and Handler turns it into an html response.
// Only complete documents can be served - a bare element has no doctype
// and is deliberately not accepted here, so fragments cannot leak out
// as whole pages.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/el-go/el/pkg/dom"
	"github.com/el-go/el/pkg/render"
)

// PageFunc produces the document for a request.
type PageFunc func(r *http.Request) (*dom.Document, error)

// Handler serves the documents produced by fn.
//
// On success the response is 200 with Content-Type
// "text/html; charset=utf-8" and the rendered page as the body. If fn
// or rendering fails, the response is 500 with the error's display
// text; no partial markup is ever written.
func Handler(fn PageFunc) http.Handler {
	logger := slog.Default().With("component", "web")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, err := fn(r)
		var html string
		if err == nil {
			// Render to a string first so a failure cannot leave a
			// truncated body on the wire.
			html, err = render.DocumentString(doc)
		}
		if err != nil {
			logger.Error("page render failed", "path", r.URL.Path, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			logger.Error("response write failed", "path", r.URL.Path, "error", err)
		}
	})
}

// Static serves the same document for every request.
func Static(doc *dom.Document) http.Handler {
	return Handler(func(*http.Request) (*dom.Document, error) {
		return doc, nil
	})
}

// NewRouter returns a chi router with the given middleware applied.
func NewRouter(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}
	return r
}

// Page mounts fn at pattern for GET requests.
func Page(r chi.Router, pattern string, fn PageFunc) {
	r.Method(http.MethodGet, pattern, Handler(fn))
}
