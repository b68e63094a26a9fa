package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routeLabel returns the matched chi route pattern for the request, or the
// raw URL path when the request was not routed by chi. Must be called
// after the next handler has run, since chi fills in the pattern during
// routing.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// statusOf normalizes a recorded status code, treating an unwritten
// response as 200 the way net/http does.
func statusOf(code int) int {
	if code == 0 {
		return http.StatusOK
	}
	return code
}
