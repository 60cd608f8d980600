package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routeInfo returns the matched route pattern and the {form} parameter of r.
// Both are empty before chi has routed the request or outside a chi router.
func routeInfo(r *http.Request) (pattern, form string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam("form")
}
