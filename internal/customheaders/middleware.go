package customheaders

import (
	"net/http"
)

// NewMiddleware returns middleware setting headers on every response before
// handler runs, so handlers still decide about their own headers
func NewMiddleware(handler http.Handler, headers http.Header) http.Handler {
	if len(headers) == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setHeaders(w, headers)

		handler.ServeHTTP(w, r)
	})
}
