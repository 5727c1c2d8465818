package urilimiter

import (
	"net/http"

	"gitlab.com/dagmap/dagmap/internal/httperrors"
	"gitlab.com/dagmap/dagmap/internal/logging"
)

// NewMiddleware rejects requests whose URI, as sent by the client with its
// escapes and query, is longer than limit with a 414. A limit of 0 disables
// the check. Task maps travel in the body of the graph API and are never
// counted.
func NewMiddleware(handler http.Handler, limit int) http.Handler {
	if limit == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.RequestURI) > limit {
			logging.LogRequest(r).
				WithField("uri_length", len(r.RequestURI)).
				WithField("max_uri_length", limit).
				Debug("rejected request URI")

			httperrors.Serve414(w)
			return
		}

		handler.ServeHTTP(w, r)
	})
}
