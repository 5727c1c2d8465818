package rejectmethods

import (
	"net/http"
	"strings"

	"gitlab.com/dagmap/dagmap/internal/httperrors"
	"gitlab.com/dagmap/dagmap/internal/logging"
)

// acceptedMethods are the methods of the front-end: files are read with GET
// and HEAD, task maps are sent with POST and OPTIONS is the CORS preflight
var acceptedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPost,
}

var allow = strings.Join(acceptedMethods, ", ")

// NewMiddleware returns middleware which rejects every other method before
// it reaches routing
func NewMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !accepted(r.Method) {
			logging.LogRequest(r).Debug("rejected method")

			w.Header().Set("Allow", allow)
			httperrors.Serve405(w)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

func accepted(method string) bool {
	for _, m := range acceptedMethods {
		if m == method {
			return true
		}
	}

	return false
}
