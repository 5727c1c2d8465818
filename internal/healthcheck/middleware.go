package healthcheck

import (
	"net/http"

	"gitlab.com/dagmap/dagmap/internal/vfs"
)

// NewMiddleware answers requests for statusPath with the status of root and
// passes everything else on. An empty statusPath disables it.
func NewMiddleware(handler http.Handler, statusPath string, root vfs.Root) http.Handler {
	if statusPath == "" {
		return handler
	}

	status := Handler(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == statusPath {
			status.ServeHTTP(w, r)
			return
		}

		handler.ServeHTTP(w, r)
	})
}
