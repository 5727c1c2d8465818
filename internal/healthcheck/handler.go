package healthcheck

import (
	"net/http"

	"gitlab.com/dagmap/dagmap/internal/logging"
	"gitlab.com/dagmap/dagmap/internal/serving"
	"gitlab.com/dagmap/dagmap/internal/vfs"
)

// Handler reports whether the index.html of root can be opened. Without it
// the front-end can not load, so the instance is reported unavailable.
func Handler(root vfs.Root) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		file, err := root.Open(r.Context(), serving.IndexFile)
		if err != nil {
			logging.LogRequest(r).WithError(err).Warn("web root is not readable")

			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("web root is not readable\n"))
			return
		}
		file.Close()

		w.Write([]byte("success\n"))
	})
}
