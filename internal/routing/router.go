package routing

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/dagmap/dagmap/internal/httperrors"
)

// GraphPath is where task maps are converted to Sankey graphs
const GraphPath = "/api/graph"

// Dispatcher serves the files of the web root
type Dispatcher interface {
	ServeIndex(http.ResponseWriter, *http.Request)
	ServeStatic(http.ResponseWriter, *http.Request)
}

// NewRouter returns the route table of dagmap:
//
//	GET, HEAD  /             the index.html of the web root
//	POST       /api/graph    task map to Sankey graph conversion
//	GET, HEAD  /{path...}    any other file of the web root
func NewRouter(dispatcher Dispatcher, graph http.Handler) *mux.Router {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperrors.Serve404(w)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperrors.Serve405(w)
	})

	router.HandleFunc("/", dispatcher.ServeIndex).
		Methods(http.MethodGet, http.MethodHead)
	router.Handle(GraphPath, graph).
		Methods(http.MethodPost)
	router.PathPrefix("/").
		HandlerFunc(dispatcher.ServeStatic).
		Methods(http.MethodGet, http.MethodHead)

	return router
}
