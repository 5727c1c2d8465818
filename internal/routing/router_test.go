package routing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubDispatcher struct{}

func (stubDispatcher) ServeIndex(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "index")
}

func (stubDispatcher) ServeStatic(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "static:"+r.URL.Path)
}

func TestRouter(t *testing.T) {
	graph := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "graph")
	})

	router := NewRouter(stubDispatcher{}, graph)

	tests := map[string]struct {
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		"index": {
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
			expectedBody:   "index",
		},
		"index head": {
			method:         http.MethodHead,
			path:           "/",
			expectedStatus: http.StatusOK,
		},
		"static file": {
			method:         http.MethodGet,
			path:           "/js/dag.js",
			expectedStatus: http.StatusOK,
			expectedBody:   "static:/js/dag.js",
		},
		"graph": {
			method:         http.MethodPost,
			path:           GraphPath,
			expectedStatus: http.StatusOK,
			expectedBody:   "graph",
		},
		"post to a file": {
			method:         http.MethodPost,
			path:           "/index.html",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   "Method not allowed.",
		},
		"delete the index": {
			method:         http.MethodDelete,
			path:           "/",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		"traversal is cleaned before dispatch": {
			method:         http.MethodGet,
			path:           "/js/../../etc/passwd",
			expectedStatus: http.StatusMovedPermanently,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, "/", strings.NewReader(""))
			r.URL.Path = tt.path

			router.ServeHTTP(w, r)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				require.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
