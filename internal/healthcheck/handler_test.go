package healthcheck_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/dagmap/dagmap/internal/healthcheck"
	"gitlab.com/dagmap/dagmap/internal/testhelpers"
	"gitlab.com/dagmap/dagmap/internal/vfs/mock"
)

const statusURL = "http://tasks.example.com/-/healthcheck"

func TestHealthCheckHandler(t *testing.T) {
	tests := map[string]struct {
		files          map[string]string
		expectedStatus int
		expectedBody   string
	}{
		"front-end in place": {
			files:          map[string]string{"index.html": "<html></html>", "js/dag.js": ""},
			expectedStatus: http.StatusOK,
			expectedBody:   "success\n",
		},
		"index.html missing": {
			files:          map[string]string{"js/dag.js": ""},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "web root is not readable\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := testhelpers.WebRoot(t, tt.files)

			w := httptest.NewRecorder()
			healthcheck.Handler(root).ServeHTTP(w, httptest.NewRequest(http.MethodGet, statusURL, nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedBody, w.Body.String())
			require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestHealthCheckHandlerIndexReplacedBySymlink(t *testing.T) {
	root, dir := testhelpers.WebRoot(t, map[string]string{"other.html": "<html></html>"})
	require.NoError(t, os.Symlink(filepath.Join(os.TempDir(), "index.html"), filepath.Join(dir, "index.html")))

	w := httptest.NewRecorder()
	healthcheck.Handler(root).ServeHTTP(w, httptest.NewRequest(http.MethodGet, statusURL, nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheckHandlerLogsError(t *testing.T) {
	hook := testlog.NewGlobal()
	mockCtrl := gomock.NewController(t)

	root := mock.NewMockRoot(mockCtrl)
	root.EXPECT().
		Open(gomock.Any(), "index.html").
		Return(nil, errors.New("input/output error"))

	w := httptest.NewRecorder()
	healthcheck.Handler(root).ServeHTTP(w, httptest.NewRequest(http.MethodGet, statusURL, nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	testhelpers.AssertLogContains(t, "web root is not readable", hook.AllEntries())
}
