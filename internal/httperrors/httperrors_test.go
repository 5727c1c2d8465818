package httperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// creates a new implementation of http.ResponseWriter that allows the
// casting of values in order to aid testing efforts.
type testResponseWriter struct {
	status  int
	content string
	http.ResponseWriter
}

func newTestResponseWriter(w http.ResponseWriter) *testResponseWriter {
	return &testResponseWriter{0, "", w}
}

func (w *testResponseWriter) Status() int {
	return w.status
}

func (w *testResponseWriter) Content() string {
	return w.content
}

func (w *testResponseWriter) Header() http.Header {
	return w.ResponseWriter.Header()
}

func (w *testResponseWriter) Write(data []byte) (int, error) {
	w.content = string(data)
	return w.ResponseWriter.Write(data)
}

func (w *testResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

var (
	testingContent = content{
		http.StatusNotFound,
		"Title",
		"533",
		"Header test",
		"subheader text",
	}
)

func TestGenerateErrorHTML(t *testing.T) {
	actual := generateErrorHTML(testingContent)
	require.Contains(t, actual, testingContent.title)
	require.Contains(t, actual, testingContent.statusString)
	require.Contains(t, actual, testingContent.header)
	require.Contains(t, actual, testingContent.subHeader)
}

func TestServeErrorPage(t *testing.T) {
	w := newTestResponseWriter(httptest.NewRecorder())
	serveErrorPage(w, testingContent)
	require.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
	require.Equal(t, w.Header().Get("X-Content-Type-Options"), "nosniff")
	require.Equal(t, w.Status(), testingContent.status)
}

func TestServeFunctions(t *testing.T) {
	tests := map[string]struct {
		serve   func(http.ResponseWriter)
		content content
	}{
		"403": {serve: Serve403, content: content403},
		"404": {serve: Serve404, content: content404},
		"405": {serve: Serve405, content: content405},
		"413": {serve: Serve413, content: content413},
		"414": {serve: Serve414, content: content414},
		"429": {serve: Serve429, content: content429},
		"500": {serve: Serve500, content: content500},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestResponseWriter(httptest.NewRecorder())
			tt.serve(w)
			require.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
			require.Equal(t, w.Header().Get("X-Content-Type-Options"), "nosniff")
			require.Equal(t, w.Status(), tt.content.status)
			require.Contains(t, w.Content(), tt.content.title)
			require.Contains(t, w.Content(), tt.content.statusString)
			require.Contains(t, w.Content(), tt.content.header)
			require.Contains(t, w.Content(), tt.content.subHeader)
		})
	}
}

func TestServe500WithRequest(t *testing.T) {
	w := newTestResponseWriter(httptest.NewRecorder())
	r := httptest.NewRequest(http.MethodGet, "/broken.js", nil)

	Serve500WithRequest(w, r, "could not serve file", errors.New("disk on fire"))
	require.Equal(t, http.StatusInternalServerError, w.Status())
	require.Contains(t, w.Content(), content500.header)
}
