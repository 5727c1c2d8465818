package serving

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"gitlab.com/dagmap/dagmap/internal/httperrors"
	"gitlab.com/dagmap/dagmap/internal/logging"
	"gitlab.com/dagmap/dagmap/internal/vfs"
	"gitlab.com/dagmap/dagmap/metrics"
)

// IndexFile is served for the root and for every directory
const IndexFile = "index.html"

var (
	errNotRegularFile = errors.New("not a regular file")
	errInvalidName    = errors.New("invalid file name")
)

// Dispatcher serves the files of a web root. Every name is resolved, checked
// to be inside of the root, and only then streamed.
type Dispatcher struct {
	root vfs.Root
}

// NewDispatcher returns a Dispatcher serving files from root
func NewDispatcher(root vfs.Root) *Dispatcher {
	return &Dispatcher{root: root}
}

// ServeIndex serves the index.html found directly under the web root
func (d *Dispatcher) ServeIndex(w http.ResponseWriter, r *http.Request) {
	d.serve(w, r, IndexFile)
}

// ServeStatic serves the file found at the request path under the web root.
// Directories are served through their own index.html.
func (d *Dispatcher) ServeStatic(w http.ResponseWriter, r *http.Request) {
	d.serve(w, r, strings.TrimPrefix(r.URL.Path, "/"))
}

func (d *Dispatcher) serve(w http.ResponseWriter, r *http.Request, name string) {
	if strings.IndexByte(name, 0) != -1 {
		d.serveError(w, r, fmt.Errorf("%q: %w", name, errInvalidName))
		return
	}

	fi, err := d.root.Stat(r.Context(), name)
	if err == nil && fi.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			redirectToDirectory(w, r, name)
			return
		}

		name = path.Join(name, IndexFile)
		fi, err = d.root.Stat(r.Context(), name)
	}

	if err != nil {
		d.serveError(w, r, err)
		return
	}

	// The file exists, but is not a supported type to serve. Perhaps a block
	// special device or something else that may be a security risk.
	if !fi.Mode().IsRegular() {
		d.serveError(w, r, fmt.Errorf("%q: %w", name, errNotRegularFile))
		return
	}

	if err := d.serveFile(w, r, name, fi); err != nil {
		d.serveError(w, r, err)
	}
}

func (d *Dispatcher) serveFile(w http.ResponseWriter, r *http.Request, name string, fi os.FileInfo) error {
	// the type of a compressed variant is the type of the original
	contentType := mime.TypeByExtension(path.Ext(name))
	servedName := name
	if contentType != "" {
		servedName, fi = d.handleContentEncoding(w, r, name, fi)
	}

	file, err := d.root.Open(r.Context(), servedName)
	if err != nil {
		return err
	}

	defer file.Close()

	if contentType == "" {
		contentType, err = sniffContentType(file)
		if err != nil {
			return err
		}
	}

	metrics.ServedFileSize.Observe(float64(fi.Size()))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "max-age=600")
	w.Header().Set("Expires", time.Now().UTC().Add(10*time.Minute).Format(http.TimeFormat))

	http.ServeContent(w, r, name, fi.ModTime(), file)

	return nil
}

func (d *Dispatcher) serveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, vfs.ErrInvalidPath):
		metrics.RejectedPaths.Inc()
		logging.LogRequest(r).WithError(err).Warn("rejected path outside of the web root")
		httperrors.Serve403(w)
	case errors.Is(err, errNotRegularFile),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, unix.ELOOP):
		logging.LogRequest(r).WithError(err).Debug("refused to serve file")
		httperrors.Serve403(w)
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, unix.ENOTDIR),
		errors.Is(err, unix.ENAMETOOLONG),
		errors.Is(err, errInvalidName):
		httperrors.Serve404(w)
	default:
		httperrors.Serve500WithRequest(w, r, "could not serve file", err)
	}
}

// redirectToDirectory sends the client to the slash terminated location of
// a directory, so relative links inside its index.html resolve correctly.
// The location is relative to avoid redirecting to another host.
func redirectToDirectory(w http.ResponseWriter, r *http.Request, name string) {
	location := "./" + path.Base(name) + "/"
	if r.URL.RawQuery != "" {
		location += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, location, http.StatusFound)
}
