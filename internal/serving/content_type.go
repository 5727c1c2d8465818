package serving

import (
	"io"
	"net/http"

	"gitlab.com/dagmap/dagmap/internal/vfs"
)

// sniffContentType detects the content type of a file without a known
// extension from its first 512 bytes, then rewinds the file.
// Adapted from Golang's `http.serveContent()`
// See https://github.com/golang/go/blob/902fc114272978a40d2e65c2510a18e870077559/src/net/http/fs.go#L194
func sniffContentType(file vfs.File) (string, error) {
	var buf [512]byte

	// Using `io.ReadFull()` because `file.Read()` may be chunked.
	// Ignoring errors because we don't care if the 512 bytes cannot be read.
	n, _ := io.ReadFull(file, buf[:])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
