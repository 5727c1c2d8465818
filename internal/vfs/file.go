package vfs

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
)

// File represents an open file, which will typically be the response body of a request.
type File interface {
	io.Reader
	io.Seeker
	io.Closer
}

func logEntry(ctx context.Context) *log.Entry {
	return log.WithField("correlation_id", correlation.ExtractFromContext(ctx))
}
